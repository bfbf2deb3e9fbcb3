package utils

import (
	"os"
	"strconv"

	"go.viam.com/asvplan/logging"
)

// RandomSeedEnvVar overrides the planner's random seed when set.
const RandomSeedEnvVar = "ASVPLAN_RSEED"

// GetenvInt returns the integer value of the environment variable `v`, or `def` when the
// variable is unset or not an integer.
func GetenvInt(v string, def int) int {
	x, ok := os.LookupEnv(v)
	if !ok {
		return def
	}

	i, err := strconv.Atoi(x)
	if err != nil {
		logging.Global().Warnf("ignoring non-integer value %q for %s", x, v)
		return def
	}

	return i
}
