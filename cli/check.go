package cli

import (
	"math"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/asvplan/config"
	"go.viam.com/asvplan/motionplan"
)

// lengthTolerance is how far a solution's reported length may be from the measured one before a warning.
const lengthTolerance = 1e-6

// CheckAction verifies a solution file against its problem file.
func CheckAction(c *cli.Context) error {
	if err := checkArgs(c, 2, 2); err != nil {
		return err
	}
	problem, err := config.ReadProblem(c.Args().Get(0))
	if err != nil {
		return err
	}
	plan, err := config.ReadSolution(c.Args().Get(1), problem.NumJoints())
	if err != nil {
		return err
	}
	if err := motionplan.CheckPath(problem, plan.Path); err != nil {
		return errors.Wrap(err, "solution is invalid")
	}

	measured := 0.
	for i := 1; i < len(plan.Path); i++ {
		measured += plan.Path[i-1].RootDisplacement(plan.Path[i])
	}
	if math.Abs(measured-plan.Length) > lengthTolerance {
		warningf(c.App.ErrWriter, "solution reports length %f but its root joint travels %f", plan.Length, measured)
	}
	infof(c.App.Writer, "solution is valid: %d steps of length %.4f", plan.Steps(), measured)
	return nil
}
