package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/asvplan/motionplan"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestReadPlannerOptions(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		opts, err := ReadPlannerOptions(writeFile(t, "opts.json", `{"sample_budget": 250, "nearest_neighbor": "linear"}`))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, opts.SampleBudget, test.ShouldEqual, 250)
		test.That(t, opts.NearestNeighbor, test.ShouldEqual, motionplan.LinearNeighborIndex)
		test.That(t, opts.MicroStep, test.ShouldEqual, motionplan.NewBasicPlannerOptions().MicroStep)
	})

	t.Run("yaml", func(t *testing.T) {
		opts, err := ReadPlannerOptions(writeFile(t, "opts.yaml", "max_attempts: 3\njoint_weights: [2, 1]\ntimeout: 2.5\n"))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, opts.MaxAttempts, test.ShouldEqual, 3)
		test.That(t, opts.JointWeights, test.ShouldResemble, []float64{2, 1})
		test.That(t, opts.Timeout, test.ShouldEqual, 2.5)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("ASVPLAN_TEST_BUDGET", "77")
		opts, err := ReadPlannerOptions(writeFile(t, "opts.yml", "sample_budget: ${ASVPLAN_TEST_BUDGET}\n"))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, opts.SampleBudget, test.ShouldEqual, 77)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ReadPlannerOptions(writeFile(t, "opts.json", `{"sample_budget": -1}`))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "sample_budget")

		_, err = ReadPlannerOptions(writeFile(t, "opts.json", `{"sample_budget": `))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode")

		_, err = ReadPlannerOptions(filepath.Join(t.TempDir(), "missing.json"))
		test.That(t, err, test.ShouldNotBeNil)
	})
}
