package cli

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"go.viam.com/asvplan/config"
	"go.viam.com/asvplan/logging"
	"go.viam.com/asvplan/motionplan"
	"go.viam.com/asvplan/visualize"
)

// PlanAction plans a path for the problem file and writes it to the solution file.
func PlanAction(c *cli.Context) error {
	if err := checkArgs(c, 2, 2); err != nil {
		return err
	}
	problemPath, solutionPath := c.Args().Get(0), c.Args().Get(1)

	problem, err := config.ReadProblem(problemPath)
	if err != nil {
		return err
	}
	opts, err := plannerOptions(c)
	if err != nil {
		return err
	}
	logger, closeLogs := newLogger(c)
	defer closeLogs()
	ctx := c.Context
	if c.Bool(debugFlag) {
		ctx = logging.EnableDebugMode(ctx)
	}

	plan, err := motionplan.PlanMotion(ctx, logger, problem, opts)
	if err != nil {
		return err
	}
	if err := config.WriteSolution(solutionPath, plan); err != nil {
		return err
	}
	infof(c.App.Writer, "wrote %d steps of length %.4f to %s after %d attempts and %d samples",
		plan.Steps(), plan.Length, solutionPath, plan.Attempts, plan.Samples)

	if imagePath := c.String(renderFlag); imagePath != "" {
		caption := fmt.Sprintf("%s: %d steps, length %.4f", filepath.Base(problemPath), plan.Steps(), plan.Length)
		if err := visualize.SavePNG(imagePath, problem, plan, visualize.Options{Caption: caption}); err != nil {
			return err
		}
		infof(c.App.Writer, "drew plan to %s", imagePath)
	}
	return nil
}
