package cli

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"go.viam.com/asvplan/config"
	"go.viam.com/asvplan/motionplan"
	"go.viam.com/asvplan/visualize"
)

// RenderAction draws a problem, and the solution when one is given, to a PNG.
func RenderAction(c *cli.Context) error {
	if err := checkArgs(c, 1, 2); err != nil {
		return err
	}
	problemPath := c.Args().Get(0)
	problem, err := config.ReadProblem(problemPath)
	if err != nil {
		return err
	}

	var plan *motionplan.Plan
	caption := filepath.Base(problemPath)
	if c.Args().Len() == 2 {
		if plan, err = config.ReadSolution(c.Args().Get(1), problem.NumJoints()); err != nil {
			return err
		}
		caption = fmt.Sprintf("%s: %d steps, length %.4f", caption, plan.Steps(), plan.Length)
	}

	out := c.String(outFlag)
	opts := visualize.Options{Size: c.Int(sizeFlag), Caption: caption}
	if err := visualize.SavePNG(out, problem, plan, opts); err != nil {
		return err
	}
	infof(c.App.Writer, "drew %s to %s", problemPath, out)
	return nil
}
