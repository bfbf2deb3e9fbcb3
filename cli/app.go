// Package cli contains the asvplan command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

// flags.
const (
	debugFlag       = "debug"
	logFileFlag     = "log-file"
	optionsFlag     = "options"
	seedFlag        = "seed"
	maxAttemptsFlag = "max-attempts"
	timeoutFlag     = "timeout"
	renderFlag      = "render"
	outFlag         = "out"
	sizeFlag        = "size"
	trialsFlag      = "trials"
)

var plannerFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    optionsFlag,
		Aliases: []string{"o"},
		Usage:   "load planner options from a JSON or YAML `FILE`",
	},
	&cli.IntFlag{
		Name:  seedFlag,
		Usage: "random seed, overrides the options file",
	},
	&cli.IntFlag{
		Name:  maxAttemptsFlag,
		Usage: "give up after this many attempts, 0 keeps trying",
	},
	&cli.Float64Flag{
		Name:  timeoutFlag,
		Usage: "give up after this many seconds, 0 means no limit",
	},
}

// NewApp returns the asvplan application writing its output to out and errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "asvplan",
		Usage:           "plan collision free motions for chains of rigid booms",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  logFileFlag,
				Usage: "also write logs to `FILE`, rotating it when it grows large",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "plan",
				Usage:     "plan a path for a problem and write the solution",
				ArgsUsage: "<problem> <solution>",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  renderFlag,
						Usage: "also draw the problem, search tree and path to a PNG `FILE`",
					},
				}, plannerFlags...),
				Action: PlanAction,
			},
			{
				Name:      "check",
				Usage:     "verify that a solution solves a problem",
				ArgsUsage: "<problem> <solution>",
				Action:    CheckAction,
			},
			{
				Name:      "render",
				Usage:     "draw a problem and optionally a solution to a PNG",
				ArgsUsage: "<problem> [solution]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     outFlag,
						Usage:    "write the image to `FILE`",
						Required: true,
					},
					&cli.IntFlag{
						Name:  sizeFlag,
						Usage: "length in pixels of the longer side of the image",
						Value: 800,
					},
				},
				Action: RenderAction,
			},
			{
				Name:      "bench",
				Usage:     "plan a problem repeatedly with different seeds and summarize the results",
				ArgsUsage: "<problem>",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  trialsFlag,
						Usage: "number of plans to run",
						Value: 10,
					},
				}, plannerFlags...),
				Action: BenchAction,
			},
		},
	}
}
