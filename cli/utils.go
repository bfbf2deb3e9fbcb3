package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"go.viam.com/asvplan/config"
	"go.viam.com/asvplan/logging"
	"go.viam.com/asvplan/motionplan"
	"go.viam.com/asvplan/utils"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// infof prints a message prefixed with a bold cyan "Info: ".
func infof(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	color.New(color.Bold, color.FgCyan).Fprint(w, "Info: ")
	printf(w, format, a...)
}

// warningf prints a message prefixed with a bold yellow "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	color.New(color.Bold, color.FgYellow).Fprint(w, "Warning: ")
	printf(w, format, a...)
}

// newLogger returns a logger writing to the app's error output, and to a rotated log file when --log-file is set.
// It logs at debug level when --debug is set. The returned function flushes the logger and closes the log file.
func newLogger(c *cli.Context) (logging.Logger, func()) {
	logger := logging.NewBlankLogger("asvplan")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	if !c.Bool(debugFlag) {
		logger.SetLevel(logging.INFO)
	}
	path := c.String(logFileFlag)
	if path == "" {
		return logger, func() {
			utils.UncheckedErrorFunc(logger.Sync)
		}
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 2,
	}
	logger.AddAppender(logging.NewWriterAppender(file))
	return logger, func() {
		utils.UncheckedErrorFunc(logger.Sync)
		utils.UncheckedError(file.Close())
	}
}

// plannerOptions reads the options file, if any, then applies the command line overrides.
func plannerOptions(c *cli.Context) (*motionplan.PlannerOptions, error) {
	opts := motionplan.NewBasicPlannerOptions()
	if path := c.String(optionsFlag); path != "" {
		var err error
		if opts, err = config.ReadPlannerOptions(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet(seedFlag) {
		opts.RandomSeed = c.Int(seedFlag)
	}
	if c.IsSet(maxAttemptsFlag) {
		opts.MaxAttempts = c.Int(maxAttemptsFlag)
	}
	if c.IsSet(timeoutFlag) {
		opts.Timeout = c.Float64(timeoutFlag)
	}
	return opts, opts.Validate()
}

func checkArgs(c *cli.Context, minArgs, maxArgs int) error {
	if n := c.Args().Len(); n < minArgs || n > maxArgs {
		return errors.Errorf("%s expects %s, got %d arguments", c.Command.Name, c.Command.ArgsUsage, n)
	}
	return nil
}
