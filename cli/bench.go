package cli

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"go.viam.com/asvplan/config"
	"go.viam.com/asvplan/logging"
	"go.viam.com/asvplan/motionplan"
)

// benchResults holds one value per successful trial for every measured quantity.
type benchResults struct {
	samples  []float64
	attempts []float64
	nodes    []float64
	length   []float64
	seconds  []float64
	failures int
}

func (r *benchResults) add(plan *motionplan.Plan, seconds float64) {
	r.samples = append(r.samples, float64(plan.Samples))
	r.attempts = append(r.attempts, float64(plan.Attempts))
	r.nodes = append(r.nodes, float64(plan.Nodes))
	r.length = append(r.length, plan.Length)
	r.seconds = append(r.seconds, seconds)
}

// String prints a table with the mean, standard deviation, median, 90th percentile and range of each quantity.
func (r *benchResults) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Mean", "StdDev", "Median", "P90", "Min", "Max"})
	for _, metric := range []struct {
		name string
		vals []float64
	}{
		{"samples", r.samples},
		{"attempts", r.attempts},
		{"nodes", r.nodes},
		{"length", r.length},
		{"seconds", r.seconds},
	} {
		if len(metric.vals) == 0 {
			t.AppendRow(table.Row{metric.name, "-", "-", "-", "-", "-", "-"})
			continue
		}
		mean, std := stat.MeanStdDev(metric.vals, nil)
		if len(metric.vals) < 2 {
			std = 0
		}
		// neither fails on non-empty input
		median, _ := stats.Median(metric.vals)
		p90, _ := stats.Percentile(metric.vals, 90)
		t.AppendRow(table.Row{
			metric.name,
			fmt.Sprintf("%.4f", mean),
			fmt.Sprintf("%.4f", std),
			fmt.Sprintf("%.4f", median),
			fmt.Sprintf("%.4f", p90),
			fmt.Sprintf("%.4f", floats.Min(metric.vals)),
			fmt.Sprintf("%.4f", floats.Max(metric.vals)),
		})
	}
	t.AppendRow(table.Row{"failures", r.failures, "", "", "", "", ""})
	return t.Render()
}

// runBench plans the problem trials times with consecutive seeds starting at opts.RandomSeed. Failed trials are
// counted; an invalid problem or a finished context ends the run.
func runBench(
	ctx context.Context,
	logger logging.Logger,
	problem *motionplan.Problem,
	opts *motionplan.PlannerOptions,
	trials int,
	clk clock.Clock,
) (*benchResults, error) {
	results := &benchResults{}
	for i := 0; i < trials; i++ {
		trialOpts := *opts
		trialOpts.RandomSeed = opts.RandomSeed + i
		start := clk.Now()
		plan, err := motionplan.PlanMotion(ctx, logger, problem, &trialOpts)
		if err != nil {
			if errors.Is(err, motionplan.ErrInvalidProblem) || ctx.Err() != nil {
				return nil, err
			}
			logger.Warnf("trial %d with seed %d failed: %v", i, trialOpts.RandomSeed, err)
			results.failures++
			continue
		}
		results.add(plan, clk.Since(start).Seconds())
	}
	return results, nil
}

// BenchAction plans the same problem with consecutive seeds and prints summary statistics.
func BenchAction(c *cli.Context) error {
	if err := checkArgs(c, 1, 1); err != nil {
		return err
	}
	trials := c.Int(trialsFlag)
	if trials <= 0 {
		return errors.Errorf("--%s must be positive, got %d", trialsFlag, trials)
	}
	problem, err := config.ReadProblem(c.Args().Get(0))
	if err != nil {
		return err
	}
	opts, err := plannerOptions(c)
	if err != nil {
		return err
	}
	logger, closeLogs := newLogger(c)
	defer closeLogs()
	if !c.Bool(debugFlag) {
		logger.SetLevel(logging.WARN)
	}

	results, err := runBench(c.Context, logger, problem, opts, trials, clock.New())
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", results.String())
	return nil
}
