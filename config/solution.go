package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/asvplan/motionplan"
	"go.viam.com/asvplan/referenceframe"
	"go.viam.com/asvplan/utils"
)

// WriteSolution writes the plan's path to the given file, replacing anything already there.
func WriteSolution(filePath string, plan *motionplan.Plan) (err error) {
	//nolint:gosec
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return EncodeSolution(f, plan)
}

// EncodeSolution writes a header line holding the number of steps and the path length, then one configuration per
// line.
func EncodeSolution(w io.Writer, plan *motionplan.Plan) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %s\n", plan.Steps(), strconv.FormatFloat(plan.Length, 'f', -1, 64)); err != nil {
		return err
	}
	for _, q := range plan.Path {
		if _, err := fmt.Fprintln(bw, q.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSolution reads a solution file for a chain with the given number of joints.
func ReadSolution(filePath string, joints int) (*motionplan.Plan, error) {
	//nolint:gosec
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)
	plan, err := DecodeSolution(f, joints)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read solution %q", filePath)
	}
	return plan, nil
}

// DecodeSolution parses the format written by EncodeSolution.
func DecodeSolution(r io.Reader, joints int) (*motionplan.Plan, error) {
	lr := newLineReader(r)
	header, err := lr.next()
	if err != nil {
		return nil, lr.wrap(err, "header")
	}
	if len(header) != 2 {
		return nil, lr.wrap(errors.Errorf("expected step count and length, got %d values", len(header)), "header")
	}
	steps, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, lr.wrap(err, "step count")
	}
	if steps < 0 {
		return nil, lr.wrap(errors.Errorf("step count can't be negative, got %d", steps), "step count")
	}
	length, err := strconv.ParseFloat(header[1], 64)
	if err != nil {
		return nil, lr.wrap(err, "path length")
	}

	path := make([]referenceframe.Configuration, 0, steps+1)
	for i := 0; i <= steps; i++ {
		q, err := lr.readConfiguration(joints, "configuration "+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		path = append(path, q)
	}
	return &motionplan.Plan{Path: path, Length: length}, nil
}
