package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/asvplan/motionplan"
	"go.viam.com/asvplan/referenceframe"
)

func configuration(t *testing.T, vals ...float64) referenceframe.Configuration {
	t.Helper()
	q, err := referenceframe.NewConfigurationFromFloats(vals)
	test.That(t, err, test.ShouldBeNil)
	return q
}

func TestEncodeSolution(t *testing.T) {
	plan := &motionplan.Plan{
		Path: []referenceframe.Configuration{
			configuration(t, 0.1, 0.1, 0.15, 0.1),
			configuration(t, 0.1005, 0.1, 0.1505, 0.1),
		},
		Length: 0.0005,
	}
	var buf bytes.Buffer
	test.That(t, EncodeSolution(&buf, plan), test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldEqual, "1 0.0005\n0.1 0.1 0.15 0.1\n0.1005 0.1 0.1505 0.1\n")

	path := filepath.Join(t.TempDir(), "solution.txt")
	test.That(t, WriteSolution(path, plan), test.ShouldBeNil)
	read, err := ReadSolution(path, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, read.Steps(), test.ShouldEqual, 1)
	test.That(t, read.Length, test.ShouldEqual, plan.Length)
	for i, q := range read.Path {
		test.That(t, q.Equal(plan.Path[i]), test.ShouldBeTrue)
	}
}

func TestDecodeSolutionErrors(t *testing.T) {
	_, err := DecodeSolution(strings.NewReader(""), 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "header")

	_, err = DecodeSolution(strings.NewReader("2 0.1\n0.1 0.1 0.15 0.1\n"), 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "configuration 1")

	_, err = DecodeSolution(strings.NewReader("0 0\n0.1 0.1 0.15 0.1 0.2 0.2\n"), 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "line 2")

	_, err = ReadSolution(filepath.Join(t.TempDir(), "missing.txt"), 2)
	test.That(t, err, test.ShouldNotBeNil)
}
