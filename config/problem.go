// Package config reads planning problems and planner options from disk and writes solutions back.
package config

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/asvplan/motionplan"
	"go.viam.com/asvplan/referenceframe"
	"go.viam.com/asvplan/spatialmath"
	"go.viam.com/asvplan/utils"
)

// lineReader yields the meaningful lines of a text file, skipping blank lines and # comments.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the fields of the next meaningful line. It returns io.ErrUnexpectedEOF when the input runs out.
func (lr *lineReader) next() ([]string, error) {
	for lr.scanner.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return strings.Fields(text), nil
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

func (lr *lineReader) wrap(err error, what string) error {
	return errors.Wrapf(err, "line %d: %s", lr.line, what)
}

func (lr *lineReader) readInt(what string) (int, error) {
	fields, err := lr.next()
	if err != nil {
		return 0, lr.wrap(err, what)
	}
	if len(fields) != 1 {
		return 0, lr.wrap(errors.Errorf("expected a single integer, got %d values", len(fields)), what)
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, lr.wrap(err, what)
	}
	return v, nil
}

func (lr *lineReader) readFloats(count int, what string) ([]float64, error) {
	fields, err := lr.next()
	if err != nil {
		return nil, lr.wrap(err, what)
	}
	if len(fields) != count {
		return nil, lr.wrap(errors.Errorf("expected %d values, got %d", count, len(fields)), what)
	}
	vals := make([]float64, 0, count)
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, lr.wrap(err, what)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (lr *lineReader) readConfiguration(joints int, what string) (referenceframe.Configuration, error) {
	vals, err := lr.readFloats(2*joints, what)
	if err != nil {
		return referenceframe.Configuration{}, err
	}
	return referenceframe.NewConfigurationFromFloats(vals)
}

// ReadProblem reads a problem from the given file.
func ReadProblem(filePath string) (*motionplan.Problem, error) {
	//nolint:gosec
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)
	p, err := ParseProblem(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read problem %q", filePath)
	}
	return p, nil
}

// ParseProblem reads a problem: the joint count, the start and goal configurations, the obstacle count and one
// line of four corners per obstacle. The workspace is the unit square and boom lengths come from the start.
func ParseProblem(r io.Reader) (*motionplan.Problem, error) {
	lr := newLineReader(r)

	joints, err := lr.readInt("joint count")
	if err != nil {
		return nil, err
	}
	if joints < 1 {
		return nil, lr.wrap(errors.Errorf("joint count must be positive, got %d", joints), "joint count")
	}
	start, err := lr.readConfiguration(joints, "start configuration")
	if err != nil {
		return nil, err
	}
	goal, err := lr.readConfiguration(joints, "goal configuration")
	if err != nil {
		return nil, err
	}

	count, err := lr.readInt("obstacle count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, lr.wrap(errors.Errorf("obstacle count can't be negative, got %d", count), "obstacle count")
	}
	obstacles := make([]*referenceframe.Obstacle, 0, count)
	for i := 0; i < count; i++ {
		what := "obstacle " + strconv.Itoa(i)
		vals, err := lr.readFloats(8, what)
		if err != nil {
			return nil, err
		}
		corners := make([]r2.Point, 0, 4)
		for j := 0; j < len(vals); j += 2 {
			corners = append(corners, r2.Point{X: vals[j], Y: vals[j+1]})
		}
		rect, err := spatialmath.NewRectFromCorners(corners...)
		if err != nil {
			return nil, lr.wrap(err, what)
		}
		obstacles = append(obstacles, referenceframe.NewObstacle(rect))
	}

	return motionplan.NewProblem(start, goal, obstacles), nil
}
