package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

const openProblem = `2
0.1 0.1 0.15 0.1
0.3 0.3 0.35 0.3
0
`

func writeProblem(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "problem.txt")
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"asvplan"}, args...))
	return out.String(), errOut.String(), err
}

func TestPlanAndCheck(t *testing.T) {
	dir := t.TempDir()
	problem := writeProblem(t, dir, openProblem)
	solution := filepath.Join(dir, "solution.txt")
	image := filepath.Join(dir, "plan.png")

	out, logs, err := run(t, "plan", "--seed", "3", "--render", image, problem, solution)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "wrote")
	test.That(t, out, test.ShouldContainSubstring, "drew plan")
	test.That(t, logs, test.ShouldContainSubstring, "starting planning attempt 1")
	_, err = os.Stat(image)
	test.That(t, err, test.ShouldBeNil)

	out, _, err = run(t, "check", problem, solution)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "solution is valid")

	out, _, err = run(t, "render", "--out", filepath.Join(dir, "render.png"), "--size", "100", problem, solution)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "drew")
}

func TestCheckRejectsWrongGoal(t *testing.T) {
	dir := t.TempDir()
	problem := writeProblem(t, dir, openProblem)
	solution := filepath.Join(dir, "solution.txt")
	test.That(t, os.WriteFile(solution, []byte("1 0.0005\n0.1 0.1 0.15 0.1\n0.1005 0.1 0.1505 0.1\n"), 0o600), test.ShouldBeNil)

	_, _, err := run(t, "check", problem, solution)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "solution is invalid")
}

func TestPlanErrors(t *testing.T) {
	dir := t.TempDir()
	problem := writeProblem(t, dir, openProblem)

	_, _, err := run(t, "plan", problem)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "plan expects")

	_, _, err = run(t, "plan", "--timeout", "-1", problem, filepath.Join(dir, "solution.txt"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "timeout")

	_, _, err = run(t, "plan", filepath.Join(dir, "missing.txt"), filepath.Join(dir, "solution.txt"))
	test.That(t, err, test.ShouldNotBeNil)

	opts := filepath.Join(dir, "opts.yaml")
	test.That(t, os.WriteFile(opts, []byte("nearest_neighbor: octree\n"), 0o600), test.ShouldBeNil)
	_, _, err = run(t, "plan", "--options", opts, problem, filepath.Join(dir, "solution.txt"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "octree")
}

func TestBench(t *testing.T) {
	dir := t.TempDir()
	problem := writeProblem(t, dir, openProblem)

	out, _, err := run(t, "bench", "--trials", "2", "--seed", "5", problem)
	test.That(t, err, test.ShouldBeNil)
	for _, metric := range []string{"samples", "attempts", "length", "failures"} {
		test.That(t, out, test.ShouldContainSubstring, metric)
	}

	_, _, err = run(t, "bench", "--trials", "0", problem)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBenchResultsString(t *testing.T) {
	results := &benchResults{failures: 1}
	test.That(t, results.String(), test.ShouldContainSubstring, "-")

	results.samples = []float64{10, 20}
	test.That(t, results.String(), test.ShouldContainSubstring, "15.0000")
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	problem := writeProblem(t, dir, openProblem)
	logFile := filepath.Join(dir, "asvplan.log")

	_, _, err := run(t, "--log-file", logFile, "plan", "--seed", "1", problem, filepath.Join(dir, "solution.txt"))
	test.That(t, err, test.ShouldBeNil)
	contents, err := os.ReadFile(logFile)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(contents), test.ShouldContainSubstring, "found path")
}

type brokenPipe struct {
	writes int
}

func (w *brokenPipe) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func TestMessagesIgnoreWriteErrors(t *testing.T) {
	w := &brokenPipe{}
	infof(w, "wrote %d steps", 3)
	warningf(w, "solution has %d steps", 4)
	// prefix and message for each
	test.That(t, w.writes, test.ShouldBeGreaterThanOrEqualTo, 4)
}
