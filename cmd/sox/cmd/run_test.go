package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/sox/internal/config"
)

// captureStdout redirects os.Stdout for the duration of fn and returns what
// was written, mirroring the teacher's run_unit_test.go os.Pipe technique.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestRunEvalPrintsResult(t *testing.T) {
	oldOpts := runOpts
	defer func() { runOpts = oldOpts }()
	runOpts = config.RunOptions{Source: config.Source{Eval: "print 1 + 2;"}}

	out := captureStdout(t, func() {
		if err := runRun(nil, nil); err != nil {
			t.Fatalf("runRun: %v", err)
		}
	})
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("got %q", out)
	}
}

func TestRunEvalReportsParseErrors(t *testing.T) {
	oldOpts := runOpts
	defer func() { runOpts = oldOpts }()
	runOpts = config.RunOptions{Source: config.Source{Eval: "let = ;"}}

	if err := runRun(nil, nil); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRunEvalReportsRuntimeErrors(t *testing.T) {
	oldOpts := runOpts
	defer func() { runOpts = oldOpts }()
	runOpts = config.RunOptions{Source: config.Source{Eval: "print undefined_name;"}}

	if err := runRun(nil, nil); err == nil {
		t.Fatal("expected a runtime error")
	}
}
