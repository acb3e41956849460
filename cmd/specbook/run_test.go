package main

// Notes:
// - run() drives the real pipeline end to end: the PDF engine is pure Go,
//   so these tests build the actual document into a temp dir and assert on
//   the reported lines and the written artifact.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRun_BuildsDocument - full build with reporting
// ---------------------------------------------------------------------------

func TestRun_BuildsDocument(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "nested", "spec.pdf")
	flags := &buildFlags{output: out}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), flags, &envConfig{}, &stdout, &stderr); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}

	report := stdout.String()
	if !strings.Contains(report, "Flattened ") || !strings.Contains(report, "content nodes") {
		t.Errorf("missing node count line in output:\n%s", report)
	}
	if !strings.Contains(report, out) || !strings.Contains(report, "MB") {
		t.Errorf("missing path/size line in output:\n%s", report)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Quiet - quiet mode suppresses non-error output
// ---------------------------------------------------------------------------

func TestRun_Quiet(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "spec.pdf")
	flags := &buildFlags{output: out, common: commonFlags{quiet: true}}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), flags, &envConfig{}, &stdout, &stderr); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run produced output:\n%s", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestRun_Appendix - extra Markdown chapters append after the built-ins
// ---------------------------------------------------------------------------

func TestRun_Appendix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	appendix := filepath.Join(dir, "notes.md")
	src := "# Appendix B\n\nExtra *operational* notes.\n"
	if err := os.WriteFile(appendix, []byte(src), 0o644); err != nil {
		t.Fatalf("writing appendix: %v", err)
	}

	out := filepath.Join(dir, "spec.pdf")
	base := &buildFlags{output: out, common: commonFlags{quiet: true}}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), base, &envConfig{}, &stdout, &stderr); err != nil {
		t.Fatalf("baseline run: %v", err)
	}
	baseInfo, err := os.Stat(out)
	if err != nil {
		t.Fatalf("baseline output missing: %v", err)
	}

	outWith := filepath.Join(dir, "spec-appendix.pdf")
	withFlags := &buildFlags{output: outWith, appendixes: []string{appendix}, common: commonFlags{quiet: true}}
	if err := run(context.Background(), withFlags, &envConfig{}, &stdout, &stderr); err != nil {
		t.Fatalf("run() with appendix: %v", err)
	}
	withInfo, err := os.Stat(outWith)
	if err != nil {
		t.Fatalf("appendix output missing: %v", err)
	}

	if withInfo.Size() <= baseInfo.Size() {
		t.Errorf("appendix did not grow the document: %d <= %d bytes", withInfo.Size(), baseInfo.Size())
	}
}

// ---------------------------------------------------------------------------
// TestRun_Errors - missing appendix, unsupported markdown
// ---------------------------------------------------------------------------

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing appendix file", func(t *testing.T) {
		t.Parallel()

		flags := &buildFlags{
			output:     filepath.Join(t.TempDir(), "spec.pdf"),
			appendixes: []string{"no/such/file.md"},
		}
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), flags, &envConfig{}, &stdout, &stderr)
		if !errors.Is(err, ErrReadAppendix) {
			t.Errorf("error = %v, want %v", err, ErrReadAppendix)
		}
	})

	t.Run("appendix with unsupported construct", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		appendix := filepath.Join(dir, "bad.md")
		if err := os.WriteFile(appendix, []byte("![img](x.png)\n"), 0o644); err != nil {
			t.Fatalf("writing appendix: %v", err)
		}

		flags := &buildFlags{
			output:     filepath.Join(dir, "spec.pdf"),
			appendixes: []string{appendix},
		}
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), flags, &envConfig{}, &stdout, &stderr)
		if err == nil {
			t.Fatal("expected error for unsupported markdown, got nil")
		}
		if !strings.Contains(err.Error(), "bad.md") {
			t.Errorf("error does not name the failing file: %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		flags := &buildFlags{output: filepath.Join(t.TempDir(), "spec.pdf")}
		var stdout, stderr bytes.Buffer
		err := run(ctx, flags, &envConfig{}, &stdout, &stderr)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
