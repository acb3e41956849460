package specbook

// Notes:
// - Writer: directory creation, the single awaited render, and context
//   cancellation before the await point. Cancellation *during* a render is
//   timing-dependent, so we pin the observable contract (ctx.Err comes
//   back) with an already-canceled context.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testDocument(t *testing.T) *Document {
	t.Helper()

	b := testBuilder(t)
	doc, err := Assemble(nil, []Node{b.ChapterTitle("One"), b.Para(Text("x"))})
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestWriter_Write - renders and persists, creating parent directories
// ---------------------------------------------------------------------------

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	doc := testDocument(t)
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.pdf")

	pages, size, err := NewWriter().Write(context.Background(), doc, path)
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() != size {
		t.Errorf("reported size %d, file size %d", size, info.Size())
	}

	// PDF magic bytes.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Errorf("output does not start with PDF header: %q", data[:8])
	}
}

// ---------------------------------------------------------------------------
// TestWriter_Write_Errors - empty path, canceled context
// ---------------------------------------------------------------------------

func TestWriter_Write_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, _, err := NewWriter().Write(context.Background(), testDocument(t), "")
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("error = %v, want %v", err, ErrWriteOutput)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.pdf")
		_, _, err := NewWriter().Write(ctx, testDocument(t), path)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Error("canceled write still produced an output file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestFormatSize - human-readable megabytes
// ---------------------------------------------------------------------------

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "zero", n: 0, want: "0.00 MB"},
		{name: "half a megabyte", n: 512 * 1024, want: "0.50 MB"},
		{name: "exactly one", n: 1024 * 1024, want: "1.00 MB"},
		{name: "rounds to two decimals", n: 1234567, want: "1.18 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatSize(tt.n); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
