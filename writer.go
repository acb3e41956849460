package specbook

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Permissions for created output directories and files.
const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Writer serializes an assembled document and persists the artifact.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer { return &Writer{} }

// Write renders doc into a PDF buffer and writes it to path, creating any
// missing parent directories. Serialization is the pipeline's one
// asynchronous operation: the engine runs in its own goroutine and the
// result is awaited exactly once, so a canceled context abandons the
// render instead of blocking on it. Returns the page count and the number
// of bytes written.
func (w *Writer) Write(ctx context.Context, doc *Document, path string) (pages int, size int64, err error) {
	if path == "" {
		return 0, 0, fmt.Errorf("%w: empty output path", ErrWriteOutput)
	}

	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	default:
	}

	type result struct {
		buf   *bytes.Buffer
		pages int
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		buf, pages, err := render(doc)
		resultCh <- result{buf: buf, pages: pages, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	case res = <-resultCh:
	}
	if res.err != nil {
		return 0, 0, res.err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, res.buf.Bytes(), filePerm); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return res.pages, int64(res.buf.Len()), nil
}

// FormatSize renders a byte count as megabytes for progress reporting.
func FormatSize(n int64) string {
	return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
}
