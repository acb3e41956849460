package specbook

// Notes:
// - NewBuilder: nil config means defaults; invalid configs are rejected
// - Heading constructors: level/style binding, forced breaks on chapter and
//   part titles
// - Table: eager validation panics carry sentinel errors (shape, widths)
// - Run constructors: style attribute mapping

import (
	"errors"
	"math"
	"testing"
)

// testBuilder returns a builder over the default configuration.
func testBuilder(t *testing.T) *Builder {
	t.Helper()

	b, err := NewBuilder(nil)
	if err != nil {
		t.Fatalf("NewBuilder(nil) unexpected error: %v", err)
	}
	return b
}

// wantPanic runs fn and asserts it panics with an error wrapping wantErr.
func wantPanic(t *testing.T, wantErr error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, wantErr) {
			t.Errorf("panic error = %v, want %v", err, wantErr)
		}
	}()
	fn()
}

// ---------------------------------------------------------------------------
// TestNewBuilder - configuration binding
// ---------------------------------------------------------------------------

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()

		b, err := NewBuilder(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Config() == nil {
			t.Fatal("Config() returned nil")
		}
		if b.Config().Layout.PageSize != PageSizeA4 {
			t.Errorf("default page size = %q, want %q", b.Config().Layout.PageSize, PageSizeA4)
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Layout.PageSize = "tabloid"

		_, err := NewBuilder(cfg)
		if !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("error = %v, want %v", err, ErrInvalidPageSize)
		}
	})

	t.Run("missing style entry is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		delete(cfg.Styles.Entries, StyleBody)

		_, err := NewBuilder(cfg)
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("error = %v, want %v", err, ErrUnknownStyle)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuilder_Headings - level and style binding, forced breaks
// ---------------------------------------------------------------------------

func TestBuilder_Headings(t *testing.T) {
	t.Parallel()

	b := testBuilder(t)

	t.Run("chapter title forces a page break", func(t *testing.T) {
		t.Parallel()

		h := b.ChapterTitle("1. Scope")
		if h.Level != 1 {
			t.Errorf("Level = %d, want 1", h.Level)
		}
		if h.Style != HeadingStyle(1) {
			t.Errorf("Style = %q, want %q", h.Style, HeadingStyle(1))
		}
		if !h.PageBreakBefore {
			t.Error("chapter title must force a page break before itself")
		}
	})

	t.Run("part title forces a page break", func(t *testing.T) {
		t.Parallel()

		h := b.PartTitle("Part I — General")
		if h.Level != 1 || h.Style != StylePart || !h.PageBreakBefore {
			t.Errorf("PartTitle = %+v, want level 1, style %q, break forced", h, StylePart)
		}
	})

	t.Run("section title does not force a break", func(t *testing.T) {
		t.Parallel()

		h := b.SectionTitle("1.1 Definitions")
		if h.Level != 2 || h.Style != HeadingStyle(2) {
			t.Errorf("SectionTitle = %+v, want level 2, style %q", h, HeadingStyle(2))
		}
		if h.PageBreakBefore {
			t.Error("section title must not force a page break")
		}
	})

	t.Run("generic levels bind their style entry", func(t *testing.T) {
		t.Parallel()

		for level := 1; level <= 6; level++ {
			h := b.H(level, "x")
			if h.Level != level || h.Style != HeadingStyle(level) {
				t.Errorf("H(%d) = %+v, want matching level and style", level, h)
			}
		}
	})

	t.Run("out-of-range levels panic", func(t *testing.T) {
		t.Parallel()

		wantPanic(t, ErrHeadingLevel, func() { b.H(0, "x") })
		wantPanic(t, ErrHeadingLevel, func() { b.H(7, "x") })
	})
}

// ---------------------------------------------------------------------------
// TestBuilder_Table - eager structural validation
// ---------------------------------------------------------------------------

func TestBuilder_Table(t *testing.T) {
	t.Parallel()

	b := testBuilder(t)

	t.Run("valid table succeeds", func(t *testing.T) {
		t.Parallel()

		tb := b.Table(
			[]string{"Term", "Meaning"},
			b.EvenWidths(2),
			[][]string{{"Platform", "The clearing platform"}, {"Member", "A clearing member"}},
		)
		if len(tb.Headers) != 2 || len(tb.Rows) != 2 || len(tb.Widths) != 2 {
			t.Errorf("table shape = %d headers, %d rows, %d widths", len(tb.Headers), len(tb.Rows), len(tb.Widths))
		}
	})

	t.Run("row shorter than header panics", func(t *testing.T) {
		t.Parallel()

		wantPanic(t, ErrTableShape, func() {
			b.Table([]string{"A", "B", "C"}, b.EvenWidths(3), [][]string{{"1", "2"}})
		})
	})

	t.Run("width count mismatch panics", func(t *testing.T) {
		t.Parallel()

		wantPanic(t, ErrTableShape, func() {
			b.Table([]string{"A", "B"}, []float64{100}, nil)
		})
	})

	t.Run("widths not summing to content width panic", func(t *testing.T) {
		t.Parallel()

		wantPanic(t, ErrTableWidths, func() {
			b.Table([]string{"A", "B"}, []float64{50, 50}, nil)
		})
	})

	t.Run("non-positive width panics", func(t *testing.T) {
		t.Parallel()

		w := b.Config().ContentWidth()
		wantPanic(t, ErrTableShape, func() {
			b.Table([]string{"A", "B"}, []float64{w, 0}, nil)
		})
	})

	t.Run("zero columns panic", func(t *testing.T) {
		t.Parallel()

		wantPanic(t, ErrTableShape, func() {
			b.Table(nil, nil, nil)
		})
	})
}

// ---------------------------------------------------------------------------
// TestBuilder_EvenWidths - equal split of the content width
// ---------------------------------------------------------------------------

func TestBuilder_EvenWidths(t *testing.T) {
	t.Parallel()

	b := testBuilder(t)

	for _, n := range []int{1, 2, 3, 7} {
		widths := b.EvenWidths(n)
		if len(widths) != n {
			t.Fatalf("EvenWidths(%d) returned %d widths", n, len(widths))
		}
		var sum float64
		for _, w := range widths {
			sum += w
		}
		if math.Abs(sum-b.Config().ContentWidth()) > widthTolerance {
			t.Errorf("EvenWidths(%d) sums to %.4f, want %.4f", n, sum, b.Config().ContentWidth())
		}
	}

	wantPanic(t, ErrTableShape, func() { b.EvenWidths(0) })
}

// ---------------------------------------------------------------------------
// TestBuilder_Paragraphs - body styles, alignment, bullets
// ---------------------------------------------------------------------------

func TestBuilder_Paragraphs(t *testing.T) {
	t.Parallel()

	b := testBuilder(t)

	p := b.Para(Text("alpha"), Bold("beta"))
	if p.Style != StyleBody {
		t.Errorf("Para style = %q, want %q", p.Style, StyleBody)
	}
	if len(p.Runs) != 2 || p.Runs[1].Style.Bold != true {
		t.Errorf("Para runs = %+v", p.Runs)
	}
	if p.Bullet || p.Align != "" {
		t.Errorf("Para sets unexpected flags: %+v", p)
	}

	aligned := b.ParaAligned(AlignCenter, Text("centered"))
	if aligned.Align != AlignCenter {
		t.Errorf("ParaAligned align = %q, want %q", aligned.Align, AlignCenter)
	}

	bullet := b.Bullet(Text("item"))
	if !bullet.Bullet {
		t.Error("Bullet paragraph lost its bullet flag")
	}
}

// ---------------------------------------------------------------------------
// TestRunConstructors - style attribute mapping
// ---------------------------------------------------------------------------

func TestRunConstructors(t *testing.T) {
	t.Parallel()

	if r := Text("x"); r.Text != "x" || r.Style != (RunStyle{}) {
		t.Errorf("Text() = %+v", r)
	}
	if r := Bold("x"); !r.Style.Bold {
		t.Errorf("Bold() = %+v", r)
	}
	if r := Italic("x"); !r.Style.Italic {
		t.Errorf("Italic() = %+v", r)
	}
	if r := Mono("x"); r.Style.Family != "Courier" {
		t.Errorf("Mono() = %+v", r)
	}

	c := &Color{R: 200}
	r := Styled("x", RunStyle{Bold: true, Size: 14, Color: c})
	if !r.Style.Bold || r.Style.Size != 14 || r.Style.Color != c {
		t.Errorf("Styled() = %+v", r)
	}
}

// ---------------------------------------------------------------------------
// TestBuilder_TOC - placeholder construction
// ---------------------------------------------------------------------------

func TestBuilder_TOC(t *testing.T) {
	t.Parallel()

	b := testBuilder(t)

	if toc := b.TOC(""); toc.Title != "Table of Contents" {
		t.Errorf("TOC(\"\") title = %q, want the default", toc.Title)
	}
	if toc := b.TOC("Contents"); toc.Title != "Contents" {
		t.Errorf("TOC title = %q, want %q", toc.Title, "Contents")
	}
}
