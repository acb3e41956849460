package specbook

import (
	"fmt"
	"math"
)

// Provider produces one chapter's worth of content nodes. Providers are
// pure functions over the builder they receive: no side effects, no state
// shared between chapters. Their position in the provider list alone
// determines where their output lands in the document.
type Provider func(b *Builder) Seq

// Builder constructs well-formed content nodes bound to a document
// configuration. Constructors validate structural invariants eagerly and
// panic on violation so the failing chapter is identifiable by its call
// site; they never panic for well-formed input. The panic value wraps one
// of the construction sentinel errors.
type Builder struct {
	cfg *Config
}

// NewBuilder returns a Builder bound to cfg. A nil cfg means
// DefaultConfig. The configuration must validate and is treated as
// immutable for the life of the builder.
func NewBuilder(cfg *Config) (*Builder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg}, nil
}

// Config returns the configuration the builder is bound to.
func (b *Builder) Config() *Config { return b.cfg }

// Seq builds a sequence from leaf nodes, in order. Chapters typically
// return one of these, extending it with sub-builder output as needed.
func (b *Builder) Seq(nodes ...Node) Seq {
	return FromNodes(nodes)
}

// PartTitle builds the heading that opens a top-level part grouping
// several chapters. It always forces a page break before itself.
func (b *Builder) PartTitle(text string) *Heading {
	return &Heading{Text: text, Level: 1, Style: StylePart, PageBreakBefore: true}
}

// ChapterTitle builds a level-1 chapter heading. Every chapter starts on a
// fresh page: the returned heading carries a forced page break so callers
// cannot forget to insert one.
func (b *Builder) ChapterTitle(text string) *Heading {
	return &Heading{Text: text, Level: 1, Style: HeadingStyle(1), PageBreakBefore: true}
}

// SectionTitle builds a level-2 section heading. Headings at levels 1 and
// 2 are the ones the table of contents discovers.
func (b *Builder) SectionTitle(text string) *Heading {
	return &Heading{Text: text, Level: 2, Style: HeadingStyle(2)}
}

// H builds a heading at an arbitrary level (1..6) using the matching style
// table entry. It panics when level is out of range.
func (b *Builder) H(level int, text string) *Heading {
	if level < 1 || level > 6 {
		panic(fmt.Errorf("%w: %d", ErrHeadingLevel, level))
	}
	return &Heading{Text: text, Level: level, Style: HeadingStyle(level)}
}

// Para builds a body paragraph from styled runs.
func (b *Builder) Para(runs ...Run) *Paragraph {
	return &Paragraph{Runs: runs, Style: StyleBody}
}

// ParaAligned builds a body paragraph with an explicit alignment.
func (b *Builder) ParaAligned(align Alignment, runs ...Run) *Paragraph {
	return &Paragraph{Runs: runs, Style: StyleBody, Align: align}
}

// Bullet builds a bulleted body paragraph. The bullet glyph and hanging
// indent come from the Numbering configuration at render time.
func (b *Builder) Bullet(runs ...Run) *Paragraph {
	return &Paragraph{Runs: runs, Style: StyleBody, Bullet: true}
}

// Table builds a table node from column headers, explicit column widths in
// millimeters, and rows of cell strings. It panics when the width count or
// any row's cell count does not match the header count, when a width is
// not positive, or when the widths do not sum to the content width of the
// bound configuration.
func (b *Builder) Table(headers []string, widths []float64, rows [][]string) *Table {
	if len(headers) == 0 {
		panic(fmt.Errorf("%w: table needs at least one column", ErrTableShape))
	}
	if len(widths) != len(headers) {
		panic(fmt.Errorf("%w: %d widths for %d columns", ErrTableShape, len(widths), len(headers)))
	}
	var sum float64
	for i, w := range widths {
		if w <= 0 {
			panic(fmt.Errorf("%w: column %d has non-positive width %.2f", ErrTableShape, i, w))
		}
		sum += w
	}
	if want := b.cfg.ContentWidth(); math.Abs(sum-want) > widthTolerance {
		panic(fmt.Errorf("%w: widths sum to %.2f mm, content width is %.2f mm", ErrTableWidths, sum, want))
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			panic(fmt.Errorf("%w: row %d has %d cells, want %d", ErrTableShape, i, len(row), len(headers)))
		}
	}
	return &Table{Headers: headers, Rows: rows, Widths: widths}
}

// EvenWidths splits the content width of the bound configuration into n
// equal columns. Convenience for tables without bespoke column sizing.
func (b *Builder) EvenWidths(n int) []float64 {
	if n <= 0 {
		panic(fmt.Errorf("%w: cannot split content width into %d columns", ErrTableShape, n))
	}
	widths := make([]float64, n)
	each := b.cfg.ContentWidth() / float64(n)
	for i := range widths {
		widths[i] = each
	}
	return widths
}

// PageBreak builds an explicit page break marker.
func (b *Builder) PageBreak() *PageBreak { return &PageBreak{} }

// Spacer builds a vertical whitespace marker. Its height is the layout's
// spacer gap, applied at render time.
func (b *Builder) Spacer() *Spacer { return &Spacer{} }

// TOC builds the table-of-contents placeholder. The listing itself is
// resolved at render time from the final node sequence; a document may
// contain at most one placeholder and Assemble rejects duplicates. An
// empty title defaults to "Table of Contents".
func (b *Builder) TOC(title string) *TOC {
	if title == "" {
		title = "Table of Contents"
	}
	return &TOC{Title: title}
}

// Text returns an unstyled run inheriting the paragraph style.
func Text(s string) Run { return Run{Text: s} }

// Bold returns a bold run.
func Bold(s string) Run { return Run{Text: s, Style: RunStyle{Bold: true}} }

// Italic returns an italic run.
func Italic(s string) Run { return Run{Text: s, Style: RunStyle{Italic: true}} }

// Mono returns a monospace run.
func Mono(s string) Run { return Run{Text: s, Style: RunStyle{Family: "Courier"}} }

// Styled returns a run with explicit style attributes.
func Styled(s string, style RunStyle) Run { return Run{Text: s, Style: style} }
