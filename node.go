package specbook

// Kind discriminates the content node variants.
type Kind int

// Content node kinds. The set is closed: Node has an unexported marker
// method, so no variant can be added outside this package.
const (
	KindHeading Kind = iota
	KindParagraph
	KindTable
	KindPageBreak
	KindSpacer
	KindTOC
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindPageBreak:
		return "pagebreak"
	case KindSpacer:
		return "spacer"
	case KindTOC:
		return "toc"
	default:
		return "unknown"
	}
}

// Node is a single document content element. Implementations are restricted
// to this package; chapters obtain nodes through Builder constructors, which
// validate structural invariants eagerly.
type Node interface {
	Kind() Kind
	isNode() // restricts implementations to this package
}

// Alignment controls horizontal paragraph alignment.
type Alignment string

// Paragraph alignments, matching the rendering engine's alignment codes.
const (
	AlignLeft    Alignment = "L"
	AlignCenter  Alignment = "C"
	AlignRight   Alignment = "R"
	AlignJustify Alignment = "J"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RunStyle holds the style attributes of a single text run.
// The zero value means "inherit from the paragraph style".
type RunStyle struct {
	Bold   bool
	Italic bool
	Family string  // font family; "" = paragraph style family
	Size   float64 // points; 0 = paragraph style size
	Color  *Color  // nil = paragraph style color
}

// Run is the atomic styled-text unit. Paragraphs are sequences of runs so a
// single line can mix styles. Runs are not standalone content nodes; they
// exist only inside a Paragraph.
type Run struct {
	Text  string
	Style RunStyle
}

// Heading is a document heading. Levels 1-2 are discovered by the table of
// contents resolver at render time. PageBreakBefore forces a page break
// immediately before the heading unless the current page is still empty.
type Heading struct {
	Text            string
	Level           int    // 1..6
	Style           string // style table entry, e.g. "Heading1" or "Part"
	PageBreakBefore bool
}

func (*Heading) Kind() Kind { return KindHeading }
func (*Heading) isNode()    {}

// Paragraph is an ordered list of text runs with optional paragraph-level
// alignment. Bullet paragraphs render with the configured numbering glyph
// and hanging indent. Preserve keeps interior whitespace verbatim; it is set
// by the code block constructor so indentation survives rendering.
type Paragraph struct {
	Runs     []Run
	Style    string // style table entry, e.g. "Body" or "Code"
	Align    Alignment
	Bullet   bool
	Preserve bool
}

func (*Paragraph) Kind() Kind { return KindParagraph }
func (*Paragraph) isNode()    {}

// Table is a grid of cell strings under a header row. Widths are explicit
// column widths in millimeters; the constructor guarantees that every row
// has exactly len(Headers) cells and that the widths sum to the content
// width of the page.
type Table struct {
	Headers []string
	Rows    [][]string
	Widths  []float64
}

func (*Table) Kind() Kind { return KindTable }
func (*Table) isNode()    {}

// PageBreak forces a page transition. Adjacent break markers merge at render
// time: a break on a still-empty page is a no-op, so a PageBreak followed by
// a chapter heading never produces a blank page.
type PageBreak struct{}

func (*PageBreak) Kind() Kind { return KindPageBreak }
func (*PageBreak) isNode()    {}

// Spacer inserts fixed vertical whitespace. It carries no payload; the gap
// height comes from the document layout configuration.
type Spacer struct{}

func (*Spacer) Kind() Kind { return KindSpacer }
func (*Spacer) isNode()    {}

// TOC marks where the table of contents is rendered. The listing itself is
// resolved by the rendering engine, which walks the final node sequence and
// collects level 1-2 headings with hyperlinks and page numbers. A document
// may contain at most one TOC node.
type TOC struct {
	Title string
}

func (*TOC) Kind() Kind { return KindTOC }
func (*TOC) isNode()    {}
