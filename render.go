package specbook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Conversion factor between font points and millimeters.
const ptToMM = 25.4 / 72

// Headings up to this level become PDF outline bookmarks.
const bookmarkDepth = 3

// renderer drives the PDF engine over an assembled document. It owns the
// one piece of genuinely deferred work in the pipeline: table-of-contents
// entries reference pages that are not known until the target heading is
// drawn, so entries are backfilled through link and alias registration.
type renderer struct {
	doc   *Document
	cfg   *Config
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	fresh bool // nothing drawn on the current page yet

	drawn   map[int]headingPos // node index -> where the heading landed
	pending map[int]tocRef     // node index -> TOC entry awaiting the heading

	bmLevel int // last emitted bookmark level
}

// headingPos records where a heading was drawn.
type headingPos struct {
	page int
	y    float64
}

// tocRef is a TOC line drawn before its heading: an allocated internal
// link and a page-number alias, both resolved when the heading is drawn.
type tocRef struct {
	link  int
	alias string
}

// render serializes an assembled document into an in-memory PDF buffer
// and reports the page count.
func render(doc *Document) (*bytes.Buffer, int, error) {
	r := newRenderer(doc)
	if err := r.run(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRender, err)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return &buf, r.pdf.PageCount(), nil
}

func newRenderer(doc *Document) *renderer {
	cfg := doc.Config
	pdf := gofpdf.New(orientationCode(cfg), "mm", sizeCode(cfg), "")

	m := cfg.effectiveMargin()
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(true, m)
	pdf.AliasNbPages("")

	setMetadata(pdf, cfg)

	r := &renderer{
		doc:     doc,
		cfg:     cfg,
		pdf:     pdf,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
		drawn:   make(map[int]headingPos),
		pending: make(map[int]tocRef),
		bmLevel: -1,
	}

	pdf.SetHeaderFunc(func() {
		if !cfg.Header.Enabled {
			return
		}
		y := m - 12
		if y < 4 {
			y = 4
		}
		pdf.SetY(y)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, r.tr(cfg.headerText()), "", 0, "R", false, 0, "")
		pdf.SetY(m)
	})

	pdf.SetFooterFunc(func() {
		if !cfg.Footer.Enabled {
			return
		}
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		label := cfg.Footer.Text
		if cfg.Footer.ShowPageNumber {
			page := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
			if label == "" {
				label = page
			} else {
				label = label + "  ·  " + page
			}
		}
		pdf.CellFormat(0, 10, r.tr(label), "", 0, "C", false, 0, "")
	})

	return r
}

func setMetadata(pdf *gofpdf.Fpdf, cfg *Config) {
	if cfg.Document.Title != "" {
		pdf.SetTitle(cfg.Document.Title, true)
	}
	if cfg.Document.Author != "" {
		pdf.SetAuthor(cfg.Document.Author, true)
	}
	if cfg.Document.Subject != "" {
		pdf.SetSubject(cfg.Document.Subject, true)
	}
	pdf.SetCreator("specbook", true)
}

func (r *renderer) run() error {
	r.addPage()
	for i, n := range r.doc.Nodes {
		if err := r.draw(i, n); err != nil {
			return err
		}
	}
	if r.pdf.Err() {
		return r.pdf.Error()
	}
	return nil
}

func (r *renderer) draw(i int, n Node) error {
	switch n := n.(type) {
	case *Heading:
		r.drawHeading(i, n)
	case *Paragraph:
		r.drawParagraph(n)
	case *Table:
		r.drawTable(n)
	case *PageBreak:
		r.pageBreak()
	case *Spacer:
		r.spacer()
	case *TOC:
		r.drawTOC(n)
	default:
		return fmt.Errorf("unrecognized node %T at %d", n, i)
	}
	return nil
}

// pageBreak starts a new page unless the current one is still blank, so
// coinciding break markers (an explicit PageBreak next to a chapter
// heading's forced break) produce one page boundary instead of an empty
// page.
func (r *renderer) pageBreak() {
	if r.fresh {
		return
	}
	r.addPage()
}

func (r *renderer) addPage() {
	r.pdf.AddPage()
	r.fresh = true
}

// spacer draws vertical whitespace. It leaves the fresh flag alone, so a
// spacer between two break markers cannot reintroduce a blank page.
func (r *renderer) spacer() {
	r.pdf.Ln(r.cfg.effectiveSpacerGap())
}

func (r *renderer) drawHeading(i int, h *Heading) {
	if h.PageBreakBefore {
		r.pageBreak()
	}

	st := r.style(h.Style)
	if st.SpaceBefore > 0 {
		r.pdf.Ln(st.SpaceBefore)
	}
	r.setFont(st, RunStyle{})

	r.noteHeading(i)
	if h.Level <= bookmarkDepth {
		r.bookmark(h)
	}

	r.pdf.MultiCell(0, r.lineHeight(st), r.tr(h.Text), "", alignString(st.Align, AlignLeft), false)
	if st.SpaceAfter > 0 {
		r.pdf.Ln(st.SpaceAfter)
	}
	r.fresh = false
}

// bookmark emits a PDF outline entry. The outline tree rejects level
// jumps, so a heading deeper than its predecessor clamps to one level
// down.
func (r *renderer) bookmark(h *Heading) {
	level := h.Level - 1
	if level > r.bmLevel+1 {
		level = r.bmLevel + 1
	}
	r.pdf.Bookmark(r.tr(h.Text), level, -1)
	r.bmLevel = level
}

func (r *renderer) drawParagraph(p *Paragraph) {
	st := r.style(p.Style)
	if st.SpaceBefore > 0 {
		r.pdf.Ln(st.SpaceBefore)
	}
	lh := r.lineHeight(st)

	indent := 0.0
	if p.Bullet {
		indent = r.cfg.Numbering.Indent
		if indent <= 0 {
			indent = 6
		}
		r.setFont(st, RunStyle{})
		glyph := r.cfg.Numbering.Bullet
		if glyph == "" {
			glyph = "•"
		}
		r.pdf.CellFormat(indent, lh, r.tr(glyph), "", 0, "L", false, 0, "")
		r.pdf.SetLeftMargin(r.cfg.effectiveMargin() + indent)
	}

	switch {
	case len(p.Runs) == 0:
		r.pdf.Ln(lh)
	case uniformRuns(p.Runs) && effectiveAlign(p.Align, st.Align) != AlignLeft:
		r.setFont(st, RunStyle{})
		r.pdf.MultiCell(0, lh, r.tr(joinRuns(p.Runs)), "", alignString(p.Align, st.Align), false)
	case len(p.Runs) == 1 && effectiveAlign(p.Align, st.Align) != AlignLeft:
		r.setFont(st, p.Runs[0].Style)
		r.pdf.MultiCell(0, r.runLineHeight(st, p.Runs[0].Style, lh), r.tr(p.Runs[0].Text), "", alignString(p.Align, st.Align), false)
	default:
		for _, run := range p.Runs {
			r.setFont(st, run.Style)
			r.pdf.Write(lh, r.tr(run.Text))
		}
		r.pdf.Ln(lh)
	}

	if p.Bullet {
		r.pdf.SetLeftMargin(r.cfg.effectiveMargin())
		r.pdf.SetX(r.cfg.effectiveMargin())
	}
	if st.SpaceAfter > 0 {
		r.pdf.Ln(st.SpaceAfter)
	}
	r.fresh = false
}

// noteHeading records where a heading landed and backfills any TOC entry
// that was drawn before it: the entry's internal link gets its target and
// the page-number alias gets its replacement.
func (r *renderer) noteHeading(i int) {
	pos := headingPos{page: r.pdf.PageNo()}
	_, pos.y = r.pdf.GetXY()
	r.drawn[i] = pos

	ref, ok := r.pending[i]
	if !ok {
		return
	}
	delete(r.pending, i)
	r.pdf.SetLink(ref.link, -1, -1)
	r.pdf.RegisterAlias(ref.alias, fmt.Sprintf("%d", pos.page))
}

// style resolves a style table entry, backfilling the font defaults the
// engine needs. Assemble has already verified the reference exists.
func (r *renderer) style(name string) TextStyle {
	st, ok := r.cfg.Styles.Get(name)
	if !ok {
		st, _ = r.cfg.Styles.Get(StyleBody)
	}
	if st.Family == "" {
		st.Family = "Times"
	}
	if st.Size == 0 {
		st.Size = 11
	}
	return st
}

// setFont applies a style table entry merged with run-level overrides.
func (r *renderer) setFont(st TextStyle, run RunStyle) {
	family := st.Family
	if run.Family != "" {
		family = run.Family
	}
	size := st.Size
	if run.Size > 0 {
		size = run.Size
	}
	color := st.Color
	if run.Color != nil {
		color = *run.Color
	}

	r.pdf.SetFont(family, mergeFontStyle(st.Style, run), size)
	r.pdf.SetTextColor(int(color.R), int(color.G), int(color.B))
}

// mergeFontStyle folds run-level bold/italic into the base style string.
func mergeFontStyle(base string, run RunStyle) string {
	s := base
	if run.Bold && !strings.Contains(s, "B") {
		s += "B"
	}
	if run.Italic && !strings.Contains(s, "I") {
		s += "I"
	}
	return s
}

// runLineHeight widens the line advance when a run-level size override
// outgrows the paragraph style's advance.
func (r *renderer) runLineHeight(st TextStyle, run RunStyle, base float64) float64 {
	if run.Size > 0 && run.Size > st.Size {
		if lh := run.Size * ptToMM * 1.25; lh > base {
			return lh
		}
	}
	return base
}

// lineHeight picks the line advance for a style: an explicit per-style
// value wins, otherwise the layout default, scaled up when the font is too
// large for it.
func (r *renderer) lineHeight(st TextStyle) float64 {
	if st.LineHeight > 0 {
		return st.LineHeight
	}
	if lh := st.Size * ptToMM * 1.25; lh > r.cfg.effectiveLineHeight() {
		return lh
	}
	return r.cfg.effectiveLineHeight()
}

func uniformRuns(runs []Run) bool {
	for _, run := range runs {
		if run.Style != (RunStyle{}) {
			return false
		}
	}
	return true
}

func joinRuns(runs []Run) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

func effectiveAlign(paragraph, style Alignment) Alignment {
	if paragraph != "" {
		return paragraph
	}
	if style != "" {
		return style
	}
	return AlignLeft
}

func alignString(paragraph, style Alignment) string {
	return string(effectiveAlign(paragraph, style))
}

func orientationCode(cfg *Config) string {
	if strings.EqualFold(cfg.effectiveOrientation(), OrientationLandscape) {
		return "L"
	}
	return "P"
}

func sizeCode(cfg *Config) string {
	switch cfg.effectivePageSize() {
	case PageSizeLetter:
		return "Letter"
	case PageSizeLegal:
		return "Legal"
	default:
		return "A4"
	}
}
