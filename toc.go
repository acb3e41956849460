package specbook

import "fmt"

// Width of the page-number column in a TOC line, millimeters.
const tocNumberWidth = 14.0

// Indent for level-2 TOC entries, millimeters.
const tocIndent = 6.0

// drawTOC resolves the table-of-contents placeholder. The engine walks
// the whole node sequence for level 1 and 2 headings and draws one line
// per entry. Entries whose heading is already on an earlier page get
// their real page number and link target immediately; entries whose
// heading is still to come get an internal link and a page-number alias
// that noteHeading backfills when the heading is drawn. This is the one
// deferred computation in the pipeline.
func (r *renderer) drawTOC(t *TOC) {
	title := r.style(StyleTOCTitle)
	r.setFont(title, RunStyle{})
	r.pdf.MultiCell(0, r.lineHeight(title), r.tr(t.Title), "", "L", false)
	if title.SpaceAfter > 0 {
		r.pdf.Ln(title.SpaceAfter)
	}

	for j, n := range r.doc.Nodes {
		h, ok := n.(*Heading)
		if !ok || h.Level > 2 {
			continue
		}
		r.tocLine(j, h)
	}
	r.fresh = false
}

// tocLine draws one TOC entry: optional indent, the heading text with a
// dot leader, and the page-number column. Both cells carry the internal
// link.
func (r *renderer) tocLine(j int, h *Heading) {
	st := r.style(StyleTOC1)
	indent := 0.0
	if h.Level == 2 {
		st = r.style(StyleTOC2)
		indent = tocIndent
	}
	if st.SpaceBefore > 0 {
		r.pdf.Ln(st.SpaceBefore)
	}
	r.setFont(st, RunStyle{})
	lh := r.lineHeight(st)

	link := r.pdf.AddLink()
	var page string
	if pos, ok := r.drawn[j]; ok {
		page = fmt.Sprintf("%d", pos.page)
		r.pdf.SetLink(link, pos.y, pos.page)
	} else {
		page = fmt.Sprintf("{sp%d}", j)
		r.pending[j] = tocRef{link: link, alias: page}
	}

	if indent > 0 {
		r.pdf.CellFormat(indent, lh, "", "", 0, "L", false, 0, "")
	}
	avail := r.cfg.ContentWidth() - indent - tocNumberWidth
	r.pdf.CellFormat(avail, lh, r.leadered(h.Text, avail), "", 0, "L", false, link, "")
	r.pdf.CellFormat(tocNumberWidth, lh, page, "", 1, "L", false, link, "")
}

// leadered pads a TOC label with a dot leader up to the available width.
// The text is CP1252-translated here so measurement matches the drawn
// bytes; callers must not translate it again.
func (r *renderer) leadered(text string, avail float64) string {
	label := r.tr(text)
	if r.pdf.GetStringWidth(label) >= avail-4 {
		return label
	}
	label += " "
	for r.pdf.GetStringWidth(label+" .") < avail-2 {
		label += " ."
	}
	return label
}
