package specbook

import "strings"

// Padding inside table cells, millimeters.
const cellPad = 1.5

// drawTable renders a table as a bordered grid: a filled header row,
// repeated after page splits, then one row per data row with the height of
// its tallest wrapped cell. Column widths come from the node; the engine
// never recomputes them.
func (r *renderer) drawTable(t *Table) {
	body := r.style(StyleBody)
	lh := r.lineHeight(body)

	r.pdf.SetDrawColor(120, 120, 120)
	r.ensureRoom(2*(lh+2*cellPad) + 2)
	r.drawTableHeader(t, lh)

	for _, row := range t.Rows {
		r.drawTableRow(t, row, lh)
	}
	r.pdf.Ln(3)
	r.fresh = false
}

// ensureRoom starts a new page when fewer than need millimeters remain
// above the bottom margin.
func (r *renderer) ensureRoom(need float64) {
	_, pageH := r.pdf.GetPageSize()
	if r.pdf.GetY()+need > pageH-r.cfg.effectiveMargin() {
		r.addPage()
	}
}

func (r *renderer) drawTableHeader(t *Table, lh float64) {
	st := r.style(StyleBody)
	r.setFont(st, RunStyle{Bold: true})
	r.pdf.SetFillColor(225, 229, 236)
	for c, head := range t.Headers {
		r.pdf.CellFormat(t.Widths[c], lh+2*cellPad, r.tr(head), "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *renderer) drawTableRow(t *Table, row []string, lh float64) {
	st := r.style(StyleBody)
	r.setFont(st, RunStyle{})

	lines := make([][]string, len(row))
	maxLines := 1
	for c, cell := range row {
		lines[c] = r.wrapText(cell, t.Widths[c]-2*cellPad)
		if len(lines[c]) > maxLines {
			maxLines = len(lines[c])
		}
	}
	rowH := float64(maxLines)*lh + 2*cellPad

	_, pageH := r.pdf.GetPageSize()
	if r.pdf.GetY()+rowH > pageH-r.cfg.effectiveMargin() {
		r.addPage()
		r.drawTableHeader(t, lh)
		r.setFont(st, RunStyle{})
	}

	x := r.cfg.effectiveMargin()
	y := r.pdf.GetY()
	for c := range row {
		r.pdf.Rect(x, y, t.Widths[c], rowH, "D")
		for li, line := range lines[c] {
			r.pdf.SetXY(x+cellPad, y+cellPad+float64(li)*lh)
			r.pdf.CellFormat(t.Widths[c]-2*cellPad, lh, line, "", 0, "L", false, 0, "")
		}
		x += t.Widths[c]
	}
	r.pdf.SetXY(r.cfg.effectiveMargin(), y+rowH)
}

// wrapText greedily wraps text into lines no wider than w using the
// current font metrics. Text is CP1252-translated before measuring so
// widths match the drawn bytes; callers draw the returned lines as is.
func (r *renderer) wrapText(text string, w float64) []string {
	words := strings.Fields(r.tr(text))
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if r.pdf.GetStringWidth(line+" "+word) <= w {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}
