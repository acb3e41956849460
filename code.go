package specbook

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Code builds one monospace paragraph per line of src, preserving blank
// lines as empty-run paragraphs so indentation and vertical spacing
// survive into the rendered page. When lang names a known lexer the lines
// carry syntax-colored runs in the configured highlight theme; an empty or
// unknown lang produces plain monospace text. A single trailing newline is
// not a line of its own.
func (b *Builder) Code(lang, src string) Seq {
	text := normalizeCode(src)

	if lang != "" {
		if lines, ok := b.highlight(lang, text); ok {
			var seq Seq
			for _, runs := range lines {
				seq.Append(&Paragraph{Runs: runs, Style: StyleCode, Preserve: true})
			}
			return seq
		}
	}

	var seq Seq
	for _, line := range strings.Split(text, "\n") {
		p := &Paragraph{Style: StyleCode, Preserve: true}
		if line != "" {
			p.Runs = []Run{{Text: line}}
		}
		seq.Append(p)
	}
	return seq
}

// normalizeCode unifies line endings, expands tabs to four spaces and
// drops a single trailing newline.
func normalizeCode(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\t", "    ")
	return strings.TrimSuffix(src, "\n")
}

// highlight tokenises text with the lexer registered for lang and folds
// the token stream into per-line runs. It reports false when no lexer is
// registered or tokenising fails, leaving the caller on the plain path.
func (b *Builder) highlight(lang, text string) ([][]Run, bool) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, false
	}

	theme := styles.Get(b.cfg.Styles.CodeTheme)
	lines := [][]Run{nil}
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := theme.Get(tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			n := len(lines) - 1
			lines[n] = append(lines[n], tokenRun(part, entry))
		}
	}
	return lines, true
}

// tokenRun converts one highlighted token segment into a monospace run.
// The paragraph's Code style supplies the font family; only weight, slant
// and color come from the theme.
func tokenRun(text string, entry chroma.StyleEntry) Run {
	r := Run{Text: text, Style: RunStyle{
		Bold:   entry.Bold == chroma.Yes,
		Italic: entry.Italic == chroma.Yes,
	}}
	if entry.Colour.IsSet() {
		r.Style.Color = &Color{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue()}
	}
	return r
}
