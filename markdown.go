package specbook

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown converts a Markdown document into a chapter provider. The
// mapping targets the closed node set and nothing else: headings become
// Heading nodes (level 1 opens a new page like any chapter title),
// paragraphs become run sequences with bold/italic/code-span styling, GFM
// tables become Table nodes with equal column widths, fenced code becomes
// highlighted code paragraphs, thematic breaks become page breaks and
// list items become bulleted or numbered paragraphs. Unsupported
// constructs (images, raw HTML) fail here, before the provider ever runs,
// rather than dropping content silently.
func Markdown(src string) (Provider, error) {
	probe, err := NewBuilder(nil)
	if err != nil {
		return nil, err
	}
	if _, err := buildMarkdown(probe, src); err != nil {
		return nil, err
	}

	return func(b *Builder) Seq {
		// validated above; the second walk cannot fail
		seq, _ := buildMarkdown(b, src)
		return seq
	}, nil
}

// MustMarkdown is Markdown for embedded sources; it panics on conversion
// errors.
func MustMarkdown(src string) Provider {
	p, err := Markdown(src)
	if err != nil {
		panic(err)
	}
	return p
}

// blockOpts carries block-level context down the walk.
type blockOpts struct {
	italic  bool // inside a blockquote
	bullet  bool // unordered list item
	ordinal int  // >0: ordered list item number
}

func buildMarkdown(b *Builder, src string) (Seq, error) {
	source := []byte(src)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(source))

	var seq Seq
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := appendBlock(&seq, b, n, source, blockOpts{}); err != nil {
			return Seq{}, err
		}
	}
	return seq, nil
}

func appendBlock(seq *Seq, b *Builder, n ast.Node, src []byte, opts blockOpts) error {
	switch n := n.(type) {
	case *ast.Heading:
		seq.Append(markdownHeading(b, n, src))
	case *ast.Paragraph, *ast.TextBlock:
		runs, err := inlineRuns(n, src, RunStyle{Italic: opts.italic})
		if err != nil {
			return err
		}
		seq.Append(markdownParagraph(b, runs, opts))
	case *ast.FencedCodeBlock:
		seq.Extend(b.Code(string(n.Language(src)), blockLines(n, src)))
	case *ast.CodeBlock:
		seq.Extend(b.Code("", blockLines(n, src)))
	case *ast.ThematicBreak:
		seq.Append(b.PageBreak())
	case *ast.List:
		ordinal := 0
		if n.IsOrdered() {
			ordinal = n.Start
			if ordinal == 0 {
				ordinal = 1
			}
		}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			itemOpts := blockOpts{italic: opts.italic, bullet: ordinal == 0, ordinal: ordinal}
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if err := appendBlock(seq, b, c, src, itemOpts); err != nil {
					return err
				}
			}
			if ordinal > 0 {
				ordinal++
			}
		}
	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if err := appendBlock(seq, b, c, src, blockOpts{italic: true}); err != nil {
				return err
			}
		}
	case *east.Table:
		t, err := markdownTable(b, n, src)
		if err != nil {
			return err
		}
		seq.Append(t)
	case *ast.HTMLBlock:
		return fmt.Errorf("%w: raw HTML block", ErrUnsupportedMarkdown)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMarkdown, n.Kind())
	}
	return nil
}

// markdownHeading maps heading levels onto the heading constructors:
// level 1 behaves like a chapter title and forces a page break.
func markdownHeading(b *Builder, h *ast.Heading, src []byte) *Heading {
	title := nodeText(h, src)
	switch {
	case h.Level <= 1:
		return b.ChapterTitle(title)
	case h.Level == 2:
		return b.SectionTitle(title)
	case h.Level > 6:
		return b.H(6, title)
	default:
		return b.H(h.Level, title)
	}
}

func markdownParagraph(b *Builder, runs []Run, opts blockOpts) *Paragraph {
	if opts.ordinal > 0 {
		runs = append([]Run{Text(fmt.Sprintf("%d. ", opts.ordinal))}, runs...)
	}
	p := b.Para(runs...)
	p.Bullet = opts.bullet
	return p
}

// inlineRuns folds an inline subtree into styled runs. Emphasis nests, so
// the accumulated style travels down the recursion.
func inlineRuns(n ast.Node, src []byte, base RunStyle) ([]Run, error) {
	var runs []Run
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			t := string(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				t += " "
			}
			runs = append(runs, Styled(t, base))
		case *ast.String:
			runs = append(runs, Styled(string(c.Value), base))
		case *ast.Emphasis:
			st := base
			if c.Level >= 2 {
				st.Bold = true
			} else {
				st.Italic = true
			}
			child, err := inlineRuns(c, src, st)
			if err != nil {
				return nil, err
			}
			runs = append(runs, child...)
		case *ast.CodeSpan:
			st := base
			st.Family = "Courier"
			child, err := inlineRuns(c, src, st)
			if err != nil {
				return nil, err
			}
			runs = append(runs, child...)
		case *ast.Link:
			child, err := inlineRuns(c, src, base)
			if err != nil {
				return nil, err
			}
			runs = append(runs, child...)
		case *ast.AutoLink:
			st := base
			st.Family = "Courier"
			runs = append(runs, Styled(string(c.URL(src)), st))
		case *ast.Image:
			return nil, fmt.Errorf("%w: image", ErrUnsupportedMarkdown)
		case *ast.RawHTML:
			return nil, fmt.Errorf("%w: raw HTML", ErrUnsupportedMarkdown)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMarkdown, c.Kind())
		}
	}
	return runs, nil
}

// markdownTable maps a GFM table onto a Table node with equal column
// widths. Ragged rows are rejected, not padded.
func markdownTable(b *Builder, t *east.Table, src []byte) (*Table, error) {
	var headers []string
	var rows [][]string
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *east.TableHeader:
			headers = rowCells(c, src)
		case *east.TableRow:
			rows = append(rows, rowCells(c, src))
		}
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: table without header row", ErrMarkdownConvert)
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("%w: table row %d has %d cells, want %d",
				ErrMarkdownConvert, i, len(row), len(headers))
		}
	}

	return b.Table(headers, b.EvenWidths(len(headers)), rows), nil
}

func rowCells(row ast.Node, src []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cells = append(cells, strings.TrimSpace(nodeText(c, src)))
	}
	return cells
}

// nodeText flattens every text segment under n.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// blockLines joins the raw source lines of a code block.
func blockLines(n interface{ Lines() *text.Segments }, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}
