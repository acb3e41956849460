package specbook

import (
	"fmt"
	"math"
)

// Document is the final in-memory representation: a fully flat, ordered
// node sequence bound to its page-level configuration. It is constructed
// once by Assemble, rendered once, then discarded; nothing in the pipeline
// mutates it afterwards.
type Document struct {
	Config *Config
	Nodes  []Node
}

// Assemble binds a flat node sequence to the page-level configuration and
// returns the renderable document. It never alters the order or count of
// the nodes: the returned document references the given slice as is.
//
// Validation: the configuration must validate, the sequence must not be
// empty, at most one table-of-contents placeholder may appear, every style
// name referenced by a heading or paragraph must resolve in the style
// table, and tables must fit the configured content width. A dangling
// style or oversized table surfaces here instead of as a serialization
// failure. A nil cfg means DefaultConfig.
func Assemble(cfg *Config, nodes []Node) (*Document, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, ErrEmptyDocument
	}

	tocs := 0
	for i, n := range nodes {
		switch n := n.(type) {
		case *Heading:
			if _, ok := cfg.Styles.Get(n.Style); !ok {
				return nil, fmt.Errorf("%w: %q (heading %q, node %d)", ErrUnknownStyle, n.Style, n.Text, i)
			}
		case *Paragraph:
			if _, ok := cfg.Styles.Get(n.Style); !ok {
				return nil, fmt.Errorf("%w: %q (paragraph, node %d)", ErrUnknownStyle, n.Style, i)
			}
		case *Table:
			if err := checkTable(cfg, n); err != nil {
				return nil, fmt.Errorf("%w (node %d)", err, i)
			}
		case *TOC:
			tocs++
			if tocs > 1 {
				return nil, fmt.Errorf("%w: second placeholder at node %d", ErrDuplicateTOC, i)
			}
		case *PageBreak, *Spacer:
		case nil:
			return nil, fmt.Errorf("%w: nil node at %d", ErrUnflattenable, i)
		default:
			return nil, fmt.Errorf("%w: unrecognized node %T at %d", ErrUnflattenable, n, i)
		}
	}

	return &Document{Config: cfg, Nodes: nodes}, nil
}

// checkTable re-validates a table against the bound configuration. The
// constructors already enforce this for builder-made tables; hand-built
// nodes go through the same checks here.
func checkTable(cfg *Config, t *Table) error {
	if len(t.Widths) != len(t.Headers) {
		return fmt.Errorf("%w: %d widths for %d columns", ErrTableShape, len(t.Widths), len(t.Headers))
	}
	var sum float64
	for _, w := range t.Widths {
		sum += w
	}
	if want := cfg.ContentWidth(); math.Abs(sum-want) > widthTolerance {
		return fmt.Errorf("%w: widths sum to %.2f mm, content width is %.2f mm", ErrTableWidths, sum, want)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrTableShape, i, len(row), len(t.Headers))
		}
	}
	return nil
}
