package specbook

import "fmt"

// Flatten reduces a possibly nested sequence to a single flat, ordered node
// list. Traversal is recursive depth-first, pre-order and left-to-right, so
// the result preserves authoring order exactly: no node is duplicated,
// reordered, or dropped, and len(result) equals seq.Leaves(). Nodes are
// appended as-is, never copied or mutated.
//
// Encountering an entry that is neither a content node nor a sequence (in
// practice: a nil Node appended to a Seq) is fatal and aborts the run;
// continuing would silently drop content from the final document.
func Flatten(seq Seq) ([]Node, error) {
	out := make([]Node, 0, seq.Leaves())
	return appendFlat(out, &seq)
}

func appendFlat(out []Node, s *Seq) ([]Node, error) {
	for i, it := range s.items {
		switch {
		case it.seq != nil:
			var err error
			out, err = appendFlat(out, it.seq)
			if err != nil {
				return nil, err
			}
		case it.node != nil:
			out = append(out, it.node)
		default:
			return nil, fmt.Errorf("%w: entry %d of %d", ErrUnflattenable, i, len(s.items))
		}
	}
	return out, nil
}
