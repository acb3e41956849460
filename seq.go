package specbook

// Seq is an ordered sequence of content nodes. Chapters build their output
// by appending nodes and extending with the output of sub-builders, so
// nesting depth is an implementation detail of composition rather than
// something callers flatten by hand. The zero value is an empty sequence
// ready for use.
type Seq struct {
	items []item
}

// item is one entry in a sequence: a leaf node or a nested sequence.
// An item with neither set is unflattenable (the Go shape of "neither a
// recognized content node nor a list") and is rejected by Flatten.
type item struct {
	node Node
	seq  *Seq
}

// Append adds leaf nodes to the end of the sequence.
func (s *Seq) Append(nodes ...Node) {
	for _, n := range nodes {
		s.items = append(s.items, item{node: n})
	}
}

// Extend adds whole sequences to the end of the sequence. The nested
// sequences keep their own internal structure; Flatten resolves it.
func (s *Seq) Extend(seqs ...Seq) {
	for i := range seqs {
		nested := seqs[i]
		s.items = append(s.items, item{seq: &nested})
	}
}

// Len returns the number of immediate entries (leaf nodes and nested
// sequences) without descending into nesting.
func (s *Seq) Len() int {
	return len(s.items)
}

// Leaves returns the total number of leaf nodes at any nesting depth.
func (s *Seq) Leaves() int {
	total := 0
	for _, it := range s.items {
		if it.seq != nil {
			total += it.seq.Leaves()
			continue
		}
		total++
	}
	return total
}

// FromNodes wraps an already-flat node list in a sequence.
func FromNodes(nodes []Node) Seq {
	var s Seq
	s.Append(nodes...)
	return s
}
