package chapters

import "specbook"

// FrontMatter produces the title block and the table-of-contents
// placeholder. The title page is the only page without a chapter heading,
// so it positions its content with spacers instead.
func FrontMatter(b *specbook.Builder) specbook.Seq {
	cfg := b.Config().Document

	var s specbook.Seq
	for i := 0; i < 8; i++ {
		s.Append(b.Spacer())
	}
	s.Append(
		b.ParaAligned(specbook.AlignCenter,
			specbook.Styled(cfg.Title, specbook.RunStyle{Bold: true, Size: 28})),
		b.Spacer(),
		b.ParaAligned(specbook.AlignCenter,
			specbook.Styled("Master Service Specification", specbook.RunStyle{Size: 16})),
		b.Spacer(),
		b.ParaAligned(specbook.AlignCenter, specbook.Text(cfg.Version)),
		b.ParaAligned(specbook.AlignCenter,
			specbook.Italic("This document is the complete and authoritative statement of the services, interfaces and obligations of the Meridian Clearing Platform.")),
	)
	for i := 0; i < 6; i++ {
		s.Append(b.Spacer())
	}
	s.Append(
		b.ParaAligned(specbook.AlignCenter,
			specbook.Styled("CONFIDENTIAL — distribution restricted to named recipients under NDA.",
				specbook.RunStyle{Italic: true, Size: 9})),
		b.PageBreak(),
		b.TOC(""),
	)
	return s
}
