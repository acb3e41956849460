package specbook

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoChapters    = errors.New("no chapter providers given")
	ErrNilProvider   = errors.New("nil chapter provider")
	ErrEmptyDocument = errors.New("document has no content nodes")
	ErrUnflattenable = errors.New("element is neither a content node nor a sequence")
	ErrDuplicateTOC  = errors.New("document contains more than one table of contents")
	ErrRender        = errors.New("PDF rendering failed")
	ErrWriteOutput   = errors.New("failed to write output file")

	// Construction errors carried by primitive constructor panics.
	ErrHeadingLevel = errors.New("heading level out of range")
	ErrTableShape   = errors.New("table shape mismatch")
	ErrTableWidths  = errors.New("table column widths do not sum to the content width")

	// Configuration validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidLineHeight  = errors.New("invalid line height")
	ErrInvalidSpacerGap   = errors.New("invalid spacer gap")
	ErrUnknownStyle       = errors.New("unknown style reference")

	// Markdown chapter adapter errors.
	ErrMarkdownConvert     = errors.New("markdown conversion failed")
	ErrUnsupportedMarkdown = errors.New("unsupported markdown construct")
)
