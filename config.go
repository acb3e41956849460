package specbook

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in millimeters.
const (
	MinMargin     = 8.0
	MaxMargin     = 50.0
	DefaultMargin = 20.0
)

// widthTolerance absorbs float rounding when comparing table column widths
// against the page content width, in millimeters.
const widthTolerance = 0.01

// Style table entry names used by the primitive constructors.
const (
	StylePart     = "Part"
	StyleBody     = "Body"
	StyleCode     = "Code"
	StyleTOCTitle = "TOCTitle"
	StyleTOC1     = "TOC1"
	StyleTOC2     = "TOC2"
)

// HeadingStyle returns the style table entry name for a heading level.
func HeadingStyle(level int) string {
	return fmt.Sprintf("Heading%d", level)
}

// DocumentInfo identifies the document; it feeds the running header and the
// metadata of the output artifact.
type DocumentInfo struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	Subject string `yaml:"subject"`
}

// Layout configures the shared page geometry. The whole document is one
// logical section: one paper size, one margin set, no per-chapter geometry
// changes.
type Layout struct {
	PageSize    string  `yaml:"pageSize"`    // "a4", "letter", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // millimeters, applied to all sides
	LineHeight  float64 `yaml:"lineHeight"`  // millimeters per text line
	SpacerGap   float64 `yaml:"spacerGap"`   // millimeters per Spacer node
}

// Header configures the running page header: a static title/version string,
// right-aligned on every page. Empty Text falls back to
// "<Document.Title> — <Document.Version>".
type Header struct {
	Enabled bool   `yaml:"enabled"`
	Text    string `yaml:"text"`
}

// Footer configures the running page footer: a static confidentiality label
// plus the current page number, centered on every page.
type Footer struct {
	Enabled        bool   `yaml:"enabled"`
	Text           string `yaml:"text"`
	ShowPageNumber bool   `yaml:"showPageNumber"`
}

// Numbering configures bulleted paragraphs.
type Numbering struct {
	Bullet string  `yaml:"bullet"` // glyph drawn before bullet paragraphs
	Indent float64 `yaml:"indent"` // hanging indent in millimeters
}

// TextStyle is one named entry of the global style table: font, weight,
// size, color and vertical spacing for a class of paragraphs or headings.
type TextStyle struct {
	Family      string    `yaml:"family"`      // "Arial", "Times", "Courier"
	Style       string    `yaml:"style"`       // "", "B", "I", "BI"
	Size        float64   `yaml:"size"`        // points
	Color       Color     `yaml:"color"`
	Align       Alignment `yaml:"align"`       // default alignment, "" = left
	LineHeight  float64   `yaml:"lineHeight"`  // mm per line, 0 = layout default
	SpaceBefore float64   `yaml:"spaceBefore"` // mm
	SpaceAfter  float64   `yaml:"spaceAfter"`  // mm
}

// StyleTable holds the named paragraph and heading styles plus the theme
// used for syntax-highlighted code blocks.
type StyleTable struct {
	CodeTheme string               `yaml:"codeTheme"`
	Entries   map[string]TextStyle `yaml:"entries"`
}

// Get looks up a named style.
func (t StyleTable) Get(name string) (TextStyle, bool) {
	s, ok := t.Entries[name]
	return s, ok
}

// Config is the document-level configuration: identity, page geometry,
// running header and footer, numbering and the global style table. It is
// constructed once (DefaultConfig, optionally overlaid from YAML by the
// CLI), validated, and then treated as immutable; the Builder, Assemble and
// the renderer all read the same instance.
type Config struct {
	Document  DocumentInfo `yaml:"document"`
	Layout    Layout       `yaml:"layout"`
	Header    Header       `yaml:"header"`
	Footer    Footer       `yaml:"footer"`
	Numbering Numbering    `yaml:"numbering"`
	Styles    StyleTable   `yaml:"styles"`
}

// DefaultConfig returns the complete default configuration: A4 portrait,
// 20 mm margins, header and footer enabled, and a full style table.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentInfo{
			Title:   "Specification",
			Version: "v1.0",
		},
		Layout: Layout{
			PageSize:    PageSizeA4,
			Orientation: OrientationPortrait,
			Margin:      DefaultMargin,
			LineHeight:  5,
			SpacerGap:   5,
		},
		Header: Header{Enabled: true},
		Footer: Footer{
			Enabled:        true,
			Text:           "CONFIDENTIAL",
			ShowPageNumber: true,
		},
		Numbering: Numbering{
			Bullet: "•",
			Indent: 6,
		},
		Styles: StyleTable{
			CodeTheme: "github",
			Entries:   defaultStyleEntries(),
		},
	}
}

// defaultStyleEntries builds the default style table. Heading colors follow
// the document accent; body text stays black.
func defaultStyleEntries() map[string]TextStyle {
	accent := Color{R: 31, G: 56, B: 100}
	return map[string]TextStyle{
		StylePart: {
			Family: "Arial", Style: "B", Size: 24, Color: accent,
			Align: AlignCenter, SpaceBefore: 60, SpaceAfter: 10,
		},
		HeadingStyle(1): {
			Family: "Arial", Style: "B", Size: 18, Color: accent,
			SpaceAfter: 6,
		},
		HeadingStyle(2): {
			Family: "Arial", Style: "B", Size: 14, Color: accent,
			SpaceBefore: 6, SpaceAfter: 4,
		},
		HeadingStyle(3): {
			Family: "Arial", Style: "B", Size: 12,
			SpaceBefore: 4, SpaceAfter: 3,
		},
		HeadingStyle(4): {
			Family: "Arial", Style: "B", Size: 11,
			SpaceBefore: 3, SpaceAfter: 2,
		},
		HeadingStyle(5): {
			Family: "Arial", Style: "BI", Size: 10.5,
			SpaceBefore: 3, SpaceAfter: 2,
		},
		HeadingStyle(6): {
			Family: "Arial", Style: "I", Size: 10.5,
			SpaceBefore: 3, SpaceAfter: 2,
		},
		StyleBody: {
			Family: "Times", Size: 11,
			SpaceAfter: 2.5,
		},
		StyleCode: {
			Family: "Courier", Size: 9, Color: Color{R: 40, G: 40, B: 40},
			LineHeight: 4,
		},
		StyleTOCTitle: {
			Family: "Arial", Style: "B", Size: 18, Color: accent,
			SpaceAfter: 8,
		},
		StyleTOC1: {
			Family: "Arial", Style: "B", Size: 11,
			SpaceBefore: 2,
		},
		StyleTOC2: {
			Family: "Arial", Size: 10.5,
		},
	}
}

// Validate checks that the configuration is structurally sound. Zero values
// mean "use the default" and are valid, matching the YAML overlay behavior
// where absent fields keep their defaults.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	if !isValidPageSize(c.Layout.PageSize) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, c.Layout.PageSize)
	}
	if !isValidOrientation(c.Layout.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, c.Layout.Orientation)
	}
	if m := c.Layout.Margin; m != 0 && (m < MinMargin || m > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)",
			ErrInvalidMargin, m, MinMargin, MaxMargin)
	}
	if c.Layout.LineHeight < 0 {
		return fmt.Errorf("%w: %.2f (must be >= 0)", ErrInvalidLineHeight, c.Layout.LineHeight)
	}
	if c.Layout.SpacerGap < 0 {
		return fmt.Errorf("%w: %.2f (must be >= 0)", ErrInvalidSpacerGap, c.Layout.SpacerGap)
	}

	for _, name := range requiredStyles() {
		if _, ok := c.Styles.Get(name); !ok {
			return fmt.Errorf("%w: style table is missing %q", ErrUnknownStyle, name)
		}
	}

	return nil
}

// requiredStyles lists the entries every style table must define because
// the primitive constructors reference them.
func requiredStyles() []string {
	names := []string{StylePart, StyleBody, StyleCode, StyleTOCTitle, StyleTOC1, StyleTOC2}
	for level := 1; level <= 6; level++ {
		names = append(names, HeadingStyle(level))
	}
	return names
}

// PageDimensions returns the effective page width and height in millimeters
// after applying the orientation.
func (c *Config) PageDimensions() (w, h float64) {
	w, h = pageDimensions(c.effectivePageSize())
	if strings.EqualFold(c.effectiveOrientation(), OrientationLandscape) {
		w, h = h, w
	}
	return w, h
}

// ContentWidth returns the horizontal space available to content: page
// width minus both margins. Table constructors validate column widths
// against this value.
func (c *Config) ContentWidth() float64 {
	w, _ := c.PageDimensions()
	return w - 2*c.effectiveMargin()
}

func (c *Config) effectivePageSize() string {
	if c.Layout.PageSize == "" {
		return PageSizeA4
	}
	return strings.ToLower(c.Layout.PageSize)
}

func (c *Config) effectiveOrientation() string {
	if c.Layout.Orientation == "" {
		return OrientationPortrait
	}
	return strings.ToLower(c.Layout.Orientation)
}

func (c *Config) effectiveMargin() float64 {
	if c.Layout.Margin == 0 {
		return DefaultMargin
	}
	return c.Layout.Margin
}

func (c *Config) effectiveLineHeight() float64 {
	if c.Layout.LineHeight == 0 {
		return 5
	}
	return c.Layout.LineHeight
}

func (c *Config) effectiveSpacerGap() float64 {
	if c.Layout.SpacerGap == 0 {
		return 5
	}
	return c.Layout.SpacerGap
}

// headerText resolves the running header line.
func (c *Config) headerText() string {
	if c.Header.Text != "" {
		return c.Header.Text
	}
	if c.Document.Version == "" {
		return c.Document.Title
	}
	return c.Document.Title + " — " + c.Document.Version
}

// pageDimensions maps a page size name to portrait dimensions in
// millimeters.
func pageDimensions(size string) (w, h float64) {
	switch size {
	case PageSizeLetter:
		return 215.9, 279.4
	case PageSizeLegal:
		return 215.9, 355.6
	default: // a4
		return 210, 297
	}
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case "", PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case "", OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}
