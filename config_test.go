package specbook

// Notes:
// - Config.Validate: page size, orientation, margin bounds, style table
//   completeness; zero values mean "use the default" and are valid
// - Geometry helpers: page dimensions per size/orientation, content width
// - headerText: explicit text wins over the title/version fallback

import (
	"errors"
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// TestConfig_Validate - structural validation
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:   "case insensitive page size",
			mutate: func(c *Config) { c.Layout.PageSize = "A4" },
		},
		{
			name:   "letter landscape",
			mutate: func(c *Config) { c.Layout.PageSize = PageSizeLetter; c.Layout.Orientation = OrientationLandscape },
		},
		{
			name:   "empty page size valid (uses default)",
			mutate: func(c *Config) { c.Layout.PageSize = "" },
		},
		{
			name:   "empty orientation valid (uses default)",
			mutate: func(c *Config) { c.Layout.Orientation = "" },
		},
		{
			name:   "zero margin valid (uses default)",
			mutate: func(c *Config) { c.Layout.Margin = 0 },
		},
		{
			name:   "margin at minimum",
			mutate: func(c *Config) { c.Layout.Margin = MinMargin },
		},
		{
			name:   "margin at maximum",
			mutate: func(c *Config) { c.Layout.Margin = MaxMargin },
		},
		{
			name:    "invalid page size",
			mutate:  func(c *Config) { c.Layout.PageSize = "tabloid" },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "invalid orientation",
			mutate:  func(c *Config) { c.Layout.Orientation = "diagonal" },
			wantErr: ErrInvalidOrientation,
		},
		{
			name:    "margin below minimum",
			mutate:  func(c *Config) { c.Layout.Margin = 2 },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin above maximum",
			mutate:  func(c *Config) { c.Layout.Margin = 80 },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "negative line height",
			mutate:  func(c *Config) { c.Layout.LineHeight = -1 },
			wantErr: ErrInvalidLineHeight,
		},
		{
			name:    "negative spacer gap",
			mutate:  func(c *Config) { c.Layout.SpacerGap = -2 },
			wantErr: ErrInvalidSpacerGap,
		},
		{
			name:    "missing heading style",
			mutate:  func(c *Config) { delete(c.Styles.Entries, HeadingStyle(3)) },
			wantErr: ErrUnknownStyle,
		},
		{
			name:    "missing TOC style",
			mutate:  func(c *Config) { delete(c.Styles.Entries, StyleTOC2) },
			wantErr: ErrUnknownStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("nil config is valid", func(t *testing.T) {
		t.Parallel()

		var cfg *Config
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConfig_Geometry - page dimensions and content width
// ---------------------------------------------------------------------------

func TestConfig_Geometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		size      string
		orient    string
		margin    float64
		wantW     float64
		wantH     float64
		wantWidth float64 // content width
	}{
		{
			name:  "a4 portrait defaults",
			wantW: 210, wantH: 297, wantWidth: 170,
		},
		{
			name: "a4 landscape", orient: OrientationLandscape,
			wantW: 297, wantH: 210, wantWidth: 257,
		},
		{
			name: "letter portrait", size: PageSizeLetter,
			wantW: 215.9, wantH: 279.4, wantWidth: 175.9,
		},
		{
			name: "legal with wide margin", size: PageSizeLegal, margin: 30,
			wantW: 215.9, wantH: 355.6, wantWidth: 155.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			if tt.size != "" {
				cfg.Layout.PageSize = tt.size
			}
			if tt.orient != "" {
				cfg.Layout.Orientation = tt.orient
			}
			if tt.margin != 0 {
				cfg.Layout.Margin = tt.margin
			}

			w, h := cfg.PageDimensions()
			if math.Abs(w-tt.wantW) > 0.001 || math.Abs(h-tt.wantH) > 0.001 {
				t.Errorf("PageDimensions() = %.1f x %.1f, want %.1f x %.1f", w, h, tt.wantW, tt.wantH)
			}
			if got := cfg.ContentWidth(); math.Abs(got-tt.wantWidth) > 0.001 {
				t.Errorf("ContentWidth() = %.2f, want %.2f", got, tt.wantWidth)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_HeaderText - running header resolution
// ---------------------------------------------------------------------------

func TestConfig_HeaderText(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Document.Title = "Master Service Specification"
	cfg.Document.Version = "v4.2"

	if got := cfg.headerText(); got != "Master Service Specification — v4.2" {
		t.Errorf("headerText() = %q", got)
	}

	cfg.Document.Version = ""
	if got := cfg.headerText(); got != "Master Service Specification" {
		t.Errorf("headerText() without version = %q", got)
	}

	cfg.Header.Text = "Custom Band"
	if got := cfg.headerText(); got != "Custom Band" {
		t.Errorf("headerText() with explicit text = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - completeness of the default style table
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	for _, name := range requiredStyles() {
		if _, ok := cfg.Styles.Get(name); !ok {
			t.Errorf("default style table is missing %q", name)
		}
	}
	if cfg.Styles.CodeTheme == "" {
		t.Error("default code theme is empty")
	}
	if !cfg.Header.Enabled || !cfg.Footer.Enabled {
		t.Error("defaults should enable header and footer")
	}
}

func TestHeadingStyle(t *testing.T) {
	t.Parallel()

	if got := HeadingStyle(1); got != "Heading1" {
		t.Errorf("HeadingStyle(1) = %q", got)
	}
	if got := HeadingStyle(6); got != "Heading6" {
		t.Errorf("HeadingStyle(6) = %q", got)
	}
}
