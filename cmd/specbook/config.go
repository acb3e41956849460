package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"specbook"
	"specbook/internal/yamlutil"
)

// Default output path when neither flag, environment nor config provide one.
const defaultOutput = "dist/meridian-spec.pdf"

var (
	ErrReadConfig     = errors.New("failed to read config file")
	ErrConfigParse    = errors.New("failed to parse config file")
	ErrReadAppendix   = errors.New("failed to read appendix file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// fileConfig is the YAML config file shape: the library configuration plus
// CLI-level settings that have no place in the document itself.
type fileConfig struct {
	specbook.Config `yaml:",inline"`

	Output  string `yaml:"output"`
	Timeout string `yaml:"timeout"`
}

// loadFileConfig reads and strictly parses a YAML config file over the
// default configuration, so absent fields keep their defaults and unknown
// fields are rejected.
func loadFileConfig(path string) (*fileConfig, error) {
	fc := &fileConfig{Config: *specbook.DefaultConfig()}
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	if err := yamlutil.UnmarshalStrict(data, fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return fc, nil
}

// buildSettings is the fully merged invocation: the document configuration
// plus the CLI-level values the run needs.
type buildSettings struct {
	cfg     *specbook.Config
	output  string
	timeout time.Duration
}

// mergeSettings resolves the final settings from, in increasing precedence:
// defaults, config file, environment, flags.
func mergeSettings(flags *buildFlags, env *envConfig) (*buildSettings, error) {
	configPath := flags.common.config
	if configPath == "" {
		configPath = env.ConfigPath
	}

	fc, err := loadFileConfig(configPath)
	if err != nil {
		return nil, err
	}
	cfg := fc.Config

	// Environment over file
	if env.DocTitle != "" {
		cfg.Document.Title = env.DocTitle
	}
	if env.DocVersion != "" {
		cfg.Document.Version = env.DocVersion
	}
	if env.PageSize != "" {
		cfg.Layout.PageSize = env.PageSize
	}
	if env.FooterText != "" {
		cfg.Footer.Text = env.FooterText
	}

	// Flags over everything
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.version != "" {
		cfg.Document.Version = flags.document.version
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.page.size != "" {
		cfg.Layout.PageSize = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Layout.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Layout.Margin = flags.page.margin
	}
	if flags.chrome.headerText != "" {
		cfg.Header.Text = flags.chrome.headerText
	}
	if flags.chrome.footerText != "" {
		cfg.Footer.Text = flags.chrome.footerText
	}
	if flags.chrome.noHeader {
		cfg.Header.Enabled = false
	}
	if flags.chrome.noFooter {
		cfg.Footer.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	output := firstNonEmpty(flags.output, env.Output, fc.Output, defaultOutput)

	timeout, err := resolveTimeout(firstNonEmpty(flags.timeout, env.Timeout, fc.Timeout))
	if err != nil {
		return nil, err
	}

	return &buildSettings{cfg: &cfg, output: output, timeout: timeout}, nil
}

// resolveTimeout parses a timeout string; "" means the service default.
func resolveTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, s)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
