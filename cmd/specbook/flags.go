package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document identity overrides.
type documentFlags struct {
	title   string
	version string
	author  string
}

// pageFlags holds page geometry overrides.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// chromeFlags holds running header/footer overrides.
type chromeFlags struct {
	headerText string
	footerText string
	noHeader   bool
	noFooter   bool
}

// buildFlags holds all flags for a build invocation.
type buildFlags struct {
	common     commonFlags
	output     string
	timeout    string
	appendixes []string
	version    bool

	document documentFlags
	page     pageFlags
	chrome   chromeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path (YAML)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show stage progress")
}

// addDocumentFlags adds document identity flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "doc-title", "", "document title")
	fs.StringVar(&f.version, "doc-version", "", "document version string")
	fs.StringVar(&f.author, "doc-author", "", "document author")
}

// addPageFlags adds page geometry flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in millimeters (8-50)")
}

// addChromeFlags adds header/footer flags to a FlagSet.
func addChromeFlags(fs *flag.FlagSet, f *chromeFlags) {
	fs.StringVar(&f.headerText, "header-text", "", "running header text (\"\" = title and version)")
	fs.StringVar(&f.footerText, "footer-text", "", "running footer label")
	fs.BoolVar(&f.noHeader, "no-header", false, "disable running header")
	fs.BoolVar(&f.noFooter, "no-footer", false, "disable running footer")
}

// parseFlags parses the command line and returns positional args.
func parseFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("specbook", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "build timeout (e.g., 30s, 2m)")
	fs.StringArrayVar(&f.appendixes, "appendix", nil, "Markdown file appended as an extra chapter (repeatable)")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addPageFlags(fs, &f.page)
	addChromeFlags(fs, &f.chrome)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
