package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: specbook [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compose the Meridian Master Service Specification into a single PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default dist/meridian-spec.pdf)")
	fmt.Fprintln(w, "  -c, --config <path>       Config file path (YAML)")
	fmt.Fprintln(w, "      --appendix <file.md>  Append a Markdown chapter (repeatable)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Build timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --doc-title <s>       Document title")
	fmt.Fprintln(w, "      --doc-version <s>     Document version string")
	fmt.Fprintln(w, "      --doc-author <s>      Document author")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in millimeters (8-50)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Header/Footer:")
	fmt.Fprintln(w, "      --header-text <s>     Running header text (\"\" = title and version)")
	fmt.Fprintln(w, "      --footer-text <s>     Running footer label")
	fmt.Fprintln(w, "      --no-header           Disable running header")
	fmt.Fprintln(w, "      --no-footer           Disable running footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show stage progress")
	fmt.Fprintln(w, "      --version             Show version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SPECBOOK_CONFIG, SPECBOOK_OUTPUT, SPECBOOK_TIMEOUT,")
	fmt.Fprintln(w, "  SPECBOOK_DOC_TITLE, SPECBOOK_DOC_VERSION, SPECBOOK_PAGE_SIZE,")
	fmt.Fprintln(w, "  SPECBOOK_FOOTER_TEXT. Flags take precedence over environment,")
	fmt.Fprintln(w, "  environment over the config file. A .env file is loaded if present.")
}
