// Package specbook assembles large multi-part specification documents
// from modular chapter providers into a single paginated PDF.
//
// # Quick Start
//
// Create a service and build a document from chapter providers:
//
//	svc := specbook.New()
//	result, err := svc.Build(ctx, specbook.Input{
//	    Chapters:   chapters.All(),
//	    OutputPath: "dist/spec.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path, result.PageCount)
//
// # Composition Pipeline
//
// Document generation is a single forward pipeline executed once per
// invocation:
//
//  1. Chapter providers run in their given order, each returning a
//     sequence of content nodes (nesting is a builder detail)
//  2. Flattening merges the sequences into one flat, order-preserving
//     node list
//  3. Assembly binds the list to page-level configuration (geometry,
//     header/footer, style table)
//  4. Rendering serializes the document to a PDF via gofpdf and writes
//     the artifact
//
// # Authoring Chapters
//
// A chapter is a pure function over the builder it receives:
//
//	func Scope(b *specbook.Builder) specbook.Seq {
//	    return b.Seq(
//	        b.ChapterTitle("1. Scope and Interpretation"),
//	        b.Para(specbook.Text("This Specification governs ...")),
//	        b.Table(
//	            []string{"Term", "Meaning"},
//	            b.EvenWidths(2),
//	            [][]string{{"Platform", "The Meridian clearing platform"}},
//	        ),
//	    )
//	}
//
// Constructors validate structural invariants eagerly and panic on
// malformed input (a table row not matching its header count, widths
// that do not sum to the content width), so the failing chapter is
// identifiable by its call site.
//
// Chapters can also be authored in Markdown:
//
//	appendix, err := specbook.Markdown(string(src))
//
// # Configuration
//
// Page geometry, the running header/footer and the style table live in a
// Config constructed once and passed by reference:
//
//	cfg := specbook.DefaultConfig()
//	cfg.Document.Title = "Master Service Specification"
//	cfg.Footer.Text = "CONFIDENTIAL — Meridian"
//	svc := specbook.New(
//	    specbook.WithConfig(cfg),
//	    specbook.WithTimeout(2*time.Minute),
//	)
//
// The table of contents is the one deferred computation: its placeholder
// node is resolved at render time by walking the final node sequence for
// level 1-2 headings, linking each entry to the page the heading lands
// on.
package specbook
