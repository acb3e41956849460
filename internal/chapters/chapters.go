// Package chapters holds the content of the Meridian Clearing Platform
// Master Service Specification: one provider per chapter, pure data over
// the builder each provider receives. Nothing here is pipeline logic;
// the package exists so the document text stays out of the library.
package chapters

import "specbook"

// All returns every chapter provider in document order. The order of this
// list is the order of the final document; chapters share no state, so
// reordering the list reorders the output and nothing else.
func All() []specbook.Provider {
	return []specbook.Provider{
		FrontMatter,
		PartGeneral,
		Scope,
		Definitions,
		PlatformOverview,
		PartTechnical,
		Architecture,
		MessageFormats,
		DataDictionary,
		PartOperations,
		ServiceLevels,
		OperationsSupport,
		Fees,
		PartLegal,
		Liability,
		Confidentiality,
		RevisionHistory,
	}
}

// split divides the content width of the builder's configuration into
// columns proportional to the given fractions. Fractions should sum to 1;
// the last column absorbs rounding so the widths always sum exactly to
// the content width.
func split(b *specbook.Builder, fractions ...float64) []float64 {
	total := b.Config().ContentWidth()
	widths := make([]float64, len(fractions))
	used := 0.0
	for i, f := range fractions[:len(fractions)-1] {
		widths[i] = total * f
		used += widths[i]
	}
	widths[len(widths)-1] = total - used
	return widths
}
