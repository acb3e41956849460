package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"specbook"
	"specbook/internal/chapters"
)

// run executes one document build: merge settings, assemble the provider
// list, drive the service, and report plain progress lines.
func run(ctx context.Context, flags *buildFlags, env *envConfig, stdout, stderr io.Writer) error {
	settings, err := mergeSettings(flags, env)
	if err != nil {
		return err
	}

	providers := chapters.All()
	for _, path := range flags.appendixes {
		p, err := loadAppendix(path)
		if err != nil {
			return err
		}
		providers = append(providers, p)
	}

	if flags.common.verbose {
		fmt.Fprintf(stderr, "Chapters: %d\n", len(providers))
		fmt.Fprintf(stderr, "Output: %s\n", settings.output)
	}

	opts := []specbook.Option{specbook.WithConfig(settings.cfg)}
	if settings.timeout > 0 {
		opts = append(opts, specbook.WithTimeout(settings.timeout))
	}
	svc := specbook.New(opts...)

	result, err := svc.Build(ctx, specbook.Input{
		Chapters:   providers,
		OutputPath: settings.output,
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Flattened %d content nodes\n", result.NodeCount)
		fmt.Fprintf(stdout, "Wrote %s (%s, %d pages)\n",
			result.Path, specbook.FormatSize(result.Size), result.PageCount)
	}
	return nil
}

// loadAppendix reads a Markdown file and converts it into a chapter
// provider. Conversion happens here, before the pipeline runs, so an
// unsupported construct fails with the file name attached.
func loadAppendix(path string) (specbook.Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadAppendix, err)
	}
	p, err := specbook.Markdown(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
