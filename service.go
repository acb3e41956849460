package specbook

import (
	"context"
	"fmt"
	"time"
)

// defaultTimeout bounds one Build call. Rendering a multi-hundred-page
// document is CPU work measured in seconds; the timeout exists so a
// canceled caller never waits on a runaway render.
const defaultTimeout = 2 * time.Minute

// Input describes one document generation request.
type Input struct {
	Chapters   []Provider // invocation order = document order
	OutputPath string
}

// Result reports a completed build.
type Result struct {
	Path      string
	NodeCount int // flattened leaf nodes
	PageCount int
	Size      int64 // bytes written
}

// serviceConfig holds internal service settings.
type serviceConfig struct {
	cfg     *Config
	timeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the document configuration. A nil cfg means
// DefaultConfig.
func WithConfig(cfg *Config) Option {
	return func(s *Service) { s.cfg.cfg = cfg }
}

// WithTimeout sets the per-build timeout.
// Panics if timeout is not positive (programmer error).
func WithTimeout(timeout time.Duration) Option {
	if timeout <= 0 {
		panic("timeout must be positive")
	}
	return func(s *Service) { s.cfg.timeout = timeout }
}

// Service orchestrates the composition pipeline: chapter providers in
// their given order, flattening, assembly, then render and write. Every
// Build starts from a fresh, empty node list; nothing is shared between
// runs.
type Service struct {
	cfg    serviceConfig
	writer *Writer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    serviceConfig{timeout: defaultTimeout},
		writer: NewWriter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Build composes the document described by input and writes the PDF.
// The context is used for cancellation; it is additionally bounded by the
// service timeout.
func (s *Service) Build(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	cfg := s.cfg.cfg
	if cfg == nil {
		cfg = DefaultConfig()
	}
	builder, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	// Run chapter providers in order
	var seq Seq
	for _, chapter := range input.Chapters {
		seq.Extend(chapter(builder))
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Flatten to the final node sequence
	nodes, err := Flatten(seq)
	if err != nil {
		return nil, fmt.Errorf("flattening chapters: %w", err)
	}

	// Bind page-level configuration
	doc, err := Assemble(cfg, nodes)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	// Render and persist
	pages, size, err := s.writer.Write(ctx, doc, input.OutputPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:      input.OutputPath,
		NodeCount: len(nodes),
		PageCount: pages,
		Size:      size,
	}, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if len(input.Chapters) == 0 {
		return ErrNoChapters
	}
	for i, p := range input.Chapters {
		if p == nil {
			return fmt.Errorf("%w: chapter %d", ErrNilProvider, i)
		}
	}
	if input.OutputPath == "" {
		return fmt.Errorf("%w: empty output path", ErrWriteOutput)
	}
	return nil
}
