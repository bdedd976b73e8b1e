package textplay

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-textplay/internal/assets"
	"github.com/alnah/go-textplay/internal/fileutil"
	"github.com/alnah/go-textplay/internal/log"
	"github.com/alnah/go-textplay/internal/pipeline"
)

// Converter turns screenplay text into HTML. It holds no per-conversion
// state and is safe for concurrent use.
type Converter struct {
	cfg     converterConfig
	logger  *slog.Logger
	styles  assets.StyleLoader
	full    *pipeline.Pipeline // tagging stages plus markup mapping
	tagging *pipeline.Pipeline
}

// NewConverter creates a Converter. The stylesheet is resolved here, so a
// missing style fails construction rather than the first conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger: log.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewStyleResolver(c.cfg.assetPath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	c.styles = resolver

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	c.logger.Debug("style resolved",
		slog.Bool("custom_assets", resolver.HasCustomLoader()),
		slog.Int("css_bytes", len(c.cfg.resolvedStyle)),
	)

	c.full = pipeline.Default().WithLogger(c.logger)
	c.tagging = pipeline.Tagging().WithLogger(c.logger)
	return c, nil
}

// StageNames lists the conversion stages in execution order.
func StageNames() []string {
	return pipeline.Default().Names()
}

// Convert runs the pipeline over input.Text. The context is checked between
// stages. Recovers from internal panics so they do not reach callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrConversion, r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	if input.TaggedOnly {
		tagged, err := c.run(ctx, c.tagging, input.Text)
		if err != nil {
			return nil, err
		}
		c.logDone(start, len(input.Text), len(tagged))
		return &Result{HTML: []byte(tagged)}, nil
	}

	body, err := c.run(ctx, c.full, input.Text)
	if err != nil {
		return nil, err
	}
	fragment := pipeline.Assemble(body)

	outline, err := pipeline.ExtractOutline(fragment)
	if err != nil {
		return nil, fmt.Errorf("%w: reading outline: %v", ErrConversion, err)
	}

	out := fragment
	if input.Standalone {
		out = pipeline.Standalone(ctx, fragment, input.Title, c.stylesheet(input.CSS))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	c.logDone(start, len(input.Text), len(out))
	return &Result{HTML: []byte(out), Outline: toOutline(outline)}, nil
}

// run executes p, leaving context errors unwrapped.
func (c *Converter) run(ctx context.Context, p *pipeline.Pipeline, text string) (string, error) {
	out, err := p.Run(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return out, nil
}

func (c *Converter) logDone(start time.Time, in, out int) {
	c.logger.Debug("conversion done",
		slog.Duration("took", time.Since(start)),
		slog.Int("input_bytes", in),
		slog.Int("output_bytes", out),
	)
}

// stylesheet combines the converter style with per-conversion CSS.
// Converter style first, so input CSS can override it.
func (c *Converter) stylesheet(extra string) string {
	switch {
	case c.cfg.resolvedStyle == "":
		return extra
	case extra == "":
		return c.cfg.resolvedStyle
	default:
		return c.cfg.resolvedStyle + "\n" + extra
	}
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	if c.cfg.noStyle {
		return nil
	}

	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if strings.ContainsRune(input, '{') {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.styles.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

func toOutline(o *pipeline.Outline) *Outline {
	if o == nil {
		return nil
	}
	return &Outline{
		SceneHeadings:    o.SceneHeadings,
		Sluglines:        o.Sluglines,
		Transitions:      o.Transitions,
		DialogueBlocks:   o.DialogueBlocks,
		ActionParagraphs: o.ActionParagraphs,
		PageBreaks:       o.PageBreaks,
		Characters:       o.Characters,
	}
}
