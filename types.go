package textplay

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// MaxTitleLength bounds the standalone document title, in characters.
const MaxTitleLength = 200

// Input contains conversion parameters.
type Input struct {
	Text       string // Screenplay source; empty yields an empty container
	Standalone bool   // Full HTML document instead of a fragment
	Title      string // Standalone document title (empty = "Screenplay")
	CSS        string // Extra CSS appended after the converter style (standalone only)
	TaggedOnly bool   // Intermediate tagged form: no mapping, no container
}

// Validate checks that the title fits and the output modes are compatible.
func (in Input) Validate() error {
	if n := utf8.RuneCountInString(in.Title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrInvalidTitle, n, MaxTitleLength)
	}
	if in.TaggedOnly && in.Standalone {
		return ErrConflictingModes
	}
	return nil
}

// Result holds the output of a conversion.
type Result struct {
	HTML    []byte   // Fragment, standalone document, or tagged text
	Outline *Outline // Nil for tagged output
}

// Outline summarizes the structure of a converted screenplay.
type Outline struct {
	SceneHeadings    int
	Sluglines        int
	Transitions      int
	DialogueBlocks   int
	ActionParagraphs int
	PageBreaks       int
	Characters       []string // Speakers in order of first appearance, extensions dropped
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleInput    string // Name, path, or CSS content
	assetPath     string
	noStyle       bool
	resolvedStyle string
}

// WithLogger sets the logger receiving per-stage debug timings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStyle sets the stylesheet of standalone documents. The value is a
// style name ("screenplay", "draft", or one under the asset path), a path
// to a .css file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithoutStyle embeds no stylesheet in standalone documents.
func WithoutStyle() Option {
	return func(c *Converter) {
		c.cfg.noStyle = true
	}
}

// WithAssetPath sets a directory whose styles/{name}.css files take
// precedence over the built-in styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
