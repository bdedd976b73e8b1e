// Package pipeline implements the screenplay-to-HTML transformation.
//
// The conversion is a fold over one text buffer through an ordered list of
// rewrite stages. Each stage recognizes one construct and replaces it with
// an intermediate tag (<slug>, <dialogue>, <talk>, ...); later stages rely on
// the tags produced by earlier ones:
//   - Pre-escape: page breaks, ampersands, double dashes
//   - Inline conventions: forced action, boneyard, notes, centered text,
//     forced transitions and slugs, sections, synopses, comments
//   - Blocks framed by blank lines: transitions, dialogue, scene headings,
//     Goldman sluglines
//   - Dialogue interiors: character, parenthetical, talk
//   - Catch-all action, emphasis, and cleanup merges
//   - Mapping of intermediate tags onto the final class vocabulary
//
// Assemble wraps the result in the screenplay container, Standalone turns
// that fragment into a full HTML document, and ExtractOutline reads the
// structure back out of converted markup.
package pipeline
