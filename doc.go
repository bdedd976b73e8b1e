// Package textplay converts plain-text screenplays written in the fountain
// convention into HTML.
//
// # Quick Start
//
//	conv, err := textplay.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, textplay.Input{
//	    Text: "FADE IN:\n\nINT. KITCHEN - DAY\n\nSteam rises.\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.HTML)
//
// By default the result is a fragment wrapped in <div id="screenplay">.
// Set Input.Standalone for a complete HTML document carrying a stylesheet,
// or Input.TaggedOnly for the intermediate tagged form (<slug>, <dialogue>,
// <talk>, ...) meant for post-processing into other formats.
//
// # Conversion Pipeline
//
// The text is folded through an ordered list of rewrite stages:
//
//  1. Pre-escape: page breaks, ampersands, double dashes
//  2. Inline conventions: forced action, boneyard, notes, centered text,
//     forced transitions and sluglines, sections, synopses, comments
//  3. Blocks set apart by blank lines: transitions, dialogue, scene headings
//  4. Dialogue interiors: character, parenthetical, spoken lines
//  5. Action catch-all, emphasis, merges of adjacent paragraphs
//  6. Mapping of intermediate tags onto HTML elements and classes
//
// StageNames lists the stages in execution order.
//
// # Output Vocabulary
//
//	h2.full-slugline      INT./EXT. scene headings
//	h5.goldman-slugline   all-caps sluglines and .forced sluglines
//	h3.right-transition   CUT TO:, FADE IN:, > forced transitions
//	p.center              > centered <
//	dl / dt.character     dialogue block and speaker
//	dd.parenthetical      (parenthetical)
//	dd.dialogue           spoken lines
//	p.action              everything else
//	p.comment             [[notes]] and // comments
//	div.page-break        === or --- rules
//
// # Styles
//
// Standalone documents embed a built-in style ("screenplay" by default,
// see StyleNames), a custom style directory (WithAssetPath), or a .css file:
//
//	conv, err := textplay.NewConverter(
//	    textplay.WithStyle("draft"),
//	    textplay.WithAssetPath("/path/to/assets"),
//	)
package textplay
