package textplay_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-textplay"
)

// Example converts a scene heading and a line of dialogue to an HTML fragment.
func Example() {
	conv, err := textplay.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), textplay.Input{
		Text: "\nINT. KITCHEN - DAY\n\nJOHN\nMorning.\n\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(string(result.HTML))
	// Output:
	// <div id="screenplay">
	//
	// <h2 class="full-slugline">INT. KITCHEN - DAY</h2>
	//
	// <dl>
	// <dt class="character">JOHN</dt>
	// <dd class="dialogue">Morning.</dd>
	// </dl>
	//
	// </div>
}

// Example_outline reads the structure of a converted screenplay.
func Example_outline() {
	conv, err := textplay.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	script := strings.Join([]string{
		"FADE IN:",
		"",
		"INT. KITCHEN - DAY",
		"",
		"Steam rises from a kettle.",
		"",
		"JOHN",
		"(tired)",
		"Morning.",
		"",
		"MARY (V.O.)",
		"You're late.",
		"",
	}, "\n")

	result, err := conv.Convert(context.Background(), textplay.Input{Text: script})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	o := result.Outline
	fmt.Println("scenes:", o.SceneHeadings)
	fmt.Println("dialogue blocks:", o.DialogueBlocks)
	fmt.Println("characters:", strings.Join(o.Characters, ", "))
	// Output:
	// scenes: 1
	// dialogue blocks: 2
	// characters: JOHN, MARY
}

// Example_tagged emits the intermediate tagged form for post-processing.
func Example_tagged() {
	conv, err := textplay.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), textplay.Input{
		Text:       "\nJOHN\nHello there.\n\n",
		TaggedOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.TrimSpace(string(result.HTML)))
	// Output:
	// <dialogue>
	// <character>JOHN</character>
	// <talk>Hello there.</talk>
	// </dialogue>
}

// Example_standalone produces a complete HTML document with the draft style.
func Example_standalone() {
	conv, err := textplay.NewConverter(textplay.WithStyle("draft"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), textplay.Input{
		Text:       "FADE IN:\n\nA dark room.\n",
		Standalone: true,
		Title:      "Pilot",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	doc := string(result.HTML)
	fmt.Println(strings.HasPrefix(doc, "<!DOCTYPE html>"))
	fmt.Println(strings.Contains(doc, "<title>Pilot</title>"))
	fmt.Println(strings.Contains(doc, `<h3 class="right-transition">FADE IN:</h3>`))
	// Output:
	// true
	// true
	// true
}
