package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-textplay"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textplay [flags] [file ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Textplay/fountain screenplays to HTML. Files are read and")
	fmt.Fprintln(w, "concatenated in order; without files (or with -) stdin is read.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone          Full HTML document instead of a fragment")
	fmt.Fprintln(w, "      --title <s>           Document title (default: Screenplay)")
	fmt.Fprintln(w, "      --tagged              Intermediate tagged form, no HTML mapping")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name or .css file path")
	fmt.Fprintf(w, "                            Built-in: %s\n", strings.Join(textplay.StyleNames(), ", "))
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/{name}.css")
	fmt.Fprintln(w, "      --no-style            Embed no stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Information:")
	fmt.Fprintln(w, "      --stats               Print an outline summary to stderr")
	fmt.Fprintln(w, "      --list-stages         List conversion stages in order")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging with per-stage timings")
	fmt.Fprintln(w, "      --log-file <path>     Also write JSON logs to a rotating file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 conversion error, 2 usage or config, 3 I/O.")
}
