package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// outputFlags holds flags choosing what is written and where.
type outputFlags struct {
	path       string
	standalone bool
	tagged     bool
	title      string
}

// styleFlags holds stylesheet flags for standalone documents.
type styleFlags struct {
	style     string // Name, .css path, or CSS content
	assetPath string // Custom styles directory
	noStyle   bool
}

// infoFlags holds flags that print information instead of converting.
type infoFlags struct {
	stats      bool
	listStages bool
	version    bool
	help       bool
}

// cliFlags holds every textplay flag.
type cliFlags struct {
	config  string
	quiet   bool
	verbose bool
	logFile string
	output  outputFlags
	style   styleFlags
	info    infoFlags
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.standalone, "standalone", false, "full HTML document with embedded stylesheet")
	fs.BoolVar(&f.tagged, "tagged", false, "intermediate tagged form, no HTML mapping")
	fs.StringVar(&f.title, "title", "", "standalone document title")
}

func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "style name or .css file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/{name}.css")
	fs.BoolVar(&f.noStyle, "no-style", false, "embed no stylesheet")
}

func addInfoFlags(fs *flag.FlagSet, f *infoFlags) {
	fs.BoolVar(&f.stats, "stats", false, "print an outline summary to stderr")
	fs.BoolVar(&f.listStages, "list-stages", false, "list conversion stages and exit")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
}

// newFlagSet declares every flag on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("textplay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging with per-stage timings")
	fs.StringVar(&f.logFile, "log-file", "", "also write JSON logs to a rotating file")

	addOutputFlags(fs, &f.output)
	addStyleFlags(fs, &f.style)
	addInfoFlags(fs, &f.info)
	return fs
}

// parseFlags parses command-line arguments (without the program name)
// and returns the flags and the input file arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
