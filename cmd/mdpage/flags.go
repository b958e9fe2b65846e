package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling config lookup and verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// imageFlags holds flags applied to every rendered <img>.
type imageFlags struct {
	classes  string
	camoHost string
	camoKey  string
}

// outputFlags holds flags controlling what gets written.
type outputFlags struct {
	dir        string // Output file or directory
	standalone bool   // Wrap fragments in a full HTML document
	css        string // Write the highlight stylesheet to this path
	style      string // Chroma style name
}

// renderFlags holds all command-line flags.
type renderFlags struct {
	common  commonFlags
	images  imageFlags
	output  outputFlags
	workers int
	rawHTML bool
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and debug logs")
}

// addImageFlags adds image flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.StringVar(&f.classes, "img-class", "", "space-separated classes added to every image")
	fs.StringVar(&f.camoHost, "camo-host", "", "Camo image proxy base URL")
	fs.StringVar(&f.camoKey, "camo-key", "", "Camo HMAC key")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.standalone, "standalone", false, "write full HTML documents")
	fs.StringVar(&f.css, "css", "", "write the highlight stylesheet to a file")
	fs.StringVar(&f.style, "style", "", "highlight style (default \"github\")")
}

// parseFlags parses command-line flags and returns positional args.
// Help output goes to env.Stdout, parse errors are returned.
func parseFlags(args []string, env *Environment) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("mdpage", flag.ContinueOnError)
	f := &renderFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.rawHTML, "raw-html", false, "pass raw HTML in Markdown through")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)
	addImageFlags(fs, &f.images)
	addOutputFlags(fs, &f.output)

	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printUsage(env.Stdout) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
