package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpage [flags] [file.md|dir|-]...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown to documentation-ready HTML.")
	fmt.Fprintln(w, "With no input, or \"-\", reads stdin and writes stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --standalone          Write full HTML documents")
	fmt.Fprintln(w, "      --raw-html            Pass raw HTML in Markdown through")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Images:")
	fmt.Fprintln(w, "      --img-class <s>       Classes added to every image")
	fmt.Fprintln(w, "      --camo-host <url>     Camo image proxy base URL")
	fmt.Fprintln(w, "      --camo-key <s>        Camo HMAC key")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --style <name>        Chroma style (default \"github\")")
	fmt.Fprintln(w, "      --css <path>          Write the highlight stylesheet to a file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timings and debug logs")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDPAGE_CONFIG, MDPAGE_CAMO_HOST, MDPAGE_CAMO_KEY,")
	fmt.Fprintln(w, "  MDPAGE_IMG_CLASS, MDPAGE_WORKERS, MDPAGE_RAW_HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}
