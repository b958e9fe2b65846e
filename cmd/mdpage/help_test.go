package main

// Notes:
// - printUsage: we test that every flag registered by parseFlags is documented.

import (
	"bytes"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestPrintUsage_DocumentsAllFlags - Help stays in sync with flags
// ---------------------------------------------------------------------------

func TestPrintUsage_DocumentsAllFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	usage := buf.String()

	fs := flag.NewFlagSet("mdpage", flag.ContinueOnError)
	f := &renderFlags{}
	addCommonFlags(fs, &f.common)
	addImageFlags(fs, &f.images)
	addOutputFlags(fs, &f.output)
	fs.IntVarP(&f.workers, "workers", "w", 0, "")
	fs.BoolVar(&f.rawHTML, "raw-html", false, "")
	fs.BoolVar(&f.version, "version", false, "")

	fs.VisitAll(func(fl *flag.Flag) {
		if !strings.Contains(usage, "--"+fl.Name) {
			t.Errorf("usage does not document --%s", fl.Name)
		}
		if fl.Shorthand != "" && !strings.Contains(usage, "-"+fl.Shorthand+",") {
			t.Errorf("usage does not document -%s", fl.Shorthand)
		}
	})

	for name := range knownEnvVars {
		if !strings.Contains(usage, name) {
			t.Errorf("usage does not document %s", name)
		}
	}
}

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv("")
	f, args, err := parseFlags([]string{
		"-c", "docs", "-o", "site", "-w", "4", "-q", "-v",
		"--img-class", "a b", "--camo-host", "https://c", "--camo-key", "k",
		"--style", "monokai", "--standalone", "--css", "hl.css", "--raw-html",
		"one.md", "two.md",
	}, env)
	if err != nil {
		t.Fatalf("parseFlags() unexpected error: %v", err)
	}

	want := renderFlags{
		common:  commonFlags{config: "docs", quiet: true, verbose: true},
		images:  imageFlags{classes: "a b", camoHost: "https://c", camoKey: "k"},
		output:  outputFlags{dir: "site", standalone: true, css: "hl.css", style: "monokai"},
		workers: 4,
		rawHTML: true,
	}
	if *f != want {
		t.Errorf("parseFlags() = %+v, want %+v", *f, want)
	}
	if strings.Join(args, ",") != "one.md,two.md" {
		t.Errorf("args = %v, want [one.md two.md]", args)
	}
}
