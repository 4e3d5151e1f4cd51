package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/io/csvio"
	"github.com/wdm0006/featureforge/pkg/io/jsonlio"
	"github.com/wdm0006/featureforge/pkg/io/parquetio"
	"github.com/wdm0006/featureforge/pkg/profile"
)

var version = "0.1.0-dev"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	defPath := flag.String("definition", "", "Path to feature set definition (JSON, YAML or TOML)")
	inPath := flag.String("input", "", "Input table (csv, csv.gz or jsonl)")
	outPath := flag.String("output", "", "Output table (csv, jsonl or parquet)")
	hasHeader := flag.Bool("header", true, "Input CSV has a header row")
	delimiter := flag.String("delimiter", ",", "Input/output CSV delimiter")
	onlyFeatures := flag.Bool("features-only", false, "Write only id columns plus derived features")
	idColumns := flag.String("id-columns", "", "Comma-separated key columns kept with -features-only")
	showProfile := flag.Bool("profile", false, "Print a column summary of the output")
	flag.Parse()

	if *showVersion {
		fmt.Println("featureforge", version)
		return
	}
	if *defPath == "" || *inPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "need -definition, -input and -output. try -h")
		os.Exit(2)
	}

	def, err := LoadDefinition(*defPath)
	if err != nil {
		fail(err)
	}
	set, err := def.Build()
	if err != nil {
		fail(err)
	}

	delim, err := parseDelimiter(*delimiter)
	if err != nil {
		fail(err)
	}
	in, err := readInput(*inPath, *hasHeader, delim)
	if err != nil {
		fail(err)
	}

	out, err := set.Run(context.Background(), in)
	if err != nil {
		fail(err)
	}

	if *onlyFeatures {
		keep := []string{}
		if *idColumns != "" {
			keep = strings.Split(*idColumns, ",")
		}
		keep = append(keep, set.OutputColumns()...)
		if out, err = out.Select(keep...); err != nil {
			fail(err)
		}
	}

	if err := writeOutput(*outPath, out, delim); err != nil {
		fail(err)
	}

	if *showProfile {
		fmt.Print(profile.Report(profile.Summarize(out, 10)))
	}
}

func readInput(path string, hasHeader bool, delim rune) (*dataset.Frame, error) {
	switch tableFormat(path) {
	case "csv":
		return csvio.ReadFile(path, csvio.ReaderOptions{HasHeader: hasHeader, Delimiter: delim, SampleRows: 100})
	case "jsonl":
		return jsonlio.ReadFile(path)
	}
	return nil, fmt.Errorf("unsupported input format for %s", path)
}

func writeOutput(path string, f *dataset.Frame, delim rune) error {
	switch tableFormat(path) {
	case "csv":
		return csvio.WriteFile(path, f, csvio.WriterOptions{Delimiter: delim})
	case "jsonl":
		return jsonlio.WriteFile(path, f)
	case "parquet":
		return parquetio.WriteFile(path, f)
	}
	return fmt.Errorf("unsupported output format for %s", path)
}

// parseDelimiter decodes the -delimiter flag as a single rune. An empty
// value falls back to a comma; anything longer than one character is
// rejected rather than silently truncated.
func parseDelimiter(s string) (rune, error) {
	if s == "" {
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("delimiter %q is not valid UTF-8", s)
	}
	if size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}

// tableFormat picks a format by extension, looking through a trailing .gz.
func tableFormat(path string) string {
	if strings.HasSuffix(path, ".gz") {
		path = strings.TrimSuffix(path, ".gz")
	}
	switch filepath.Ext(path) {
	case ".csv", ".tsv":
		return "csv"
	case ".jsonl", ".ndjson":
		return "jsonl"
	case ".parquet":
		return "parquet"
	}
	return ""
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
