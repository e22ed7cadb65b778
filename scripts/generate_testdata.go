//go:build ignore

// generate_testdata.go creates sample record files for local development.
// Usage: go run scripts/generate_testdata.go
//
// Creates:
//
//	testdata/drives_small.json   (100 records)
//	testdata/drives_medium.json  (1000 records)
//	testdata/drives_full.json    (2500 records, the default dashboard set)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vanderheijden86/driveline/internal/datasource"
)

type datasetSpec struct {
	name string
	size int
}

var datasets = []datasetSpec{
	{"drives_small", 100},
	{"drives_medium", 1000},
	{"drives_full", 2500},
}

func main() {
	outputDir := "testdata"
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, ds := range datasets {
		fmt.Printf("Generating %s (%d records)...\n", ds.name, ds.size)

		cfg := datasource.DefaultGeneratorConfig()
		cfg.Count = ds.size
		records := datasource.Generate(cfg)

		path := filepath.Join(outputDir, ds.name+".json")
		if err := datasource.SaveJSON(path, records); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  wrote %s\n", path)
	}
}
