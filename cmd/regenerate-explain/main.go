package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqlc-dev/ppl/parser"
)

func main() {
	testName := flag.String("test", "", "Single test directory name to process (if empty, process all)")
	dryRun := flag.Bool("dry-run", false, "Print the tree without writing explain.txt")
	flag.Parse()

	testdataDir := "parser/testdata"

	if *testName != "" {
		if err := processTest(filepath.Join(testdataDir, *testName), *dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *testName, err)
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	var errors []string
	var processed int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := processTest(filepath.Join(testdataDir, entry.Name()), *dryRun); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		processed++
	}

	fmt.Printf("\nProcessed: %d, Errors: %d\n", processed, len(errors))
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "\nErrors:\n")
		for _, e := range errors {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		os.Exit(1)
	}
}

// processTest parses query.ppl and writes its tree to explain.txt.
func processTest(testDir string, dryRun bool) error {
	queryBytes, err := os.ReadFile(filepath.Join(testDir, "query.ppl"))
	if err != nil {
		return fmt.Errorf("reading query.ppl: %w", err)
	}
	query := strings.TrimRight(string(queryBytes), "\n")

	root, err := parser.Parse(context.Background(), query)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", truncate(query, 60), err)
	}
	explain := parser.Explain(root)

	if dryRun {
		fmt.Printf("%s:\n%s\n", filepath.Base(testDir), explain)
		return nil
	}
	outputPath := filepath.Join(testDir, "explain.txt")
	if err := os.WriteFile(outputPath, []byte(explain), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("%s -> %s\n", filepath.Base(testDir), filepath.Base(outputPath))
	return nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
