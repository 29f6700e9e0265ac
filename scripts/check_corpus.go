// Command check_corpus validates the markdown test corpus without
// running the test suite: every file must extract cleanly, every test
// needs a unique name, and every ast pattern must parse.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/islamfazliyev/Wolf-Lang/mdtest"
)

func main() {
	pattern := "test/*_test.md"
	if len(os.Args) > 1 {
		pattern = os.Args[1]
	}

	files, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no corpus files match %s\n", pattern)
		os.Exit(1)
	}

	defects := 0
	total := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			defects++
			continue
		}

		cases, err := mdtest.ExtractTestCases(string(content))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			defects++
			continue
		}

		seen := map[string]bool{}
		assertions := 0
		for _, tc := range cases {
			if seen[tc.Name] {
				fmt.Fprintf(os.Stderr, "%s: duplicate test name '%s'\n", file, tc.Name)
				defects++
			}
			seen[tc.Name] = true
			assertions += len(tc.Assertions)
		}

		total += len(cases)
		fmt.Printf("%-30s %3d cases %3d assertions\n", file, len(cases), assertions)
	}

	fmt.Printf("%d cases total\n", total)
	if defects > 0 {
		fmt.Fprintf(os.Stderr, "%d defects\n", defects)
		os.Exit(1)
	}
}
