// Package main implements iupgen, the generator for the callback binding
// table in pkg/callback.
//
// It reads the callback table from callbacks.yaml, validates it, and emits
// callbacks_gen.go: one Callback declaration plus one dispatch trampoline
// per native callback name. The slot-management protocol itself is not
// generated; it lives once, in pkg/callback.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-iup/iup/cmd/iupgen/internal/gen"
	"github.com/go-iup/iup/cmd/iupgen/internal/spec"
)

func main() {
	tablePath := flag.String("table", "pkg/callback/callbacks.yaml", "callback table to read, relative to the repo root")
	outPath := flag.String("out", "pkg/callback/callbacks_gen.go", "file to write, relative to the repo root")
	flag.Parse()

	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	modPath, err := gen.ModulePath(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving module path: %v\n", err)
		os.Exit(1)
	}

	table, err := spec.Load(filepath.Join(root, *tablePath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading callback table: %v\n", err)
		os.Exit(1)
	}

	src, err := gen.Render(table, modPath, filepath.Base(*tablePath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering callback bindings: %v\n", err)
		os.Exit(1)
	}

	target := filepath.Join(root, *outPath)
	if err := os.WriteFile(target, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", target, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s (%d callbacks)\n", target, len(table.Callbacks))
}

// findRepoRoot walks up from the working directory looking for go.mod.
func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}
