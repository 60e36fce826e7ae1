//go:build ignore
// +build ignore

// Prints a large line-per-item sample for trying the editor:
//
//	go run scripts/generate_sample.go | linemark edit -
package main

import (
	"bufio"
	"fmt"
	mrand "math/rand"
	"os"
)

var prefixes = []string{"", "", "", "- ", "- [ ] ", "> ", "### "}

var words = []string{
	"deploy", "review", "config", "cache", "rollback", "schema", "token",
	"render", "preview", "export", "draft", "release", "budget", "owner",
}

func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	const total = 300
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintln(w, "Sample plan")
	for i := 1; i < total; i++ {
		if mr.Float64() < 0.05 {
			fmt.Fprintln(w)
			continue
		}
		prefix := prefixes[mr.Intn(len(prefixes))]
		fmt.Fprintf(w, "%sstep %03d: %s\n", prefix, i, sentence(mr, 3+mr.Intn(8)))
	}
}

func sentence(r *mrand.Rand, n int) string {
	out := make([]byte, 0, n*8)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, words[r.Intn(len(words))]...)
	}
	return string(out)
}
