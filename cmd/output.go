package cmd

import (
	"fmt"
	"io"
	"os"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout rnadoc's CLI output.
//
// Icon semantics:
//   ✓  success
//   ✗  error / failure          (written to stderr)
//   -  not found / missing
//   ~  neutral info

// stdout is where command output goes; tests swap it.
var stdout io.Writer = os.Stdout

// printSection prints a top-level section header, e.g. "=== Object ===".
func printSection(title string) {
	fmt.Fprintf(stdout, "\n=== %s ===\n", title)
}

// printBullet prints a grouped-section bullet, e.g. "● Properties:".
func printBullet(title string) {
	fmt.Fprintf(stdout, "\n● %s\n", title)
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(name, msg string) {
	if name == "" {
		fmt.Fprintf(stdout, "  ✓  %s\n", msg)
	} else {
		fmt.Fprintf(stdout, "  ✓  [%s] %s\n", name, msg)
	}
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	if name == "" {
		fmt.Fprintf(os.Stderr, "  ✗  %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "  ✗  [%s] %s\n", name, msg)
	}
}

// printMiss prints a not-found / missing line.
func printMiss(name, msg string) {
	if name == "" {
		fmt.Fprintf(stdout, "  -  %s\n", msg)
	} else {
		fmt.Fprintf(stdout, "  -  [%s] %s\n", name, msg)
	}
}

// printInfo prints a neutral informational line.
func printInfo(name, msg string) {
	if name == "" {
		fmt.Fprintf(stdout, "  ~  %s\n", msg)
	} else {
		fmt.Fprintf(stdout, "  ~  [%s] %s\n", name, msg)
	}
}
