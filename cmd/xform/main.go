package main

import (
	"fmt"
	"io"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var handler func([]string, io.Reader, io.Writer) error

	switch args[0] {
	case "version", "-v", "--version":
		writef(stdout, "xform %s\n", version)
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "overwrite":
		handler = handleOverwrite
	case "obfuscate":
		handler = handleObfuscate
	case "mask":
		handler = handleMask
	default:
		writef(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}

	if err := handler(args[1:], stdin, stdout); err != nil {
		writef(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	writef(w, `xform - path-addressed JSON value transformations

Usage:
  xform <command> [flags] <file|->

Commands:
  overwrite  Replace the value at a path with a JSON literal
  obfuscate  Replace a string value with its digest
  mask       Hide the trailing 80%% of a string or number value
  version    Print version information
  help       Show this help message

Examples:
  xform overwrite -path user.name -value '"anon"' user.json
  xform obfuscate -path user.email -algo sha3 user.json
  cat user.json | xform mask -path user.phone -o yaml -

Run 'xform <command> --help' for more information on a command.
`)
}

// writef writes to w, reporting write failures on stderr.
func writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
