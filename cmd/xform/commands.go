package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/xform"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// transformFlags contains the flags shared by every transformation command.
type transformFlags struct {
	path   string
	value  string
	algo   string
	format string
}

func setupFlags(name, summary string, withValue, withAlgo bool) (*flag.FlagSet, *transformFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &transformFlags{}

	fs.StringVar(&flags.path, "path", "", "dot-separated path of the value to transform")
	if withValue {
		fs.StringVar(&flags.value, "value", "", "JSON literal written at the path")
	}
	if withAlgo {
		fs.StringVar(&flags.algo, "algo", string(xform.HashSHA256), fmt.Sprintf("digest algorithm %v", xform.HashAlgos()))
	}
	fs.StringVar(&flags.format, "o", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: xform %s [flags] <file|->\n\n", name)
		_, _ = fmt.Fprintf(output, "%s\n\n", summary)
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handleOverwrite(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := setupFlags("overwrite", "Replace the value at a path with a JSON literal.", true, false)
	return execute(fs, flags, args, stdin, stdout, func(ctx context.Context, req *xform.Request) (string, error) {
		t, err := xform.Use(xform.HashSHA256)
		if err != nil {
			return "", err
		}
		return t.Overwrite(ctx, req)
	})
}

func handleObfuscate(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := setupFlags("obfuscate", "Replace a string value with \"<algo>:<hex digest>\".", false, true)
	return execute(fs, flags, args, stdin, stdout, func(ctx context.Context, req *xform.Request) (string, error) {
		t, err := xform.Use(xform.HashAlgo(flags.algo))
		if err != nil {
			return "", fmt.Errorf("%w. Valid algorithms: %v", err, xform.HashAlgos())
		}
		return t.Obfuscate(ctx, req)
	})
}

func handleMask(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := setupFlags("mask", "Hide the trailing 80% of a string or number value.", false, false)
	return execute(fs, flags, args, stdin, stdout, func(ctx context.Context, req *xform.Request) (string, error) {
		t, err := xform.Use(xform.HashSHA256)
		if err != nil {
			return "", err
		}
		return t.Mask(ctx, req)
	})
}

// execute parses args, loads the document and writes the transformed result.
func execute(fs *flag.FlagSet, flags *transformFlags, args []string, stdin io.Reader, stdout io.Writer,
	transform func(context.Context, *xform.Request) (string, error)) error {
	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%s command requires exactly one file path or '-' for stdin", fs.Name())
	}

	if err := validateOutputFormat(flags.format); err != nil {
		return err
	}

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	result, err := transform(context.Background(), xform.NewRequest(data, flags.path, flags.value))
	if err != nil {
		return err
	}

	return writeOutput(stdout, result, flags.format)
}

func validateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the CLI user
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

func writeOutput(w io.Writer, doc, format string) error {
	if format == FormatJSON {
		writef(w, "%s\n", doc)
		return nil
	}

	out, err := toYAML(doc)
	if err != nil {
		return err
	}
	writef(w, "%s", out)
	return nil
}

// toYAML re-renders a JSON document as block-style YAML, keeping key order.
func toYAML(doc string) (string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &node); err != nil {
		return "", fmt.Errorf("converting to yaml: %w", err)
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return "", fmt.Errorf("marshaling to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("marshaling to yaml: %w", err)
	}
	return strings.TrimPrefix(buf.String(), "---\n"), nil
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
