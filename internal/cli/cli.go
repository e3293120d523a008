// Package cli reads command-line flags into generator options and prints
// the generated result.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/badpassword/badpassword-go/internal/model"
)

// ExitError carries a process exit code. An empty Message means the
// diagnostic has already been written.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the parsed options, a
// boolean indicating the program should exit cleanly (help was requested),
// or an ExitError for malformed input. Usage and flag errors go to output.
func Parse(args []string, output io.Writer) (model.Options, bool, error) {
	opts := model.DefaultOptions()

	flagSet := flag.NewFlagSet("bad-password", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
bad-password - Generate a secure, memorable password using the XKCD method

Usage:
  bad-password [options]
  bad-password serve

Options:
  -w, --words int      words to include in the password (default 1)
  -s, --symbols int    special characters to include in the password (default 0)
  -c, --caps           capitalize the first letter (makes it super secure!)
  -n, --numbers        add numbers at the end (definitely not predictable)
  -e, --exclamation    add an exclamation mark (security experts recommend this)
  -h, --help           show this help
`)
	}

	flagSet.IntVar(&opts.Words, "w", opts.Words, "words to include in the password")
	flagSet.IntVar(&opts.Words, "words", opts.Words, "words to include in the password")
	flagSet.IntVar(&opts.Symbols, "s", opts.Symbols, "special characters to include in the password")
	flagSet.IntVar(&opts.Symbols, "symbols", opts.Symbols, "special characters to include in the password")
	flagSet.BoolVar(&opts.Caps, "c", false, "capitalize the first letter")
	flagSet.BoolVar(&opts.Caps, "caps", false, "capitalize the first letter")
	flagSet.BoolVar(&opts.Numbers, "n", false, "add numbers at the end")
	flagSet.BoolVar(&opts.Numbers, "numbers", false, "add numbers at the end")
	flagSet.BoolVar(&opts.Exclamation, "e", false, "add an exclamation mark")
	flagSet.BoolVar(&opts.Exclamation, "exclamation", false, "add an exclamation mark")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return model.Options{}, true, nil
		}
		return model.Options{}, false, &ExitError{Code: 2}
	}

	if flagSet.NArg() > 0 {
		fmt.Fprintf(output, "unexpected argument: %s\n", flagSet.Arg(0))
		flagSet.Usage()
		return model.Options{}, false, &ExitError{Code: 2}
	}

	return opts, false, nil
}

// Report writes every notice on its own line followed by the password,
// which is always the last line.
func Report(w io.Writer, res model.Result) error {
	for _, n := range res.Notices {
		if _, err := fmt.Fprintln(w, n.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, res.Password)
	return err
}
