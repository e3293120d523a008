package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/badpassword/badpassword-go/internal/cli"
	"github.com/badpassword/badpassword-go/internal/config"
	"github.com/badpassword/badpassword-go/internal/logger"
	"github.com/badpassword/badpassword-go/internal/repository"
	"github.com/badpassword/badpassword-go/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	slog.SetDefault(logger.New(os.Stderr, level, cfg.LogFormat))

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := run(cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so it can be driven from tests with in-memory
// writers.
func run(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "serve" {
		svc, err := newService()
		if err != nil {
			return err
		}
		return serve(cfg, svc)
	}

	opts, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	res, err := svc.Generate(opts)
	if err != nil {
		return err
	}
	return cli.Report(stdout, res)
}

func newService() (*service.GeneratorService, error) {
	dict, err := repository.LoadDictionary(repository.DefaultDictionaryPath)
	if err != nil {
		slog.Debug("dictionary load failed", "error", err)
		return nil, dictionaryExitError(err)
	}
	return service.NewGeneratorService(dict), nil
}

func dictionaryExitError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDictionaryEmpty):
		return &cli.ExitError{Code: 1, Message: "Error: Password file is empty"}
	case errors.Is(err, repository.ErrDictionaryUnreadable):
		return &cli.ExitError{
			Code:    1,
			Message: fmt.Sprintf("Error: Could not read password file '%s'", repository.DefaultDictionaryPath),
		}
	}
	return err
}
