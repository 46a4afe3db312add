// Command zkguest-run executes the built-in sample guest on the host,
// verifies that its halt output binds its journal,
// and prints a summary of the session.
//
// Configuration is read from ZKGUEST_* environment variables;
// see the config type for the full list.
// The process exits with the guest's exit code
// on success, or 1 if the run or verification fails.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gordian-engine/zkguest/zgexec"
	"github.com/gordian-engine/zkguest/zghash/zgsha256"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	code, err := mainE(ctx, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}

	cancel()
	os.Exit(int(code))
}

func mainE(ctx context.Context, stdout, stderr io.Writer) (uint8, error) {
	cfg, err := parseConfig()
	if err != nil {
		return 0, err
	}

	log, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintln(stderr, "failed to close log file:", err)
		}
	}()

	return run(ctx, log, cfg, stdout)
}

func run(ctx context.Context, log *slog.Logger, cfg config, stdout io.Writer) (uint8, error) {
	payload, err := cfg.payload()
	if err != nil {
		return 0, err
	}

	impl := zgsha256.Impl{}
	e := zgexec.NewExecutor(log.With("sys", "executor"), zgexec.ExecutorConfig{
		Impl:            impl,
		MaxChannelBytes: cfg.MaxChannelBytes,
	})

	s, err := e.Run(ctx, sampleGuest(payload, cfg.ExitCode))
	if err != nil {
		return 0, fmt.Errorf("failed to run guest: %w", err)
	}

	if err := s.Verify(impl); err != nil {
		return 0, fmt.Errorf("session failed verification: %w", err)
	}
	log.Info(
		"Session verified",
		"exit_code", s.ExitCode,
		"journal_bytes", len(s.Journal),
	)

	if cfg.SessionOut != "" {
		b, err := s.MarshalBinary()
		if err != nil {
			return 0, fmt.Errorf("failed to encode session: %w", err)
		}
		if err := os.WriteFile(cfg.SessionOut, b, 0o644); err != nil {
			return 0, fmt.Errorf("failed to write session: %w", err)
		}
		log.Info("Wrote session", "path", cfg.SessionOut, "bytes", len(b))
	}

	fmt.Fprintf(stdout, "exit code:      %d\n", s.ExitCode)
	fmt.Fprintf(stdout, "journal:        %x\n", s.Journal)
	fmt.Fprintf(stdout, "journal digest: %s\n", s.JournalDigest(impl))
	fmt.Fprintf(stdout, "output digest:  %s\n", s.OutputDigest())

	return s.ExitCode, nil
}
