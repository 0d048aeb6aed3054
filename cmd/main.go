// Command sori reads one raw pronunciation-assessment payload and prints
// the generated feedback as JSON. It is the thin presentation collaborator
// around the engine; the engine itself exposes no I/O surface.
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sorilab/sori/internal/app"
	"github.com/sorilab/sori/internal/config"
	"github.com/sorilab/sori/internal/domain/model"
	"github.com/sorilab/sori/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Tone is validated by config.Load; the error path is unreachable here.
	tone, _ := model.ParseTone(cfg.Tone)

	raw, err := readPayload(os.Args[1:])
	if err != nil {
		os.Stderr.WriteString("failed to read payload: " + err.Error() + "\n")
		os.Exit(1)
	}

	svc := app.New(
		app.WithTone(tone),
		app.WithLogger(log),
	)
	out := svc.Generate(ctx, app.RawPayload(raw))

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		os.Stderr.WriteString("failed to encode result: " + err.Error() + "\n")
		os.Exit(1)
	}
	os.Stdout.Write(append(encoded, '\n'))
}

// readPayload takes the payload from the first argument (a file path, or
// "-" for stdin) and defaults to stdin when no argument is given.
func readPayload(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
