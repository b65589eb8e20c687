package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/msgcat"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - runs the game on the given console streams until the players stop.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")
	log.Debug("starting", "log-level", conf.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, err := msgcat.New()
	if err != nil {
		return fmt.Errorf("could not load messages: %w", err)
	}

	reader := console.NewReader(in)
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error("could not close input", "error", err)
		}
	}()

	session := tictactoe.NewSession(logger, reader, console.NewWriter(out), catalog)

	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Debug("players left")

	return nil
}
