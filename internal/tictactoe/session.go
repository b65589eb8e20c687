package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/msgcat"
)

const (
	AxisRow    = "row"
	AxisColumn = "column"

	minCoordinate = 1
	maxCoordinate = entity.BoardSize
)

type inputSource interface {
	NextInt() (int, error)
	NextWord() (string, error)
}

type outputSink interface {
	Println(message string) error
	RenderBoard(board entity.Board) error
}

type messages interface {
	Render(key string, data any) (string, error)
}

// Session drives rounds of a two player game over an input source and an output sink.
type Session struct {
	logger   *slog.Logger
	input    inputSource
	output   outputSink
	messages messages

	game *entity.Game
}

func NewSession(logger *slog.Logger, input inputSource, output outputSink, messages messages) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		input:    input,
		output:   output,
		messages: messages,

		game: entity.NewGame(""),
	}
}

// Game returns the state of the current round.
func (that *Session) Game() *entity.Game {
	return that.game
}

// Run - greets the players, plays rounds until they decline a rematch and says goodbye.
func (that *Session) Run(ctx context.Context) error {
	if err := that.say(msgcat.KeyWelcome, nil); err != nil {
		return err
	}

	for {
		if _, err := that.PlayRound(ctx); err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}

		again, err := that.OfferRematch(ctx)
		if err != nil {
			return fmt.Errorf("failed to offer rematch: %w", err)
		}

		if !again {
			break
		}
	}

	return that.say(msgcat.KeyFarewell, nil)
}

// PlayRound - plays a single round from an empty board to a win or a draw.
func (that *Session) PlayRound(ctx context.Context) (entity.Outcome, error) {
	that.game.ID = uuid.NewString()
	that.game.Initialize()

	log := that.logger.With("method", "PlayRound", "round", that.game.ID)
	log.Info("round started")

	if err := that.output.RenderBoard(that.game.Board); err != nil {
		return entity.OutcomeOngoing, fmt.Errorf("failed to render board: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return entity.OutcomeOngoing, fmt.Errorf("round interrupted: %w", err)
		}

		if err := that.TakeTurn(ctx); err != nil {
			return entity.OutcomeOngoing, fmt.Errorf("failed to take turn: %w", err)
		}

		if err := that.output.RenderBoard(that.game.Board); err != nil {
			return entity.OutcomeOngoing, fmt.Errorf("failed to render board: %w", err)
		}

		switch outcome := that.game.Resolve(); outcome {
		case entity.OutcomeWin:
			log.Info("round finished", "outcome", outcome.String(), "winner", that.game.Winner)
			return outcome, that.say(msgcat.KeyWin, map[string]string{"Mark": that.game.Winner})
		case entity.OutcomeDraw:
			log.Info("round finished", "outcome", outcome.String())
			return outcome, that.say(msgcat.KeyDraw, nil)
		}
	}
}

// TakeTurn - collects a row and a column until they point at an empty cell, then places the mark.
// The turn is not passed to the other player here.
func (that *Session) TakeTurn(ctx context.Context) error {
	log := that.logger.With("method", "TakeTurn", "round", that.game.ID, "player", that.game.Turn)

	for {
		if err := that.say(msgcat.KeyTurn, map[string]string{"Mark": that.game.Turn}); err != nil {
			return err
		}

		row, err := that.RequestCoordinate(ctx, AxisRow)
		if err != nil {
			return err
		}

		col, err := that.RequestCoordinate(ctx, AxisColumn)
		if err != nil {
			return err
		}

		err = that.game.Place(row, col)
		if errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("move rejected", "row", row, "col", col, "error", err)

			if err = that.say(msgcat.KeyInvalidMove, nil); err != nil {
				return err
			}
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to place mark: %w", err)
		}

		log.Debug("move accepted", "row", row, "col", col)

		return nil
	}
}

// RequestCoordinate - prompts for axis until a number from 1 to 3 is entered and returns it 0-based.
// Only a failure of the input source itself is returned.
func (that *Session) RequestCoordinate(ctx context.Context, axis string) (int, error) {
	log := that.logger.With("method", "RequestCoordinate", "axis", axis)

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("coordinate request interrupted: %w", err)
		}

		if err := that.say(msgcat.KeyPrompt, map[string]string{"Axis": axis}); err != nil {
			return 0, err
		}

		value, err := that.input.NextInt()
		switch {
		case err == nil && value >= minCoordinate && value <= maxCoordinate:
			return value - 1, nil
		case err == nil:
			log.Debug("coordinate rejected", "value", value, "error", apperror.ErrInvalidCoordinate)
		case errors.Is(err, apperror.ErrNotANumber):
			log.Debug("coordinate rejected", "error", err)
		default:
			log.Error("failed to read coordinate", "error", err)
			return 0, fmt.Errorf("failed to read %s: %w", axis, err)
		}

		if err = that.say(msgcat.KeyInvalidInput, nil); err != nil {
			return 0, err
		}
	}
}

// OfferRematch - asks once whether to play again. Only an answer starting with y or Y means yes.
func (that *Session) OfferRematch(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("rematch interrupted: %w", err)
	}

	if err := that.say(msgcat.KeyRematch, nil); err != nil {
		return false, err
	}

	answer, err := that.input.NextWord()
	if err != nil {
		that.logger.Error("failed to read rematch answer", "error", err)
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

func (that *Session) say(key string, data any) error {
	message, err := that.messages.Render(key, data)
	if err != nil {
		return fmt.Errorf("failed to render message: %w", err)
	}

	if err = that.output.Println(message); err != nil {
		return fmt.Errorf("failed to print message: %w", err)
	}

	return nil
}
