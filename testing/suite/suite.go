package suite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/msgcat"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

type inputSource interface {
	NextInt() (int, error)
	NextWord() (string, error)
}

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Output  *bytes.Buffer
	Session *tictactoe.Session
}

// New - builds a session that reads the given text as if it was typed on the console.
func New(t *testing.T, input string) (context.Context, *Suite) {
	t.Helper()

	return NewWithInput(t, console.NewReader(strings.NewReader(input)))
}

// NewWithInput - builds a session over any input source, output is captured.
func NewWithInput(t *testing.T, input inputSource) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	catalog, err := msgcat.New()
	if err != nil {
		t.Fatalf("could not load messages: %v", err)
	}

	output := &bytes.Buffer{}
	session := tictactoe.NewSession(logger, input, console.NewWriter(output), catalog)

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Output:  output,
		Session: session,
	}
}

// Lines returns the captured output split into lines.
func (that *Suite) Lines() []string {
	return strings.Split(strings.TrimSuffix(that.Output.String(), "\n"), "\n")
}

// Script is an input source that replays tokens exactly, including empty ones.
type Script struct {
	tokens []string
}

func NewScript(tokens ...string) *Script {
	return &Script{tokens: tokens}
}

func (that *Script) NextWord() (string, error) {
	if len(that.tokens) == 0 {
		return "", apperror.ErrInputExhausted
	}

	token := that.tokens[0]
	that.tokens = that.tokens[1:]

	return token, nil
}

func (that *Script) NextInt() (int, error) {
	token, err := that.NextWord()
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotANumber, token)
	}

	return value, nil
}

// Remaining reports how many tokens were not consumed.
func (that *Script) Remaining() int {
	return len(that.tokens)
}
