// Package ai turns free-text user messages into structured commands by way of
// an external language model, and routes them through the command dispatcher.
// Each call is a fresh, independent exchange; no conversational state is kept.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/moneta-app/finance-tracker/internal/command"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "interpreter").Logger()

// ErrInterpretation signals that the model reply could not be parsed as a
// command. The raw reply is logged for diagnostics but never propagated to
// the caller.
var ErrInterpretation = errors.New("model reply was not a valid command")

type Interpreter struct {
	client     CompletionClient
	dispatcher *command.Dispatcher
	now        func() time.Time
}

func NewInterpreter(client CompletionClient, dispatcher *command.Dispatcher) *Interpreter {
	return &Interpreter{
		client:     client,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Query interprets message on behalf of userID and executes the resulting
// command. The result is heterogeneous by action (see command.Dispatcher).
func (i *Interpreter) Query(ctx context.Context, message string, userID int) (any, error) {
	raw, err := i.client.Complete(ctx, Instructions(i.now()), message)
	if err != nil {
		return nil, err
	}

	cmd, err := parseCommand(raw)
	if err != nil {
		logger.Error().Err(err).Str("raw_reply", raw).Msg("failed to parse command from model reply")
		return nil, ErrInterpretation
	}

	return i.dispatcher.Dispatch(*cmd, userID)
}

// Matches a triple-backtick fenced block, with or without a language tag.
var fencedRe = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\\n?(.*?)```")

// sanitizeReply strips fenced code-block wrapping from a model reply. When
// fenced blocks are present, only their contents are retained.
func sanitizeReply(s string) string {
	matches := fencedRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	for _, m := range matches {
		b.WriteString(m[1])
	}
	return strings.TrimSpace(b.String())
}

func parseCommand(raw string) (*command.Command, error) {
	cleaned := sanitizeReply(raw)

	var cmd command.Command
	if err := json.Unmarshal([]byte(cleaned), &cmd); err != nil {
		return nil, err
	}
	return &cmd, nil
}
