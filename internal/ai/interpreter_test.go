package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/moneta-app/finance-tracker/internal/command"
	"github.com/moneta-app/finance-tracker/internal/models"
	"github.com/moneta-app/finance-tracker/internal/repo"
)

// fakeClient replays a canned reply and records what it was asked.
type fakeClient struct {
	reply        string
	err          error
	instructions string
	userText     string
}

func (f *fakeClient) Complete(_ context.Context, instructions, userText string) (string, error) {
	f.instructions = instructions
	f.userText = userText
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestInterpreter(reply string) (*Interpreter, *fakeClient, *repo.InMemoryTransactionRepository) {
	transactions := repo.NewInMemoryTransactionRepository()
	client := &fakeClient{reply: reply}
	return NewInterpreter(client, command.NewDispatcher(transactions)), client, transactions
}

func TestQueryDispatchesAddExpense(t *testing.T) {
	i, client, transactions := newTestInterpreter(
		`{"action":"addExpense","amount":45,"category":"food","date":"2025-10-20","description":"dinner","filters":null}`)

	result, err := i.Query(context.Background(), "I spent 45 on dinner", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, ok := result.(string)
	if !ok {
		t.Fatalf("expected confirmation string, got %T", result)
	}
	if !strings.Contains(msg, "45") || !strings.Contains(msg, "food") {
		t.Errorf("confirmation %q should mention amount and category", msg)
	}

	rows, _ := transactions.Filter(models.KindExpense, 9, repo.TransactionFilter{})
	if len(rows) != 1 || rows[0].UserID != 9 {
		t.Fatalf("expected one expense owned by user 9, got %+v", rows)
	}

	if client.userText != "I spent 45 on dinner" {
		t.Errorf("user text %q was not forwarded verbatim", client.userText)
	}
	if !strings.Contains(client.instructions, `"addExpense"`) {
		t.Error("instructions should enumerate the valid actions")
	}
}

func TestQueryStripsFencedReply(t *testing.T) {
	i, _, transactions := newTestInterpreter("```json\n" +
		`{"action":"addExpense","amount":12.5,"category":"transport","date":"2025-10-20","description":"taxi","filters":null}` +
		"\n```")

	if _, err := i.Query(context.Background(), "taxi ride", 1); err != nil {
		t.Fatalf("fenced reply should parse after sanitization: %v", err)
	}

	rows, _ := transactions.Filter(models.KindExpense, 1, repo.TransactionFilter{})
	if len(rows) != 1 || rows[0].Amount != 12.5 {
		t.Fatalf("expected the fenced command to be executed, got %+v", rows)
	}
}

func TestQueryUnknownActionIsNotAnError(t *testing.T) {
	i, _, _ := newTestInterpreter(`{"action":"doSomethingUnknown","amount":null,"category":null,"date":null,"description":null,"filters":null}`)

	result, err := i.Query(context.Background(), "do something weird", 1)
	if err != nil {
		t.Fatalf("unknown action must not fail, got %v", err)
	}
	if msg, ok := result.(string); !ok || !strings.Contains(msg, "doSomethingUnknown") {
		t.Errorf("expected descriptive message naming the action, got %v", result)
	}
}

func TestQueryGarbageReplyIsInterpretationFailure(t *testing.T) {
	i, _, _ := newTestInterpreter("I'm sorry, I cannot help with that.")

	_, err := i.Query(context.Background(), "add expense", 1)
	if !errors.Is(err, ErrInterpretation) {
		t.Fatalf("expected ErrInterpretation, got %v", err)
	}
	if err != nil && strings.Contains(err.Error(), "sorry") {
		t.Error("raw model text must not leak into the returned error")
	}
}

func TestQueryClientErrorPropagates(t *testing.T) {
	transactions := repo.NewInMemoryTransactionRepository()
	client := &fakeClient{err: errors.New("connection refused")}
	i := NewInterpreter(client, command.NewDispatcher(transactions))

	if _, err := i.Query(context.Background(), "hello", 1); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}

func TestSanitizeReply(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"No fences", `{"a":1}`, `{"a":1}`},
		{"Surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"Fence with language tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"Fence without tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"Prose around fence", "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!", `{"a":1}`},
		{"Only fenced content kept", "noise ```\n{\"a\":\n``` more noise ```\n1}\n```", "{\"a\":\n1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeReply(tt.input); got != tt.want {
				t.Errorf("sanitizeReply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInstructionsEmbedCurrentDate(t *testing.T) {
	i, client, _ := newTestInterpreter(`{"action":"getTotalBalance","amount":null,"category":null,"date":null,"description":null,"filters":null}`)

	if _, err := i.Query(context.Background(), "what's my balance", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today := i.now().Format(command.ISODate)
	if !strings.Contains(client.instructions, today) {
		t.Errorf("instructions should pin today's date %s", today)
	}
}
