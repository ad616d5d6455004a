package tool

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func echoAdapter(t *testing.T) *Adapter {
	t.Helper()
	schema := StringSchema(
		Field{Name: "city", Description: "City name."},
		Field{Name: "question", Description: "Question."},
	)
	adapter, err := New("askEcho", "Echo the question.", schema, func(ctx context.Context, args Args) (string, error) {
		if args["question"] == "fail" {
			return "", errors.New("upstream down")
		}
		return args["city"] + ": " + args["question"], nil
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return adapter
}

func TestStringSchemaRequiresEveryField(t *testing.T) {
	var decoded struct {
		Type       string                    `json:"type"`
		Properties map[string]map[string]any `json:"properties"`
		Required   []string                  `json:"required"`
	}
	if err := json.Unmarshal(StringSchema(Field{Name: "question"}), &decoded); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	if decoded.Type != "object" || len(decoded.Required) != 1 || decoded.Required[0] != "question" {
		t.Fatalf("unexpected schema: %+v", decoded)
	}
	if decoded.Properties["question"]["type"] != "string" {
		t.Fatalf("question should be a string: %+v", decoded.Properties)
	}
}

func TestValidate(t *testing.T) {
	adapter := echoAdapter(t)

	args, err := adapter.Validate(map[string]any{"city": "Paris", "question": "temp?"})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if args["city"] != "Paris" || args["question"] != "temp?" {
		t.Fatalf("unexpected args: %+v", args)
	}

	cases := map[string]map[string]any{
		"missing question": {"city": "Paris"},
		"nil arguments":    nil,
		"wrong type":       {"city": "Paris", "question": 42},
	}
	for name, raw := range cases {
		if _, err := adapter.Validate(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestCallWrapsText(t *testing.T) {
	adapter := echoAdapter(t)

	result := adapter.Call(context.Background(), map[string]any{"city": "Paris", "question": "temp?"})
	if result.IsError {
		t.Fatalf("unexpected error result: %s", Text(result))
	}
	if got := Text(result); got != "Paris: temp?" {
		t.Fatalf("Text() = %q", got)
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	if !strings.Contains(string(data), `"content":[{"type":"text","text":"Paris: temp?"}]`) {
		t.Fatalf("unexpected envelope: %s", data)
	}
}

func TestCallReportsFailures(t *testing.T) {
	adapter := echoAdapter(t)

	result := adapter.Call(context.Background(), map[string]any{"city": "Paris"})
	if !result.IsError || !strings.Contains(Text(result), "question") {
		t.Fatalf("expected validation error naming question, got %+v", result)
	}

	result = adapter.Call(context.Background(), map[string]any{"city": "Paris", "question": "fail"})
	if !result.IsError || Text(result) != "upstream down" {
		t.Fatalf("expected handler error, got %+v", result)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	noop := func(context.Context, Args) (string, error) { return "", nil }

	if _, err := New("", "", StringSchema(), noop, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := New("askX", "", StringSchema(), nil, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for nil handler")
	}
	if _, err := New("askX", "", json.RawMessage(`{"type": 7}`), noop, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for invalid schema")
	}
}

func TestServerListsAndCallsOneTool(t *testing.T) {
	srv := echoAdapter(t).Server(Info{Name: "Echo MCP", Version: "1.0.0"})
	ctx := context.Background()

	messages := []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list","params":{}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"askEcho","arguments":{"city":"Oslo","question":"wind"}}}`,
	}

	var replies []string
	for _, message := range messages {
		reply := srv.HandleMessage(ctx, json.RawMessage(message))
		data, err := json.Marshal(reply)
		if err != nil {
			t.Fatalf("marshal reply: %v", err)
		}
		replies = append(replies, string(data))
	}

	if !strings.Contains(replies[0], `"Echo MCP"`) {
		t.Fatalf("initialize reply missing server name: %s", replies[0])
	}
	if strings.Count(replies[1], `"name":"askEcho"`) != 1 || !strings.Contains(replies[1], `"required":["city","question"]`) {
		t.Fatalf("tools/list reply should carry exactly askEcho with its schema: %s", replies[1])
	}
	if !strings.Contains(replies[2], `"text":"Oslo: wind"`) {
		t.Fatalf("tools/call reply missing text: %s", replies[2])
	}
}
