// Package tool exposes a single named operation over the MCP stdio transport.
package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidInput = errors.New("invalid input")

// Args holds the validated string arguments of one call.
type Args map[string]string

// Handler answers one call. The context carries a logger tagged with the
// tool name and call id, see zerolog.Ctx.
type Handler func(ctx context.Context, args Args) (string, error)

// Field is one required string input.
type Field struct {
	Name        string
	Description string
}

// Adapter binds an operation name and input schema to a handler.
type Adapter struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Handler     Handler

	logger    zerolog.Logger
	validator *gojsonschema.Schema
}

func New(name, description string, schema json.RawMessage, handler Handler, logger zerolog.Logger) (*Adapter, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("tool name is required")
	}
	if handler == nil {
		return nil, fmt.Errorf("tool %s: handler is required", name)
	}

	validator, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("tool %s: compile schema: %w", name, err)
	}

	return &Adapter{
		Name:        name,
		Description: description,
		Schema:      schema,
		Handler:     handler,
		logger:      logger.With().Str("tool", name).Logger(),
		validator:   validator,
	}, nil
}

// StringSchema is the JSON schema of an object whose fields are all
// required strings.
func StringSchema(fields ...Field) json.RawMessage {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, field := range fields {
		properties[field.Name] = map[string]any{
			"type":        "string",
			"description": field.Description,
		}
		required = append(required, field.Name)
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	data, _ := json.Marshal(schema)
	return data
}

// Validate checks raw call arguments against the schema.
func (a *Adapter) Validate(raw map[string]any) (Args, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	result, err := a.validator.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validate %s input: %w", a.Name, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, "; "))
	}

	args := make(Args, len(raw))
	for key, value := range raw {
		if text, ok := value.(string); ok {
			args[key] = text
		}
	}
	return args, nil
}

// Call validates raw, runs the handler and wraps its text in a tool result.
// Failures come back as error results rather than protocol errors.
func (a *Adapter) Call(ctx context.Context, raw map[string]any) *mcp.CallToolResult {
	logger := a.logger.With().Str("call_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	args, err := a.Validate(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("rejected call")
		return mcp.NewToolResultError(err.Error())
	}

	start := time.Now()
	text, err := a.Handler(ctx, args)
	if err != nil {
		logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("call failed")
		return mcp.NewToolResultError(err.Error())
	}

	logger.Debug().Dur("elapsed", time.Since(start)).Msg("call done")
	return mcp.NewToolResultText(text)
}

// Text returns the concatenated text content of a tool result.
func Text(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var parts []string
	for _, content := range result.Content {
		switch text := content.(type) {
		case mcp.TextContent:
			parts = append(parts, text.Text)
		case *mcp.TextContent:
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
