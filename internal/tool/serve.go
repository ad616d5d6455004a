package tool

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Info names the server process in the MCP handshake.
type Info struct {
	Name    string
	Version string
}

// Server builds an MCP server that lists and serves only this adapter.
func (a *Adapter) Server(info Info) *server.MCPServer {
	s := server.NewMCPServer(info.Name, info.Version, server.WithToolCapabilities(false))
	s.AddTool(mcp.NewToolWithRawSchema(a.Name, a.Description, a.Schema), a.handle)
	return s
}

func (a *Adapter) handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return a.Call(ctx, req.GetArguments()), nil
}

// Serve reads requests from in and writes responses to out until in is
// exhausted or ctx is cancelled. out must carry protocol frames only.
func (a *Adapter) Serve(ctx context.Context, info Info, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(a.Server(info))
	stdio.SetErrorLogger(log.New(a.logger, "", 0))

	a.logger.Info().Str("server", info.Name).Str("version", info.Version).Msg("serving on stdio")
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
