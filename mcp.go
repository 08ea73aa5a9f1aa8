package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"syx2ins/ins"
	"syx2ins/mt32"
)

func newMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"MT-32 SysEx to INS",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	docTool := mcp.NewTool("mt32_describe-sysex",
		mcp.WithDescription("Returns notes on the MT-32 SysEx bulk dump layout used by the converter."),
	)
	s.AddTool(docTool, docToolHandler)

	convertTool := mcp.NewTool("mt32_convert-sysex",
		mcp.WithDescription("Converts an MT-32 SysEx dump file into a Cakewalk/Sonar .INS instrument list and returns its text."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the .syx file to convert.")),
		mcp.WithString("title", mcp.Description("Bank title to use when the dump has no LCD title. Defaults to the file name.")),
	)
	s.AddTool(convertTool, convertToolHandler)

	listTool := mcp.NewTool("mt32_list-patches",
		mcp.WithDescription("Decodes an MT-32 SysEx dump file and returns title, custom timbres and the 128 patch names as JSON."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the .syx file to decode.")),
	)
	s.AddTool(listTool, listToolHandler)

	messagesTool := mcp.NewTool("mt32_list-messages",
		mcp.WithDescription("Lists the SysEx messages in a dump file with their MT-32 addresses and checksum status."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the .syx file to inspect.")),
	)
	s.AddTool(messagesTool, messagesToolHandler)

	return s
}

func runMCP() {
	s := newMCPServer()

	log.Println("Starting MT-32 MCP server...")

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}

// decodeRequest reads and decodes the dump named by the request's path
// argument.
func decodeRequest(request mcp.CallToolRequest) (*mt32.Bank, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump: %w", err)
	}
	title := request.GetString("title", "")
	if title == "" {
		title = fallbackTitle(path)
	}
	return mt32.Decode(buf, title)
}

func convertToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp]Handling convert request.")

	bank, err := decodeRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(ins.Render(bank.Title, bank.Patches[:])), nil
}

func listToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp]Handling list patches request.")

	bank, err := decodeRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	asJson, err := json.MarshalIndent(bank, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bank to JSON: %v", err)
	}
	return mcp.NewToolResultText(string(asJson)), nil
}

func messagesToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp]Handling list messages request.")

	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read dump: %v", err)), nil
	}
	var sb strings.Builder
	writeMessages(&sb, buf)
	return mcp.NewToolResultText(sb.String()), nil
}

//go:embed mt32_sysex_notes.txt
var sysexDoc string

func docToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp]Handling SysEx documentation request.")

	return mcp.NewToolResultText(sysexDoc), nil
}
