package main

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatalf("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestConvertTool(t *testing.T) {
	syx := filepath.Join(t.TempDir(), "game.syx")
	writeFile(t, syx, testDump())

	text, isErr := callTool(t, convertToolHandler, map[string]any{"path": syx})
	if isErr {
		t.Fatalf("tool error: %s", text)
	}
	if !strings.Contains(text, "[Test Game Patch Bank]") || !strings.Contains(text, "0=Wobble") {
		t.Errorf("unexpected INS text:\n%s", text)
	}
}

func TestConvertToolTitleOverride(t *testing.T) {
	dump := testDump()
	// Turn the display write into some other address so the title falls back.
	dump[5] = 0x10
	syx := filepath.Join(t.TempDir(), "game.syx")
	writeFile(t, syx, dump)

	text, _ := callTool(t, convertToolHandler, map[string]any{"path": syx, "title": "Custom"})
	if !strings.Contains(text, "[Custom Patch Bank]") {
		t.Errorf("title override ignored:\n%s", text)
	}
	text, _ = callTool(t, convertToolHandler, map[string]any{"path": syx})
	if !strings.Contains(text, "[game Patch Bank]") {
		t.Errorf("file name not used as title:\n%s", text)
	}
}

func TestConvertToolErrors(t *testing.T) {
	if _, isErr := callTool(t, convertToolHandler, map[string]any{}); !isErr {
		t.Errorf("missing path should be a tool error")
	}

	bad := filepath.Join(t.TempDir(), "bad.syx")
	writeFile(t, bad, []byte{1, 2, 3, 4, 5, 6})
	text, isErr := callTool(t, convertToolHandler, map[string]any{"path": bad})
	if !isErr || !strings.Contains(text, "not a valid MT-32") {
		t.Errorf("expected invalid format error, got %q", text)
	}
}

func TestListTool(t *testing.T) {
	syx := filepath.Join(t.TempDir(), "game.syx")
	writeFile(t, syx, testDump())

	text, isErr := callTool(t, listToolHandler, map[string]any{"path": syx})
	if isErr {
		t.Fatalf("tool error: %s", text)
	}
	var bank struct {
		Title   string   `json:"title"`
		Patches []string `json:"patches"`
		Timbres []string `json:"timbres"`
	}
	if err := json.Unmarshal([]byte(text), &bank); err != nil {
		t.Fatalf("failed to unmarshal bank JSON: %v", err)
	}
	if bank.Title != "Test Game" || len(bank.Patches) != 128 || len(bank.Timbres) != 1 {
		t.Errorf("unexpected bank %+v", bank)
	}
}

func TestMessagesAndDocTools(t *testing.T) {
	syx := filepath.Join(t.TempDir(), "game.syx")
	writeFile(t, syx, testDump())

	text, _ := callTool(t, messagesToolHandler, map[string]any{"path": syx})
	if !strings.Contains(text, "3 messages") {
		t.Errorf("unexpected listing:\n%s", text)
	}

	text, _ = callTool(t, docToolHandler, nil)
	if !strings.Contains(text, "F0 41 10 16 12") {
		t.Errorf("doc text missing header description")
	}
}

func TestNewMCPServer(t *testing.T) {
	if newMCPServer() == nil {
		t.Fatalf("nil server")
	}
}
