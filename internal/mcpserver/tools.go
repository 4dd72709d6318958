package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCP error codes.
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeFunctionNotFound = -32001 // No function with the given name
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// handleSearchFunctions handles the search_functions tool invocation.
func (s *Server) handleSearchFunctions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, _ := args["query"].(string)
	category, _ := args["category"].(string)

	limit := getIntDefault(args, "limit", defaultSearchLimit)
	if limit < 1 || limit > maxSearchLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	results := s.searcher.Search(query, category, limit)

	entries := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		entries = append(entries, map[string]interface{}{
			"function_id": r.FunctionID,
			"name":        r.Name,
			"category":    r.Category,
			"description": r.Description,
			"signature":   r.Signature,
			"score":       r.Score,
		})
	}

	response := map[string]interface{}{
		"query":   query,
		"count":   len(entries),
		"results": entries,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetDocumentation handles the get_documentation tool invocation.
func (s *Server) handleGetDocumentation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["function_name"].(string)
	if !ok || name == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "function_name parameter is required", map[string]interface{}{
			"param":  "function_name",
			"reason": "missing or empty",
		})
	}

	doc, found := s.indexer.Get(name)
	if !found {
		return nil, newMCPError(ErrorCodeFunctionNotFound, "function not found", map[string]interface{}{
			"function_name": name,
		})
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "encoding documentation", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(string(encoded)), nil
}

// handleListCategories handles the list_categories tool invocation.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	registry := s.indexer.Registry()

	categories := make([]map[string]interface{}, 0)
	for _, category := range registry.Categories() {
		functions := registry.ByCategory(category)
		names := make([]string, 0, len(functions))
		for _, fn := range functions {
			names = append(names, fn.Name)
		}
		categories = append(categories, map[string]interface{}{
			"name":      category,
			"count":     len(functions),
			"functions": names,
		})
	}

	response := map[string]interface{}{
		"count":      len(categories),
		"categories": categories,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// MCPError carries a JSON-RPC error code alongside the message. The
// framework encodes it on the wire.
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{Code: code, Message: message, Data: data}
}

// formatJSON formats a map as indented JSON.
func formatJSON(data map[string]interface{}) string {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(encoded)
}

// getIntDefault extracts an integer parameter with a default value. JSON
// numbers arrive as float64.
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return defaultValue
	}
}
