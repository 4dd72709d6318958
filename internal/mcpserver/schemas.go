package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchFunctionsTool returns the tool definition for search_functions.
func searchFunctionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_functions",
		Description: "Search the toolkit's functions by name or description keywords",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Function name or description keywords; empty lists everything",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Optional category filter (e.g. 'Serialization', 'String Utilities')",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     defaultSearchLimit,
					"minimum":     1,
					"maximum":     maxSearchLimit,
				},
			},
		},
	}
}

// getDocumentationTool returns the tool definition for get_documentation.
func getDocumentationTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_documentation",
		Description: "Fetch full documentation for one function: signature, parameters, return value, failure conditions and usage examples",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"function_name": map[string]interface{}{
					"type":        "string",
					"description": "Bare function name or package-qualified form (e.g. 'Flatten' or 'lists.Flatten')",
				},
			},
			Required: []string{"function_name"},
		},
	}
}

// listCategoriesTool returns the tool definition for list_categories.
func listCategoriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_categories",
		Description: "List the functional categories and the functions each contains",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
