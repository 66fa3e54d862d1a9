package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/workpulse/internal/contract"
	mcp_internal "github.com/huangsam/workpulse/internal/mcp"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		RepoPath: ".",
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("get_work_schedule invalid hours", func(t *testing.T) {
		tool := s.GetTool("get_work_schedule")
		require.NotNil(t, tool, "Tool get_work_schedule should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_work_schedule",
				Arguments: map[string]any{
					"hours": "18-9", // Start after end
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid parameters")
	})

	t.Run("get_overtime_report malformed hours", func(t *testing.T) {
		tool := s.GetTool("get_overtime_report")
		require.NotNil(t, tool, "Tool get_overtime_report should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_overtime_report",
				Arguments: map[string]any{
					"hours": "nine-to-five", // Not a numeric range
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid parameters")
	})

	t.Run("diagnose_repository quarter hours rejected", func(t *testing.T) {
		tool := s.GetTool("diagnose_repository")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "diagnose_repository",
				Arguments: map[string]any{
					"hours": "9.25-18", // Only whole or half hours
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid parameters")
	})

	t.Run("all tools registered", func(t *testing.T) {
		for _, name := range []string{
			"get_work_schedule",
			"get_overtime_report",
			"classify_project",
			"get_team_breakdown",
			"diagnose_repository",
		} {
			assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
		}
	})
}
