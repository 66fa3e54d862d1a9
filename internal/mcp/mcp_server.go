// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huangsam/workpulse/internal/contract"
)

// NewMCPServer initializes and configures the Workpulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Workpulse Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_work_schedule ---
	s.AddTool(mcp.NewTool("get_work_schedule",
		mcp.WithDescription("Estimate the typical daily work schedule from commit timing."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("hours", mcp.Description("Manual schedule override like '9-18' or '9.5-18.5'. Skips detection.")),
	), h.handleGetWorkSchedule)

	// --- 2. Tool: get_overtime_report ---
	s.AddTool(mcp.NewTool("get_overtime_report",
		mcp.WithDescription("Compute the work intensity index and the weekday, weekend and late-night overtime decomposition."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("hours", mcp.Description("Manual schedule override like '9-18'.")),
		mcp.WithString("region", mcp.Description("ISO 3166-1 alpha-2 region for holiday-aware workday classification.")),
	), h.handleGetOvertimeReport)

	// --- 3. Tool: classify_project ---
	s.AddTool(mcp.NewTool("classify_project",
		mcp.WithDescription("Classify the project working style as organizational, community or uncertain."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleClassifyProject)

	// --- 4. Tool: get_team_breakdown ---
	s.AddTool(mcp.NewTool("get_team_breakdown",
		mcp.WithDescription("Break down work intensity per contributor against the team baseline."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of contributors returned.")),
	), h.handleGetTeamBreakdown)

	// --- 5. Tool: diagnose_repository ---
	s.AddTool(mcp.NewTool("diagnose_repository",
		mcp.WithDescription("Run the full diagnosis: schedule, intensity, overtime decomposition, timezone spread and project classification."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("hours", mcp.Description("Manual schedule override like '9-18'.")),
		mcp.WithString("region", mcp.Description("ISO 3166-1 alpha-2 region for holiday-aware workday classification.")),
	), h.handleDiagnoseRepository)

	return s
}

// StartMCPServer starts the Workpulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
