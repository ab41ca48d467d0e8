// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the magarea MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"MagArea Regression Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	rakeOpt := mcp.WithNumber("rake", mcp.Description("Rake angle in degrees within [-180, 180]. Omit to keep the server default; null means undefined."))
	regimeOpt := mcp.WithString("regime", mcp.Description("Tectonic regime. Defaults to the server setting."), mcp.Enum("crustal", "interface"))

	// --- 1. Tool: median_magnitude ---
	s.AddTool(mcp.NewTool("median_magnitude",
		mcp.WithDescription("Median moment magnitude for a rupture area using Thingbaijam et al. (2017)."),
		mcp.WithNumber("area", mcp.Description("Rupture area in km²."), mcp.Required()),
		rakeOpt,
		regimeOpt,
	), h.handleMedianMagnitude)

	// --- 2. Tool: median_area ---
	s.AddTool(mcp.NewTool("median_area",
		mcp.WithDescription("Median rupture area in km² for a moment magnitude."),
		mcp.WithNumber("magnitude", mcp.Description("Moment magnitude."), mcp.Required()),
		rakeOpt,
		regimeOpt,
	), h.handleMedianArea)

	// --- 3. Tool: std_dev ---
	s.AddTool(mcp.NewTool("std_dev",
		mcp.WithDescription("Standard deviation of magnitude and log10 area for a rake and regime."),
		rakeOpt,
		regimeOpt,
	), h.handleStdDev)

	// --- 4. Tool: describe ---
	s.AddTool(mcp.NewTool("describe",
		mcp.WithDescription("Fault mechanism and description of the regression branch for a rake and regime."),
		rakeOpt,
		regimeOpt,
	), h.handleDescribe)

	// --- 5. Tool: scaling_table ---
	s.AddTool(mcp.NewTool("scaling_table",
		mcp.WithDescription("Median values across the reference reverse, normal, strike-slip and interface scenarios."),
		mcp.WithString("kind", mcp.Description("mag evaluates areas, area evaluates magnitudes."), mcp.Required(), mcp.Enum("mag", "area")),
		mcp.WithString("values", mcp.Description("Comma-separated inputs. Defaults to the standard areas or magnitudes.")),
	), h.handleScalingTable)

	return s
}

// StartMCPServer starts the magarea MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
