package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/magarea/core"
	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// eventConfig clones the base config and applies the optional rake and regime arguments.
func (h *toolHandler) eventConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if r := request.GetString("regime", ""); r != "" {
		regime, err := schema.ParseRegime(r)
		if err != nil {
			return nil, err
		}
		cfg.Regime = regime
	}

	raw, ok := request.GetArguments()["rake"]
	if !ok {
		return cfg, nil
	}
	switch v := raw.(type) {
	case nil:
		cfg.Rake = schema.UndefinedRake()
	case float64:
		rake := schema.NewRake(v)
		if err := rake.Validate(); err != nil {
			return nil, err
		}
		cfg.Rake = rake
	case string:
		rake, err := schema.ParseRake(v)
		if err != nil {
			return nil, err
		}
		cfg.Rake = rake
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", schema.ErrInvalidRake, raw)
	}
	return cfg, nil
}

func (h *toolHandler) handleMedianMagnitude(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	area, err := request.RequireFloat("area")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid area: %v", err)), nil
	}
	cfg, err := h.eventConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid event parameters: %v", err)), nil
	}
	cfg.Values = []float64{area}

	estimates, _, err := core.GetMagResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	return jsonResult(estimates[0])
}

func (h *toolHandler) handleMedianArea(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mag, err := request.RequireFloat("magnitude")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid magnitude: %v", err)), nil
	}
	cfg, err := h.eventConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid event parameters: %v", err)), nil
	}
	cfg.Values = []float64{mag}

	estimates, _, err := core.GetAreaResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	return jsonResult(estimates[0])
}

func (h *toolHandler) handleStdDev(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.eventConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid event parameters: %v", err)), nil
	}

	estimates, _, err := core.GetStdDevResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	return jsonResult(estimates[0])
}

func (h *toolHandler) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.eventConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid event parameters: %v", err)), nil
	}

	estimates, _, err := core.GetDescribeResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	return jsonResult(estimates[0])
}

func (h *toolHandler) handleScalingTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Kind = schema.EstimateKind(strings.ToLower(request.GetString("kind", "")))
	values, err := contract.ParseFloatList(request.GetString("values", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid values: %v", err)), nil
	}
	cfg.Values = values

	table, _, err := core.GetTableResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("table failed: %v", err)), nil
	}
	return jsonResult(table)
}

// jsonResult wraps a value as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
