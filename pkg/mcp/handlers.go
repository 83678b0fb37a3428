package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/utilcss/pkg/resolver"
	"github.com/gnana997/utilcss/pkg/stylesheet"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleResolveClasses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	classes, err := req.RequireString("classes")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return mcp.NewToolResultError("classes must contain at least one class name"), nil
	}

	resolutions := make([]resolver.Resolution, len(tokens))
	unresolved := []string{}
	for i, token := range tokens {
		resolutions[i] = s.resolver.Resolve(token)
		if resolutions[i].Empty() {
			unresolved = append(unresolved, token)
		}
	}

	css, count := stylesheet.Assemble(s.theme, resolutions)

	return jsonResult(map[string]any{
		"css":        css,
		"rule_count": count,
		"unresolved": unresolved,
	})
}

func (s *Server) handleGetTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tables := map[string]any{
		"spacing":        s.theme.Spacing,
		"font_sizes":     s.theme.FontSizes,
		"font_weights":   s.theme.FontWeights,
		"border_radius":  s.theme.BorderRadius,
		"shadows":        s.theme.Shadows,
		"drop_shadows":   s.theme.DropShadows,
		"letter_spacing": s.theme.LetterSpacing,
		"width":          s.theme.Width,
		"height":         s.theme.Height,
		"max_width":      s.theme.MaxWidth,
		"breakpoints":    s.theme.Breakpoints,
		"pseudo_states":  s.theme.PseudoStates,
	}

	dimension := req.GetString("dimension", "")
	if dimension == "" {
		return jsonResult(tables)
	}

	table, ok := tables[dimension]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown dimension %q", dimension)), nil
	}
	return jsonResult(map[string]any{dimension: table})
}

func (s *Server) handleGetPalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	family := req.GetString("family", "")
	if family == "" {
		return jsonResult(s.theme.Palette)
	}

	shades, ok := s.theme.Palette[family]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown color family %q", family)), nil
	}
	return jsonResult(map[string]map[string]string{family: shades})
}
