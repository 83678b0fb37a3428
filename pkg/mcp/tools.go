package mcp

import "github.com/mark3labs/mcp-go/mcp"

func resolveClassesTool() mcp.Tool {
	return mcp.NewTool("resolve_classes",
		mcp.WithDescription("Resolve utility class names into the CSS rules they generate"),
		mcp.WithString("classes",
			mcp.Required(),
			mcp.Description("Whitespace-separated utility class names, e.g. \"px-4 hover:bg-blue-500/50\""),
		),
	)
}

func getTokensTool() mcp.Tool {
	return mcp.NewTool("get_tokens",
		mcp.WithDescription("Design token tables from the active theme"),
		mcp.WithString("dimension",
			mcp.Description("Restrict to one dimension: spacing, font_sizes, font_weights, border_radius, shadows, drop_shadows, letter_spacing, width, height, max_width, breakpoints, pseudo_states"),
		),
	)
}

func getPaletteTool() mcp.Tool {
	return mcp.NewTool("get_palette",
		mcp.WithDescription("Color palette families and shades from the active theme"),
		mcp.WithString("family",
			mcp.Description("Restrict to one color family, e.g. \"blue\""),
		),
	)
}
