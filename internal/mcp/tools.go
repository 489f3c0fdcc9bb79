package mcp

import "github.com/mark3labs/mcp-go/mcp"

var generateToolDef = mcp.NewTool("workout_generate",
	mcp.WithDescription("Generate a randomized workout from the exercise library. Writes the workout CSV, snoozes every picked exercise for the snooze period, and returns the rows."),
	mcp.WithString("types", mcp.Required(), mcp.Description("Comma-separated exercise types visited in order within every group (e.g. 'push,pull,core'). Known types: cooldown, core, legs, pull, push.")),
	mcp.WithNumber("groups", mcp.Description("Number of supersets after the skill block. Defaults to the configured default_groups.")),
	mcp.WithString("level", mcp.Description("Difficulty. Defaults to the configured default_level."), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithBoolean("bodyweight", mcp.Description("Only pick bodyweight exercises. Defaults to the configured bodyweight_only.")),
)

var snoozeListToolDef = mcp.NewTool("snooze_list",
	mcp.WithDescription("List exercises currently snoozed, with when each snooze expires."),
)

var renderToolDef = mcp.NewTool("workout_render",
	mcp.WithDescription("Render a saved workout as a markdown or HTML sheet."),
	mcp.WithString("date", mcp.Description("Workout date (YYYY-MM-DD). Defaults to today.")),
	mcp.WithString("format", mcp.Description("Output format. Defaults to 'markdown'."), mcp.Enum("markdown", "html")),
)
