package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hpungsan/wodgen/internal/config"
	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/library"
	"github.com/hpungsan/wodgen/internal/mcp"
	"github.com/hpungsan/wodgen/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "wodgen",
		Usage:   "Generate randomized workouts from a CSV exercise library",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Log debug output to stderr"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log warnings and errors"},
		},
		Commands: []*cli.Command{
			generateCmd(),
			snoozedCmd(),
			renderCmd(),
			mcpCmd(),
		},
		Action: func(c *cli.Context) error {
			_ = cli.ShowAppHelp(c)
			return outputError(errors.NewInvalidRequest("a command is required"))
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func libraryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "exercise-library-dir",
		Aliases: []string{"e"},
		Value:   ops.DefaultLibraryDir,
		Usage:   "Directory holding the exercise CSV files, snoozed.csv and config.json",
	}
}

func workoutsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "workouts-dir",
		Aliases:     []string{"w"},
		DefaultText: ops.DefaultWorkoutsDir,
		Usage:       "Directory generated workouts are written to (overrides workouts_dir in config)",
	}
}

// generateCmd creates the generate command.
func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a workout and snooze the exercises it uses",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "types", Aliases: []string{"t"}, Required: true, Usage: "Exercise types visited in every group, in order: cooldown|core|legs|pull|push"},
			&cli.IntFlag{Name: "groups", Aliases: []string{"g"}, DefaultText: "2", Usage: "Number of supersets after the skill block"},
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, DefaultText: "intermediate", Usage: "Difficulty: beginner|intermediate|advanced"},
			&cli.BoolFlag{Name: "bodyweight", Aliases: []string{"b"}, Usage: "Only pick bodyweight exercises"},
			&cli.Uint64Flag{Name: "seed", Usage: "Seed the random source for a reproducible workout"},
			libraryFlag(),
			workoutsFlag(),
		},
		Action: func(c *cli.Context) error {
			// Flag parsing stops at the first positional argument, so
			// "-t push pull -g 1" would silently drop "pull" and "-g 1".
			if c.NArg() > 0 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf(
					"unexpected argument %q: repeat --types or separate types with commas", c.Args().First())))
			}

			logger := newLogger(c)
			defer func() { _ = logger.Sync() }()

			lib, cfg, err := openLibrary(c, logger)
			if err != nil {
				return outputError(err)
			}

			input := ops.GenerateInput{
				Types:       c.StringSlice("types"),
				Level:       c.String("level"),
				WorkoutsDir: c.String("workouts-dir"),
			}
			if c.IsSet("groups") {
				groups := c.Int("groups")
				input.Groups = &groups
			}
			if c.IsSet("bodyweight") {
				bodyweight := c.Bool("bodyweight")
				input.Bodyweight = &bodyweight
			}

			env := ops.Env{Logger: logger}
			if c.IsSet("seed") {
				seed := c.Uint64("seed")
				env.Rand = ops.NewRand(&seed)
			}

			output, err := ops.Generate(c.Context, lib, cfg, input, env)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// snoozedCmd creates the snoozed command.
func snoozedCmd() *cli.Command {
	return &cli.Command{
		Name:  "snoozed",
		Usage: "List exercises currently snoozed",
		Flags: []cli.Flag{libraryFlag()},
		Action: func(c *cli.Context) error {
			logger := newLogger(c)
			defer func() { _ = logger.Sync() }()

			lib, cfg, err := openLibrary(c, logger)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.ListSnoozed(c.Context, lib, cfg, ops.Env{Logger: logger})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// renderCmd creates the render command.
func renderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Print a saved workout as a markdown or HTML sheet",
		ArgsUsage: "<workout.csv>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(ops.RenderMarkdown), Usage: "Output format: markdown|html"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("render takes exactly one workout file"))
			}

			output, err := ops.Render(ops.RenderInput{
				Path:   c.Args().First(),
				Format: ops.RenderFormat(c.String("format")),
			})
			if err != nil {
				return outputError(err)
			}

			_, err = fmt.Fprint(os.Stdout, output.Content)
			return err
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the workout tools over MCP (stdio)",
		Flags: []cli.Flag{libraryFlag(), workoutsFlag()},
		Action: func(c *cli.Context) error {
			logger := newLogger(c)
			defer func() { _ = logger.Sync() }()

			lib, cfg, err := openLibrary(c, logger)
			if err != nil {
				return outputError(err)
			}

			workoutsDir := c.String("workouts-dir")
			if workoutsDir == "" {
				workoutsDir = cfg.WorkoutsDir
			}
			if workoutsDir == "" {
				workoutsDir = ops.DefaultWorkoutsDir
			}

			if err := mcp.Run(lib, cfg, workoutsDir, logger, Version); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// Helper functions

// openLibrary loads config.json from the library directory and opens the library.
func openLibrary(c *cli.Context, logger *zap.Logger) (*library.Library, *config.Config, error) {
	dir := c.String("exercise-library-dir")
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, errors.NewInvalidRequest(fmt.Sprintf("failed to load config: %v", err))
	}
	logger.Debug("loaded config", zap.String("dir", dir), zap.Any("config", cfg))
	return library.New(dir, logger), cfg, nil
}

// newLogger builds a console logger on stderr. stdout is reserved for results.
func newLogger(c *cli.Context) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.DisableStacktrace = true
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	switch {
	case c.Bool("quiet"):
		zcfg.Level.SetLevel(zapcore.WarnLevel)
	case c.Bool("verbose"):
		zcfg.Level.SetLevel(zapcore.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if wErr, ok := err.(*errors.WodError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", wErr.Code, wErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
