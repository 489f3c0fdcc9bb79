package ops

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hpungsan/wodgen/internal/config"
	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/exercise"
	"github.com/hpungsan/wodgen/internal/library"
	"github.com/hpungsan/wodgen/internal/selection"
	"github.com/hpungsan/wodgen/internal/snooze"
	"github.com/hpungsan/wodgen/internal/workout"
)

// GenerateInput contains parameters for the Generate operation.
type GenerateInput struct {
	Types       []string // required; names or comma-separated lists
	Groups      *int     // default: cfg.DefaultGroups
	Level       string   // default: cfg.DefaultLevel
	Bodyweight  *bool    // default: cfg.BodyweightOnly
	WorkoutsDir string   // default: cfg.WorkoutsDir, then DefaultWorkoutsDir
}

// GenerateOutput contains the result of the Generate operation.
type GenerateOutput struct {
	RunID        string        `json:"run_id"`
	WorkoutPath  string        `json:"workout_path"`
	SnoozedPath  string        `json:"snoozed_path"`
	Rows         []workout.Row `json:"rows"`
	SnoozedCount int           `json:"snoozed_count"`
}

// Generate builds a workout from the library, writes it to the workouts
// directory and records every pick in the snooze list.
func Generate(ctx context.Context, lib *library.Library, cfg *config.Config, input GenerateInput, env Env) (*GenerateOutput, error) {
	env = env.withDefaults()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	req, bodyweight, err := buildRequest(cfg, input)
	if err != nil {
		return nil, err
	}

	now := env.Now()
	runID, err := generateULID(now)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate run id: %w", err))
	}
	logger := env.Logger.With(zap.String("run_id", runID))
	logger.Info("generating workout",
		zap.Any("types", req.Types),
		zap.String("level", string(req.Level)),
		zap.Int("groups", req.Groups),
		zap.Bool("bodyweight", bodyweight))

	all, err := lib.LoadSnoozed()
	if err != nil {
		return nil, err
	}
	active := snooze.LoadActive(all, now, cfg.SnoozePeriod())
	logger.Info("loaded snoozed exercises", zap.Int("active", len(active)), zap.Int("expired", len(all)-len(active)))
	tracker := snooze.NewTracker(active)
	snoozed := tracker.Names()

	cooldowns, err := lib.LoadExercises(exercise.Cooldown)
	if err != nil {
		return nil, err
	}
	cooldowns = selection.Apply(cooldowns, func(e exercise.Exercise) bool { return !snoozed[e.Name] })

	catalog, err := lib.LoadCatalog(req.Types)
	if err != nil {
		return nil, err
	}
	pool := workout.PreparePool(catalog, bodyweight, snoozed, env.Rand)
	logger.Info("filtered exercises", zap.Int("loaded", len(catalog)), zap.Int("remaining", len(pool)))

	gen := workout.NewGenerator(env.Rand,
		workout.WithClock(env.Now),
		workout.WithLevelPolicy(selection.LevelPolicy{IntermediateIncludesBeginner: cfg.IntermediateIncludesBeginner}),
		workout.WithLogger(logger))

	rows, err := gen.Generate(req, pool, cooldowns, tracker)
	if err != nil {
		return nil, err
	}

	// Nothing has been written yet; stop here if the caller gave up.
	if err := ctx.Err(); err != nil {
		return nil, errors.NewCancelled("generate")
	}

	// Snoozes go first so a saved workout never has unsnoozed picks.
	if err := lib.SaveSnoozed(tracker.Entries()); err != nil {
		return nil, err
	}

	workoutsDir := firstNonEmpty(input.WorkoutsDir, cfg.WorkoutsDir, DefaultWorkoutsDir)
	path, err := library.SaveWorkout(workoutsDir, now, rows)
	if err != nil {
		if rbErr := lib.SaveSnoozed(all); rbErr != nil {
			logger.Error("failed to restore snoozed list", zap.Error(rbErr))
		}
		return nil, err
	}
	logger.Info("saved workout", zap.String("path", path), zap.Int("rows", len(rows)))

	return &GenerateOutput{
		RunID:        runID,
		WorkoutPath:  path,
		SnoozedPath:  lib.SnoozedPath(),
		Rows:         rows,
		SnoozedCount: tracker.Len(),
	}, nil
}

// buildRequest applies config defaults to input and validates the result.
func buildRequest(cfg *config.Config, input GenerateInput) (workout.Request, bool, error) {
	types, err := ParseTypes(input.Types)
	if err != nil {
		return workout.Request{}, false, err
	}

	level := cfg.Level()
	if strings.TrimSpace(input.Level) != "" {
		if level, err = exercise.ParseLevel(input.Level); err != nil {
			return workout.Request{}, false, errors.NewInvalidRequest(err.Error())
		}
	}

	groups := cfg.DefaultGroups
	if input.Groups != nil {
		groups = *input.Groups
	}

	bodyweight := cfg.BodyweightOnly
	if input.Bodyweight != nil {
		bodyweight = *input.Bodyweight
	}

	req := workout.Request{Types: types, Level: level, Groups: groups}
	if err := req.Validate(); err != nil {
		return workout.Request{}, false, err
	}
	return req, bodyweight, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
