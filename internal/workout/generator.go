// Package workout builds a workout out of a shuffled pool of catalog
// exercises and renders each pick as a sheet row.
package workout

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/exercise"
	"github.com/hpungsan/wodgen/internal/selection"
	"github.com/hpungsan/wodgen/internal/snooze"
)

// Rand is the source of randomness for shuffling the pool and picking the
// cooldown. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// Request describes the workout to build.
type Request struct {
	// Types are visited in this order within every group.
	Types []exercise.Type

	Level exercise.Level

	// Groups is the number of supersets after the skill block.
	Groups int
}

// Validate checks the request before any pick is made.
func (r Request) Validate() error {
	if len(r.Types) == 0 {
		return errors.NewInvalidRequest("at least one exercise type is required")
	}
	if r.Groups < 0 {
		return errors.NewInvalidRequest(fmt.Sprintf("groups must be non-negative, got %d", r.Groups))
	}
	if r.Level.Rank() < 0 {
		return errors.NewInvalidRequest(fmt.Sprintf("unknown level %q", r.Level))
	}
	return nil
}

// Generator picks exercises for a workout.
type Generator struct {
	rng    Rand
	now    func() time.Time
	policy selection.LevelPolicy
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides time.Now for snooze timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLevelPolicy sets which levels a requested level admits.
func WithLevelPolicy(p selection.LevelPolicy) Option {
	return func(g *Generator) { g.policy = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a Generator drawing randomness from rng.
func NewGenerator(rng Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:    rng,
		now:    time.Now,
		policy: selection.StrictLevels,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PreparePool drops snoozed names (and non-bodyweight exercises when
// bodyweightOnly is set) and shuffles what is left. pool is not modified.
func PreparePool(pool []exercise.Exercise, bodyweightOnly bool, snoozed map[string]bool, rng Rand) []exercise.Exercise {
	out := make([]exercise.Exercise, 0, len(pool))
	for _, e := range pool {
		if bodyweightOnly && !e.Bodyweight {
			continue
		}
		if snoozed[e.Name] {
			continue
		}
		out = append(out, e)
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Generate builds the workout. pool must already be prepared (see PreparePool)
// and cooldowns snooze-filtered. Every pick is recorded on tracker.
//
// The first row is the skill block at group 1, then group g (zero-based) of
// picks lands at g+2, and the cooldown closes the workout at Groups+2. A slot
// with no candidate is skipped. Running out of cooldowns is an error.
func (g *Generator) Generate(req Request, pool, cooldowns []exercise.Exercise, tracker *snooze.Tracker) ([]Row, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	remaining := make([]exercise.Exercise, len(pool))
	copy(remaining, pool)
	picked := make(map[string]bool)

	rows := []Row{skillBlockRow()}

	for group := 0; group < req.Groups; group++ {
		g.logger.Info("generating group", zap.Int("group", group+1))
		for _, t := range req.Types {
			idx := selection.First(remaining, selection.Slot(t, req.Level, group, g.policy))
			if idx < 0 {
				g.logger.Debug("no candidate for slot",
					zap.Int("group", group+1),
					zap.String("type", string(t)))
				continue
			}

			pick := remaining[idx]
			remaining = removeName(remaining, pick.Name)
			picked[pick.Name] = true
			tracker.Record(pick.Name, g.now())
			rows = append(rows, FromExercise(group+2, pick))

			g.logger.Info("picked exercise",
				zap.String("type", string(t)),
				zap.String("name", pick.Name),
				zap.String("category", string(pick.Category)))
		}
	}

	cooldown, err := g.pickCooldown(cooldowns, picked)
	if err != nil {
		return nil, err
	}
	tracker.Record(cooldown.Name, g.now())
	rows = append(rows, FromExercise(req.Groups+2, cooldown))
	g.logger.Info("added cooldown exercise", zap.String("name", cooldown.Name))

	return rows, nil
}

// pickCooldown draws one cooldown at random, skipping names already in the workout.
func (g *Generator) pickCooldown(cooldowns []exercise.Exercise, picked map[string]bool) (exercise.Exercise, error) {
	candidates := make([]exercise.Exercise, 0, len(cooldowns))
	for _, e := range cooldowns {
		if !picked[e.Name] {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return exercise.Exercise{}, errors.NewNoCooldown()
	}
	return candidates[g.rng.IntN(len(candidates))], nil
}

// removeName drops every entry called name, so a name shared by two catalog
// files cannot be picked twice.
func removeName(pool []exercise.Exercise, name string) []exercise.Exercise {
	out := pool[:0]
	for _, e := range pool {
		if e.Name != name {
			out = append(out, e)
		}
	}
	return out
}
