// Package ops implements the user-facing operations shared by the CLI and
// the MCP server. Each operation takes an Input struct and returns an Output
// struct ready to be encoded as JSON.
package ops

import (
	"crypto/rand"
	mrand "math/rand/v2"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/exercise"
	"github.com/hpungsan/wodgen/internal/workout"
)

// Defaults used when neither a flag nor the config names a directory.
const (
	DefaultLibraryDir  = "./exercise_library"
	DefaultWorkoutsDir = "./workouts"
)

// Env carries the run-time collaborators of an operation. Zero fields are
// filled with production defaults.
type Env struct {
	Rand   workout.Rand
	Now    func() time.Time
	Logger *zap.Logger
}

func (e Env) withDefaults() Env {
	if e.Rand == nil {
		e.Rand = NewRand(nil)
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e
}

// NewRand returns a PCG source. A nil seed draws one from the runtime.
func NewRand(seed *uint64) *mrand.Rand {
	if seed == nil {
		return mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))
	}
	return mrand.New(mrand.NewPCG(*seed, *seed))
}

// ParseTypes parses exercise type names, each of which may itself be a
// comma-separated list. Order and repeats are kept.
func ParseTypes(raw []string) ([]exercise.Type, error) {
	var types []exercise.Type
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, err := exercise.ParseType(part)
			if err != nil {
				return nil, errors.NewInvalidRequest(err.Error())
			}
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return nil, errors.NewInvalidRequest("at least one exercise type is required")
	}
	return types, nil
}

// generateULID generates a new ULID.
func generateULID(now time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
