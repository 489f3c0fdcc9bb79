// Package library reads and writes the CSV files of an exercise library
// directory and the dated workout files generated from it.
package library

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/exercise"
)

// File names inside the exercise library directory.
const (
	CooldownFile = "cooldown.csv"
	CoreFile     = "core.csv"
	LegsFile     = "legs.csv"
	PullFile     = "pull.csv"
	PushFile     = "push.csv"
	SnoozedFile  = "snoozed.csv"
)

var catalogFiles = map[exercise.Type]string{
	exercise.Cooldown: CooldownFile,
	exercise.Core:     CoreFile,
	exercise.Legs:     LegsFile,
	exercise.Pull:     PullFile,
	exercise.Push:     PushFile,
}

// Exercise catalog columns.
const (
	colName        = "name"
	colType        = "exercise_type"
	colCategory    = "exercise_category"
	colLevel       = "exercise_level"
	colProgramming = "exercise_programming"
	colBodyweight  = "bodyweight"
	colGoal        = "goal"
	colVideo       = "video"
)

var exerciseColumns = []string{
	colName, colType, colCategory, colLevel, colProgramming, colBodyweight, colGoal, colVideo,
}

// Library is an exercise library directory.
type Library struct {
	dir    string
	logger *zap.Logger
}

// New returns a Library rooted at dir. A nil logger discards output.
func New(dir string, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{dir: dir, logger: logger}
}

// Dir returns the library directory.
func (l *Library) Dir() string {
	return l.dir
}

// CatalogPath returns the catalog file for t.
func (l *Library) CatalogPath(t exercise.Type) string {
	return filepath.Join(l.dir, catalogFiles[t])
}

// SnoozedPath returns the snooze list file.
func (l *Library) SnoozedPath() string {
	return filepath.Join(l.dir, SnoozedFile)
}

// LoadExercises reads the catalog file of t. Any bad record fails the whole load.
func (l *Library) LoadExercises(t exercise.Type) ([]exercise.Exercise, error) {
	if _, ok := catalogFiles[t]; !ok {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown exercise type %q", t))
	}
	path := l.CatalogPath(t)

	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := tbl.require(exerciseColumns...); err != nil {
		return nil, err
	}

	out := make([]exercise.Exercise, 0, len(tbl.records))
	for i, rec := range tbl.records {
		e, err := parseExercise(tbl, tbl.row(i), rec)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	l.logger.Info("loaded exercises", zap.Int("count", len(out)), zap.String("path", path))
	return out, nil
}

// LoadCatalog concatenates the catalogs of types in order. A type listed
// twice is loaded once.
func (l *Library) LoadCatalog(types []exercise.Type) ([]exercise.Exercise, error) {
	seen := make(map[exercise.Type]bool, len(types))
	var all []exercise.Exercise
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true

		exs, err := l.LoadExercises(t)
		if err != nil {
			return nil, err
		}
		all = append(all, exs...)
	}
	return all, nil
}

func parseExercise(tbl *table, row int, rec []string) (exercise.Exercise, error) {
	bad := func(field string, err error) error {
		return errors.NewMalformedRecord(tbl.path, row, field, err)
	}

	e := exercise.Exercise{
		Name:  tbl.get(rec, colName),
		Video: tbl.get(rec, colVideo),
	}
	if e.Name == "" {
		return e, bad(colName, fmt.Errorf("empty name"))
	}

	var err error
	if e.Type, err = exercise.ParseType(tbl.get(rec, colType)); err != nil {
		return e, bad(colType, err)
	}
	if e.Category, err = exercise.ParseCategory(tbl.get(rec, colCategory)); err != nil {
		return e, bad(colCategory, err)
	}
	if e.Level, err = exercise.ParseLevel(tbl.get(rec, colLevel)); err != nil {
		return e, bad(colLevel, err)
	}
	if e.Programming, err = exercise.ParseProgramming(tbl.get(rec, colProgramming)); err != nil {
		return e, bad(colProgramming, err)
	}
	if e.Bodyweight, err = strconv.ParseBool(strings.ToLower(tbl.get(rec, colBodyweight))); err != nil {
		return e, bad(colBodyweight, err)
	}
	if goal := tbl.get(rec, colGoal); goal != "" {
		e.Goal = &goal
	}

	return e, nil
}
