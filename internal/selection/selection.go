// Package selection holds the predicates that decide which catalog exercises
// may fill a slot of a workout group.
package selection

import "github.com/hpungsan/wodgen/internal/exercise"

// Filter reports whether an exercise is a candidate.
type Filter func(exercise.Exercise) bool

// All combines filters with logical AND. With no filters every exercise passes.
func All(filters ...Filter) Filter {
	return func(e exercise.Exercise) bool {
		for _, f := range filters {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

// LevelPolicy tunes which exercise levels a requested level admits.
// The zero value is the strict policy.
type LevelPolicy struct {
	// IntermediateIncludesBeginner lets intermediate workouts draw beginner exercises.
	IntermediateIncludesBeginner bool
}

// StrictLevels admits only the exact level, except that advanced workouts
// also draw intermediate exercises.
var StrictLevels = LevelPolicy{}

// Admits returns the exercise levels a workout at requested may use.
func (p LevelPolicy) Admits(requested exercise.Level) []exercise.Level {
	switch requested {
	case exercise.Beginner:
		return []exercise.Level{exercise.Beginner}
	case exercise.Intermediate:
		if p.IntermediateIncludesBeginner {
			return []exercise.Level{exercise.Beginner, exercise.Intermediate}
		}
		return []exercise.Level{exercise.Intermediate}
	case exercise.Advanced:
		return []exercise.Level{exercise.Intermediate, exercise.Advanced}
	default:
		return nil
	}
}

// ByType passes exercises of exactly type t.
func ByType(t exercise.Type) Filter {
	return func(e exercise.Exercise) bool {
		return e.Type == t
	}
}

// ByLevel passes exercises whose level the policy admits for requested.
func ByLevel(requested exercise.Level, policy LevelPolicy) Filter {
	admitted := policy.Admits(requested)
	return func(e exercise.Exercise) bool {
		for _, l := range admitted {
			if e.Level == l {
				return true
			}
		}
		return false
	}
}

// CategoriesFor returns the categories eligible for the zero-based group index
// of a workout at level for type t. Early groups favour primary movements and
// later ones accessory work; core exercises never go past secondary.
func CategoriesFor(group int, level exercise.Level, t exercise.Type) []exercise.Category {
	switch {
	case group < 0:
		return nil
	case group == 0:
		if level == exercise.Beginner {
			return []exercise.Category{exercise.Secondary}
		}
		return []exercise.Category{exercise.Primary}
	case group == 1:
		return []exercise.Category{exercise.Primary, exercise.Secondary}
	case group == 2:
		if t == exercise.Core {
			return []exercise.Category{exercise.Secondary}
		}
		return []exercise.Category{exercise.Secondary, exercise.Accessory}
	default:
		if t == exercise.Core {
			return []exercise.Category{exercise.Secondary}
		}
		return []exercise.Category{exercise.Accessory}
	}
}

// ByCategory passes exercises whose category is eligible for the group.
func ByCategory(group int, level exercise.Level, t exercise.Type) Filter {
	eligible := CategoriesFor(group, level, t)
	return func(e exercise.Exercise) bool {
		for _, c := range eligible {
			if e.Category == c {
				return true
			}
		}
		return false
	}
}

// Slot is the full chain for one pick: type t, at level, in the zero-based group.
func Slot(t exercise.Type, level exercise.Level, group int, policy LevelPolicy) Filter {
	return All(
		ByType(t),
		ByLevel(level, policy),
		ByCategory(group, level, t),
	)
}

// First returns the index of the first exercise in pool that passes f, or -1.
func First(pool []exercise.Exercise, f Filter) int {
	for i, e := range pool {
		if f(e) {
			return i
		}
	}
	return -1
}

// Apply returns the exercises of pool that pass f, keeping order.
func Apply(pool []exercise.Exercise, f Filter) []exercise.Exercise {
	var out []exercise.Exercise
	for _, e := range pool {
		if f(e) {
			out = append(out, e)
		}
	}
	return out
}
