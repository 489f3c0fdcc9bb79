package exercise

import (
	"fmt"
	"strings"
)

// Type is the movement family an exercise belongs to. Each type has its own
// catalog file in the exercise library.
type Type string

const (
	Cooldown Type = "Cooldown"
	Core     Type = "Core"
	Legs     Type = "Legs"
	Pull     Type = "Pull"
	Push     Type = "Push"
)

// Types lists every exercise type in catalog order.
var Types = []Type{Cooldown, Core, Legs, Pull, Push}

// Category is the priority tier of an exercise within a group.
type Category string

const (
	Primary   Category = "Primary"
	Secondary Category = "Secondary"
	Accessory Category = "Accessory"
)

// Categories lists every category from highest to lowest priority.
var Categories = []Category{Primary, Secondary, Accessory}

// Level is the difficulty of an exercise.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// Levels lists every level from easiest to hardest.
var Levels = []Level{Beginner, Intermediate, Advanced}

// Programming is how an exercise is tracked on the workout sheet.
type Programming string

const (
	Distance Programming = "Distance"
	Reps     Programming = "Reps"
	Time     Programming = "Time"
)

// Programmings lists every programming style.
var Programmings = []Programming{Distance, Reps, Time}

// Exercise is one immutable record of the exercise library.
type Exercise struct {
	// Name is unique within its type's catalog file, not across types
	Name string `json:"name"`

	// Type selects which catalog file the exercise lives in
	Type Type `json:"type"`

	// Category decides which groups of a workout the exercise is eligible for
	Category Category `json:"category"`

	// Level is the difficulty of the exercise
	Level Level `json:"level"`

	// Programming decides which column of the workout sheet gets marked
	Programming Programming `json:"programming"`

	// Bodyweight is true when no equipment is needed
	Bodyweight bool `json:"bodyweight"`

	// Goal is a free-text training goal label (nullable)
	Goal *string `json:"goal,omitempty"`

	// Video is a reference link or identifier
	Video string `json:"video"`
}

// Rank orders levels from easiest (0) to hardest (2). Unknown levels rank -1.
func (l Level) Rank() int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return -1
}

// ParseType parses a type name case-insensitively.
func ParseType(s string) (Type, error) {
	v, ok := lookup(Types, s)
	if !ok {
		return "", fmt.Errorf("unknown exercise type %q (want one of %s)", s, join(Types))
	}
	return v, nil
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	v, ok := lookup(Categories, s)
	if !ok {
		return "", fmt.Errorf("unknown exercise category %q (want one of %s)", s, join(Categories))
	}
	return v, nil
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	v, ok := lookup(Levels, s)
	if !ok {
		return "", fmt.Errorf("unknown exercise level %q (want one of %s)", s, join(Levels))
	}
	return v, nil
}

// ParseProgramming parses a programming style case-insensitively.
func ParseProgramming(s string) (Programming, error) {
	v, ok := lookup(Programmings, s)
	if !ok {
		return "", fmt.Errorf("unknown exercise programming %q (want one of %s)", s, join(Programmings))
	}
	return v, nil
}

func lookup[T ~string](values []T, s string) (T, bool) {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strings.ToLower(string(v))
	}
	return strings.Join(parts, ", ")
}
