package workout

import (
	"testing"

	"github.com/hpungsan/wodgen/internal/exercise"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"single_leg_deadlift", "Single Leg Deadlift"},
		{"row__band", "Row - Band"},
		{"push_up", "Push Up"},
		{"already Titled", "Already Titled"},
		{"RDL_single_arm", "RDL Single Arm"},
		{"__leading", "- Leading"},
		{"double__under_jump", "Double - Under Jump"},
		{"a__b__c", "A - B - C"},
		{"  spaced   out ", "Spaced Out"},
		{"", ""},
		{"élan_vital", "Élan Vital"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TitleCase(tt.input); got != tt.want {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromExercise_MarksExactlyOneColumn(t *testing.T) {
	tests := []struct {
		programming exercise.Programming
		distance    string
		time        string
		reps        string
	}{
		{exercise.Distance, Mark, "", ""},
		{exercise.Time, "", Mark, ""},
		{exercise.Reps, "", "", Mark},
	}

	for _, tt := range tests {
		t.Run(string(tt.programming), func(t *testing.T) {
			e := exercise.Exercise{
				Name:        "farmer_carry",
				Type:        exercise.Core,
				Category:    exercise.Secondary,
				Level:       exercise.Intermediate,
				Programming: tt.programming,
				Video:       "https://example.com/v",
			}
			row := FromExercise(4, e)

			if row.Distance != tt.distance || row.Time != tt.time || row.Reps != tt.reps {
				t.Errorf("distance/time/reps = %q/%q/%q, want %q/%q/%q",
					row.Distance, row.Time, row.Reps, tt.distance, tt.time, tt.reps)
			}

			marked := 0
			for _, col := range []string{row.Distance, row.Time, row.Reps} {
				if col == Mark {
					marked++
				}
			}
			if marked != 1 {
				t.Errorf("marked columns = %d, want 1", marked)
			}
			if row.Sets != "" {
				t.Errorf("Sets = %q, want empty", row.Sets)
			}
		})
	}
}

func TestFromExercise_Fields(t *testing.T) {
	goal := "Grip strength"
	e := exercise.Exercise{
		Name:        "farmer__carry",
		Programming: exercise.Distance,
		Goal:        &goal,
		Video:       "farmer.mp4",
	}

	row := FromExercise(3, e)
	if row.Group != 3 {
		t.Errorf("Group = %d, want 3", row.Group)
	}
	if row.Name != "Farmer - Carry" {
		t.Errorf("Name = %q, want %q", row.Name, "Farmer - Carry")
	}
	if row.Goal != goal {
		t.Errorf("Goal = %q, want %q", row.Goal, goal)
	}
	if row.Video != "farmer.mp4" {
		t.Errorf("Video = %q, want %q", row.Video, "farmer.mp4")
	}
}

func TestFromExercise_MissingGoal(t *testing.T) {
	row := FromExercise(2, exercise.Exercise{Name: "plank", Programming: exercise.Time})
	if row.Goal != "" {
		t.Errorf("Goal = %q, want empty", row.Goal)
	}
}

func TestSkillBlockRow(t *testing.T) {
	row := skillBlockRow()
	if row != (Row{Group: 1, Name: SkillBlock}) {
		t.Errorf("skillBlockRow() = %+v", row)
	}
}
