package workout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hpungsan/wodgen/internal/exercise"
)

// SkillBlock is the name of the fixed warm-up row that opens every workout.
const SkillBlock = "Skill Block"

// Mark is written into the column that an exercise is tracked by.
const Mark = "X"

// Columns is the header of a workout file.
var Columns = []string{"group", "name", "sets", "distance", "time", "reps", "goal", "video"}

// Row is one printable line of a workout sheet.
type Row struct {
	Group    int    `json:"group"`
	Name     string `json:"name"`
	Sets     string `json:"sets"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
	Reps     string `json:"reps"`
	Goal     string `json:"goal"`
	Video    string `json:"video"`
}

// FromExercise maps a picked exercise to its row in group.
// Sets is left blank for the athlete to fill in.
func FromExercise(group int, e exercise.Exercise) Row {
	row := Row{
		Group: group,
		Name:  TitleCase(e.Name),
		Video: e.Video,
	}
	if e.Goal != nil {
		row.Goal = *e.Goal
	}

	switch e.Programming {
	case exercise.Distance:
		row.Distance = Mark
	case exercise.Time:
		row.Time = Mark
	case exercise.Reps:
		row.Reps = Mark
	}

	return row
}

// skillBlockRow returns the placeholder row at group 1.
func skillBlockRow() Row {
	return Row{Group: 1, Name: SkillBlock}
}

// TitleCase turns a catalog key like "row__band" into "Row - Band".
// Only the first letter of each word changes; the rest is kept as written.
func TitleCase(name string) string {
	name = strings.ReplaceAll(name, "__", " - ")
	name = strings.ReplaceAll(name, "_", " ")

	words := strings.Fields(name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
