package ops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/exercise"
	"github.com/hpungsan/wodgen/internal/library"
)

const catalogHeader = "name,exercise_type,exercise_category,exercise_level,exercise_programming,bodyweight,goal,video\n"

// identityRand keeps the pool in file order and always picks the first cooldown.
type identityRand struct{}

func (identityRand) Shuffle(int, func(i, j int)) {}
func (identityRand) IntN(int) int               { return 0 }

var testNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func testEnv() Env {
	return Env{Rand: identityRand{}, Now: func() time.Time { return testNow }}
}

// newTestLibrary writes a small library: two pushes, a pull, a core and two cooldowns.
func newTestLibrary(t *testing.T) *library.Library {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		library.PushFile: catalogHeader +
			"handstand_push_up,Push,Primary,Intermediate,Reps,true,Overhead strength,https://example.com/hspu\n" +
			"bench_press,Push,Primary,Intermediate,Reps,false,,https://example.com/bench\n" +
			"ring_dip,Push,Primary,Intermediate,Reps,true,,https://example.com/dip\n",
		library.PullFile: catalogHeader +
			"pull_up,Pull,Primary,Intermediate,Reps,true,,https://example.com/pull\n",
		library.CoreFile: catalogHeader +
			"plank,Core,Secondary,Beginner,Time,true,,https://example.com/plank\n",
		library.LegsFile: catalogHeader,
		library.CooldownFile: catalogHeader +
			"cat_cow,Cooldown,Secondary,Beginner,Time,true,,https://example.com/catcow\n" +
			"childs_pose,Cooldown,Secondary,Beginner,Time,true,,https://example.com/child\n",
	}
	for name, content := range files {
		writeTestFile(t, dir, name, content)
	}
	return library.New(dir, nil)
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	return path
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func assertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !errors.Is(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []exercise.Type
	}{
		{"single", []string{"push"}, []exercise.Type{exercise.Push}},
		{"repeated flags", []string{"Push", "pull"}, []exercise.Type{exercise.Push, exercise.Pull}},
		{"comma list", []string{"core, legs,push"}, []exercise.Type{exercise.Core, exercise.Legs, exercise.Push}},
		{"repeats kept", []string{"push,push"}, []exercise.Type{exercise.Push, exercise.Push}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypes(tt.raw)
			if err != nil {
				t.Fatalf("ParseTypes() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTypes() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTypes()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseTypes_Invalid(t *testing.T) {
	for _, raw := range [][]string{nil, {""}, {" , "}, {"cardio"}, {"push,cardio"}} {
		_, err := ParseTypes(raw)
		assertCode(t, err, errors.ErrInvalidRequest)
	}
}

func TestNewRand_SeedIsReproducible(t *testing.T) {
	seed := uint64(42)
	a, b := NewRand(&seed), NewRand(&seed)
	for i := 0; i < 10; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestWorkoutMarkdown(t *testing.T) {
	rows, err := library.LoadWorkout(writeTestFile(t, t.TempDir(), "2024_05_01.csv",
		"group,name,sets,distance,time,reps,goal,video\n"+
			"1,Skill Block,,,,,,\n"+
			"2,Push Up,,,,X,Chest | triceps,https://example.com/p\n"))
	if err != nil {
		t.Fatalf("LoadWorkout() error = %v", err)
	}

	md := WorkoutMarkdown("Workout 2024_05_01", rows)
	if !strings.HasPrefix(md, "# Workout 2024_05_01\n\n| Group | Exercise |") {
		t.Errorf("unexpected heading:\n%s", md)
	}
	if !strings.Contains(md, "| 1 | Skill Block |  |  |  |  |  |  |\n") {
		t.Errorf("missing skill block row:\n%s", md)
	}
	if !strings.Contains(md, `| 2 | Push Up |  |  |  | X | Chest \| triceps | [video](https://example.com/p) |`) {
		t.Errorf("missing push up row:\n%s", md)
	}
}
