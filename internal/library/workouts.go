package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/workout"
)

// WorkoutFileName returns the file name of the workout generated on date.
func WorkoutFileName(date time.Time) string {
	return date.Format("2006_01_02") + ".csv"
}

// SaveWorkout writes rows to dir/YYYY_MM_DD.csv, creating dir if needed, and
// returns the path written. A workout already saved for date is replaced.
func SaveWorkout(dir string, date time.Time, rows []workout.Row) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.NewInternal(fmt.Errorf("failed to create workouts directory: %w", err))
	}

	path := filepath.Join(dir, WorkoutFileName(date))
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.Group), r.Name, r.Sets, r.Distance, r.Time, r.Reps, r.Goal, r.Video,
		})
	}
	if err := writeTable(path, workout.Columns, records); err != nil {
		return "", err
	}
	return path, nil
}

// LoadWorkout reads a workout file written by SaveWorkout.
func LoadWorkout(path string) ([]workout.Row, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := tbl.require(workout.Columns...); err != nil {
		return nil, err
	}

	rows := make([]workout.Row, 0, len(tbl.records))
	for i, rec := range tbl.records {
		group, err := strconv.Atoi(tbl.get(rec, "group"))
		if err != nil {
			return nil, errors.NewMalformedRecord(path, tbl.row(i), "group", err)
		}
		rows = append(rows, workout.Row{
			Group:    group,
			Name:     tbl.get(rec, "name"),
			Sets:     tbl.get(rec, "sets"),
			Distance: tbl.get(rec, "distance"),
			Time:     tbl.get(rec, "time"),
			Reps:     tbl.get(rec, "reps"),
			Goal:     tbl.get(rec, "goal"),
			Video:    tbl.get(rec, "video"),
		})
	}
	return rows, nil
}
