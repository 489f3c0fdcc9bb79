package library

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/snooze"
)

var snoozedColumns = []string{"name", "timestamp"}

// LoadSnoozed reads every entry of the snooze list, expired or not. A
// missing file is an empty list.
func (l *Library) LoadSnoozed() ([]snooze.Entry, error) {
	path := l.SnoozedPath()

	tbl, err := readTable(path)
	if err != nil {
		if errors.Is(err, errors.ErrFileNotFound) {
			l.logger.Info("no snooze list yet", zap.String("path", path))
			return nil, nil
		}
		return nil, err
	}
	if len(tbl.columns) == 0 {
		return nil, nil
	}
	if err := tbl.require(snoozedColumns...); err != nil {
		return nil, err
	}

	entries := make([]snooze.Entry, 0, len(tbl.records))
	for i, rec := range tbl.records {
		name := tbl.get(rec, "name")
		if name == "" {
			return nil, errors.NewMalformedRecord(path, tbl.row(i), "name", fmt.Errorf("empty name"))
		}
		secs, err := strconv.ParseInt(tbl.get(rec, "timestamp"), 10, 64)
		if err != nil {
			return nil, errors.NewMalformedRecord(path, tbl.row(i), "timestamp", err)
		}
		entries = append(entries, snooze.Entry{Name: name, Timestamp: time.Unix(secs, 0).UTC()})
	}
	return entries, nil
}

// SaveSnoozed replaces the snooze list with entries.
func (l *Library) SaveSnoozed(entries []snooze.Entry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{e.Name, strconv.FormatInt(e.Timestamp.Unix(), 10)})
	}
	if err := writeTable(l.SnoozedPath(), snoozedColumns, records); err != nil {
		return err
	}
	l.logger.Info("updated snoozed exercises", zap.Int("count", len(entries)), zap.String("path", l.SnoozedPath()))
	return nil
}
