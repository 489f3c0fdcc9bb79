// Package snooze tracks which exercises are cooling down after being used in
// a workout.
package snooze

import "time"

// DefaultPeriod is how long an exercise stays snoozed after it is picked.
const DefaultPeriod = 7 * 24 * time.Hour

// Entry records that an exercise was picked at Timestamp.
type Entry struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// IsActive reports whether e is still cooling down at now.
// Entries stamped in the future are active.
func IsActive(e Entry, now time.Time, period time.Duration) bool {
	return now.Sub(e.Timestamp) < period
}

// LoadActive returns the entries of all that are still active at now, in order.
// Expired entries are dropped and never written back.
func LoadActive(all []Entry, now time.Time, period time.Duration) []Entry {
	active := make([]Entry, 0, len(all))
	for _, e := range all {
		if IsActive(e, now, period) {
			active = append(active, e)
		}
	}
	return active
}

// Tracker is the snooze list of a single run: the active entries loaded at
// start plus everything recorded since. It is not safe for concurrent use.
type Tracker struct {
	entries []Entry
}

// NewTracker starts a tracker from already-filtered active entries.
func NewTracker(active []Entry) *Tracker {
	entries := make([]Entry, len(active))
	copy(entries, active)
	return &Tracker{entries: entries}
}

// Record snoozes name starting at now and returns the new entry.
func (t *Tracker) Record(name string, now time.Time) Entry {
	e := Entry{Name: name, Timestamp: now}
	t.entries = append(t.entries, e)
	return e
}

// Entries returns the list to persist at the end of the run.
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Names returns the set of snoozed exercise names.
func (t *Tracker) Names() map[string]bool {
	names := make(map[string]bool, len(t.entries))
	for _, e := range t.entries {
		names[e.Name] = true
	}
	return names
}

// Len returns the number of entries.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// ExpiresAt returns when e stops being active.
func ExpiresAt(e Entry, period time.Duration) time.Time {
	return e.Timestamp.Add(period)
}
