package ops

import (
	"context"
	"time"

	"github.com/hpungsan/wodgen/internal/config"
	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/library"
	"github.com/hpungsan/wodgen/internal/snooze"
)

// SnoozedItem is one active snooze.
type SnoozedItem struct {
	Name      string    `json:"name"`
	SnoozedAt time.Time `json:"snoozed_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SnoozedOutput contains the result of the ListSnoozed operation.
type SnoozedOutput struct {
	Items   []SnoozedItem `json:"items"`
	Count   int           `json:"count"`
	Expired int           `json:"expired"`
}

// ListSnoozed returns the snoozes still in effect, in file order. Expired
// entries are counted but not listed.
func ListSnoozed(ctx context.Context, lib *library.Library, cfg *config.Config, env Env) (*SnoozedOutput, error) {
	env = env.withDefaults()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewCancelled("snoozed")
	}

	all, err := lib.LoadSnoozed()
	if err != nil {
		return nil, err
	}

	period := cfg.SnoozePeriod()
	active := snooze.LoadActive(all, env.Now(), period)

	items := make([]SnoozedItem, 0, len(active))
	for _, e := range active {
		items = append(items, SnoozedItem{
			Name:      e.Name,
			SnoozedAt: e.Timestamp,
			ExpiresAt: snooze.ExpiresAt(e, period),
		})
	}

	return &SnoozedOutput{
		Items:   items,
		Count:   len(items),
		Expired: len(all) - len(active),
	}, nil
}
