package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yamato-seiki/schedule-api/internal/api/metrics"
)

const isoDate = "2006-01-02"

// HolidayStore keeps designated holidays in Redis, one set per year.
// Key format: holidays:<year>, members are ISO dates.
//
// It implements calendar.HolidayOracle. Lookups are best-effort: the caller
// treats an error as "not a holiday", so a Redis outage degrades the
// calendar rather than breaking it.
type HolidayStore struct {
	client *redis.Client
}

func NewHolidayStore(client *redis.Client) *HolidayStore {
	return &HolidayStore{client: client}
}

// IsHoliday reports whether the date is a designated holiday.
func (s *HolidayStore) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key(date.Year()), date.Format(isoDate)).Result()
	if err != nil {
		metrics.HolidayLookupErrorsTotal.Inc()
		return false, fmt.Errorf("holiday lookup: %w", err)
	}
	return ok, nil
}

// Seed replaces the holiday set for a year in one round trip.
func (s *HolidayStore) Seed(ctx context.Context, year int, dates []time.Time) error {
	members := make([]interface{}, 0, len(dates))
	for _, d := range dates {
		members = append(members, d.Format(isoDate))
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(year))
	if len(members) > 0 {
		pipe.SAdd(ctx, s.key(year), members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("seed holidays: %w", err)
	}
	return nil
}

func (s *HolidayStore) key(year int) string {
	return fmt.Sprintf("holidays:%d", year)
}
