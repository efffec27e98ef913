package redis

import (
	"context"
	"strconv"
	"time"
)

// RateCounter counts requests per user in fixed one-minute windows. Each
// admission increments the counter for the current minute; the key expires
// shortly after the window closes.
type RateCounter struct{}

// NewRateCounter creates a new rate counter
func NewRateCounter() *RateCounter {
	return &RateCounter{}
}

var nowFunc = time.Now

// Incr increments the current window for userID and returns the count of
// requests seen in that window, including this one.
func (rc *RateCounter) Incr(ctx context.Context, userID string) (int64, error) {
	c := GetClient()
	key := rateKey(userID, nowFunc())

	count, err := c.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// First hit in this window; keep the key around a little past the
		// window edge so late readers still see it.
		if err := c.Expire(ctx, key, 2*time.Minute).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

func rateKey(userID string, t time.Time) string {
	return "rate:" + userID + ":" + strconv.FormatInt(t.Unix()/60, 10)
}
