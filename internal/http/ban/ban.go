// Package ban tracks clients that keep hammering rate-limited routes.
// Strikes accumulate in redis; past the threshold the client is banned for a
// while and the event is appended to a daily log.
package ban

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
	DailyBanLogKey  = "ratelimit:banlog:daily"
)

type Banlist struct {
	rdb          *redis.Client
	log          zerolog.Logger
	threshold    int64
	strikeWindow time.Duration
	banTTL       time.Duration
}

func New(rdb *redis.Client, log zerolog.Logger, threshold int, strikeWindow, banTTL time.Duration) *Banlist {
	return &Banlist{
		rdb:          rdb,
		log:          log,
		threshold:    int64(threshold),
		strikeWindow: strikeWindow,
		banTTL:       banTTL,
	}
}

// IsBanned reports whether target currently sits on the ban list. Redis
// errors count as not banned; an unreachable redis must not lock everyone
// out.
func (b *Banlist) IsBanned(ctx context.Context, target string) bool {
	n, err := b.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		b.log.Warn().Err(err).Msg("ban lookup failed")
		return false
	}
	return n > 0
}

// Strike records one rate-limit violation for target on route and reports
// whether this strike tipped it onto the ban list.
func (b *Banlist) Strike(ctx context.Context, target, route string) bool {
	key := strikeKeyPrefix + target
	strikes, err := b.rdb.Incr(ctx, key).Result()
	if err != nil {
		b.log.Warn().Err(err).Msg("strike increment failed")
		return false
	}
	if strikes == 1 {
		_ = b.rdb.Expire(ctx, key, b.strikeWindow).Err()
	}
	if strikes < b.threshold {
		return false
	}

	if err := b.rdb.Set(ctx, banKeyPrefix+target, "1", b.banTTL).Err(); err != nil {
		b.log.Warn().Err(err).Msg("ban set failed")
		return false
	}
	_ = b.rdb.Del(ctx, key).Err()

	b.log.Warn().
		Str("target", target).
		Str("route", route).
		Int64("strikes", strikes).
		Dur("ban_ttl", b.banTTL).
		Msg("client banned")
	b.logBanEvent(ctx, target, route, int(strikes))
	return true
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func (b *Banlist) logBanEvent(ctx context.Context, target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = b.rdb.RPush(ctx, DailyBanLogKey, data).Err()
}

// StartDailySummary logs the aggregated ban log once per day, shortly before
// midnight. Run it in a goroutine; it never returns.
func (b *Banlist) StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		b.LogDailySummary(context.Background())
	}
}

// LogDailySummary drains the daily ban log and writes one aggregated entry.
func (b *Banlist) LogDailySummary(ctx context.Context) {
	entries, err := b.rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = b.rdb.Del(ctx, DailyBanLogKey).Err()

	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)
	total := 0
	for _, item := range entries {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		total++
		routeCounts[entry.Route]++
		targetCounts[entry.Target]++
	}

	b.log.Info().
		Int("total_bans", total).
		Interface("by_route", routeCounts).
		Interface("by_target", targetCounts).
		Msg("daily ban summary")
}
