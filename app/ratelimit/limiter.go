package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "secours:rate_limit"

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// Decision is the outcome of one Consume call.
type Decision struct {
	Allowed    bool
	Count      int
	RetryAfter time.Duration
}

// Limiter is a fixed-window counter shared through Redis. A nil Limiter, or
// one without a client, allows everything.
type Limiter struct {
	client redis.Scripter
	prefix string
	limit  int
	window time.Duration
}

func NewLimiter(client redis.Scripter, prefix string, limit int, window time.Duration) *Limiter {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *Limiter) Consume(ctx context.Context, scope, subject string) (Decision, error) {
	if l == nil || l.client == nil || l.limit <= 0 || l.window <= 0 {
		return Decision{Allowed: true}, nil
	}

	key, ok := l.key(scope, subject)
	if !ok {
		return Decision{Allowed: true}, nil
	}

	windowMs := l.window.Milliseconds()
	if windowMs < 1000 {
		windowMs = 1000
	}

	raw, err := fixedWindowScript.Run(ctx, l.client, []string{key}, windowMs).Result()
	if err != nil {
		return Decision{}, err
	}

	values, ok := raw.([]interface{})
	if !ok || len(values) != 2 {
		return Decision{}, fmt.Errorf("unexpected limiter response shape: %T", raw)
	}
	count, ok := values[0].(int64)
	if !ok {
		return Decision{}, fmt.Errorf("unexpected limiter count type: %T", values[0])
	}
	ttlMs, ok := values[1].(int64)
	if !ok {
		return Decision{}, fmt.Errorf("unexpected limiter ttl type: %T", values[1])
	}
	if ttlMs < 0 {
		ttlMs = windowMs
	}

	seconds := int64(math.Ceil(float64(ttlMs) / 1000.0))
	if seconds < 1 {
		seconds = 1
	}

	return Decision{
		Allowed:    count <= int64(l.limit),
		Count:      int(count),
		RetryAfter: time.Duration(seconds) * time.Second,
	}, nil
}

func (l *Limiter) key(scope, subject string) (string, bool) {
	scope = strings.TrimSpace(scope)
	subject = strings.TrimSpace(subject)
	if scope == "" || subject == "" {
		return "", false
	}
	return fmt.Sprintf("%s:%s:%s", l.prefix, scope, subject), true
}
