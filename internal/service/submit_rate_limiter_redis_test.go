package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastKeys []string
	lastArgs []interface{}
	result   int64
	err      error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisSubmitRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisSubmitRateLimiter
		if !l.Allow("203.0.113.7") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisSubmitRateLimiter{
			client: &mockRedisEvaler{result: 1},
			window: time.Minute,
			max:    10,
			prefix: "submit:rl:",
		}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 3}
		l := &redisSubmitRateLimiter{
			client: mock,
			window: time.Minute,
			max:    10,
			prefix: "submit:rl:",
		}
		if !l.Allow("203.0.113.7") {
			t.Fatalf("expected allow while under the window max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "submit:rl:203.0.113.7" {
			t.Fatalf("unexpected redis key: %v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 60 {
			t.Fatalf("expected window seconds as arg, got %v", mock.lastArgs)
		}
	})

	t.Run("deny over max", func(t *testing.T) {
		l := &redisSubmitRateLimiter{
			client: &mockRedisEvaler{result: 11},
			window: time.Minute,
			max:    10,
			prefix: "submit:rl:",
		}
		if l.Allow("203.0.113.7") {
			t.Fatalf("expected deny over the window max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisSubmitRateLimiter{
			client: &mockRedisEvaler{err: errors.New("redis down")},
			window: time.Minute,
			max:    10,
			prefix: "submit:rl:",
		}
		if !l.Allow("203.0.113.7") {
			t.Fatalf("expected fail-open on redis error")
		}
	})
}

func TestNewRedisSubmitRateLimiterDefaults(t *testing.T) {
	if NewRedisSubmitRateLimiter(nil, time.Minute, 10) != nil {
		t.Fatalf("expected nil limiter without client")
	}

	limiter := NewRedisSubmitRateLimiter(redis.NewClient(&redis.Options{}), 0, 0)
	l, ok := limiter.(*redisSubmitRateLimiter)
	if !ok {
		t.Fatalf("unexpected limiter type %T", limiter)
	}
	if l.window != time.Minute || l.max != 1 {
		t.Fatalf("expected defaulted window/max, got %v/%d", l.window, l.max)
	}
}
