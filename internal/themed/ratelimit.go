package themed

import (
	"context"
	"sort"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RateLimit is a token bucket configuration.
type RateLimit struct {
	// PerSecond is the sustained rate (tokens added per second).
	PerSecond float64
	// Burst is the bucket capacity.
	Burst int
}

// DefaultRateLimits caps selection writes well below reads.
var DefaultRateLimits = map[string]RateLimit{
	MethodSetSelection: {PerSecond: 10, Burst: 20},

	MethodGetTheme:     {PerSecond: 100, Burst: 200},
	MethodListThemes:   {PerSecond: 100, Burst: 200},
	MethodGetVariables: {PerSecond: 100, Burst: 200},
}

type bucket struct {
	mu      sync.Mutex
	limit   RateLimit
	tokens  float64
	last    time.Time
	allowed int64
	denied  int64
}

func newBucket(limit RateLimit, now time.Time) *bucket {
	return &bucket{limit: limit, tokens: float64(limit.Burst), last: now}
}

func (b *bucket) refill(now time.Time) {
	b.tokens += now.Sub(b.last).Seconds() * b.limit.PerSecond
	if capacity := float64(b.limit.Burst); b.tokens > capacity {
		b.tokens = capacity
	}
	b.last = now
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now)
	if b.tokens >= 1 {
		b.tokens--
		b.allowed++
		return true
	}
	b.denied++
	return false
}

// LimitStats reports usage for one method.
type LimitStats struct {
	Method    string
	Limit     RateLimit
	Available float64
	Allowed   int64
	Denied    int64
}

// RateLimiter applies a token bucket per method. Methods without a configured
// limit are not limited.
type RateLimiter struct {
	now     func() time.Time
	mu      sync.Mutex
	limits  map[string]RateLimit
	buckets map[string]*bucket
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithLimits overrides or adds per-method limits.
func WithLimits(limits map[string]RateLimit) RateLimiterOption {
	return func(rl *RateLimiter) {
		for method, limit := range limits {
			rl.limits[method] = limit
		}
	}
}

// WithRateClock replaces the time source.
func WithRateClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// NewRateLimiter creates a limiter seeded with DefaultRateLimits.
func NewRateLimiter(opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		now:     time.Now,
		limits:  make(map[string]RateLimit, len(DefaultRateLimits)),
		buckets: make(map[string]*bucket),
	}
	for method, limit := range DefaultRateLimits {
		rl.limits[method] = limit
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Allow consumes a token for method if one is available.
func (rl *RateLimiter) Allow(method string) bool {
	b := rl.bucket(method)
	if b == nil {
		return true
	}
	return b.take(rl.now())
}

func (rl *RateLimiter) bucket(method string) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets[method]; ok {
		return b
	}
	limit, ok := rl.limits[method]
	if !ok {
		return nil
	}
	b := newBucket(limit, rl.now())
	rl.buckets[method] = b
	return b
}

// Stats returns per-method usage sorted by method name.
func (rl *RateLimiter) Stats() []LimitStats {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	out := make([]LimitStats, 0, len(rl.limits))
	for method, limit := range rl.limits {
		st := LimitStats{Method: method, Limit: limit, Available: float64(limit.Burst)}
		if b, ok := rl.buckets[method]; ok {
			b.mu.Lock()
			b.refill(now)
			st.Available, st.Allowed, st.Denied = b.tokens, b.allowed, b.denied
			b.mu.Unlock()
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// UnaryServerInterceptor rejects calls over their method's limit with ResourceExhausted.
func (rl *RateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !rl.Allow(info.FullMethod) {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for method %s", info.FullMethod)
		}
		return handler(ctx, req)
	}
}
