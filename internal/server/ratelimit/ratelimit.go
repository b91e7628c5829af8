// Package ratelimit provides per-client request throttling using a token
// bucket per client id.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config controls bucket size and refill behavior.
type Config struct {
	Capacity   int     // burst capacity per client
	RefillRate float64 // tokens per second
}

// LoadConfig reads limiter settings from the environment with lenient
// defaults sized for a single-user dashboard.
func LoadConfig() Config {
	cfg := Config{Capacity: 60, RefillRate: 10}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_CAPACITY")); err == nil && v > 0 {
		cfg.Capacity = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_REFILL"), 64); err == nil && v > 0 {
		cfg.RefillRate = v
	}
	return cfg
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter tracks one token bucket per client id. Idle buckets are dropped by
// a background sweep so the map does not grow with every client ever seen.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts its cleanup goroutine.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow consumes one token for the client, reporting whether the request may
// proceed and how many tokens remain.
func (l *Limiter) Allow(clientID string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Capacity), lastRefill: now}
		l.buckets[clientID] = b
	}

	refill := now.Sub(b.lastRefill).Seconds() * l.cfg.RefillRate
	b.tokens = min(float64(l.cfg.Capacity), b.tokens+refill)
	b.lastRefill = now

	if b.tokens < 1 {
		return false, 0
	}
	b.tokens--
	return true, int(b.tokens)
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-5 * time.Minute)
			l.mu.Lock()
			for id, b := range l.buckets {
				if b.lastRefill.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
