package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// localLimiter is a per-client token bucket held in process memory, for single instance
// deployments without redis. A client may burst the whole window's budget at once and
// then regains one request every window/maxRequests.
type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

func newLocalLimiter(maxRequests, windowSeconds int) *localLimiter {
	maxRequests = max(1, maxRequests)
	window := time.Duration(max(1, windowSeconds)) * time.Second

	return &localLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}
}

// TODO: evict limiters of clients idle for longer than a window.
func (l *localLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.every, l.burst)
		l.limiters[key] = limiter
	}

	return limiter
}

// allow spends one token for key and reports what is left.
func (l *localLimiter) allow(key string) (bool, int) {
	limiter := l.get(key)
	if !limiter.Allow() {
		return false, 0
	}

	return true, int(limiter.Tokens())
}
