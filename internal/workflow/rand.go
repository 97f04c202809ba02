package workflow

import (
	"math/rand"
	"sync"
)

// LockedRand wraps *rand.Rand with a mutex so one source can be shared by
// handlers serving different sessions concurrently. *rand.Rand itself is not
// safe for concurrent use.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
