package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-event-creator/internal/auth"
	"calendar-event-creator/pkg/log"
)

// Options sizes the in-memory stores.
type Options struct {
	SessionTTL  time.Duration
	StateTTL    time.Duration
	MaxSessions int
	MaxStates   int
}

type implRepository struct {
	l          log.Logger
	sessions   *expirable.LRU[string, auth.Session]
	states     *expirable.LRU[string, string]
	sessionTTL time.Duration
}

// New creates process-local session and state stores. Entries expire on
// their own; the least recently used entry is evicted when a store is full.
func New(l log.Logger, opts Options) *implRepository {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 10000
	}
	if opts.MaxStates <= 0 {
		opts.MaxStates = opts.MaxSessions
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.StateTTL <= 0 {
		opts.StateTTL = 10 * time.Minute
	}

	return &implRepository{
		l:          l,
		sessions:   expirable.NewLRU[string, auth.Session](opts.MaxSessions, nil, opts.SessionTTL),
		states:     expirable.NewLRU[string, string](opts.MaxStates, nil, opts.StateTTL),
		sessionTTL: opts.SessionTTL,
	}
}
