package session

import (
	"sync"
	"time"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry хранит сессии по chatID
type Registry struct {
	mu       sync.RWMutex
	seed     Seed
	sessions map[int64]*entry // chatID -> session
	now      func() time.Time
}

// NewRegistry создаёт пустой реестр сессий
func NewRegistry(seed Seed) *Registry {
	return &Registry{
		seed:     seed,
		sessions: make(map[int64]*entry),
		now:      time.Now,
	}
}

// Get возвращает сессию чата, при первом обращении создаёт анонимную
func (r *Registry) Get(chatID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.sessions[chatID]
	if !exists {
		e = &entry{session: New(r.seed)}
		r.sessions[chatID] = e
	}
	e.lastSeen = r.now()
	return e.session
}

// Drop удаляет сессию чата
func (r *Registry) Drop(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, chatID)
}

// Sweep удаляет сессии, простаивающие дольше idle, и возвращает их chatID
func (r *Registry) Sweep(idle time.Duration) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	var dropped []int64
	for chatID, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, chatID)
			dropped = append(dropped, chatID)
		}
	}
	return dropped
}

// Len возвращает количество активных сессий
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
