package assistant

import (
	"sync"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
)

// Registry хранит по одной сессии ассистента на чат, пока чат на дашборде
// вошедшего пользователя
type Registry struct {
	mu        sync.Mutex
	generator Generator
	sessions  map[int64]*Session // chatID -> session
}

func NewRegistry(generator Generator) *Registry {
	return &Registry{
		generator: generator,
		sessions:  make(map[int64]*Session),
	}
}

// Navigation — текущее положение чата: вход и экран, прочитанные атомарно
type Navigation interface {
	Placement() (*model.User, model.View)
}

// Sync монтирует или убирает сессию чата по текущему положению nav.
// nav читается под блокировкой реестра. Возвращает nil, когда панель не показана.
func (r *Registry) Sync(chatID int64, nav Navigation) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, view := nav.Placement()
	if identity == nil || view != model.ViewDashboard {
		delete(r.sessions, chatID)
		return nil
	}

	s, exists := r.sessions[chatID]
	if !exists {
		s = NewSession(r.generator)
		r.sessions[chatID] = s
	}
	return s
}

// Get возвращает смонтированную сессию
func (r *Registry) Get(chatID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[chatID]
	return s, ok
}

// Unmount удаляет сессию чата вместе с журналом
func (r *Registry) Unmount(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, chatID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
