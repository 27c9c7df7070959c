package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/google/uuid"
)

const (
	Greeting = "MGCC Intelligence online. How can I facilitate your learning journey today?"
	Fallback = "Signal lost. Attempting reconnection..."
)

// Guidance — статичная преамбула платформы, уходит с каждым запросом
const Guidance = `You are the MGCC (Miftahul Er Jelkhana Coaching Center) Intelligence Assistant.
Rules:
- Payment Process: bKash Send Money to 017XXXXXXXX. Enter Transaction ID at the prompt.
- Verification: Admin checks Transaction ID against logs. Course unlocks within 12 hours.
- Login Roles: Students (Email/Phone), Teachers (4-digit ID), Parents (Student ID link).
- Courses: SSC, HSC, Admission, Coding, AI, Entrepreneurship.
- Vibe: Professional, Apple-style minimalist, encouraging, academic expert.`

// Generator превращает prompt в текст
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc адаптер функции к Generator
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Outcome — результат одного вызова Send
type Outcome string

const (
	OutcomeSkipped  Outcome = "skipped"
	OutcomeReplied  Outcome = "replied"
	OutcomeFallback Outcome = "fallback"
)

// Result описывает что сделал Send. Err заполнен только для OutcomeFallback
// и нужен для логов, в журнал диалога попадает только Fallback.
type Result struct {
	Outcome Outcome
	Reply   string
	Err     error
}

// BuildPrompt склеивает преамбулу, режим и текст пользователя
func BuildPrompt(mode model.AssistantMode, text string) string {
	return Guidance + "\nCurrent Mode: " + string(mode) + "\nUser Query: " + text
}

// Session — журнал диалога только на добавление, не больше одного запроса в полёте
type Session struct {
	mu        sync.Mutex
	generator Generator
	now       func() time.Time

	messages []model.ChatMessage
	draft    string
	busy     bool
	mode     model.AssistantMode
}

// NewSession создаёт сессию с приветствием в режиме SUPPORT
func NewSession(generator Generator) *Session {
	s := &Session{
		generator: generator,
		now:       time.Now,
		mode:      model.ModeSupport,
	}
	s.messages = append(s.messages, s.newMessage(model.ChatRoleModel, Greeting))
	return s
}

// Send передаёт текст генератору и добавляет ответ, либо fallback
// при ошибке генератора. Пустой текст и вызовы во время другого
// запроса пропускаются без изменения журнала.
func (s *Session) Send(ctx context.Context, text string) Result {
	s.mu.Lock()
	if strings.TrimSpace(text) == "" || s.busy {
		s.mu.Unlock()
		return Result{Outcome: OutcomeSkipped}
	}

	s.messages = append(s.messages, s.newMessage(model.ChatRoleUser, text))
	s.busy = true
	s.draft = ""
	prompt := BuildPrompt(s.mode, text)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	reply, err := s.generator.Generate(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.messages = append(s.messages, s.newMessage(model.ChatRoleModel, Fallback))
		return Result{Outcome: OutcomeFallback, Reply: Fallback, Err: err}
	}

	s.messages = append(s.messages, s.newMessage(model.ChatRoleModel, reply))
	return Result{Outcome: OutcomeReplied, Reply: reply}
}

// Messages возвращает копию журнала в порядке добавления
func (s *Session) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage(nil), s.messages...)
}

func (s *Session) SetMode(mode model.AssistantMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

func (s *Session) Mode() model.AssistantMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Session) newMessage(role model.ChatRole, text string) model.ChatMessage {
	return model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: s.now(),
	}
}
