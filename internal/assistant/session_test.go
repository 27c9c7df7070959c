package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder запоминает запросы и отвечает заданным текстом или ошибкой
type recorder struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (r *recorder) Generate(_ context.Context, prompt string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, prompt)
	return r.reply, r.err
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.prompts)
}

func TestNewSessionGreets(t *testing.T) {
	s := NewSession(&recorder{})

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, model.ChatRoleModel, msgs[0].Role)
	assert.Equal(t, Greeting, msgs[0].Text)
	assert.Equal(t, model.ModeSupport, s.Mode())
	assert.False(t, s.Busy())
}

func TestSendSkipsBlankText(t *testing.T) {
	gen := &recorder{reply: "hi"}
	s := NewSession(gen)

	for _, text := range []string{"", "   ", "\n\t"} {
		res := s.Send(context.Background(), text)
		assert.Equal(t, OutcomeSkipped, res.Outcome)
	}

	assert.Len(t, s.Messages(), 1)
	assert.False(t, s.Busy())
	assert.Zero(t, gen.calls())
}

func TestSendAppendsReply(t *testing.T) {
	gen := &recorder{reply: "We offer SSC, HSC and Admission programs."}
	s := NewSession(gen)
	s.SetMode(model.ModeAcademic)
	s.SetDraft("What courses are offered?")

	res := s.Send(context.Background(), "What courses are offered?")

	assert.Equal(t, OutcomeReplied, res.Outcome)
	assert.Equal(t, gen.reply, res.Reply)
	assert.NoError(t, res.Err)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, model.ChatRoleUser, msgs[1].Role)
	assert.Equal(t, "What courses are offered?", msgs[1].Text)
	assert.Equal(t, model.ChatRoleModel, msgs[2].Role)
	assert.Equal(t, gen.reply, msgs[2].Text)
	assert.Empty(t, s.Draft())
	assert.False(t, s.Busy())

	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasPrefix(gen.prompts[0], Guidance))
	assert.Contains(t, gen.prompts[0], "Current Mode: ACADEMIC")
	assert.Contains(t, gen.prompts[0], "User Query: What courses are offered?")
}

func TestSendFallsBackOnFailure(t *testing.T) {
	boom := errors.New("connection refused")
	s := NewSession(&recorder{err: boom})

	res := s.Send(context.Background(), "What courses are offered?")

	assert.Equal(t, OutcomeFallback, res.Outcome)
	assert.Equal(t, Fallback, res.Reply)
	assert.ErrorIs(t, res.Err, boom)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, model.ChatRoleUser, msgs[1].Role)
	assert.Equal(t, "What courses are offered?", msgs[1].Text)
	assert.Equal(t, model.ChatRoleModel, msgs[2].Role)
	assert.Equal(t, "Signal lost. Attempting reconnection...", msgs[2].Text)
	assert.False(t, s.Busy())
}

func TestSendWhileBusyIsSkipped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gen := GeneratorFunc(func(context.Context, string) (string, error) {
		close(started)
		<-release
		return "done", nil
	})
	s := NewSession(gen)

	done := make(chan Result)
	go func() {
		done <- s.Send(context.Background(), "first")
	}()

	<-started
	require.True(t, s.Busy())
	before := s.Messages()
	require.Len(t, before, 2)

	res := s.Send(context.Background(), "hello")
	assert.Equal(t, OutcomeSkipped, res.Outcome)
	assert.Equal(t, before, s.Messages())

	close(release)
	select {
	case first := <-done:
		assert.Equal(t, OutcomeReplied, first.Outcome)
	case <-time.After(time.Second):
		t.Fatal("first send did not finish")
	}

	assert.False(t, s.Busy())
	assert.Len(t, s.Messages(), 3)
}

func TestMessagesReturnsCopy(t *testing.T) {
	s := NewSession(&recorder{reply: "ok"})
	msgs := s.Messages()
	msgs[0].Text = "changed"

	assert.Equal(t, Greeting, s.Messages()[0].Text)
}

func TestUnavailableGenerator(t *testing.T) {
	s := NewSession(Unavailable())
	res := s.Send(context.Background(), "hello")

	assert.Equal(t, OutcomeFallback, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrNoCredential)
}

// place - неподвижная Navigation
type place struct {
	user *model.User
	view model.View
}

func (p place) Placement() (*model.User, model.View) { return p.user, p.view }

// movingChat - Navigation, которую другие горутины двигают между экранами
type movingChat struct {
	mu   sync.Mutex
	user *model.User
	view model.View
}

func (c *movingChat) Placement() (*model.User, model.View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user, c.view
}

func (c *movingChat) move(view model.View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
}

func TestRegistryFollowsDashboard(t *testing.T) {
	r := NewRegistry(&recorder{reply: "ok"})
	user := &model.User{ID: "std-123", Role: model.RoleStudent}

	assert.Nil(t, r.Sync(1, place{nil, model.ViewDashboard}))
	assert.Nil(t, r.Sync(1, place{user, model.ViewPrograms}))
	assert.Zero(t, r.Len())

	s := r.Sync(1, place{user, model.ViewDashboard})
	require.NotNil(t, s)
	s.Send(context.Background(), "hello")
	assert.Same(t, s, r.Sync(1, place{user, model.ViewDashboard}))

	got, ok := r.Get(1)
	require.True(t, ok)
	assert.Same(t, s, got)

	assert.Nil(t, r.Sync(1, place{user, model.ViewResearch}))
	_, ok = r.Get(1)
	assert.False(t, ok)

	fresh := r.Sync(1, place{user, model.ViewDashboard})
	require.NotNil(t, fresh)
	assert.NotSame(t, s, fresh)
	assert.Len(t, fresh.Messages(), 1)

	r.Unmount(1)
	assert.Zero(t, r.Len())
}

func TestRegistryOverlappingNavigation(t *testing.T) {
	views := []model.View{model.ViewDashboard, model.ViewHome}

	for _, last := range views {
		t.Run(string(last), func(t *testing.T) {
			r := NewRegistry(&recorder{reply: "ok"})
			chat := &movingChat{user: &model.User{ID: "std-123", Role: model.RoleStudent}, view: model.ViewHome}

			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(view model.View) {
					defer wg.Done()
					chat.move(view)
					r.Sync(1, chat)
				}(views[i%2])
			}
			wg.Wait()

			// последний переход выполняется после всех горутин
			chat.move(last)
			r.Sync(1, chat)

			_, mounted := r.Get(1)
			assert.Equal(t, last == model.ViewDashboard, mounted)
		})
	}
}

func TestRegistryStaleSyncSeesCurrentView(t *testing.T) {
	r := NewRegistry(&recorder{reply: "ok"})
	chat := &movingChat{user: &model.User{ID: "std-123", Role: model.RoleStudent}, view: model.ViewDashboard}

	require.NotNil(t, r.Sync(1, chat))

	// обработчик перехода на DASHBOARD отстал: к его Sync чат уже на HOME
	chat.move(model.ViewHome)
	assert.Nil(t, r.Sync(1, chat))

	_, mounted := r.Get(1)
	assert.False(t, mounted)
}
