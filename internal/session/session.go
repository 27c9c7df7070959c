package session

import (
	"strings"
	"sync"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/google/uuid"
)

// Seed поставляет записи, из которых сессия строит пользователя
type Seed struct {
	MockStudent func() *model.User
	NewUserID   func() string
}

// CatalogSource - часть каталога, нужная seed
type CatalogSource interface {
	MockStudent() *model.User
}

// NewSeed создаёт seed поверх каталога со случайными id "usr-xxxxx"
func NewSeed(src CatalogSource) Seed {
	return Seed{
		MockStudent: src.MockStudent,
		NewUserID:   RandomUserID,
	}
}

// RandomUserID возвращает "usr-" и пять случайных символов
func RandomUserID() string {
	return "usr-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
}

const parentDisplayName = "Parent of Sadiya"

// Snapshot - копия состояния сессии только для чтения
type Snapshot struct {
	Identity       *model.User
	View           model.View
	SelectedCourse *model.Course
	SearchText     string
	AuthPromptOpen bool
}

// Session хранит вход и навигацию одного чата.
// Каждая операция выполняет переход целиком под блокировкой.
type Session struct {
	mu   sync.RWMutex
	seed Seed

	identity       *model.User
	view           model.View
	selectedCourse *model.Course
	searchText     string
	authPromptOpen bool
}

// New создаёт анонимную сессию на экране HOME
func New(seed Seed) *Session {
	return &Session{
		seed: seed,
		view: model.ViewHome,
	}
}

// Login создаёт пользователя для роли и открывает дашборд.
// Идентификатор не проверяется.
func (s *Session) Login(role model.Role, identifier, subject string) *model.User {
	var user *model.User

	switch role {
	case model.RoleStudent:
		user = s.seed.MockStudent()
		user.EmailOrPhone = identifier
	case model.RoleParent:
		user = s.seed.MockStudent()
		user.Role = model.RoleParent
		user.StudentPhone = identifier
		user.Name = parentDisplayName
	default:
		user = &model.User{
			ID:              s.seed.NewUserID(),
			Name:            identifier,
			Role:            role,
			Subject:         subject,
			Achievements:    []string{},
			EnrolledCourses: []string{},
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = user
	s.authPromptOpen = false
	s.view = model.ViewDashboard

	return user.Clone()
}

// Logout сбрасывает вход и возвращает на HOME с пустым поиском
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.view = model.ViewHome
	s.searchText = ""
}

// ChangeView переключает экран. HOME также сбрасывает поиск.
// DASHBOARD без входа игнорируется. Возвращает, применён ли переход.
func (s *Session) ChangeView(target model.View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target == model.ViewDashboard && s.identity == nil {
		return false
	}

	s.view = target
	if target == model.ViewHome {
		s.searchText = ""
	}
	return true
}

// SelectCourseForPreview открывает карточку курса.
// Выбор сохраняется при навигации до следующего вызова.
func (s *Session) SelectCourseForPreview(course model.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedCourse = &course
	s.view = model.ViewCoursePreview
}

// SubmitRegistration записывает эталонного студента на courseID
// (пустой courseID - без курсов) без предварительного входа
func (s *Session) SubmitRegistration(courseID string) *model.User {
	user := s.seed.MockStudent()
	if courseID != "" {
		user.EnrolledCourses = []string{courseID}
	} else {
		user.EnrolledCourses = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = user
	s.authPromptOpen = false
	s.view = model.ViewDashboard

	return user.Clone()
}

func (s *Session) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = text
}

func (s *Session) OpenAuthPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authPromptOpen = true
}

func (s *Session) CloseAuthPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authPromptOpen = false
}

// Identity возвращает копию пользователя, nil без входа
func (s *Session) Identity() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Clone()
}

// Placement возвращает вход и экран одним чтением
func (s *Session) Placement() (*model.User, model.View) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Clone(), s.view
}

func (s *Session) View() model.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Session) SearchText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchText
}

// SelectedCourse возвращает nil, пока курс не выбран
func (s *Session) SelectedCourse() *model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedCourse == nil {
		return nil
	}
	c := *s.selectedCourse
	return &c
}

func (s *Session) AuthPromptOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authPromptOpen
}

// Snapshot возвращает всё состояние одним чтением
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Identity:       s.identity.Clone(),
		View:           s.view,
		SearchText:     s.searchText,
		AuthPromptOpen: s.authPromptOpen,
	}
	if s.selectedCourse != nil {
		c := *s.selectedCourse
		snap.SelectedCourse = &c
	}
	return snap
}
