package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/mgcc_bot/internal/assistant"
	"github.com/Freeeeeet/mgcc_bot/internal/catalog"
	"github.com/Freeeeeet/mgcc_bot/internal/dashboard"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/service"
	"github.com/Freeeeeet/mgcc_bot/internal/session"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func callbacks(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.CallbackData)
		}
	}
	return out
}

func TestHomeScreenShowsFirstCourses(t *testing.T) {
	cat := loadCatalog(t)

	text, kb := BuildHomeScreen(session.Snapshot{View: model.ViewHome}, cat)

	assert.Contains(t, text, "Academic Mastery.")
	assert.Contains(t, text, "SSC Campus Road")
	assert.Contains(t, callbacks(kb), "course:ssc-path")
	assert.Contains(t, callbacks(kb), "auth")
	assert.NotContains(t, callbacks(kb), "view:DASHBOARD")
}

func TestProgramsScreenFiltersBySearch(t *testing.T) {
	cat := loadCatalog(t)

	text, kb := BuildProgramsScreen(session.Snapshot{SearchText: "admission"}, cat)

	assert.Contains(t, text, "Admission Warrior Journey")
	assert.NotContains(t, text, "SSC Campus Road")
	assert.Contains(t, callbacks(kb), "clear_search")

	text, _ = BuildProgramsScreen(session.Snapshot{SearchText: "zzz"}, cat)
	assert.Contains(t, text, "No programs match your search.")
}

func TestCoursePreviewLockedTopics(t *testing.T) {
	cat := loadCatalog(t)
	course := cat.CourseByID("ssc-path")
	require.NotNil(t, course)

	text, kb := BuildCoursePreviewScreen(session.Snapshot{}, *course)

	assert.Contains(t, text, "▶️ Newtonian Foundations")
	assert.Contains(t, text, "🔒 Light &amp; Optics")
	assert.Contains(t, text, "Locked.")
	assert.Contains(t, callbacks(kb), "enroll:ssc-path")
}

func TestCoursePreviewEnrolledStudent(t *testing.T) {
	cat := loadCatalog(t)
	course := cat.CourseByID("ssc-path")
	require.NotNil(t, course)

	snap := session.Snapshot{Identity: cat.MockStudent()}
	text, kb := BuildCoursePreviewScreen(snap, *course)

	assert.Contains(t, text, "Enrolled.")
	assert.NotContains(t, callbacks(kb), "enroll:ssc-path")
}

func TestResearchScreenFacultyHint(t *testing.T) {
	cat := loadCatalog(t)

	guest, _ := BuildResearchScreen(session.Snapshot{}, cat)
	assert.Contains(t, guest, "Foundations of Quantum Logic")
	assert.NotContains(t, guest, "Publish New Material")

	teacher := &model.User{ID: "usr-1", Role: model.RoleTeacher}
	faculty, _ := BuildResearchScreen(session.Snapshot{Identity: teacher}, cat)
	assert.Contains(t, faculty, "Publish New Material")
}

func TestAuthPromptOffersEveryRole(t *testing.T) {
	_, kb := BuildAuthPromptScreen()

	data := callbacks(kb)
	for _, r := range model.Roles() {
		assert.Contains(t, data, "role:"+string(r))
	}
	assert.Contains(t, data, "register")
}

func TestDashboardScreens(t *testing.T) {
	cat := loadCatalog(t)
	src := dashboard.Sources{Catalog: cat}

	tests := []struct {
		name string
		user *model.User
		want string
	}{
		{"student", cat.MockStudent(), "Adaptive Milestones"},
		{"teacher", &model.User{ID: "usr-1", Name: "1024", Role: model.RoleTeacher}, "Managing Subject: <b>All Subjects</b>"},
		{"parent", &model.User{ID: "std-123", Role: model.RoleParent, StudentPhone: "017"}, "Parent Portal"},
		{"professor", &model.User{ID: "usr-2", Name: "Rahman", Role: model.RoleProfessor}, "Faculty Publications"},
		{"admin", &model.User{ID: "usr-3", Role: model.RoleAdmin}, "No pending transaction records"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, ok := dashboard.Select(tt.user, src)
			require.True(t, ok)

			text, kb := BuildDashboardScreen(board, session.Snapshot{Identity: tt.user}, nil, 0)
			assert.Contains(t, text, tt.want)
			assert.Contains(t, callbacks(kb), "logout")
			assert.NotContains(t, callbacks(kb), "ask")
		})
	}
}

func TestAdminDashboardQueueButtons(t *testing.T) {
	cat := loadCatalog(t)
	admin := &model.User{ID: "usr-3", Role: model.RoleAdmin}

	pending := make([]*model.PaymentRequest, 0, 7)
	for i := 0; i < 7; i++ {
		pending = append(pending, &model.PaymentRequest{
			ID:            string(rune('a' + i)),
			StudentName:   "Sadiya Afrin",
			CourseID:      "ssc-path",
			TransactionID: "7X23K92L",
			Amount:        4500,
			Status:        model.PaymentStatusPending,
			Timestamp:     time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		})
	}
	src := dashboard.Sources{
		Catalog: cat,
		Queue: dashboard.QueueSnapshot{
			Pending:     pending,
			DemoNumbers: []*model.DemoPaymentNumber{{ID: "dn-1", Number: "01712345678", Label: "Internal bKash"}},
		},
	}

	board, ok := dashboard.Select(admin, src)
	require.True(t, ok)

	text, kb := BuildDashboardScreen(board, session.Snapshot{Identity: admin}, nil, 1)
	data := callbacks(kb)

	assert.Contains(t, text, "(7 pending)")
	assert.Contains(t, text, "6. Sadiya Afrin")
	assert.NotContains(t, text, "1. Sadiya Afrin")
	assert.Contains(t, data, "pay_verify:f")
	assert.Contains(t, data, "pay_reject:g")
	assert.NotContains(t, data, "pay_verify:a")
	assert.Contains(t, data, "queue_page:0")
	assert.Contains(t, data, "demo_remove:dn-1")
	assert.Contains(t, data, "demo_add")
}

func TestDashboardShowsAssistantPanel(t *testing.T) {
	cat := loadCatalog(t)
	user := cat.MockStudent()
	board, ok := dashboard.Select(user, dashboard.Sources{Catalog: cat})
	require.True(t, ok)

	panel := assistant.NewSession(assistant.Unavailable())
	text, kb := BuildDashboardScreen(board, session.Snapshot{Identity: user}, panel, 0)

	assert.Contains(t, text, assistant.Greeting)
	assert.Contains(t, callbacks(kb), "ask")
	assert.Contains(t, callbacks(kb), "mode:STRATEGY")
}

func TestAssistantScreenHistory(t *testing.T) {
	panel := assistant.NewSession(assistant.GeneratorFunc(func(context.Context, string) (string, error) {
		return "", errors.New("offline")
	}))
	res := panel.Send(context.Background(), "<b>hi</b>")
	require.Equal(t, assistant.OutcomeFallback, res.Outcome)

	text, kb := BuildAssistantScreen(panel)

	assert.Contains(t, text, "&lt;b&gt;hi&lt;/b&gt;")
	assert.Contains(t, text, assistant.Fallback)
	assert.Contains(t, callbacks(kb), "view:DASHBOARD")
	assert.NotContains(t, text, "Draft:")
}

func TestAssistantScreenShowsDraft(t *testing.T) {
	panel := assistant.NewSession(assistant.Unavailable())
	panel.SetDraft("When does HSC start?")

	text, _ := BuildAssistantScreen(panel)
	assert.Contains(t, text, "📝 Draft: <i>When does HSC start?</i>")

	panel.Send(context.Background(), "When does HSC start?")
	text, _ = BuildAssistantScreen(panel)
	assert.NotContains(t, text, "Draft:")
}

func TestPaymentPromptUsesFreeDemoNumber(t *testing.T) {
	course := model.Course{Title: "HSC Excellence Bridge", Price: 5500}

	text := BuildPaymentPrompt(course, []*model.DemoPaymentNumber{
		{Number: "01700000000", IsUsed: true},
		{Number: "01712345678", Label: "Internal bKash"},
	})
	assert.Contains(t, text, "৳5,500")
	assert.Contains(t, text, "01712345678 (Internal bKash)")

	text = BuildPaymentPrompt(course, nil)
	assert.Contains(t, text, "017XXXXXXXX (Personal)")
}

func TestErrorMessage(t *testing.T) {
	assert.Contains(t, ErrorMessage(ErrIdenticalPhones), "Security Protocol Violation")
	assert.Contains(t, ErrorMessage(service.ErrInvalidTransition), "already processed")
	assert.Contains(t, ErrorMessage(errors.Join(errors.New("wrap"), service.ErrPaymentNotFound)), "not found")
	assert.Equal(t, "❌ Something went wrong. Please try again", ErrorMessage(errors.New("boom")))
}

func TestParseArg(t *testing.T) {
	arg, err := ParseArg("course:ssc-path", "course:")
	require.NoError(t, err)
	assert.Equal(t, "ssc-path", arg)

	_, err = ParseArg("course:", "course:")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseArg("course:a:b", "course:")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	page, err := ParsePage("queue_page:3", "queue_page:")
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	_, err = ParsePage("queue_page:-1", "queue_page:")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
