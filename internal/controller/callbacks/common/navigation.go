package common

import (
	"context"

	"github.com/Freeeeeet/mgcc_bot/internal/assistant"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/dashboard"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Common Navigation
// ========================
// Команды и callbacks двигают сессию только через эти функции, чтобы
// панель ассистента и метрики следовали за каждым переходом.

// ApplyView переключает экран чата. Returns false when the session ignored
// запрос (DASHBOARD без входа).
func ApplyView(h *callbacktypes.Handler, chatID int64, view model.View) bool {
	sess := h.Sessions.Get(chatID)
	if !sess.ChangeView(view) {
		return false
	}

	h.Metrics.ObserveView(view)
	SyncAssistant(h, chatID)
	return true
}

// OpenCourse открывает карточку курса; незавершённый диалог прерывается
func OpenCourse(h *callbacktypes.Handler, chatID int64, course model.Course) {
	h.StateManager.ClearState(chatID)
	h.Sessions.Get(chatID).SelectCourseForPreview(course)
	h.Metrics.ObserveView(model.ViewCoursePreview)
	SyncAssistant(h, chatID)
}

// SyncAssistant монтирует ассистента на дашборде вошедшего пользователя
// и убирает его на остальных экранах
func SyncAssistant(h *callbacktypes.Handler, chatID int64) *assistant.Session {
	panel := h.Assistants.Sync(chatID, h.Sessions.Get(chatID))
	if panel == nil && h.StateManager.GetState(chatID) == state.StateAssistantChat {
		h.StateManager.ClearState(chatID)
	}
	return panel
}

// Login выполняет вход и открывает дашборд
func Login(h *callbacktypes.Handler, chatID int64, role model.Role, identifier, subject string) *model.User {
	user := h.Sessions.Get(chatID).Login(role, identifier, subject)

	h.Metrics.ObserveLogin(user.Role)
	h.Metrics.ObserveView(model.ViewDashboard)
	SyncAssistant(h, chatID)

	h.Logger.Info("🔑 Logged in",
		zap.Int64("chat_id", chatID),
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return user
}

// Register записывает эталонного студента, при наличии на courseID
func Register(h *callbacktypes.Handler, chatID int64, courseID string) *model.User {
	user := h.Sessions.Get(chatID).SubmitRegistration(courseID)

	h.Metrics.ObserveLogin(user.Role)
	h.Metrics.ObserveView(model.ViewDashboard)
	SyncAssistant(h, chatID)

	h.Logger.Info("📝 Registration submitted",
		zap.Int64("chat_id", chatID),
		zap.String("user_id", user.ID),
		zap.String("course_id", courseID))
	return user
}

// Logout сбрасывает вход и убирает панель ассистента
func Logout(h *callbacktypes.Handler, chatID int64) {
	h.Sessions.Get(chatID).Logout()
	h.StateManager.ClearState(chatID)

	h.Metrics.ObserveView(model.ViewHome)
	SyncAssistant(h, chatID)

	h.Logger.Info("🚪 Logged out", zap.Int64("chat_id", chatID))
}

// Render строит экран для текущего view чата
func Render(ctx context.Context, h *callbacktypes.Handler, chatID int64) (string, *models.InlineKeyboardMarkup) {
	return RenderPage(ctx, h, chatID, 0)
}

// RenderPage — Render со страницей очереди администратора
func RenderPage(ctx context.Context, h *callbacktypes.Handler, chatID int64, page int) (string, *models.InlineKeyboardMarkup) {
	snap := h.Sessions.Get(chatID).Snapshot()

	switch snap.View {
	case model.ViewPrograms:
		return BuildProgramsScreen(snap, h.Catalog)
	case model.ViewCoursePreview:
		if snap.SelectedCourse == nil {
			return BuildProgramsScreen(snap, h.Catalog)
		}
		return BuildCoursePreviewScreen(snap, *snap.SelectedCourse)
	case model.ViewResearch:
		return BuildResearchScreen(snap, h.Catalog)
	case model.ViewDashboard:
		board, ok := dashboard.Select(snap.Identity, dashboardSources(ctx, h, snap.Identity))
		if !ok {
			return BuildAuthPromptScreen()
		}
		panel, _ := h.Assistants.Get(chatID)
		return BuildDashboardScreen(board, snap, panel, page)
	default:
		return BuildHomeScreen(snap, h.Catalog)
	}
}

// dashboardSources загружает очередь только для администратора. При ошибке
// очередь показывается пустой, дашборд остаётся.
func dashboardSources(ctx context.Context, h *callbacktypes.Handler, user *model.User) dashboard.Sources {
	src := dashboard.Sources{Catalog: h.Catalog}
	if user == nil || user.Role != model.RoleAdmin {
		return src
	}

	pending, err := h.Payments.Pending(ctx)
	if err != nil {
		h.Logger.Error("Failed to load payment queue", zap.Error(err))
	}
	numbers, err := h.Payments.DemoNumbers(ctx)
	if err != nil {
		h.Logger.Error("Failed to load demo numbers", zap.Error(err))
	}

	src.Queue = dashboard.QueueSnapshot{Pending: pending, DemoNumbers: numbers}
	return src
}
