package views

import (
	"context"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/Freeeeeet/mgcc_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleView переключает экран: view:PROGRAMS
func HandleView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, keyboard.ViewPrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_view")
			return
		}
		view, ok := model.ParseView(arg)
		if !ok {
			common.HandleError(hc, common.ErrInvalidFormat, "parse_view")
			return
		}

		// Навигация прерывает незавершённый диалог
		hc.ClearState()

		if !common.ApplyView(h, hc.ChatID, view) {
			// DASHBOARD без входа: предлагаем войти
			hc.Session.OpenAuthPrompt()
			text, kb := common.BuildAuthPromptScreen()
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to show auth prompt", zap.Error(err))
			}
			hc.Answer("🔐 Please sign in first")
			return
		}

		if err := hc.Refresh(); err != nil {
			h.Logger.Error("Failed to render view",
				zap.String("view", string(view)),
				zap.Int64("chat_id", hc.ChatID),
				zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleCourse открывает карточку курса: course:ssc-path
func HandleCourse(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		id, err := common.ParseArg(callback.Data, keyboard.CoursePrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_course")
			return
		}
		course := h.Catalog.CourseByID(id)
		if course == nil {
			common.HandleError(hc, service.ErrCourseNotFound, "open_course")
			return
		}

		common.OpenCourse(h, hc.ChatID, *course)

		if err := hc.Refresh(); err != nil {
			h.Logger.Error("Failed to render course preview", zap.String("course_id", id), zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleEnroll начинает запись на курс: гостю — регистрация,
// студенту — ввод Transaction ID
func HandleEnroll(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		id, err := common.ParseArg(callback.Data, keyboard.EnrollPrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_enroll")
			return
		}
		course := h.Catalog.CourseByID(id)
		if course == nil {
			common.HandleError(hc, service.ErrCourseNotFound, "enroll")
			return
		}

		user := hc.Identity()
		switch {
		case user == nil:
			hc.StartDialog(state.StateRegisterName)
			hc.SetData(state.KeyCourseID, course.ID)
			hc.Session.OpenAuthPrompt()
			if err := hc.SendMessage(common.RegistrationPrompt(state.StateRegisterName), common.PromptKeyboard()); err != nil {
				h.Logger.Error("Failed to send registration prompt", zap.Error(err))
			}
			common.LogAndAnswer(hc, "Registration started from course", "📝 Registration")

		case user.Role != model.RoleStudent:
			common.HandleError(hc, common.ErrNotStudent, "enroll")

		case user.IsEnrolled(course.ID):
			hc.AnswerAlert("✅ You are already enrolled in this course")

		default:
			numbers, err := h.Payments.DemoNumbers(ctx)
			if err != nil {
				h.Logger.Warn("Demo numbers unavailable", zap.Error(err))
			}
			hc.StartDialog(state.StatePaymentTxID)
			hc.SetData(state.KeyCourseID, course.ID)
			if err := hc.SendMessage(common.BuildPaymentPrompt(*course, numbers), common.PromptKeyboard()); err != nil {
				h.Logger.Error("Failed to send payment prompt", zap.Error(err))
			}
			common.LogAndAnswer(hc, "Payment started", "💳 bKash")
		}
	})
}

// HandleClearSearch сбрасывает строку поиска
func HandleClearSearch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.Session.SetSearch("")
		if err := hc.Refresh(); err != nil {
			h.Logger.Error("Failed to render after clearing search", zap.Error(err))
		}
		hc.Answer("Search cleared")
	})
}

// HandleCancelDialog прерывает текущий диалог
func HandleCancelDialog(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.ClearState()
		hc.Session.CloseAuthPrompt()
		if err := hc.EditMessage("✅ Operation cancelled.", nil); err != nil {
			h.Logger.Debug("Failed to edit cancelled prompt", zap.Error(err))
		}
		hc.Answer("Cancelled")
	})
}
