package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/auth"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/chat"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/views"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================
// Форматы callback data описаны в common/keyboard/data.go

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Navigation =====
	case data == keyboard.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")
	case data == keyboard.Cancel:
		views.HandleCancelDialog(ctx, b, callback, h)
	case data == keyboard.ClearSearch:
		views.HandleClearSearch(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.ViewPrefix):
		views.HandleView(ctx, b, callback, h)

	// ===== Catalog =====
	case strings.HasPrefix(data, keyboard.CoursePrefix):
		views.HandleCourse(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.EnrollPrefix):
		views.HandleEnroll(ctx, b, callback, h)

	// ===== Auth =====
	case data == keyboard.Auth:
		auth.HandleAuth(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.RolePrefix):
		auth.HandleRole(ctx, b, callback, h)
	case data == keyboard.Register:
		auth.HandleRegister(ctx, b, callback, h)
	case data == keyboard.Logout:
		auth.HandleLogout(ctx, b, callback, h)

	// ===== Assistant =====
	case data == keyboard.Ask:
		chat.HandleAsk(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.ModePrefix):
		chat.HandleMode(ctx, b, callback, h)

	// ===== Admin: payment queue =====
	case strings.HasPrefix(data, keyboard.PayVerifyPrefix):
		admin.HandleVerify(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.PayRejectPrefix):
		admin.HandleReject(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.QueuePagePrefix):
		admin.HandleQueuePage(ctx, b, callback, h)
	case data == keyboard.DemoAdd:
		admin.HandleDemoAdd(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.DemoRemovePrefix):
		admin.HandleDemoRemove(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback data",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Unknown action")
	}
}
