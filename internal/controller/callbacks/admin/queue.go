package admin

import (
	"context"

	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleVerify подтверждает оплату: pay_verify:payment_id
func HandleVerify(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		id, err := common.ParseArg(callback.Data, keyboard.PayVerifyPrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_verify")
			return
		}

		req, err := h.Payments.Verify(ctx, id)
		if err != nil {
			common.HandleError(hc, err, "verify_payment")
			return
		}

		decide(hc, req)
		common.LogAndAnswer(hc, "Payment verified", "✅ Verified")
	})
}

// HandleReject отклоняет оплату: pay_reject:payment_id
func HandleReject(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		id, err := common.ParseArg(callback.Data, keyboard.PayRejectPrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_reject")
			return
		}

		req, err := h.Payments.Reject(ctx, id)
		if err != nil {
			common.HandleError(hc, err, "reject_payment")
			return
		}

		decide(hc, req)
		common.LogAndAnswer(hc, "Payment rejected", "🚫 Rejected")
	})
}

// decide уведомляет студента и перерисовывает очередь
func decide(hc *common.HandlerContext, req *model.PaymentRequest) {
	h := hc.Handler
	h.Metrics.ObservePayment(req.Status)

	title := req.CourseID
	if course := h.Catalog.CourseByID(req.CourseID); course != nil {
		title = course.Title
	}

	if req.ChatID != 0 {
		if err := common.Send(hc.Ctx, hc.Bot, req.ChatID, common.PaymentDecision(req, title), nil); err != nil {
			h.Logger.Warn("Failed to notify student",
				zap.String("payment_id", req.ID),
				zap.Int64("student_chat_id", req.ChatID),
				zap.Error(err))
		}
	}

	if err := hc.Refresh(); err != nil {
		h.Logger.Error("Failed to redraw payment queue", zap.Error(err))
	}
}

// HandleQueuePage листает очередь заявок: queue_page:1
func HandleQueuePage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.ParsePage(callback.Data, keyboard.QueuePagePrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_queue_page")
			return
		}

		text, kb := common.RenderPage(ctx, h, hc.ChatID, page)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show queue page", zap.Int("page", page), zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleDemoAdd начинает добавление демо-номера
func HandleDemoAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.StartDialog(state.StateDemoNumber)
		if err := hc.SendMessage(common.DemoNumberPrompt(), common.PromptKeyboard()); err != nil {
			h.Logger.Error("Failed to send demo number prompt", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleDemoRemove удаляет демо-номер: demo_remove:dn-1
func HandleDemoRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		id, err := common.ParseArg(callback.Data, keyboard.DemoRemovePrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_demo_remove")
			return
		}

		if err := h.Payments.RemoveDemoNumber(ctx, id); err != nil {
			common.HandleError(hc, err, "remove_demo_number")
			return
		}

		if err := hc.Refresh(); err != nil {
			h.Logger.Error("Failed to redraw demo numbers", zap.Error(err))
		}
		common.LogAndAnswer(hc, "Demo number removed", "🗑 Removed")
	})
}
