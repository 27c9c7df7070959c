package chat

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

const notMounted = "🤖 MGCC AI is available on your dashboard only"

// HandleAsk открывает диалог с ассистентом
func HandleAsk(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		panel, ok := h.Assistants.Get(hc.ChatID)
		if !ok {
			hc.AnswerAlert(notMounted)
			return
		}

		hc.StartDialog(state.StateAssistantChat)
		text, kb := common.BuildAssistantScreen(panel)
		if err := hc.SendMessage(text, kb); err != nil {
			h.Logger.Error("Failed to open assistant", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleMode переключает режим ассистента: mode:ACADEMIC
func HandleMode(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, keyboard.ModePrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_mode")
			return
		}
		mode, ok := model.ParseAssistantMode(arg)
		if !ok {
			common.HandleError(hc, common.ErrInvalidFormat, "parse_mode")
			return
		}

		panel, ok := h.Assistants.Get(hc.ChatID)
		if !ok {
			hc.AnswerAlert(notMounted)
			return
		}
		panel.SetMode(mode)

		// Режим меняется и из кабинета, и из окна диалога
		if h.StateManager.GetState(hc.ChatID) == state.StateAssistantChat {
			text, kb := common.BuildAssistantScreen(panel)
			err = hc.EditMessage(text, kb)
		} else {
			err = hc.Refresh()
		}
		if err != nil {
			h.Logger.Error("Failed to redraw after mode change", zap.Error(err))
		}
		hc.Answer("Mode: " + string(mode))
	})
}
