package auth

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

// HandleAuth открывает окно входа
func HandleAuth(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if user := hc.Identity(); user != nil {
			hc.AnswerAlert("You are already signed in as " + user.Name)
			return
		}

		hc.Session.OpenAuthPrompt()
		text, kb := common.BuildAuthPromptScreen()
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show auth prompt", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleRole начинает вход под выбранной ролью: role:TEACHER
func HandleRole(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		arg, err := common.ParseArg(callback.Data, keyboard.RolePrefix)
		if err != nil {
			common.HandleError(hc, err, "parse_role")
			return
		}
		role, ok := model.ParseRole(arg)
		if !ok {
			common.HandleError(hc, common.ErrInvalidFormat, "parse_role")
			return
		}
		if hc.Identity() != nil {
			hc.AnswerAlert("Use /logout before signing in again")
			return
		}

		hc.Session.OpenAuthPrompt()
		hc.StartDialog(state.StateLoginIdentifier)
		hc.SetData(state.KeyRole, string(role))

		if err := hc.SendMessage(common.LoginPrompt(role), common.PromptKeyboard()); err != nil {
			h.Logger.Error("Failed to send login prompt", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleRegister начинает регистрацию студента без выбранного курса
func HandleRegister(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if hc.Identity() != nil {
			hc.AnswerAlert("Use /logout before registering a new account")
			return
		}

		hc.Session.OpenAuthPrompt()
		hc.StartDialog(state.StateRegisterName)

		if err := hc.SendMessage(common.RegistrationPrompt(state.StateRegisterName), common.PromptKeyboard()); err != nil {
			h.Logger.Error("Failed to send registration prompt", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleLogout выходит из аккаунта и возвращает на главную
func HandleLogout(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if hc.Identity() == nil {
			hc.Answer("")
			return
		}

		common.Logout(h, hc.ChatID)
		if err := hc.Refresh(); err != nil {
			h.Logger.Error("Failed to render after logout", zap.Error(err))
		}
		hc.Answer("👋 Signed out")
	})
}
