package handlers

import (
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд и диалогов
type Handlers struct {
	deps         *callbacktypes.Handler
	stateManager *state.Manager
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(deps *callbacktypes.Handler) *Handlers {
	return &Handlers{
		deps:         deps,
		stateManager: deps.StateManager,
		validate:     validator.New(),
		logger:       deps.Logger,
	}
}
