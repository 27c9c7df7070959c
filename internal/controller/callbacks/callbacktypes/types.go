package callbacktypes

import (
	"github.com/Freeeeeet/mgcc_bot/internal/assistant"
	"github.com/Freeeeeet/mgcc_bot/internal/catalog"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/metrics"
	"github.com/Freeeeeet/mgcc_bot/internal/service"
	"github.com/Freeeeeet/mgcc_bot/internal/session"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback и command handlers
type Handler struct {
	Sessions     *session.Registry
	Assistants   *assistant.Registry
	Catalog      *catalog.Catalog
	Payments     *service.PaymentService
	Metrics      *metrics.Metrics
	StateManager *state.Manager
	Logger       *zap.Logger
}
