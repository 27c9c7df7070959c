package common

import (
	"errors"

	"github.com/Freeeeeet/mgcc_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNotLoggedIn     = errors.New("chat has no identity")
	ErrNotAdmin        = errors.New("identity is not an admin")
	ErrNotStudent      = errors.New("identity is not a student")
	ErrNoMessage       = errors.New("no message in callback")
	ErrInvalidFormat   = errors.New("invalid callback format")
	ErrIdenticalPhones = errors.New("student and parent phone are identical")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotLoggedIn), errors.Is(err, service.ErrNoIdentity):
		return "❌ Please log in first. Use /login"
	case errors.Is(err, ErrNotAdmin):
		return "❌ This action is available to administrators only"
	case errors.Is(err, ErrNotStudent):
		return "❌ Only student accounts can enroll in a course"
	case errors.Is(err, ErrNoMessage):
		return "❌ Could not process the message"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	case errors.Is(err, ErrIdenticalPhones):
		return "❌ Security Protocol Violation: Student phone and Parent phone cannot be identical."
	case errors.Is(err, service.ErrCourseNotFound):
		return "❌ Course not found"
	case errors.Is(err, service.ErrEmptyTransactionID):
		return "❌ Transaction ID is required"
	case errors.Is(err, service.ErrPaymentNotFound):
		return "❌ Payment request not found"
	case errors.Is(err, service.ErrInvalidTransition):
		return "❌ This payment was already processed"
	case errors.Is(err, service.ErrDemoNumberNotFound):
		return "❌ Demo number not found"
	case errors.Is(err, service.ErrEmptyDemoNumber):
		return "❌ Demo number cannot be empty"
	default:
		return "❌ Something went wrong. Please try again"
	}
}
