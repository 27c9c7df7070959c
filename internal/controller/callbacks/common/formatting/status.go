package formatting

import "github.com/Freeeeeet/mgcc_bot/internal/model"

// PaymentStatusDisplay представляет отображение статуса заявки
type PaymentStatusDisplay struct {
	Emoji string
	Text  string
}

// GetPaymentStatusDisplay возвращает emoji и текст для статуса заявки на оплату
func GetPaymentStatusDisplay(status model.PaymentStatus) PaymentStatusDisplay {
	displays := map[model.PaymentStatus]PaymentStatusDisplay{
		model.PaymentStatusPending:  {"⏳", "Pending verification"},
		model.PaymentStatusVerified: {"✅", "Verified"},
		model.PaymentStatusRejected: {"🚫", "Rejected"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return PaymentStatusDisplay{"❓", "Unknown"}
}

// RoleDisplay возвращает подпись роли для кнопок и заголовков
func RoleDisplay(role model.Role) string {
	switch role {
	case model.RoleStudent:
		return "🎓 Student"
	case model.RoleParent:
		return "👪 Parent"
	case model.RoleTeacher:
		return "🧑‍🏫 Teacher"
	case model.RoleAdmin:
		return "🛡 Admin"
	case model.RoleProfessor:
		return "🔬 Professor"
	default:
		return string(role)
	}
}

// ModeDisplay возвращает подпись кнопки режима ассистента
func ModeDisplay(mode model.AssistantMode) string {
	switch mode {
	case model.ModeSupport:
		return "🛟 Support"
	case model.ModeAcademic:
		return "📘 Academic"
	case model.ModeStrategy:
		return "🧭 Strategy"
	default:
		return string(mode)
	}
}
