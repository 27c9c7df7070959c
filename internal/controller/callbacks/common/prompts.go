package common

import (
	"github.com/Freeeeeet/mgcc_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mgcc_bot/internal/controller/state"
	"github.com/Freeeeeet/mgcc_bot/internal/model"
)

const cancelHint = "\n\nTo cancel use /cancel"

// LoginPrompt запрашивает идентификатор для входа под ролью
func LoginPrompt(role model.Role) string {
	var field string
	switch role {
	case model.RoleTeacher:
		field = "your secure 4-digit ID (e.g. 1024)"
	case model.RoleParent:
		field = "the student's phone or ID (e.g. 017...)"
	case model.RoleStudent:
		field = "your email or phone"
	default:
		field = "your phone or ID"
	}

	return "🔐 <b>" + formatting.RoleDisplay(role) + " sign-in</b>\n\n" +
		"Step 1 of 2: send " + field + "." + cancelHint
}

// PasswordPrompt запрашивает пароль после идентификатора
func PasswordPrompt() string {
	return "🔑 Step 2 of 2: send your password.\n" +
		"<i>The message is deleted right after it is received.</i>" + cancelHint
}

// RegistrationPrompt возвращает текст шага формы регистрации
func RegistrationPrompt(step state.UserState) string {
	switch step {
	case state.StateRegisterName:
		return "📝 <b>Enrollment.</b> Join MGCC Academic Suite\n\n" +
			"Step 1 of 6: your full name (e.g. Sadiya Afrin)" + cancelHint
	case state.StateRegisterClass:
		return "Step 2 of 6: your class (e.g. HSC 2nd)" + cancelHint
	case state.StateRegisterParentPhone:
		return "Step 3 of 6: parent phone (e.g. 018...)" + cancelHint
	case state.StateRegisterAddress:
		return "Step 4 of 6: full academic address" + cancelHint
	case state.StateRegisterPhone:
		return "Step 5 of 6: student phone. It becomes your account ID." + cancelHint
	case state.StateRegisterPassword:
		return "Step 6 of 6: choose a password.\n" +
			"<i>The message is deleted right after it is received.</i>" + cancelHint
	default:
		return ""
	}
}

// SearchPrompt запрашивает строку поиска
func SearchPrompt() string {
	return "🔍 Send a word to search programs and research (title, category, description, author or tag)." + cancelHint
}

// DemoNumberPrompt запрашивает новый демо-номер bKash
func DemoNumberPrompt() string {
	return "📱 <b>Add Demo Payment Number</b>\n\nStep 1 of 2: send the number (e.g. 01712345678)." + cancelHint
}

// DemoLabelPrompt запрашивает подпись нового демо-номера
func DemoLabelPrompt(number string) string {
	return "✅ Number: <code>" + formatting.Escape(number) + "</code>\n\n" +
		"Step 2 of 2: send a label (e.g. Internal bKash), or - to skip." + cancelHint
}

// PaymentSubmitted подтверждает, что транзакция ждёт администратора
func PaymentSubmitted(course model.Course, txID string) string {
	return "⏳ <b>Payment submitted</b>\n\n" +
		"Course: " + formatting.Escape(course.Title) + "\n" +
		"TXID: <code>" + formatting.Escape(txID) + "</code>\n\n" +
		"Admin checks the Transaction ID against logs. The course unlocks within 12 hours."
}

// PaymentDecision сообщает студенту решение администратора
func PaymentDecision(req *model.PaymentRequest, courseTitle string) string {
	display := formatting.GetPaymentStatusDisplay(req.Status)
	return display.Emoji + " <b>Payment " + display.Text + "</b>\n\n" +
		"Course: " + formatting.Escape(courseTitle) + "\n" +
		"TXID: <code>" + formatting.Escape(req.TransactionID) + "</code>"
}
