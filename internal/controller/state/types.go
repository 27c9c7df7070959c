package state

// UserState представляет текущее состояние чата в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Вход
	StateLoginIdentifier UserState = "login_identifier"
	StateLoginPassword   UserState = "login_password"

	// Регистрация студента
	StateRegisterName        UserState = "register_name"
	StateRegisterClass       UserState = "register_class"
	StateRegisterParentPhone UserState = "register_parent_phone"
	StateRegisterAddress     UserState = "register_address"
	StateRegisterPhone       UserState = "register_phone"
	StateRegisterPassword    UserState = "register_password"

	StateSearch UserState = "search"

	// Оплата курса
	StatePaymentTxID UserState = "payment_tx_id"

	// Админ: демо-номера bKash
	StateDemoNumber UserState = "demo_number"
	StateDemoLabel  UserState = "demo_label"

	StateAssistantChat UserState = "assistant_chat"
)

// Ключи временных данных диалога
const (
	KeyRole        = "role"
	KeyIdentifier  = "identifier"
	KeyName        = "name"
	KeyClass       = "class"
	KeyParentPhone = "parent_phone"
	KeyAddress     = "address"
	KeyPhone       = "phone"
	KeyCourseID    = "course_id"
	KeyDemoNumber  = "demo_number"
)

// UserData хранит временные данные чата во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}

// IsRegistration проверяет, относится ли состояние к форме регистрации
func (s UserState) IsRegistration() bool {
	switch s {
	case StateRegisterName, StateRegisterClass, StateRegisterParentPhone,
		StateRegisterAddress, StateRegisterPhone, StateRegisterPassword:
		return true
	}
	return false
}
