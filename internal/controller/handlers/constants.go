package handlers

// Правила валидации ввода в диалогах (go-playground/validator).
// Вход и регистрация проверяют только наличие значения.
const (
	identifierRule = "required"
	nameRule       = "required"
	classRule      = "required"
	phoneRule      = "required"
	addressRule    = "required"
	passwordRule   = "required"
	searchRule     = "max=100"
	txIDRule       = "required,alphanum,max=32"
	demoNumberRule = "required,min=5,max=20"
	demoLabelRule  = "max=50"
)

// skipLabel пропускает подпись демо-номера
const skipLabel = "-"
