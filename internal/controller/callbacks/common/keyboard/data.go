package keyboard

// ========================
// Callback Data Patterns
// ========================

// Navigation
const (
	ViewPrefix  = "view:" // view:PROGRAMS
	ClearSearch = "clear_search"
	Cancel      = "cancel_dialog"
	Noop        = "noop"
)

// Catalog
const (
	CoursePrefix = "course:" // course:hsc-physics
	EnrollPrefix = "enroll:" // enroll:hsc-physics
)

// Auth
const (
	Auth       = "auth"
	RolePrefix = "role:" // role:TEACHER
	Register   = "register"
	Logout     = "logout"
)

// Assistant
const (
	Ask        = "ask"
	ModePrefix = "mode:" // mode:ACADEMIC
)

// Admin queue
const (
	PayVerifyPrefix  = "pay_verify:"  // pay_verify:payment_id
	PayRejectPrefix  = "pay_reject:"  // pay_reject:payment_id
	DemoAdd          = "demo_add"
	DemoRemovePrefix = "demo_remove:" // demo_remove:dn-1
	QueuePagePrefix  = "queue_page:"  // queue_page:2
)
