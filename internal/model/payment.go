package model

import "time"

// PaymentStatus — статус заявки на проверку оплаты
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusVerified PaymentStatus = "VERIFIED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// CanTransition проверяет одностороннее правило PENDING -> VERIFIED|REJECTED
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	return s == PaymentStatusPending && (to == PaymentStatusVerified || to == PaymentStatusRejected)
}

// PaymentRequest — транзакция bKash студента, ожидающая проверки администратором
type PaymentRequest struct {
	ID            string        `json:"id"`
	StudentID     string        `json:"student_id"`
	StudentName   string        `json:"student_name"`
	ChatID        int64         `json:"chat_id"` // куда сообщить о решении
	CourseID      string        `json:"course_id"`
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	Amount        int           `json:"amount"`
	Timestamp     time.Time     `json:"timestamp"`
}

// IsPending проверяет, ждёт ли заявка администратора
func (p *PaymentRequest) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// DemoPaymentNumber — тестовый номер кошелька для демо-оплат
type DemoPaymentNumber struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Label      string `json:"label"`
	IsUsed     bool   `json:"is_used"`
	AssignedTo string `json:"assigned_to,omitempty"`
}
