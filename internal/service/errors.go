package service

import "errors"

var (
	ErrPaymentNotFound    = errors.New("payment request not found")
	ErrInvalidTransition  = errors.New("payment request is no longer pending")
	ErrEmptyTransactionID = errors.New("transaction id is empty")
	ErrCourseNotFound     = errors.New("course not found")
	ErrNoIdentity         = errors.New("no identity")
	ErrDemoNumberNotFound = errors.New("demo number not found")
	ErrEmptyDemoNumber    = errors.New("demo number is empty")
)
