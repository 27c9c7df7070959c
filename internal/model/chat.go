package model

import (
	"strings"
	"time"
)

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// AssistantMode is interpolated into the prompt and has no other effect.
type AssistantMode string

const (
	ModeSupport  AssistantMode = "SUPPORT"
	ModeAcademic AssistantMode = "ACADEMIC"
	ModeStrategy AssistantMode = "STRATEGY"
)

// AssistantModes returns the modes in display order.
func AssistantModes() []AssistantMode {
	return []AssistantMode{ModeSupport, ModeAcademic, ModeStrategy}
}

// ParseAssistantMode parses a mode name, case-insensitive
func ParseAssistantMode(s string) (AssistantMode, bool) {
	m := AssistantMode(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AssistantModes() {
		if m == known {
			return m, true
		}
	}
	return "", false
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
