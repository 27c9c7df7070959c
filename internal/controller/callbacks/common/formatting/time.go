package formatting

import (
	"html"
	"time"
	"unicode/utf8"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatTime форматирует только время
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// Escape готовит свободный текст (имена, поиск, ответы модели) для HTML parse mode
func Escape(s string) string {
	return html.EscapeString(s)
}

// Truncate обрезает s до limit рун и ставит многоточие
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
