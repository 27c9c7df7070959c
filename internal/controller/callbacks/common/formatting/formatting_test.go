package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "৳0"},
		{999, "৳999"},
		{4500, "৳4,500"},
		{1250000, "৳1,250,000"},
		{-1500, "-৳1,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in))
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "▰▰▰▰▰▰▰▱▱▱", ProgressBar(75))
	assert.Equal(t, "▱▱▱▱▱▱▱▱▱▱", ProgressBar(-5))
	assert.Equal(t, "▰▰▰▰▰▰▰▰▰▰", ProgressBar(140))
}

func TestPaymentStatusDisplay(t *testing.T) {
	assert.Equal(t, "⏳", GetPaymentStatusDisplay(model.PaymentStatusPending).Emoji)
	assert.Equal(t, "Verified", GetPaymentStatusDisplay(model.PaymentStatusVerified).Text)
	assert.Equal(t, "❓", GetPaymentStatusDisplay("LOST").Emoji)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "সাদি…", Truncate("সাদিয়া আফরিন", 5))
	assert.Empty(t, Truncate("x", 0))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", Escape("a <b> & c"))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "09.03.2024 14:05", FormatDateTime(ts))
	assert.Equal(t, "14:05", FormatTime(ts))
}
