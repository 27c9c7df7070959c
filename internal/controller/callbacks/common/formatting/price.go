package formatting

import (
	"fmt"
	"strconv"
)

// FormatPrice форматирует цену в таках: 4500 -> "৳4,500"
func FormatPrice(taka int) string {
	if taka < 0 {
		return "-" + FormatPrice(-taka)
	}

	digits := strconv.Itoa(taka)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return "৳" + string(out)
}

// FormatPercent форматирует проценты для прогресса и посещаемости
func FormatPercent(value int) string {
	return fmt.Sprintf("%d%%", value)
}

// ProgressBar рисует полосу из десяти делений
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent / 10
	bar := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		if i < filled {
			bar = append(bar, '▰')
		} else {
			bar = append(bar, '▱')
		}
	}
	return string(bar)
}
