package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// PageSize — сколько заявок помещается на один экран администратора
const PageSize = 5

// PageBounds ограничивает page и возвращает границы среза для total элементов
func PageBounds(page, total int) (start, end, clamped int) {
	pages := TotalPages(total)
	if page >= pages {
		page = pages - 1
	}
	if page < 0 {
		page = 0
	}
	start = page * PageSize
	end = start + PageSize
	if end > total {
		end = total
	}
	return start, end, page
}

// TotalPages возвращает минимум одну страницу
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

// PaginationButtons создаёт ряд кнопок пагинации
// prefix - префикс для callback (например "queue_page:")
// currentPage - текущая страница (0-based)
// totalPages - всего страниц
func PaginationButtons(prefix string, currentPage, totalPages int) []models.InlineKeyboardButton {
	if totalPages <= 1 {
		return nil
	}

	var buttons []models.InlineKeyboardButton

	if currentPage > 0 {
		buttons = append(buttons, Button("⬅️", fmt.Sprintf("%s%d", prefix, currentPage-1)))
	}

	buttons = append(buttons, Button(
		fmt.Sprintf("📄 %d/%d", currentPage+1, totalPages),
		Noop,
	))

	if currentPage < totalPages-1 {
		buttons = append(buttons, Button("➡️", fmt.Sprintf("%s%d", prefix, currentPage+1)))
	}

	return buttons
}

// AddPagination добавляет пагинацию к builder
func (b *Builder) AddPagination(prefix string, currentPage, totalPages int) *Builder {
	return b.Row(PaginationButtons(prefix, currentPage, totalPages)...)
}
