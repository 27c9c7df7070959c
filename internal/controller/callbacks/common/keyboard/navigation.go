package keyboard

import (
	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// ViewButton создаёт кнопку перехода на экран
func ViewButton(text string, view model.View) models.InlineKeyboardButton {
	return Button(text, ViewPrefix+string(view))
}

// BackButton создаёт кнопку "Назад" на экран
func BackButton(view model.View) models.InlineKeyboardButton {
	return ViewButton("⬅️ Back", view)
}

// CancelButton создаёт кнопку отмены текущего диалога
func CancelButton() models.InlineKeyboardButton {
	return Button("❌ Cancel", Cancel)
}

// NavRows строит навигационную панель: разделы сайта, кабинет или вход,
// и сброс поиска, если он активен
func NavRows(loggedIn bool, searching bool) [][]models.InlineKeyboardButton {
	rows := [][]models.InlineKeyboardButton{
		{
			ViewButton("🏠 Home", model.ViewHome),
			ViewButton("📚 Programs", model.ViewPrograms),
			ViewButton("🔬 Research", model.ViewResearch),
		},
	}

	if loggedIn {
		rows = append(rows, []models.InlineKeyboardButton{
			ViewButton("📊 Dashboard", model.ViewDashboard),
			Button("🚪 Logout", Logout),
		})
	} else {
		rows = append(rows, []models.InlineKeyboardButton{
			Button("🔑 Login", Auth),
			Button("📝 Register", Register),
		})
	}

	if searching {
		rows = append(rows, []models.InlineKeyboardButton{
			Button("✖️ Clear search", ClearSearch),
		})
	}

	return rows
}

// AddNav добавляет навигационную панель к builder
func (b *Builder) AddNav(loggedIn, searching bool) *Builder {
	return b.AddRows(NavRows(loggedIn, searching))
}
