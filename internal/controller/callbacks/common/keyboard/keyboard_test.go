package keyboard

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSkipsEmptyRows(t *testing.T) {
	kb := NewBuilder().
		Row(Button("a", "x")).
		Row().
		AddRows([][]models.InlineKeyboardButton{{}, {Button("b", "y")}}).
		Build()

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "y", kb.InlineKeyboard[1][0].CallbackData)
}

func TestNavRows(t *testing.T) {
	anon := NavRows(false, false)
	require.Len(t, anon, 2)
	assert.Equal(t, Auth, anon[1][0].CallbackData)

	member := NavRows(true, true)
	require.Len(t, member, 3)
	assert.Equal(t, "view:DASHBOARD", member[1][0].CallbackData)
	assert.Equal(t, Logout, member[1][1].CallbackData)
	assert.Equal(t, ClearSearch, member[2][0].CallbackData)
}

func TestPaginationButtons(t *testing.T) {
	assert.Nil(t, PaginationButtons("queue_page:", 0, 1))

	first := PaginationButtons("queue_page:", 0, 3)
	require.Len(t, first, 2)
	assert.Equal(t, Noop, first[0].CallbackData)
	assert.Equal(t, "queue_page:1", first[1].CallbackData)

	middle := PaginationButtons("queue_page:", 1, 3)
	require.Len(t, middle, 3)
	assert.Equal(t, "queue_page:0", middle[0].CallbackData)
}

func TestPageBounds(t *testing.T) {
	start, end, page := PageBounds(1, 12)
	assert.Equal(t, []int{5, 10, 1}, []int{start, end, page})

	start, end, page = PageBounds(9, 12)
	assert.Equal(t, []int{10, 12, 2}, []int{start, end, page})

	start, end, page = PageBounds(-1, 0)
	assert.Equal(t, []int{0, 0, 0}, []int{start, end, page})
}
