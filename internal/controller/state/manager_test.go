package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerKeepsDataAcrossSteps(t *testing.T) {
	sm := NewManager()

	sm.Start(1, StateRegisterName)
	sm.SetData(1, KeyName, "Sadiya Afrin")
	sm.SetState(1, StateRegisterClass)

	assert.Equal(t, StateRegisterClass, sm.GetState(1))
	assert.Equal(t, "Sadiya Afrin", sm.GetString(1, KeyName))
	assert.Equal(t, StateNone, sm.GetState(2))
}

func TestManagerStartDiscardsOldData(t *testing.T) {
	sm := NewManager()

	sm.SetData(1, KeyCourseID, "c1")
	sm.Start(1, StateLoginIdentifier)

	_, ok := sm.GetData(1, KeyCourseID)
	assert.False(t, ok)
}

func TestManagerClear(t *testing.T) {
	sm := NewManager()

	sm.Start(1, StateSearch)
	sm.SetData(1, KeyRole, "ADMIN")
	sm.ClearState(1)

	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Nil(t, sm.GetAllData(1))
	assert.Empty(t, sm.GetString(1, KeyRole))
}

func TestManagerSetNoneDeletes(t *testing.T) {
	sm := NewManager()

	sm.Start(1, StateDemoNumber)
	sm.SetState(1, StateNone)

	assert.Nil(t, sm.GetAllData(1))
}

func TestGetAllDataReturnsCopy(t *testing.T) {
	sm := NewManager()

	sm.SetData(1, KeyPhone, "017")
	data := sm.GetAllData(1)
	data[KeyPhone] = "018"

	assert.Equal(t, "017", sm.GetString(1, KeyPhone))
}

func TestIsRegistration(t *testing.T) {
	assert.True(t, StateRegisterPhone.IsRegistration())
	assert.False(t, StateLoginPassword.IsRegistration())
	assert.False(t, StateNone.IsRegistration())
}
