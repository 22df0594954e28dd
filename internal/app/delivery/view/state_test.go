package view

import (
	"testing"

	"sinan-service/internal/app/models"
	"sinan-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func TestMachine_StartsOnList(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, StateList, m.State)
	assert.Zero(t, m.SelectedID)
}

func TestMachine_Transitions(t *testing.T) {
	testCases := []struct {
		name     string
		from     State
		event    Event
		recordID int64
		expected State
	}{
		{"new notification", StateList, EventNew, 0, StateNotificationForm},
		{"edit notification", StateList, EventEdit, 5, StateNotificationForm},
		{"open serum worklist", StateList, EventNavigateSerum, 0, StateSerumList},
		{"cancel form", StateNotificationForm, EventCancel, 0, StateList},
		{"saved form", StateNotificationForm, EventSaveSuccess, 0, StateList},
		{"select serum record", StateSerumList, EventSelect, 9, StateSerumForm},
		{"back from serum list", StateSerumList, EventBack, 0, StateList},
		{"cancel serum form", StateSerumForm, EventCancel, 0, StateSerumList},
		{"saved serum form", StateSerumForm, EventSaveSuccess, 0, StateSerumList},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Machine{State: tc.from}
			err := m.Apply(tc.event, tc.recordID)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, m.State)
		})
	}
}

func TestMachine_EditTracksSelection(t *testing.T) {
	m := NewMachine()

	assert.NoError(t, m.Apply(EventEdit, 5))
	assert.Equal(t, int64(5), m.SelectedID)

	assert.NoError(t, m.Apply(EventSaveSuccess, 0))
	assert.Zero(t, m.SelectedID)
}

func TestMachine_NewClearsSelection(t *testing.T) {
	m := &Machine{State: StateList, SelectedID: 5}

	assert.NoError(t, m.Apply(EventNew, 0))
	assert.Zero(t, m.SelectedID)
}

func TestMachine_IllegalEventKeepsState(t *testing.T) {
	testCases := []struct {
		from  State
		event Event
	}{
		{StateList, EventCancel},
		{StateList, EventSaveSuccess},
		{StateList, EventBack},
		{StateNotificationForm, EventNew},
		{StateNotificationForm, EventSelect},
		{StateSerumList, EventNew},
		{StateSerumForm, EventNavigateSerum},
	}

	for _, tc := range testCases {
		m := &Machine{State: tc.from, SelectedID: 3}
		err := m.Apply(tc.event, 0)
		assert.Error(t, err)
		assert.Equal(t, tc.from, m.State)
		assert.Equal(t, int64(3), m.SelectedID)
	}
}

func TestFilterRecords(t *testing.T) {
	records := []responses.Notification{
		{ID: 12, PatientName: "Maria da Silva"},
		{ID: 7, PatientName: "João Souza"},
		{ID: 120, PatientName: "Ana Pereira"},
	}

	t.Run("blank term returns everything", func(t *testing.T) {
		assert.Len(t, FilterRecords(records, "   "), 3)
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		filtered := FilterRecords(records, "maria")
		assert.Len(t, filtered, 1)
		assert.Equal(t, int64(12), filtered[0].ID)
	})

	t.Run("id substring match", func(t *testing.T) {
		filtered := FilterRecords(records, "12")
		assert.Len(t, filtered, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterRecords(records, "carlos"))
	})
}

func TestSerumWorklist(t *testing.T) {
	records := []responses.Notification{
		{ID: 1, Data: models.Payload{IndicacaoSoro: "1"}},
		{ID: 2, Data: models.Payload{IndicacaoSoro: "1", SoroAplicado: true}},
		{ID: 3, Data: models.Payload{IndicacaoSoro: "2"}},
		{ID: 4, Data: models.Payload{}},
	}

	pending, done := SerumWorklist(records)

	assert.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)
	assert.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].ID)
}
