package view

import (
	"fmt"
)

// The embedded SPA is a four-screen app: the notification list, the
// notification form, the serum worklist and the serum form. The screen flow is
// kept here as an explicit state machine so the frontend and the tests agree
// on which navigation is possible.

type State string

const (
	StateList             State = "list"
	StateNotificationForm State = "notification_form"
	StateSerumList        State = "serum_list"
	StateSerumForm        State = "serum_form"
)

type Event string

const (
	EventNew           Event = "new"
	EventEdit          Event = "edit"
	EventCancel        Event = "cancel"
	EventSaveSuccess   Event = "save_success"
	EventNavigateSerum Event = "navigate_serum"
	EventSelect        Event = "select"
	EventBack          Event = "back"
)

type transitionKey struct {
	State State
	Event Event
}

var transitions = map[transitionKey]State{
	{StateList, EventNew}:           StateNotificationForm,
	{StateList, EventEdit}:          StateNotificationForm,
	{StateList, EventNavigateSerum}: StateSerumList,

	{StateNotificationForm, EventCancel}:      StateList,
	{StateNotificationForm, EventSaveSuccess}: StateList,

	{StateSerumList, EventSelect}: StateSerumForm,
	{StateSerumList, EventBack}:   StateList,

	{StateSerumForm, EventCancel}:      StateSerumList,
	{StateSerumForm, EventSaveSuccess}: StateSerumList,
}

// Machine tracks the current screen and, on the form screens, which record is
// being edited. A zero SelectedID means the form is creating a new record.
type Machine struct {
	State      State
	SelectedID int64
}

func NewMachine() *Machine {
	return &Machine{State: StateList}
}

// Apply moves the machine along one event. Events carrying a record (edit,
// select) pass its id; the rest pass zero. An event that is not legal in the
// current state returns an error and leaves the machine untouched, which is
// how a failed save keeps the user on the form.
func (m *Machine) Apply(event Event, recordID int64) error {
	next, ok := transitions[transitionKey{State: m.State, Event: event}]
	if !ok {
		return fmt.Errorf("event %q is not allowed in state %q", event, m.State)
	}

	switch event {
	case EventEdit, EventSelect:
		m.SelectedID = recordID
	case EventNew:
		m.SelectedID = 0
	case EventSaveSuccess, EventCancel, EventBack:
		m.SelectedID = 0
	}

	m.State = next
	return nil
}
