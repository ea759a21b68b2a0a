package views

import (
	"encoding/json"

	"rwrd/core"
)

// Event event view with the extra payload decoded inline
type Event struct {
	core.Event
	ActionText string                 `json:"action_text"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
}

// NewEvent build the event view
func NewEvent(event *core.Event) *Event {
	view := &Event{
		Event:      *event,
		ActionText: event.Action.String(),
	}

	if len(event.Data) > 0 {
		_ = json.Unmarshal(event.Data, &view.Extra)
	}

	return view
}
