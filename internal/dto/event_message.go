package dto

// EventMessage is the envelope published to the change-data topic after
// every successful mutation.
type EventMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}
