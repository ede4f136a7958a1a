package model

import "time"

const HeaderKind = "kind"

// Envelope is the JSON value written to the notification topic.
type Envelope struct {
	Kind      string    `json:"kind"`
	Recipient string    `json:"recipient"`
	Payload   any       `json:"payload"`
	SentAt    time.Time `json:"sent_at"`
}
