package model

import "time"

// Conversation is one inbound message and the reply we produced for it,
// kept as an audit trail. Storing it must never fail the reply itself.
type Conversation struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Sender    string    `json:"sender" bson:"sender"`
	Message   string    `json:"message" bson:"message"`
	Response  string    `json:"response" bson:"response"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// OutboundMessage is the event published for the delivery worker after a
// reply has been committed.
type OutboundMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}
