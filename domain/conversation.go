package domain

import "encoding/json"

// Message is one turn of a chat conversation.
// IsUser is true when the user typed it, false for the kiosk side.
type Message struct {
	ID     int    `json:"pk" validate:"gt=0"`
	Text   string `json:"text"`
	IsUser bool   `json:"is_usr_msg"`
}

// Conversation keeps its messages in display order.
type Conversation struct {
	ID       int       `json:"pk" validate:"gt=0"`
	Messages []Message `json:"messages" validate:"dive"`
}

// MarshalJSON writes a nil message list as [], the wire form of an empty conversation.
func (c Conversation) MarshalJSON() ([]byte, error) {
	type plain Conversation
	if c.Messages == nil {
		c.Messages = []Message{}
	}
	return json.Marshal(plain(c))
}

func (c Conversation) UserMessages() []Message {
	var out []Message
	for _, m := range c.Messages {
		if m.IsUser {
			out = append(out, m)
		}
	}
	return out
}
