// Package chat implements the dashboard's live chat: a websocket hub with a
// persisted, pruned message log.
package chat

import (
	"encoding/json"

	"palu-board.backend/internal/domain/entities"
)

// MessageType discriminates frames on the chat websocket
type MessageType string

const (
	// Client to server
	MsgTypeChatMessage MessageType = "chat_message"

	// Server to client
	MsgTypeRecentMessages MessageType = "recent_messages"
	MsgTypeNewMessage     MessageType = "new_message"
	MsgTypeError          MessageType = "error"
)

// InboundMessage is a frame sent by a chat client
type InboundMessage struct {
	Type     MessageType `json:"type"`
	Username string      `json:"username,omitempty"`
	Message  string      `json:"message"`
}

// ParseInbound decodes a client frame
func ParseInbound(data []byte) (*InboundMessage, error) {
	var msg InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

type backlogFrame struct {
	Type     MessageType             `json:"type"`
	Messages []*entities.ChatMessage `json:"messages"`
}

type newMessageFrame struct {
	Type    MessageType           `json:"type"`
	Message *entities.ChatMessage `json:"message"`
}

type errorFrame struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// BacklogPayload encodes the recent-history frame sent on connect
func BacklogPayload(messages []*entities.ChatMessage) ([]byte, error) {
	if messages == nil {
		messages = []*entities.ChatMessage{}
	}
	return json.Marshal(backlogFrame{Type: MsgTypeRecentMessages, Messages: messages})
}

// NewMessagePayload encodes the broadcast frame for one new message
func NewMessagePayload(msg *entities.ChatMessage) ([]byte, error) {
	return json.Marshal(newMessageFrame{Type: MsgTypeNewMessage, Message: msg})
}

// ErrorPayload encodes an error frame
func ErrorPayload(text string) ([]byte, error) {
	return json.Marshal(errorFrame{Type: MsgTypeError, Message: text})
}
