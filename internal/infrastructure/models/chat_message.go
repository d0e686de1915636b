package models

import "time"

// ChatMessage maps the chat_messages table.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(20);not null"`
	Message   string    `gorm:"type:varchar(500);not null"`
	UserIP    string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
