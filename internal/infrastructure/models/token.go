package models

import "time"

// Token maps the tokens table. The chain address is the primary key; the
// like counter is denormalized and maintained by the like ledger.
type Token struct {
	Address   string    `gorm:"type:varchar(100);primaryKey"`
	LikeCount int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Token) TableName() string {
	return "tokens"
}
