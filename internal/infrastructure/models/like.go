package models

import "time"

// Like maps the likes table. token_address references tokens.address but is
// deliberately not declared as a foreign key: like insertion must tolerate a
// token row created in the same transaction.
type Like struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	TokenAddress string    `gorm:"type:varchar(100);not null;index"`
	UserIP       string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Like) TableName() string {
	return "likes"
}
