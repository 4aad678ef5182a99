package model

import "time"

// Base is embedded by every entity. The primary key is a human-readable
// sequential id such as prod001 or usr042: a fixed per-entity prefix followed
// by a zero-padded integer suffix. Timestamps are managed by GORM.
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(32)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID returns the current primary key value.
func (b *Base) GetID() string { return b.ID }

// SetID assigns the primary key value.
func (b *Base) SetID(id string) { b.ID = id }
