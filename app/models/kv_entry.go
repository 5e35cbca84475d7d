package models

import "time"

// KVEntry backs the relational key/value store. One row per storage key.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:191;not null"`
	Value     []byte `gorm:"type:longblob;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
