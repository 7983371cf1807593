package models

import "time"

// User represents an entry in the user directory.
// UserID is assigned once, right before the first insert, and is not unique.
type User struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:varchar(7)"`
	Name      string    `json:"name"`
	Birthday  string    `json:"birthday"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
}
