package storage

import "time"

// UserRecord is the persisted shape of a credential record. The raw password
// never reaches this layer, only the PHC-format hash does.
type UserRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	RequiresTwoFA bool      `gorm:"not null;default:false" json:"requires_2fa"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the table name stable across gorm naming strategies.
func (UserRecord) TableName() string {
	return "users"
}
