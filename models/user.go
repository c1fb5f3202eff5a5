package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a storefront customer. Customers are created or updated
// during checkout, keyed by phone number.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     *string        `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone     string         `gorm:"uniqueIndex;not null" json:"phone"`
	Address   *string        `json:"address,omitempty"`
	Role      string         `gorm:"not null;default:'customer'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
