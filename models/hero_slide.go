package models

import (
	"time"

	"gorm.io/gorm"
)

// HeroSlide is one slide of the storefront hero banner carousel
type HeroSlide struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Subtitle   string         `json:"subtitle"`
	Description string        `gorm:"type:text" json:"description"`
	Image      string         `json:"image"`
	CTAText    string         `json:"cta_text"`
	CTALink    string         `json:"cta_link"`
	Gradient   string         `json:"gradient"` // background gradient token for the UI
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	SortOrder  int            `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the HeroSlide model
func (HeroSlide) TableName() string {
	return "hero_slides"
}
