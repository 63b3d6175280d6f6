package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"not null;check:price >= 0" json:"price"`
	Description string         `json:"description"`
	Brand       string         `json:"brand"`
	Stock       int            `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CategoryID  uint           `gorm:"index" json:"category_id"`
	Category    Category       `gorm:"foreignKey:CategoryID" json:"category"`
	Image       string         `json:"image"` // public URL under /uploads
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
