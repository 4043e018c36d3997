package models

import "time"

// Product is a catalogue entry owned by its creator. Name is unique per
// creator, not globally.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex:idx_products_name_creator" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	ImageURL    *string   `gorm:"size:512" json:"image_url,omitempty"`
	CreatorID   uint      `gorm:"not null;index;uniqueIndex:idx_products_name_creator" json:"creator_id"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductDetail is a product row joined with its creator's name columns,
// as returned by the list and show queries.
type ProductDetail struct {
	Product
	CreatorName     string `json:"creator_name"`
	CreatorLastName string `json:"creator_last_name"`
	CreatorEmail    string `json:"creator_email,omitempty"`
}

// SortColumns is the whitelist of product columns a caller may sort by.
func (Product) SortColumns() []string {
	return []string{"created_at", "updated_at", "name", "price", "category"}
}
