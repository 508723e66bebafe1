// Package entity defines the domain models for the symbollist feature.
package entity

import (
	"strings"
	"time"
)

// Category groups popular stocks on the landing page.
type Category string

const (
	CategoryTech       Category = "tech"
	CategoryGrowth     Category = "growth"
	CategoryHealthcare Category = "healthcare"
	CategoryChinese    Category = "chinese"
	CategoryOther      Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryTech, CategoryGrowth, CategoryHealthcare, CategoryChinese, CategoryOther}

// ParseCategory は大文字小文字を無視してカテゴリを解析します。
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// PopularStock is one entry of the popular stocks catalogue.
// Active entries are listed on the landing page and warmed by the prefetch job.
type PopularStock struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Exchange  string    `gorm:"size:50;not null"`
	Category  Category  `gorm:"size:20;not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
