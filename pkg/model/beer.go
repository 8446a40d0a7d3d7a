package model

import "gorm.io/gorm"

type Beer struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex:idx_beer_unique"`
	Description string
	ABV         *float64
	BrewerID    uint `gorm:"uniqueIndex:idx_beer_unique"`
}
