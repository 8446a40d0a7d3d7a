package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Brewer struct {
	gorm.Model
	Name               string          `gorm:"not null"`
	Street             string
	Turnover           decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0"`
	LocationPostalCode *string
	Location           *Location `gorm:"foreignKey:LocationPostalCode;references:PostalCode;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Beers              []Beer    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewBrewer returns an unsaved brewer with a zero turnover and no location.
func NewBrewer(name string) *Brewer {
	return &Brewer{Name: name, Turnover: decimal.Zero}
}

// SetLocation keeps the association and its foreign key in step, so a brewer
// saved without its associations still points at the right location.
func (b *Brewer) SetLocation(location *Location) {
	b.Location = location

	if location == nil {
		b.LocationPostalCode = nil

		return
	}

	postalCode := location.PostalCode
	b.LocationPostalCode = &postalCode
}

// PostalCode prefers the loaded location over the bare foreign key.
func (b *Brewer) PostalCode() *string {
	if b.Location != nil && len(b.Location.PostalCode) > 0 {
		postalCode := b.Location.PostalCode

		return &postalCode
	}

	if b.LocationPostalCode != nil {
		postalCode := *b.LocationPostalCode

		return &postalCode
	}

	return nil
}
