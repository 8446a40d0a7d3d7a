package model

type Location struct {
	PostalCode string `gorm:"primaryKey;size:10"`
	Name       string `gorm:"not null"`
}

// DefaultLocations is the reference data loaded by `migrate --seed`.
func DefaultLocations() []Location {
	return []Location{
		{PostalCode: "1000", Name: "Brussel"},
		{PostalCode: "2000", Name: "Antwerpen"},
		{PostalCode: "2870", Name: "Puurs"},
		{PostalCode: "3000", Name: "Leuven"},
		{PostalCode: "8000", Name: "Brugge"},
		{PostalCode: "8531", Name: "Bavikhove"},
		{PostalCode: "9000", Name: "Gent"},
		{PostalCode: "9070", Name: "Destelbergen"},
	}
}
