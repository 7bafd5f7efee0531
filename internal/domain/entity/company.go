package entity

import "time"

// Company representa una organización/tenant del sistema contable.
type Company struct {
	ID           string
	Name         string
	BaseCurrency string // código ISO-4217 (COP, USD, EUR...)
	FYStartMonth int    // mes de inicio del año fiscal, 1..12
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
