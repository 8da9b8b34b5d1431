package entity

import "time"

// Category representa una categoría del catálogo. El nombre es único sin
// distinguir mayúsculas/minúsculas.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
