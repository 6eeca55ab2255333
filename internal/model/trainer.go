package model

// Trainer is catalog data shown on the trainers page and referenced by
// bookings for display only.
type Trainer struct {
	Base
	Name       string `json:"name" db:"name"`
	Specialty  string `json:"specialty" db:"specialty"`
	Bio        string `json:"bio" db:"bio"`
	Image      string `json:"image" db:"image"`
	Experience string `json:"experience" db:"experience"`
}

// CreateTrainerRequest adds a trainer to the catalog
type CreateTrainerRequest struct {
	Name       string `json:"name" validate:"required"`
	Specialty  string `json:"specialty" validate:"required"`
	Bio        string `json:"bio"`
	Image      string `json:"image"`
	Experience string `json:"experience"`
}
