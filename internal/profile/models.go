package profile

import "time"

// Profile is the public view over a user row.
type Profile struct {
    ID        int64     `json:"id" db:"id"`
    Email     string    `json:"email" db:"email"`
    Name      string    `json:"name" db:"name"`
    Age       *int      `json:"age,omitempty" db:"age"`
    Bio       *string   `json:"bio,omitempty" db:"bio"`
    PhotoURL  *string   `json:"photo_url,omitempty" db:"photo_url"`
    CreatedAt time.Time `json:"created_at" db:"created_at"`
    UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

    Location *Location `json:"location,omitempty"`
}

// Location is a user's single position plus their search radius.
// Invariants: latitude in [-90,90], longitude in [-180,180], radius > 0.
type Location struct {
    UserID    int64     `json:"user_id" db:"user_id"`
    Latitude  float64   `json:"latitude" db:"latitude"`
    Longitude float64   `json:"longitude" db:"longitude"`
    City      *string   `json:"city,omitempty" db:"city"`
    Country   *string   `json:"country,omitempty" db:"country"`
    RadiusKm  float64   `json:"radius_km" db:"radius_km"`
    UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DTOs for API requests/responses

type UpdateProfileRequest struct {
    Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
    Age      *int    `json:"age,omitempty" validate:"omitempty,gte=18,lte=100"`
    Bio      *string `json:"bio,omitempty" validate:"omitempty,max=500"`
    PhotoURL *string `json:"photo_url,omitempty" validate:"omitempty,url,max=500"`
}

type UpdateLocationRequest struct {
    Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
    Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
    City      *string  `json:"city,omitempty" validate:"omitempty,max=100"`
    Country   *string  `json:"country,omitempty" validate:"omitempty,max=100"`
    RadiusKm  *float64 `json:"radius_km,omitempty" validate:"omitempty,gt=0,lte=20000"`
}
