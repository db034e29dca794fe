package models

import "time"

// Course is the resource this service manages. OwnerID and TenantID are
// stamped once at creation from the creating principal and never change;
// ownership does not transfer. TenantID is internal-only and never
// serialized outward.
type Course struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Price       *float64  `json:"price,omitempty" db:"price"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	TenantID    string    `json:"-" db:"tenant_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
