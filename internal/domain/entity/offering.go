package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferingKind distinguishes products from services.
type OfferingKind string

const (
	OfferingKindProduct OfferingKind = "producto"
	OfferingKindService OfferingKind = "servicio"
)

// IsValid reports whether k is a known offering kind.
func (k OfferingKind) IsValid() bool {
	return k == OfferingKindProduct || k == OfferingKindService
}

// ParseOfferingKind resolves a client value. The lower-case English words are
// accepted as aliases; anything else is returned unchanged and fails IsValid.
func ParseOfferingKind(raw string) OfferingKind {
	switch raw {
	case string(OfferingKindProduct), "product":
		return OfferingKindProduct
	case string(OfferingKindService), "service":
		return OfferingKindService
	default:
		return OfferingKind(raw)
	}
}

// Offering is a product or service published under a business.
type Offering struct {
	ID          uuid.UUID
	Name        string
	Description string
	Kind        OfferingKind
	BusinessID  uuid.UUID
	ImageURL    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
