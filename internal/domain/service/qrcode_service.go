package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for public business pages.
type QRCodeService interface {
	// GenerateBusinessQR returns a PNG QR code that links to the business page.
	GenerateBusinessQR(businessID uuid.UUID) ([]byte, error)

	// BusinessURL returns the public page URL encoded in the QR code.
	BusinessURL(businessID uuid.UUID) string
}
