package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateItineraryQR renders a PNG QR code linking to the shared itinerary
	GenerateItineraryQR(itineraryID uuid.UUID) ([]byte, error)
}
