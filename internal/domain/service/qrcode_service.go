package service

import (
	"trustbites/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePlaceQR renders a PNG QR code pointing at the place
	GeneratePlaceQR(place *entity.Place) ([]byte, error)
}
