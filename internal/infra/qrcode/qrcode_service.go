package qrcode

import (
	"fmt"
	"strconv"
	"strings"

	"trustbites/internal/domain/entity"
	"trustbites/internal/domain/service"
	"trustbites/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePlaceQR encodes a geo URI when the place has coordinates, otherwise "name, city".
func (s *qrcodeService) GeneratePlaceQR(place *entity.Place) ([]byte, error) {
	qrCode, err := qrcode.New(PlaceContent(place), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// PlaceContent is the text carried by a place's QR code.
func PlaceContent(place *entity.Place) string {
	if place.Location != nil {
		lat := strconv.FormatFloat(place.Location.Lat, 'f', -1, 64)
		lon := strconv.FormatFloat(place.Location.Lon, 'f', -1, 64)

		return fmt.Sprintf("geo:%s,%s?q=%s", lat, lon, strings.ReplaceAll(place.Name, " ", "+"))
	}
	if place.City == "" {
		return place.Name
	}

	return place.Name + ", " + place.City
}
