package qrcode

import (
	"testing"

	"trustbites/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePlaceQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	place := &entity.Place{ID: uuid.New(), Name: "Tasca Verde", City: "Lisbon"}

	qrBytes, err := service.GeneratePlaceQR(place)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePlaceQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")
		qrBytes, err := service.GeneratePlaceQR(&entity.Place{Name: "Tasca Verde"})
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestPlaceContent(t *testing.T) {
	tests := []struct {
		name  string
		place *entity.Place
		want  string
	}{
		{
			name:  "geo uri when located",
			place: &entity.Place{Name: "Tasca Verde", City: "Lisbon", Location: &entity.Coordinates{Lat: 38.7223, Lon: -9.1393}},
			want:  "geo:38.7223,-9.1393?q=Tasca+Verde",
		},
		{
			name:  "name and city without coordinates",
			place: &entity.Place{Name: "Tasca Verde", City: "Lisbon"},
			want:  "Tasca Verde, Lisbon",
		},
		{
			name:  "name only",
			place: &entity.Place{Name: "Tasca Verde"},
			want:  "Tasca Verde",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceContent(tt.place))
		})
	}
}
