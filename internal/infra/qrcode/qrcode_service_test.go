package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"columbus/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_RecoveryLevels(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		expected             qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.errorCorrectionLevel, "https://planner.example.com")
			assert.Equal(t, tt.expected, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://planner.example.com/")
	id := uuid.MustParse("4f9c2b7e-8a31-4d0b-9e55-2f1d6a3c7b10")

	assert.Equal(t, "https://planner.example.com/itinerary/4f9c2b7e-8a31-4d0b-9e55-2f1d6a3c7b10", svc.shareURL(id))
}

func TestQRCodeService_GenerateItineraryQR(t *testing.T) {
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size, BaseURL: "https://planner.example.com"}})

		pngBytes, err := svc.GenerateItineraryQR(uuid.New())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}
