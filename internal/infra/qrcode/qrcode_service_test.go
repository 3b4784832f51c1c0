package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"comerciaya/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_BusinessURL(t *testing.T) {
	svc := newQRCodeService(config.QRCodeConfig{BaseURL: "https://comerciaya.cl/"})
	id := uuid.New()

	assert.Equal(t, "https://comerciaya.cl/emprendimientos/"+id.String(), svc.BusinessURL(id))
}

func TestQRCodeService_GenerateBusinessQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}})

	qrBytes, err := svc.GenerateBusinessQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_Defaults(t *testing.T) {
	svc := newQRCodeService(config.QRCodeConfig{})

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultBaseURL, svc.baseURL)
}
