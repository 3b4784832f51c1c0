// Package qrcode renders share codes for public business pages.
package qrcode

import (
	"strings"

	"comerciaya/config"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:5173"
	businessPath   = "/emprendimientos/"
)

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService builds the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := config.QRCodeConfig{}
	if cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	return newQRCodeService(qrCfg)
}

func newQRCodeService(cfg config.QRCodeConfig) *qrcodeService {
	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:    size,
		level:   recoveryLevel(cfg.ErrorCorrectionLevel),
		baseURL: baseURL,
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) BusinessURL(businessID uuid.UUID) string {
	return s.baseURL + businessPath + businessID.String()
}

// GenerateBusinessQR encodes the public page URL as a PNG.
func (s *qrcodeService) GenerateBusinessQR(businessID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.BusinessURL(businessID), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
