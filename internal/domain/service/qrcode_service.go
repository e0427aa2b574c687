package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses the QR codes creators print at the
// physical pin location so collectors can open the collect flow directly.
type QRCodeService interface {
	// GenerateCollectQR generates a QR code PNG encoding the pin's collect link.
	GenerateCollectQR(pinID uuid.UUID) ([]byte, error)

	// ParseCollectQR parses QR code data and returns the pin ID.
	ParseCollectQR(qrData string) (uuid.UUID, error)
}
