package qrcode

import qr "github.com/skip2/go-qrcode"

// Generate creates a QR code PNG for a table join URL.
func Generate(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, 256)
}

// GenerateSized creates a QR code PNG at a caller-chosen pixel size,
// for large-screen display.
func GenerateSized(url string, size int) ([]byte, error) {
	return qr.Encode(url, qr.Medium, size)
}
