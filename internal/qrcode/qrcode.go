package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
)

// DefaultSize is the pixel width and height of generated images
const DefaultSize = 512

// EncodePNG renders text as a QR code PNG of the given size
func EncodePNG(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	code, err := qr.Encode(text, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to scale QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("failed to write PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodePNG extracts the text content of a QR code PNG
func DecodePNG(data []byte) (string, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Convert to the format required by gozxing
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to process image for QR reading: %w", err)
	}

	reader := zxqrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}

// RoundTrip encodes text into a QR image and decodes it back, returning
// an error if the decoded content differs from the input
func RoundTrip(text string) error {
	data, err := EncodePNG(text, DefaultSize)
	if err != nil {
		return err
	}

	got, err := DecodePNG(data)
	if err != nil {
		return err
	}

	if got != text {
		return fmt.Errorf("QR round trip mismatch: decoded %d bytes, encoded %d", len(got), len(text))
	}

	return nil
}
