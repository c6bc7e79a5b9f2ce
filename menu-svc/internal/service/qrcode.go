package service

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(hotelSlug, qrSlug string) ([]byte, error)
}

// DefaultQRGenerator encodes the guest ordering URL of a table as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) URL(hotelSlug, qrSlug string) string {
	return strings.TrimRight(g.BaseURL, "/") + "/order/" + hotelSlug + "/" + qrSlug
}

func (g DefaultQRGenerator) Generate(hotelSlug, qrSlug string) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(g.URL(hotelSlug, qrSlug), qrcode.Medium, size)
}
