package service

import (
	"fmt"
	"math/rand"
)

// Palette yields row background colours as six lowercase hex digits.
type Palette func() string

// PastelPalette draws every channel uniformly from [180, 255].
func PastelPalette() Palette {
	return func() string {
		return pastel(rand.Intn)
	}
}

func pastel(intn func(int) int) string {
	return fmt.Sprintf("%02x%02x%02x", 180+intn(76), 180+intn(76), 180+intn(76))
}
