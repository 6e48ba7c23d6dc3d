package sku

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	prefix       = "PROD"
	maxNameRunes = 4
	suffixLen    = 7
)

// Generate derives a SKU from a product name.
//
// Format: PROD-{first4}-{random7hex}
// ex: PROD-MACB-a8d3f1c
//
// The name part is the first 4 runes of the trimmed name, uppercased;
// shorter names are used as-is. Generate is stateless and safe for
// concurrent use. Uniqueness is probabilistic only, the store's unique
// constraint catches the rare collision.
func Generate(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > maxNameRunes {
		runes = runes[:maxNameRunes]
	}
	namePart := strings.ToUpper(string(runes))

	buf := make([]byte, 4)
	_, _ = rand.Read(buf) // documented to never fail

	return fmt.Sprintf("%s-%s-%s", prefix, namePart, hex.EncodeToString(buf)[:suffixLen])
}
