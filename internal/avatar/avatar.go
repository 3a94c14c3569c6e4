// Package avatar derives gravatar image URLs from user emails.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	DefaultSize  = 100
	DefaultStyle = "retro"
)

// URL returns the gravatar URL for email. The email is lowercased and
// trimmed before hashing, so the result is stable for equivalent inputs.
// A size <= 0 or empty style falls back to the defaults.
func URL(email string, size int, style string) string {
	if size <= 0 {
		size = DefaultSize
	}

	if style == "" {
		style = DefaultStyle
	}

	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=%s&r=g", hex.EncodeToString(sum[:]), size, style)
}
