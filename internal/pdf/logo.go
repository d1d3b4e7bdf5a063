package pdf

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

var (
	pngMagic = []byte{0x89, 'P', 'N', 'G'}
	jpgMagic = []byte{0xFF, 0xD8}
)

// decodeLogo turns the stored base64 logo into raw image bytes plus the
// extension maroto needs. Accepts an optional data-URL prefix. A logo that
// cannot be decoded or is not PNG/JPEG is simply skipped; the letterhead
// renders without it.
func decodeLogo(encoded string) ([]byte, extension.Type, bool) {
	if encoded == "" {
		return nil, "", false
	}
	if idx := strings.Index(encoded, "base64,"); idx >= 0 {
		encoded = encoded[idx+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, "", false
	}
	switch {
	case bytes.HasPrefix(raw, pngMagic):
		return raw, extension.Png, true
	case bytes.HasPrefix(raw, jpgMagic):
		return raw, extension.Jpg, true
	}
	return nil, "", false
}
