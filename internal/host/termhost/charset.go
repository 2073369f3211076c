package termhost

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/Crystalwarrior/imtui/internal/host"
)

// CP437 converts UTF-8 text to code page 437, the host's native single-byte
// encoding.
type CP437 struct{}

// NewCharset returns the host's text converter.
func NewCharset() host.Charset {
	return CP437{}
}

// Encode converts s to code page 437. Unmappable text yields nil; the
// caller decides on a substitute.
func (CP437) Encode(s string) []byte {
	out, err := charmap.CodePage437.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return out
}
