package exfat

import (
	"encoding/binary"

	"github.com/dsoprea/go-logging"
	"golang.org/x/text/encoding/unicode"
)

// UnicodeFromAscii returns a string from raw UTF-16LE data. Only the first
// `unicodeCharCount` code-units are considered and NULs are skipped.
func UnicodeFromAscii(raw []byte, unicodeCharCount int) string {
	filtered := make([]byte, 0, unicodeCharCount*2)
	for i := 0; i < unicodeCharCount && (i+1)*2 <= len(raw); i++ {
		if binary.LittleEndian.Uint16(raw[i*2:]) == 0 {
			continue
		}

		filtered = append(filtered, raw[i*2], raw[i*2+1])
	}

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

	decoded, err := decoder.Bytes(filtered)
	log.PanicIf(err)

	return string(decoded)
}

func roundUp(value, alignment uint64) uint64 {
	return divRoundUp(value, alignment) * alignment
}

func divRoundUp(value, divisor uint64) uint64 {
	return (value + divisor - 1) / divisor
}

const (
	// Version is printed by the tools.
	Version = "1.0.0"
)
