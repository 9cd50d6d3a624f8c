// Package crypto provides the byte-level primitives of the signing engine:
// custom-alphabet Base64, AES-CBC with PKCS#7, and hex digests.
package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
)

// DefaultAlphabet is the profile-independent table used by the token cipher and the device payload.
const DefaultAlphabet = "KLMNOPQRSTABCDEFGHIJUVWXYZabcdopqrstuvwxefghijklmnyz0123456789+/"

var (
	encodingsMu sync.RWMutex
	encodings   = map[string]*base64.Encoding{}
)

// Encoding returns a padded Base64 encoding over alphabet; "" selects the standard table.
// Encodings are built once per alphabet and reused.
func Encoding(alphabet string) (*base64.Encoding, error) {
	if alphabet == "" {
		return base64.StdEncoding, nil
	}
	encodingsMu.RLock()
	enc, ok := encodings[alphabet]
	encodingsMu.RUnlock()
	if ok {
		return enc, nil
	}
	if len(alphabet) != 64 {
		return nil, fmt.Errorf("base64 alphabet must be 64 bytes, got %d", len(alphabet))
	}
	seen := make(map[rune]bool, 64)
	for _, c := range alphabet {
		if c == '=' || c == '\n' || c == '\r' || c > 0x7f || seen[c] {
			return nil, fmt.Errorf("invalid base64 alphabet character %q", c)
		}
		seen[c] = true
	}
	enc = base64.NewEncoding(alphabet)
	encodingsMu.Lock()
	encodings[alphabet] = enc
	encodingsMu.Unlock()
	return enc, nil
}

// EncodeBase64 encodes data with alphabet, padding with '='.
func EncodeBase64(alphabet string, data []byte) (string, error) {
	enc, err := Encoding(alphabet)
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(data), nil
}

// DecodeBase64 decodes s with alphabet. Trailing '=' is optional.
func DecodeBase64(alphabet string, s string) ([]byte, error) {
	enc, err := Encoding(alphabet)
	if err != nil {
		return nil, err
	}
	s = strings.TrimRight(s, "=")
	return enc.WithPadding(base64.NoPadding).DecodeString(s)
}

// MustEncodeDefault encodes data with DefaultAlphabet.
func MustEncodeDefault(data []byte) string {
	enc, err := Encoding(DefaultAlphabet)
	if err != nil {
		panic(err)
	}
	return enc.EncodeToString(data)
}

// DecodeStdLenient decodes standard Base64, dropping a trailing partial quantum
// the way browser decoders do instead of failing.
func DecodeStdLenient(s string) []byte {
	s = strings.TrimRight(s, "=")
	if rem := len(s) % 4; rem == 1 {
		s = s[:len(s)-1]
	}
	out, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		// fall back to the longest decodable prefix
		for n := len(s) - len(s)%4; n > 0; n -= 4 {
			if out, err = base64.RawStdEncoding.DecodeString(s[:n]); err == nil {
				return out
			}
		}
		return nil
	}
	return out
}
