package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase64_DefaultAlphabetRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff, 0xfe},
		[]byte("hello"),
		[]byte("tk04wl3f2f6d1b6b0c"),
	}
	for _, in := range inputs {
		enc, err := EncodeBase64(DefaultAlphabet, in)
		require.NoError(t, err)
		assert.Zero(t, len(enc)%4, "padded to a multiple of 4")

		out, err := DecodeBase64(DefaultAlphabet, enc)
		require.NoError(t, err)
		assert.Equal(t, in, append([]byte{}, out...))
	}
}

func TestEncodeBase64_MapsSixBitGroupsMSBFirst(t *testing.T) {
	// 0x00 0x10 0x83 -> groups 0, 1, 2, 3
	enc, err := EncodeBase64(DefaultAlphabet, []byte{0x00, 0x10, 0x83})
	require.NoError(t, err)
	assert.Equal(t, "KLMN", enc)
}

func TestDecodeBase64_ToleratesMissingPadding(t *testing.T) {
	enc, err := EncodeBase64("", []byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, "YWI=", enc)

	out, err := DecodeBase64("", "YWI")
	require.NoError(t, err)
	assert.Equal(t, "ab", string(out))
}

func TestEncoding_RejectsBadAlphabet(t *testing.T) {
	_, err := Encoding("abc")
	assert.Error(t, err)

	dup := DefaultAlphabet[:63] + "K"
	_, err = Encoding(dup)
	assert.Error(t, err)
}

func TestDecodeStdLenient_DropsPartialQuantum(t *testing.T) {
	full := base64.StdEncoding.EncodeToString([]byte("1+2x3abcd"))
	// nine characters leave a one character tail
	out := DecodeStdLenient(full[:9])
	assert.Equal(t, "1+2x3a", string(out))
}

func TestCBC_RoundTrip(t *testing.T) {
	key := []byte("5yKhoqodQjuHGlKZ")
	iv := []byte("7WwXmH2TKSCIEJQ3")

	for _, msg := range []string{"", "a", "exactly16bytes!!", `{"fp":"abc","random":"xyz"}`} {
		ct, err := EncryptCBC(key, iv, []byte(msg))
		require.NoError(t, err)
		assert.Zero(t, len(ct)%16)
		assert.NotEmpty(t, ct)

		pt, err := DecryptCBC(key, iv, ct)
		require.NoError(t, err)
		assert.Equal(t, msg, string(pt))
	}
}

func TestDecryptCBC_Errors(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("0102030405060708")

	_, err := DecryptCBC(key, iv, []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = DecryptCBC([]byte("bad"), iv, make([]byte, 16))
	assert.Error(t, err)

	ct, err := EncryptCBC(key, iv, []byte("payload"))
	require.NoError(t, err)
	_, err = DecryptCBC([]byte("fedcba9876543210"), iv, ct)
	assert.Error(t, err)
}

func TestDigests(t *testing.T) {
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", MD5Hex("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", SHA256Hex("abc"))
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		HMACSHA256Hex("The quick brown fox jumps over the lazy dog", "key"))
	assert.Equal(t, "11e60398", Adler32Hex([]byte("Wikipedia")))
	assert.Equal(t, "00000001", Adler32Hex(nil))
}
