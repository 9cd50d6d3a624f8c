package service

import (
	"encoding/base64"
	"strconv"
	"time"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/utils"
)

// signChoices are the (r1, r2) pairs the client picks from.
var signChoices = [][2]int{{0, 2}, {1, 1}, {2, 0}}

// blockPermutation moves bit i of a 64-bit block to position blockPermutation[i].
var blockPermutation = [64]int{
	0, 4, 61, 15, 56, 40, 6, 59, 62, 58, 17, 2, 12, 8, 32, 60,
	13, 45, 34, 14, 36, 21, 22, 39, 23, 25, 26, 20, 1, 33, 46, 55,
	35, 24, 57, 19, 53, 37, 38, 5, 30, 41, 42, 18, 47, 27, 9, 44,
	51, 7, 49, 63, 28, 43, 54, 52, 31, 10, 29, 11, 3, 16, 50, 48,
}

// tailSubstitution maps bit i of a single trailing byte to {position, bit if 0, bit if 1}.
var tailSubstitution = [8][3]byte{
	{6, 0, 1},
	{4, 1, 0},
	{5, 0, 1},
	{0, 0, 1},
	{2, 0, 1},
	{3, 0, 1},
	{1, 1, 0},
	{7, 0, 1},
}

var (
	xorTable = [16]byte{0x37, 0x92, 0x44, 0x68, 0xa5, 0x3d, 0xcc, 0x7f, 0xbb, 0x0f, 0xd9, 0x88, 0xee, 0x9a, 0xe9, 0x5a}
	xorKey   = []byte("80306f4370b39fd5630ad0529f77adb6")
)

// LegacySigner produces the st/sv/sign triple of the client sign protocol.
type LegacySigner struct {
	rand  utils.Rand
	clock Clock
}

// NewLegacySigner creates a signer.
func NewLegacySigner(r utils.Rand, clock Clock) *LegacySigner {
	if clock == nil {
		clock = time.Now
	}
	return &LegacySigner{rand: r, clock: clock}
}

// Sign signs a client request with a random cipher choice.
func (s *LegacySigner) Sign(functionID, body, uuid, client, clientVersion string) (*models.LegacySign, error) {
	choice := signChoices[s.rand.IntN(len(signChoices))]
	return s.SignWith(functionID, body, uuid, client, clientVersion, s.clock().UnixMilli(), choice[0], choice[1])
}

// SignWith signs with a fixed timestamp and cipher choice.
func (s *LegacySigner) SignWith(functionID, body, uuid, client, clientVersion string, st int64, r1, r2 int) (*models.LegacySign, error) {
	stStr := strconv.FormatInt(st, 10)
	sv := "1" + strconv.Itoa(r1) + strconv.Itoa(r2)
	input := "functionId=" + functionID +
		"&body=" + body +
		"&uuid=" + uuid +
		"&client=" + client +
		"&clientVersion=" + clientVersion +
		"&st=" + stStr +
		"&sv=" + sv
	out, err := Transform([]byte(input), r1, r2)
	if err != nil {
		return nil, err
	}
	return &models.LegacySign{
		St:   stStr,
		Sv:   sv,
		Sign: crypto.MD5Hex(base64.StdEncoding.EncodeToString(out)),
	}, nil
}

// CipherVariant returns the transform selected by (r1, r2).
func CipherVariant(r1, r2 int) int {
	perm := [3]int{0, 1, 2}
	switch r2 {
	case 1:
		perm = [3]int{1, 2, 0}
	case 2:
		perm = [3]int{2, 0, 1}
	}
	return perm[r1]
}

// Transform applies the byte cipher selected by (r1, r2).
func Transform(input []byte, r1, r2 int) ([]byte, error) {
	if r1 < 0 || r1 > 2 {
		return nil, errors.ErrInvalidRequest("sign variant selector out of range").
			WithMetadata("r1", r1)
	}
	switch v := CipherVariant(r1, r2); v {
	case 0:
		return permuteBlocks(input), nil
	case 2:
		return xorAdd(input), nil
	default:
		return nil, errors.ErrUnsupportedCipherVariant(r1, r2, v)
	}
}

// permuteBlocks permutes each full 8-byte block bitwise. A trailing group of exactly
// one byte is substituted; any other partial group produces no output.
func permuteBlocks(input []byte) []byte {
	full := len(input) / 8
	out := make([]byte, 0, full*8+1)
	for i := 0; i < full; i++ {
		out = append(out, permuteBlock(input[i*8:(i+1)*8])...)
	}
	if len(input)%8 == 1 {
		out = append(out, substituteByte(input[len(input)-1]))
	}
	return out
}

func permuteBlock(block []byte) []byte {
	var bits, moved [64]byte
	for i, b := range block {
		for j := 0; j < 8; j++ {
			bits[i*8+j] = (b >> (7 - j)) & 1
		}
	}
	for from, to := range blockPermutation {
		moved[to] = bits[from]
	}
	out := make([]byte, 8)
	for i := range out {
		for j := 0; j < 8; j++ {
			out[i] |= moved[i*8+j] << (7 - j)
		}
	}
	return out
}

func substituteByte(b byte) byte {
	var out byte
	for i, rule := range tailSubstitution {
		bit := rule[1]
		if (b>>(7-i))&1 == 1 {
			bit = rule[2]
		}
		out |= bit << (7 - rule[0])
	}
	return out
}

// xorAdd mixes each byte with the 16-byte table and the 32-byte key.
func xorAdd(input []byte) []byte {
	out := make([]byte, len(input))
	for i, c := range input {
		t := xorTable[i&0xf]
		k := xorKey[i&7]
		c ^= t
		c ^= k
		c += t
		out[i] = t ^ c ^ k
	}
	return out
}
