package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/utils"
)

const (
	// programLength is the size of the block that carries the key expression.
	programLength = 9
	// programFiller pads the expression; it contains no grammar characters.
	programFiller = "abcdefghijklmnopqrstuvwyz"
	// ExpressionOffset and ExpressionEnd delimit the expression carrier inside a token.
	ExpressionOffset = models.TokenHeadLength
	ExpressionEnd    = ExpressionOffset + 12
)

// TokenGenerator builds the local device token. It performs no caching.
type TokenGenerator struct {
	rand utils.Rand
}

// NewTokenGenerator creates a generator drawing from r.
func NewTokenGenerator(r utils.Rand) *TokenGenerator {
	return &TokenGenerator{rand: r}
}

// tokenSecret is the resolved cipher secret and prefix of one token.
type tokenSecret struct {
	secret string
	prefix string
}

// resolveSecret is the only step that differs between generations.
func (g *TokenGenerator) resolveSecret(profile *models.VersionProfile) (tokenSecret, error) {
	c := profile.Token.Cipher
	switch profile.TokenGeneration {
	case models.TokenGeneration1:
		if c.PerCallSecret {
			draw := utils.RandomID(g.rand, 32, utils.DictMax)
			return tokenSecret{secret: draw[:models.TokenSecretSize], prefix: draw[:2]}, nil
		}
		return tokenSecret{secret: c.Secret1, prefix: c.Prefix}, nil
	case models.TokenGeneration2, models.TokenGeneration3:
		if c.Draw == nil {
			return tokenSecret{}, fmt.Errorf("profile %s has no secret draw", profile.Version)
		}
		return tokenSecret{secret: DrawSecret(g.rand, c.Draw), prefix: c.Prefix}, nil
	default:
		return tokenSecret{}, fmt.Errorf("unknown token generation %d", profile.TokenGeneration)
	}
}

// DrawSecret draws TokenSecretSize characters of d.Dict and forces d.Magic in at d.Index.
// The draw keeps its length: the last drawn character is dropped.
func DrawSecret(r utils.Rand, d *models.SecretDraw) string {
	draw := utils.RandomID(r, models.TokenSecretSize, d.Dict)
	return draw[:d.Index] + d.Magic + draw[d.Index:len(draw)-1]
}

// Generate returns a fresh token for fingerprint.
func (g *TokenGenerator) Generate(fingerprint string, profile *models.VersionProfile) (string, error) {
	sec, err := g.resolveSecret(profile)
	if err != nil {
		return "", err
	}
	expr := g.expressionCarrier()
	cipher := sec.prefix + crypto.MustEncodeDefault(maskPayload([]byte(sec.secret+fingerprint), profile.Token.Cipher.Secret2))

	bi := profile.Token.BaseInfo
	tail := bi.Expires + bi.Producer + expr + cipher
	checksum := crypto.Adler32Hex([]byte(tail))

	var b strings.Builder
	b.Grow(len(bi.Magic) + len(bi.Version) + len(bi.Platform) + len(checksum) + len(tail))
	b.WriteString(bi.Magic)
	b.WriteString(bi.Version)
	b.WriteString(bi.Platform)
	b.WriteString(checksum)
	b.WriteString(tail)
	return b.String(), nil
}

// maskPayload XORs payload with a repeating mask; an empty mask leaves it unchanged.
func maskPayload(payload []byte, mask string) []byte {
	if mask == "" {
		return payload
	}
	out := make([]byte, len(payload))
	for i, c := range payload {
		out[i] = c ^ mask[i%len(mask)]
	}
	return out
}

// expressionCarrier encodes a random key expression into the 16 character field of the token.
func (g *TokenGenerator) expressionCarrier() string {
	return EncodeExpression(g.randomProgram())
}

// randomProgram returns a program block: one or two operations followed by filler.
func (g *TokenGenerator) randomProgram() string {
	var b strings.Builder
	b.WriteByte("123"[g.rand.IntN(3)])
	ops := 1 + g.rand.IntN(2)
	for i := 0; i < ops; i++ {
		b.WriteByte("x+"[g.rand.IntN(2)])
		b.WriteByte("123"[g.rand.IntN(3)])
	}
	for b.Len() < programLength {
		b.WriteByte(programFiller[g.rand.IntN(len(programFiller))])
	}
	return b.String()
}

// EncodeExpression wraps a program block the way the token carries it:
// URL-safe Base64 over standard Base64.
func EncodeExpression(program string) string {
	inner := base64.StdEncoding.EncodeToString([]byte(program))
	return base64.RawURLEncoding.EncodeToString([]byte(inner))
}
