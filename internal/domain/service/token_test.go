package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/domain/profiles"
	"github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/utils"
)

func TestTokenGenerator_LayoutForEveryProfile(t *testing.T) {
	table := profiles.NewTable()
	gen := service.NewTokenGenerator(utils.NewLockedRand(42))
	for _, v := range table.Versions() {
		p, err := table.Lookup(v)
		require.NoError(t, err)

		token, err := gen.Generate("fp1234567890abcd", p)
		require.NoError(t, err, v)

		bi := p.Token.BaseInfo
		head := bi.Magic + bi.Version + bi.Platform
		require.True(t, strings.HasPrefix(token, head), v)
		checksum := token[len(head) : len(head)+8]
		assert.Equal(t, crypto.Adler32Hex([]byte(token[len(head)+8:])), checksum, v)
		assert.Equal(t, bi.Expires+bi.Producer, token[len(head)+8:service.ExpressionOffset], v)

		express := service.DecodeExpression(token)
		assert.Regexp(t, `^[123]([x+][123])+`, express, v)
	}
}

func TestTokenGenerator_CipherCarriesSecretAndFingerprint(t *testing.T) {
	p, err := profiles.NewTable().Lookup("4.1.0")
	require.NoError(t, err)
	gen := service.NewTokenGenerator(utils.NewLockedRand(5))
	fp := "abcdefghijklmnop"

	token, err := gen.Generate(fp, p)
	require.NoError(t, err)

	cipher := token[service.ExpressionOffset+16:]
	c := p.Token.Cipher
	require.True(t, strings.HasPrefix(cipher, c.Prefix))
	raw, err := crypto.DecodeBase64(crypto.DefaultAlphabet, cipher[len(c.Prefix):])
	require.NoError(t, err)
	for i := range raw {
		raw[i] ^= c.Secret2[i%len(c.Secret2)]
	}
	assert.Equal(t, c.Secret1+fp, string(raw))
}

func TestTokenGenerator_PerCallSecretChanges(t *testing.T) {
	p, err := profiles.NewTable().Lookup("xcx3.1.0")
	require.NoError(t, err)
	gen := service.NewTokenGenerator(utils.NewLockedRand(9))

	a, err := gen.Generate("123456789012345", p)
	require.NoError(t, err)
	b, err := gen.Generate("123456789012345", p)
	require.NoError(t, err)
	assert.NotEqual(t, a[service.ExpressionOffset+16:], b[service.ExpressionOffset+16:])
	assert.NotContains(t, a, p.Token.Cipher.Prefix+p.Token.Cipher.Secret1)
}

func TestDrawSecret_PinsMagic(t *testing.T) {
	draws := []*models.SecretDraw{
		{Dict: "0123456789abcdefghijklmnopqrstuvwxyzABCDOPQRSTUVWXYZ_-", Index: 5, Magic: "1"},
		{Dict: "0123456789", Index: 0, Magic: "z"},
		{Dict: "abc", Index: 11, Magic: "|"},
	}
	r := utils.NewLockedRand(13)
	for _, d := range draws {
		for i := 0; i < 50; i++ {
			s := service.DrawSecret(r, d)
			require.Len(t, s, models.TokenSecretSize)
			assert.Equal(t, d.Magic, s[d.Index:d.Index+1])
		}
	}
}

func TestEncodeExpression_RoundTrip(t *testing.T) {
	carrier := service.EncodeExpression("1+2x3abcd")
	assert.Len(t, carrier, 16)
	token := strings.Repeat("t", service.ExpressionOffset) + carrier + "tail"
	assert.Equal(t, "1+2x3a", service.DecodeExpression(token))
}
