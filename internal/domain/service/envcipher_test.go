package service_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/domain/profiles"
	"github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/utils"
)

const sampleEnv = `{
  "pp": {
    "p1": "jd_user"
  },
  "random": "Ab3_-x9QzT",
  "sua": "Windows NT 10.0; Win64; x64",
  "extend": {
    "wd": 0,
    "bu2": -1
  },
  "v": "h5_file_v4.7.4",
  "fp": "a1b2c3"
}`

func TestEnvCipher_RoundTripEveryProfile(t *testing.T) {
	table := profiles.NewTable()
	for _, v := range table.Versions() {
		p, err := table.Lookup(v)
		require.NoError(t, err)

		sealed, err := service.SealEnv(sampleEnv, p)
		require.NoError(t, err, v)
		assert.NotContains(t, sealed, ";", v)

		obj, err := service.OpenEnv(sealed, p)
		require.NoError(t, err, v)
		assert.Equal(t, []string{"pp", "random", "sua", "extend", "v", "fp"}, obj.Keys(), v)
		fp, _ := obj.GetString("fp")
		assert.Equal(t, "a1b2c3", fp, v)
	}
}

func TestEnvCipher_SaltIsAppendedAndStripped(t *testing.T) {
	p, err := profiles.NewTable().Lookup("4.7.1")
	require.NoError(t, err)
	require.NotEmpty(t, p.EnvSalt())
	require.False(t, p.HexEnv())

	sealed, err := service.SealEnv(`{"fp":"x"}`, p)
	require.NoError(t, err)

	ct, err := crypto.DecodeBase64(p.EnvAlphabet(), sealed)
	require.NoError(t, err)
	plain, err := crypto.DecryptCBC([]byte(p.Env.Secret), []byte("0102030405060708"), ct)
	require.NoError(t, err)
	assert.Equal(t, `{"fp":"x"}`+p.EnvSalt(), string(plain))

	obj, err := service.OpenEnv(sealed, p)
	require.NoError(t, err)
	assert.Equal(t, 1, obj.Len())
}

func TestEnvCipher_HexPathWithoutMapIsStandardBase64(t *testing.T) {
	zero := 0
	p := &models.VersionProfile{
		Version:         "9.9.9",
		CustomAlgorithm: &models.CustomAlgorithm{ConvertIndex: models.ConvertIndex{Hex: &zero}},
	}
	sealed, err := service.SealEnv(`{"a":1}`, p)
	require.NoError(t, err)
	assert.Equal(t, "eyJhIjoxfQ==", sealed)
}

func TestEnvCipher_HexEncodingWithoutMap(t *testing.T) {
	p, err := profiles.NewTable().Lookup("4.1.0")
	require.NoError(t, err)
	require.Empty(t, p.EnvAlphabet())

	sealed, err := service.SealEnv(`{"a":"b"}`, p)
	require.NoError(t, err)
	_, err = hex.DecodeString(sealed)
	assert.NoError(t, err)
	assert.Equal(t, strings.ToLower(sealed), sealed)
}

func TestOpenEnv_Failures(t *testing.T) {
	table := profiles.NewTable()
	aesProfile, _ := table.Lookup("4.1.0")
	mapped, _ := table.Lookup("4.7.4")
	hexFlagged, _ := table.Lookup("5.2.3")

	cases := []struct {
		name    string
		cipher  string
		profile *models.VersionProfile
	}{
		{"not hex", "zz-not-hex", aesProfile},
		{"wrong block size", "abcd", aesProfile},
		{"garbage for mapped alphabet", "!!!!", mapped},
		{"plain base64 but not json", mustSeal(t, "not json", hexFlagged), hexFlagged},
		{"wrong version", mustSeal(t, `{"fp":"1"}`, aesProfile), mapped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.OpenEnv(tc.cipher, tc.profile)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, constants.ErrCodeEnvDecrypt))
		})
	}
}

func mustSeal(t *testing.T, plain string, p *models.VersionProfile) string {
	t.Helper()
	s, err := service.SealEnv(plain, p)
	require.NoError(t, err)
	return s
}

func TestBuildEnv_FreshObjectOrder(t *testing.T) {
	p, err := profiles.NewTable().Lookup("4.7.4")
	require.NoError(t, err)
	env := service.BuildEnv(nil, p, service.EnvInputs{
		Pin:         "jd_user",
		UserAgent:   "Mozilla/5.0 (Linux; Android 10) AppleWebKit/537.36",
		Canvas:      "c",
		WebGL:       "w",
		Fingerprint: "fp",
	}, utils.NewLockedRand(1))

	assert.Equal(t, []string{"pp", "random", "sua", "canvas", "canvas1", "webglFp", "webglFp1", "extend", "v", "fp"}, env.Keys())
	sua, _ := env.GetString("sua")
	assert.Equal(t, "Linux; Android 10", sua)
	random, _ := env.GetString("random")
	assert.Len(t, random, p.Env.RandomLength)

	text, err := env.Indent()
	require.NoError(t, err)
	assert.Contains(t, text, "\n  \"pp\": {\n    \"p1\": \"jd_user\"\n  },")
	assert.Contains(t, text, `"bu2": -1`)
}

func TestBuildEnv_OmitsEmptyFv(t *testing.T) {
	p, err := profiles.NewTable().Lookup("xcx3.1.0")
	require.NoError(t, err)
	require.Empty(t, p.Env.Fv)
	env := service.BuildEnv(nil, p, service.EnvInputs{Fingerprint: "fp"}, utils.NewLockedRand(1))
	assert.False(t, env.Has("v"))
	pp, _ := env.Get("pp")
	assert.Equal(t, 0, pp.(*models.OrderedObject).Len())
}

func TestBuildEnv_InboundOnlyRefreshesExistingKeys(t *testing.T) {
	p, err := profiles.NewTable().Lookup("4.7.4")
	require.NoError(t, err)
	inbound, err := models.ParseOrderedObject(`{"sua":"old","random":"abc","keep":1.50,"canvas":"old"}`)
	require.NoError(t, err)

	env := service.BuildEnv(inbound, p, service.EnvInputs{
		UserAgent:   "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0)",
		Canvas:      "new-canvas",
		Fingerprint: "fp",
	}, utils.NewLockedRand(1))

	assert.Equal(t, []string{"sua", "random", "keep", "canvas", "fp"}, env.Keys())
	random, _ := env.GetString("random")
	assert.Len(t, random, 3)
	canvas, _ := env.GetString("canvas")
	assert.Equal(t, "new-canvas", canvas)
	raw, err := env.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"keep":1.50`)
}
