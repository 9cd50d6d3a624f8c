package profiles_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/domain/profiles"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
)

func TestTable_LookupPublished(t *testing.T) {
	table := profiles.NewTable()
	for _, v := range []string{"4.1.0", "4.7.4", "4.9.7", "5.0.8", "5.1.0", "5.2.4", "xcx3.1.0", "xcx4.9.1"} {
		p, err := table.Lookup(v)
		require.NoError(t, err, v)
		assert.Equal(t, v, p.Version)
	}
	assert.Len(t, table.Versions(), 45)
	assert.True(t, table.Has(constants.DefaultH5stVersion))
}

func TestTable_LookupUnknown(t *testing.T) {
	_, err := profiles.NewTable().Lookup("9.9.9")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, constants.ErrCodeUnknownVersion))
}

func TestPublishedProfiles_AreValid(t *testing.T) {
	table := profiles.NewTable()
	for _, v := range table.Versions() {
		p, err := table.Lookup(v)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), v)
		if m := p.EnvAlphabet(); m != "" {
			_, err := crypto.Encoding(m)
			assert.NoError(t, err, "alphabet of %s", v)
		}
	}
}

func TestPublishedProfiles_WireVersion(t *testing.T) {
	table := profiles.NewTable()
	p, _ := table.Lookup("4.7.4")
	assert.Equal(t, "4.7", p.WireVersion)
	p, _ = table.Lookup("5.2.3")
	assert.Equal(t, "5.2.3", p.WireVersion)
	p, _ = table.Lookup("xcx3.1.0")
	assert.True(t, p.IsLegacyFamily())
	assert.True(t, p.Token.Cipher.PerCallSecret)
}

func customProfile(version string) models.VersionProfile {
	return models.VersionProfile{
		Version:         version,
		WireVersion:     "9.0",
		SignAlgorithm:   models.SignMD5Wrap,
		TokenGeneration: models.TokenGeneration1,
		Env:             models.EnvSpec{Secret: "0123456789abcdef", Fv: "v0.1.0", RandomLength: 10},
		VisitKey:        models.VisitKeySpec{Seed: "abcdefghij", SelectLength: 4, RandomLength: 12, ConvertLength: 14},
		Token: models.TokenSpec{
			BaseInfo: models.TokenBaseInfo{Magic: "tk", Version: "02", Platform: "w", Expires: "41", Producer: "l"},
			Cipher:   models.TokenCipher{Secret1: "abcdefghijkl", Prefix: "ab"},
		},
	}
}

func TestTable_Extend(t *testing.T) {
	table := profiles.NewTable()
	require.NoError(t, table.Extend(customProfile("9.0.0")))
	assert.True(t, table.Has("9.0.0"))

	t.Run("published versions are never replaced", func(t *testing.T) {
		err := table.Extend(customProfile("5.0.8"))
		assert.Error(t, err)
	})

	t.Run("batch is atomic", func(t *testing.T) {
		err := table.Extend(customProfile("9.1.0"), customProfile("9.1.0"))
		assert.Error(t, err)
		assert.False(t, table.Has("9.1.0"))
	})

	t.Run("invalid profile", func(t *testing.T) {
		p := customProfile("9.2.0")
		p.Env.Secret = "short"
		assert.Error(t, table.Extend(p))
		assert.False(t, table.Has("9.2.0"))
	})

	t.Run("expression offset mismatch", func(t *testing.T) {
		p, err := table.Lookup("4.1.0")
		require.NoError(t, err)
		shifted := *p
		shifted.Version = "9.9.1"
		shifted.Token.BaseInfo.Platform = "wx"
		err = table.Extend(shifted)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token head")
		assert.False(t, table.Has("9.9.1"))
	})
}

func TestTable_LoadFileRejectsShiftedTokenHead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := strings.Replace(profileYAML("9.5.0"), "platform: w,", "platform: web,", 1)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table := profiles.NewTable()
	_, err := table.LoadFile(path)
	require.Error(t, err)
	assert.False(t, table.Has("9.5.0"))
}

// profileYAML renders a one-profile extension file for version.
func profileYAML(version string) string {
	return strings.Replace(`profiles:
  - version: "VERSION"
    wire_version: "9.3"
    sign_algorithm: HMAC_SHA256_WRAP
    token_generation: 2
    env:
      fv: "v0.2.0"
      random_length: 10
    visit_key:
      seed: "uct6d0jhqw"
      select_length: 6
      random_length: 9
      convert_length: 14
    default_key_extend: "2475%+"
    extend_date_str: "04"
    token:
      base_info: {magic: tk, version: "03", platform: w, expires: "41", producer: l}
      cipher:
        secret2: "8)[CJ?.rW0Bs2(89"
        draw: {dict: "0123456789abcdef", index: 3, magic: "x"}
    custom_algorithm:
      convert_index:
        hex: 0
`, "VERSION", version, 1)
}

func TestTable_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := profileYAML("9.3.0")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table := profiles.NewTable()
	n, err := table.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := table.Lookup("9.3.0")
	require.NoError(t, err)
	assert.Equal(t, models.SignHMACSHA256Wrap, p.SignAlgorithm)
	assert.Equal(t, models.TokenGeneration2, p.TokenGeneration)
	assert.True(t, p.HexEnv())
	assert.Equal(t, 3, p.Token.Cipher.Draw.Index)

	_, err = table.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTable_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profileYAML("9.3.0")), 0o600))

	table := profiles.NewTable()
	n, err := table.Reload(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = table.Reload(path)
	require.NoError(t, err)
	assert.Zero(t, n)

	both := profileYAML("9.3.0") + strings.TrimPrefix(profileYAML("9.4.0"), "profiles:\n")
	require.NoError(t, os.WriteFile(path, []byte(both), 0o600))
	n, err = table.Reload(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, table.Has("9.4.0"))

	require.NoError(t, os.WriteFile(path, []byte("profiles: [oops"), 0o600))
	_, err = table.Reload(path)
	assert.Error(t, err)
}
