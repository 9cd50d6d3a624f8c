package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/utils"
)

func TestDevicePayloadGenerator_Generate(t *testing.T) {
	g := service.NewDevicePayloadGenerator(utils.NewLockedRand(3), fixedClock)
	out, err := g.Generate("0123456789abcdef")
	require.NoError(t, err)

	var ep struct {
		Hdid       string            `json:"hdid"`
		Ts         int64             `json:"ts"`
		Ridx       int               `json:"ridx"`
		Cipher     map[string]string `json:"cipher"`
		Ciphertype int               `json:"ciphertype"`
		Version    string            `json:"version"`
		Appname    string            `json:"appname"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &ep))

	assert.Equal(t, fixedNow.UnixMilli(), ep.Ts)
	assert.Equal(t, -1, ep.Ridx)
	assert.Equal(t, 5, ep.Ciphertype)
	assert.Equal(t, "1.2.0", ep.Version)
	assert.Equal(t, "com.jingdong.app.mall", ep.Appname)
	assert.Equal(t, "dW5hbw93bq==", ep.Cipher["wifiBssid"])

	uuid, err := crypto.DecodeBase64(crypto.DefaultAlphabet, ep.Cipher["uuid"])
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", string(uuid))
	assert.Equal(t, ep.Cipher["uuid"], ep.Cipher["aid"])
	assert.Equal(t, ep.Cipher["uuid"], ep.Cipher["openudid"])

	area, err := crypto.DecodeBase64(crypto.DefaultAlphabet, ep.Cipher["area"])
	require.NoError(t, err)
	assert.Regexp(t, `^\d{2}_\d{4}_\d{5}_\d{5}$`, string(area))
}

func TestDevicePayloadGenerator_SeededIsStable(t *testing.T) {
	a, err := service.NewDevicePayloadGenerator(utils.NewLockedRand(9), fixedClock).Generate("u")
	require.NoError(t, err)
	b, err := service.NewDevicePayloadGenerator(utils.NewLockedRand(9), fixedClock).Generate("u")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
