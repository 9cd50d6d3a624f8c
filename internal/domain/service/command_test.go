package service_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/utils"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType int
		wantText string
	}{
		{
			name:     "english code inside share text",
			text:     "复制这段话 ￥AbCdEf123！打开京东",
			wantType: service.CommandTypeEnglish,
			wantText: "￥AbCdEf123！",
		},
		{
			name:     "digit code",
			text:     "23456789234567892345",
			wantType: service.CommandTypeEnglish,
			wantText: "23456789234567892345",
		},
		{
			name:     "chinese code",
			text:     "一二三四五六七八九十甲乙丙丁戊己☆",
			wantType: service.CommandTypeChinese,
			wantText: "一二三四五六七八九十甲乙丙丁戊己☆",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseCommand(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantText, got.Text)
		})
	}
}

func TestParseCommand_Rejects(t *testing.T) {
	_, err := service.ParseCommand("hello world")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, constants.ErrCodeInvalidCommand))
}

func TestEncryptCommand_Decrypts(t *testing.T) {
	enc, err := service.EncryptCommand("￥AbCdEf123！")
	require.NoError(t, err)
	assert.NotContains(t, enc, "+")
	assert.NotContains(t, enc, "/")

	raw, err := utils.DecodeURIComponent(enc)
	require.NoError(t, err)
	ct, err := base64.StdEncoding.DecodeString(raw)
	require.NoError(t, err)
	pt, err := crypto.DecryptCBC([]byte("5yKhoqodQjuHGlKZ"), []byte("7WwXmH2TKSCIEJQ3"), ct)
	require.NoError(t, err)
	assert.Equal(t, "￥AbCdEf123！", string(pt))
}
