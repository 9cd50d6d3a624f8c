package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
)

type versionedRequest struct {
	Version    string `validate:"omitempty,h5version"`
	FunctionID string `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	for _, v := range []string{"", "4.7.4", "5.2.3", "xcx3.1.0"} {
		assert.NoError(t, ValidateStruct(versionedRequest{Version: v, FunctionID: "f"}), v)
	}

	err := ValidateStruct(versionedRequest{Version: "latest"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, constants.ErrCodeInvalidRequest))
	assert.Equal(t, "must be a protocol version like 4.7.4", err.Metadata()["version"])
	assert.Equal(t, "is required", err.Metadata()["function_id"])
}

func TestValidateNotEmpty(t *testing.T) {
	assert.True(t, ValidateNotEmpty("￥AbCd！"))
	assert.False(t, ValidateNotEmpty(""))
	assert.False(t, ValidateNotEmpty(" \t\n"))
}
