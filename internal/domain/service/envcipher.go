package service

import (
	"encoding/hex"
	"strings"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/errors"
)

// envIV is the fixed AES IV of the env cipher.
var envIV = []byte("0102030405060708")

// SealEnv encrypts the serialized env object for field 8 of the h5st.
// Profiles with a hex convert index only Base64 encode it.
func SealEnv(plaintext string, profile *models.VersionProfile) (string, error) {
	if profile.HexEnv() {
		return crypto.EncodeBase64(profile.EnvAlphabet(), []byte(plaintext))
	}
	ct, err := crypto.EncryptCBC([]byte(profile.Env.Secret), envIV, []byte(plaintext+profile.EnvSalt()))
	if err != nil {
		return "", err
	}
	if m := profile.EnvAlphabet(); m != "" {
		return crypto.EncodeBase64(m, ct)
	}
	return hex.EncodeToString(ct), nil
}

// OpenEnv reverses SealEnv and parses the env object. Any failure is an env_decrypt_error.
func OpenEnv(ciphertext string, profile *models.VersionProfile) (*models.OrderedObject, error) {
	plain, err := openEnvText(ciphertext, profile)
	if err != nil {
		return nil, errors.ErrEnvDecrypt(err)
	}
	obj, err := models.ParseOrderedObject(plain)
	if err != nil {
		return nil, errors.ErrEnvDecrypt(err)
	}
	return obj, nil
}

func openEnvText(ciphertext string, profile *models.VersionProfile) (string, error) {
	if profile.HexEnv() {
		raw, err := crypto.DecodeBase64(profile.EnvAlphabet(), ciphertext)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	var ct []byte
	var err error
	if m := profile.EnvAlphabet(); m != "" {
		ct, err = crypto.DecodeBase64(m, ciphertext)
	} else {
		ct, err = hex.DecodeString(ciphertext)
	}
	if err != nil {
		return "", err
	}
	raw, err := crypto.DecryptCBC([]byte(profile.Env.Secret), envIV, ct)
	if err != nil {
		return "", err
	}
	plain := string(raw)
	if salt := profile.EnvSalt(); salt != "" {
		plain = strings.TrimSuffix(plain, salt)
	}
	return plain, nil
}
