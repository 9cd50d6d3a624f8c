package service

import (
	"regexp"
	"strings"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
)

var expressionPattern = regexp.MustCompile(`^[123]([x+][123])+`)

// DecodeExpression recovers the key expression carried at token[16:28].
// Both Base64 layers are decoded leniently; a short token yields "".
func DecodeExpression(token string) string {
	if len(token) <= ExpressionOffset {
		return ""
	}
	end := ExpressionEnd
	if end > len(token) {
		end = len(token)
	}
	carrier := strings.NewReplacer("-", "+", "_", "/").Replace(token[ExpressionOffset:end])
	inner := crypto.DecodeStdLenient(carrier)
	return string(crypto.DecodeStdLenient(string(inner)))
}

// DeriveKey computes the signing key of a call. An empty key means the
// token carries no valid expression and the call must not be signed.
func DeriveKey(token, fingerprint, dateStrExtend, appID string, profile *models.VersionProfile) (key, express string) {
	input := token + fingerprint + dateStrExtend + appID + profile.DefaultKeyExtend
	express = DecodeExpression(token)
	return Evaluate(express, input, token), express
}

// Evaluate runs a key expression over input.
// Digits select a primitive: 1 MD5, 2 SHA-256, 3 HMAC-SHA256 keyed by token.
// "+" appends the next digest of input; "x" hashes the key so far.
func Evaluate(express, input, token string) string {
	program := expressionPattern.FindString(express)
	if program == "" {
		return ""
	}
	var key string
	var op byte
	for i := 0; i < len(program); i++ {
		c := program[i]
		switch c {
		case '+', 'x':
			op = c
			continue
		}
		switch op {
		case '+':
			key += primitive(c, input, token)
		case 'x':
			key = primitive(c, key, token)
		default:
			key = primitive(c, input, token)
		}
	}
	return key
}

func primitive(digit byte, message, token string) string {
	switch digit {
	case '1':
		return crypto.MD5Hex(message)
	case '2':
		return crypto.SHA256Hex(message)
	default:
		return crypto.HMACSHA256Hex(message, token)
	}
}
