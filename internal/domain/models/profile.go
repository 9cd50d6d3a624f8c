// Package models defines the domain models for the h5sign signing engine.
// This file contains the VersionProfile model: the immutable parameter set of one protocol revision.
package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SignAlgorithm selects how the body signature is digested from the derived key.
// SignAlgorithm 选择如何使用派生密钥计算请求体签名。
type SignAlgorithm string

const (
	// SignMD5Wrap computes MD5(key + params + key).
	SignMD5Wrap SignAlgorithm = "MD5_WRAP"
	// SignSHA256Wrap computes SHA256(key + params + key).
	SignSHA256Wrap SignAlgorithm = "SHA256_WRAP"
	// SignHMACSHA256Wrap computes HMAC-SHA256(params) keyed by key.
	SignHMACSHA256Wrap SignAlgorithm = "HMAC_SHA256_WRAP"
)

// TokenGeneration selects how the token cipher secret is produced.
// TokenGeneration 决定 token 加密密钥的生成方式。
type TokenGeneration int

const (
	// TokenGeneration1 uses the static secret of the profile.
	TokenGeneration1 TokenGeneration = 1
	// TokenGeneration2 draws the secret from a dictionary and pins one character.
	TokenGeneration2 TokenGeneration = 2
	// TokenGeneration3 is generation 2 with the 5.x dictionary.
	TokenGeneration3 TokenGeneration = 3
)

// EnvSpec holds the environment cipher parameters.
// EnvSpec 保存环境信息加密参数。
type EnvSpec struct {
	// Secret is the AES-128 key. Empty for the hex-flagged families.
	Secret string `yaml:"secret"`
	// Bu1 is carried in the profile for completeness; the env object pins its own bu1.
	Bu1 string `yaml:"bu1"`
	// Fv is written as the "v" key of a freshly built env object.
	Fv string `yaml:"fv"`
	// RandomLength is the length of the env "random" value when no inbound env exists.
	RandomLength int `yaml:"random_length"`
}

// VisitKeySpec parameterizes the fingerprint generator.
// VisitKeySpec 为指纹生成器提供参数。
type VisitKeySpec struct {
	Seed          string `yaml:"seed"`
	SelectLength  int    `yaml:"select_length"`
	RandomLength  int    `yaml:"random_length"`
	ConvertLength int    `yaml:"convert_length"`
}

// TokenBaseInfo is the plain prefix of every token.
// TokenBaseInfo 是 token 的明文头部。
type TokenBaseInfo struct {
	Magic    string `yaml:"magic"`
	Version  string `yaml:"version"`
	Platform string `yaml:"platform"`
	Expires  string `yaml:"expires"`
	Producer string `yaml:"producer"`
}

// SecretDraw describes the generation 2/3 secret: Size random characters of Dict
// with Magic forced in at Index.
type SecretDraw struct {
	Dict  string `yaml:"dict"`
	Index int    `yaml:"index"`
	Magic string `yaml:"magic"`
}

// TokenSecretSize is the number of characters drawn for a token secret.
const TokenSecretSize = 12

const (
	// TokenHeadLength is the offset of the key expression carrier inside a token.
	TokenHeadLength = 16
	// TokenChecksumLength is the hex Adler-32 between the base info halves.
	TokenChecksumLength = 8
)

// HeadLength returns the number of token characters before the key expression.
func (b TokenBaseInfo) HeadLength() int {
	return len(b.Magic) + len(b.Version) + len(b.Platform) + TokenChecksumLength + len(b.Expires) + len(b.Producer)
}

// TokenCipher is the cipher template of a token.
// TokenCipher 是 token 加密段的模板。
type TokenCipher struct {
	Secret1 string `yaml:"secret1"`
	Prefix  string `yaml:"prefix"`
	// Secret2 masks the payload with XOR when set.
	Secret2 string `yaml:"secret2"`
	// PerCallSecret replaces Secret1 and Prefix with a fresh random draw on every call.
	PerCallSecret bool        `yaml:"per_call_secret"`
	Draw          *SecretDraw `yaml:"draw"`
}

// TokenSpec combines the token base info and cipher templates.
type TokenSpec struct {
	BaseInfo TokenBaseInfo `yaml:"base_info"`
	Cipher   TokenCipher   `yaml:"cipher"`
}

// ConvertIndex carries the byte-offset markers of the custom algorithm block.
// A non-nil Hex, including zero, switches the env cipher to its plain Base64 path.
type ConvertIndex struct {
	Hex  *int `yaml:"hex"`
	HMAC *int `yaml:"hmac"`
}

// TransformMessage holds the stream-transform parameters of the 5.x families.
type TransformMessage struct {
	Map        string `yaml:"map"`
	Segments   int    `yaml:"segments"`
	Multiplier int    `yaml:"multiplier"`
}

// CustomAlgorithm is the optional per-family tweak block.
// CustomAlgorithm 是各版本族可选的算法魔改参数。
type CustomAlgorithm struct {
	Salt             string            `yaml:"salt"`
	Map              string            `yaml:"map"`
	KeyReverse       bool              `yaml:"key_reverse"`
	ConvertIndex     ConvertIndex      `yaml:"convert_index"`
	TransformMessage *TransformMessage `yaml:"transform_message"`
}

// VersionProfile is the immutable parameter set of one protocol revision.
// Once published its fields never change, or previously valid signatures become unreproducible.
// VersionProfile 是单个协议版本的不可变参数集合。
type VersionProfile struct {
	// Version is the lookup key, e.g. 4.7.4 or xcx3.1.0.
	Version string `yaml:"version"`

	// WireVersion is written to field 6 of the h5st and scopes the fingerprint cache.
	WireVersion string `yaml:"wire_version"`

	SignAlgorithm   SignAlgorithm   `yaml:"sign_algorithm"`
	TokenGeneration TokenGeneration `yaml:"token_generation"`

	// GenSignDefault appends a ninth h5st field signed over appid and functionId only.
	GenSignDefault bool `yaml:"gen_sign_default"`

	Env              EnvSpec          `yaml:"env"`
	VisitKey         VisitKeySpec     `yaml:"visit_key"`
	DefaultKeyExtend string           `yaml:"default_key_extend"`
	ExtendDateStr    string           `yaml:"extend_date_str"`
	Token            TokenSpec        `yaml:"token"`
	CustomAlgorithm  *CustomAlgorithm `yaml:"custom_algorithm"`
}

// IsLegacyFamily reports whether the profile belongs to the 3.1.0 family,
// which uses the digit-reversal fingerprint transform.
func (p *VersionProfile) IsLegacyFamily() bool {
	return strings.Contains(p.Version, "3.1.0")
}

// HexEnv reports whether the env is plain Base64 rather than AES.
func (p *VersionProfile) HexEnv() bool {
	return p.CustomAlgorithm != nil && p.CustomAlgorithm.ConvertIndex.Hex != nil
}

// EnvAlphabet returns the custom Base64 table of the env cipher, or "" for the standard one.
func (p *VersionProfile) EnvAlphabet() string {
	if p.CustomAlgorithm == nil {
		return ""
	}
	return p.CustomAlgorithm.Map
}

// EnvSalt returns the suffix appended to the env plaintext before encryption.
func (p *VersionProfile) EnvSalt() string {
	if p.CustomAlgorithm == nil {
		return ""
	}
	return p.CustomAlgorithm.Salt
}

// Validate checks that the profile is internally consistent.
// It is applied to profiles loaded from an extension file.
func (p *VersionProfile) Validate() error {
	if p.Version == "" {
		return fmt.Errorf("profile version is empty")
	}
	if p.WireVersion == "" {
		return fmt.Errorf("profile %s: wire version is empty", p.Version)
	}
	switch p.SignAlgorithm {
	case SignMD5Wrap, SignSHA256Wrap, SignHMACSHA256Wrap:
	default:
		return fmt.Errorf("profile %s: unknown sign algorithm %q", p.Version, p.SignAlgorithm)
	}
	switch p.TokenGeneration {
	case TokenGeneration1:
	case TokenGeneration2, TokenGeneration3:
		d := p.Token.Cipher.Draw
		if d == nil || d.Dict == "" {
			return fmt.Errorf("profile %s: generation %d token needs a secret draw", p.Version, p.TokenGeneration)
		}
		if d.Index < 0 || d.Index >= TokenSecretSize || len(d.Magic) != 1 {
			return fmt.Errorf("profile %s: secret draw index or magic out of range", p.Version)
		}
		if !isASCII(d.Dict) || !isASCII(d.Magic) {
			return fmt.Errorf("profile %s: secret draw dictionary must be ASCII", p.Version)
		}
	default:
		return fmt.Errorf("profile %s: unknown token generation %d", p.Version, p.TokenGeneration)
	}
	if n := p.Token.BaseInfo.HeadLength(); n != TokenHeadLength {
		return fmt.Errorf("profile %s: token head is %d characters, want %d", p.Version, n, TokenHeadLength)
	}
	if !p.HexEnv() {
		if n := len(p.Env.Secret); n != 16 {
			return fmt.Errorf("profile %s: env secret must be 16 bytes, got %d", p.Version, n)
		}
	}
	if m := p.EnvAlphabet(); m != "" && len([]rune(m)) != 64 {
		return fmt.Errorf("profile %s: custom alphabet must have 64 characters", p.Version)
	}
	vk := p.VisitKey
	if vk.Seed == "" || vk.SelectLength <= 0 || vk.SelectLength >= len(vk.Seed) || vk.RandomLength < 9 {
		return fmt.Errorf("profile %s: invalid visit key parameters", p.Version)
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
