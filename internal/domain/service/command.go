package service

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/utils"
)

// Share command types accepted by jComExchange.
const (
	CommandTypeEnglish = 0
	CommandTypeChinese = 3
)

const (
	commandKey = "5yKhoqodQjuHGlKZ"
	commandIV  = "7WwXmH2TKSCIEJQ3"
)

var (
	englishCommand = regexp.MustCompile(`[$#@￥！][0-9A-Za-z]{6,20}[$%@!)￥！]|[2-9]{20}|[2-9]{16}`)

	chineseCommand = regexp.MustCompile(strings.Join([]string{
		`(?:[2-9]{2}[斤包袋箱][\x{4e00}-\x{9fa5}]{2}[☂-➾⠁-⣿]){3}`,
		`(?:[\x{4e00}-\x{9fa5}]{4}[☂-➾⠁-⣿]){3}`,
		`[\x{4e00}-\x{9fa5}]{16}[☂-➾⠁-⣿]`,
		`[☂-➾⠁-⣿][\x{4e00}-\x{9fa5}]{14}[☂-➾⠁-⣿]`,
		`(?:[☂-➾⠁-⣿][\x{4e00}-\x{9fa5}]{6}){2}[☂-➾⠁-⣿]`,
		`(?:[0-9A-Za-zα-ωА-Яа-яÀ-ž]{3}[\x{4e00}-\x{9fa5}]{2}){2}[☂-➾⠁-⣿]`,
		`(?:[☂-➾⠁-⣿][0-9A-Za-zα-ωА-Яа-яÀ-ž]{2}[\x{4e00}-\x{9fa5}]{2}){2}[☂-➾⠁-⣿]`,
	}, "|"))
)

// ParsedCommand is a share text reduced to its exchangeable part.
type ParsedCommand struct {
	Type int
	Text string
}

// ParseCommand classifies a share text and extracts the command fragments.
func ParseCommand(text string) (*ParsedCommand, error) {
	var typ int
	switch {
	case chineseCommand.MatchString(text):
		typ = CommandTypeChinese
	case englishCommand.MatchString(text):
		typ = CommandTypeEnglish
	default:
		return nil, errors.ErrInvalidCommand("不符合口令规则")
	}
	var parts []string
	if m := chineseCommand.FindString(text); m != "" {
		parts = append(parts, m)
	}
	if m := englishCommand.FindString(text); m != "" {
		parts = append(parts, m)
	}
	newText := strings.Join(parts, " ")
	if newText == "" {
		newText = text
	}
	return &ParsedCommand{Type: typ, Text: newText}, nil
}

// EncryptCommand encrypts a command for the exchange body and URI-encodes the result.
func EncryptCommand(text string) (string, error) {
	ct, err := crypto.EncryptCBC([]byte(commandKey), []byte(commandIV), []byte(text))
	if err != nil {
		return "", err
	}
	return utils.EncodeURIComponent(base64.StdEncoding.EncodeToString(ct)), nil
}
