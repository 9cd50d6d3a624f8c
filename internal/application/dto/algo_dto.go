package dto

import (
	"encoding/json"
	"strings"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/utils"
)

// H5stRequest 是 h5st 加签接口的报文
type H5stRequest struct {
	// Version selects the protocol revision; empty means the configured default.
	Version string `json:"version" validate:"omitempty,h5version"`
	Pin     string `json:"pin"`
	UA      string `json:"ua"`
	// Body holds the business parameters sent upstream, usually functionId, appid and body.
	Body *models.OrderedObject `json:"body" validate:"required"`
	// H5st is a previously captured signature whose appId, token and env are reused.
	H5st        string              `json:"h5st"`
	AppID       string              `json:"appId"`
	Debug       bool                `json:"debug"`
	Stk         []string            `json:"stk"`
	ReuseToken  bool                `json:"reuseToken"`
	DebugParams *models.DebugParams `json:"debugParams"`
}

// Normalize decodes URI-encoded fields, applies defaultVersion and validates the request.
func (r *H5stRequest) Normalize(defaultVersion string) error {
	if r.Version == "" {
		r.Version = defaultVersion
	}
	if err := utils.ValidateStruct(r); err != nil {
		return err
	}

	if r.H5st != "" {
		h5st, err := utils.DecodeURIComponent(r.H5st)
		if err != nil {
			return errors.ErrInvalidRequest("h5st非法").WithCause(err)
		}
		if n := strings.Count(h5st, ";"); n != 7 && n != 8 {
			return errors.ErrInvalidRequest("h5st非法").WithMetadata("separators", n)
		}
		r.H5st = h5st
	} else if strings.TrimSpace(r.AppID) == "" {
		return errors.ErrInvalidRequest("h5st 和 appId 不能同时为空")
	}

	if !strings.HasPrefix(r.Version, "xcx") {
		if strings.TrimSpace(r.Pin) == "" {
			return errors.ErrInvalidRequest("账号pin不能为空")
		}
		if strings.TrimSpace(r.UA) == "" {
			return errors.ErrInvalidRequest("用户ua不能为空")
		}
	}

	if v, ok := r.Body.Get("body"); ok && v != nil {
		text, err := NormalizeBody(v)
		if err != nil {
			return err
		}
		r.Body.Set("body", text)
	}
	return nil
}

// SignOptions converts the request to engine options.
func (r *H5stRequest) SignOptions() models.SignOptions {
	return models.SignOptions{
		AppID:       r.AppID,
		Debug:       r.Debug,
		Pin:         r.Pin,
		UserAgent:   r.UA,
		Stk:         r.Stk,
		H5st:        r.H5st,
		ReuseToken:  r.ReuseToken,
		DebugParams: r.DebugParams,
	}
}

// H5stResponse carries the signed fields and the ready-to-send query string.
type H5stResponse struct {
	H5st   string                `json:"h5st,omitempty"`
	Stk    string                `json:"_stk,omitempty"`
	Ste    int                   `json:"_ste,omitempty"`
	Signed bool                  `json:"signed"`
	Body   *models.OrderedObject `json:"body"`
	Qs     string                `json:"qs"`
}

// SignRequest 是 sign 加签接口的报文
type SignRequest struct {
	FunctionID string `json:"functionId" validate:"required"`
	// Body is a JSON string or a JSON value that is serialized before signing.
	Body          interface{} `json:"body" validate:"required"`
	Client        string      `json:"client"`
	ClientVersion string      `json:"clientVersion"`
	UUID          string      `json:"uuid"`
}

// Normalize serializes Body and validates the request.
// It returns the body text that gets signed.
func (r *SignRequest) Normalize() (string, error) {
	if err := utils.ValidateStruct(r); err != nil {
		return "", err
	}
	text, err := NormalizeBody(r.Body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.ErrInvalidRequest("body不能为空")
	}
	return text, nil
}

// SignResponse is the full parameter set of a signed client request.
type SignResponse struct {
	Client        string `json:"client"`
	ClientVersion string `json:"clientVersion"`
	FunctionID    string `json:"functionId"`
	Body          string `json:"body"`
	Ef            string `json:"ef"`
	Ep            string `json:"ep"`
	UUID          string `json:"uuid"`
	St            string `json:"st"`
	Sv            string `json:"sv"`
	Sign          string `json:"sign"`
	Qs            string `json:"qs"`
}

// QueryPairs lists the response fields in request order.
func (r *SignResponse) QueryPairs() []utils.QueryPair {
	return []utils.QueryPair{
		{Key: "client", Value: r.Client},
		{Key: "clientVersion", Value: r.ClientVersion},
		{Key: "functionId", Value: r.FunctionID},
		{Key: "body", Value: r.Body},
		{Key: "ef", Value: r.Ef},
		{Key: "ep", Value: r.Ep},
		{Key: "uuid", Value: r.UUID},
		{Key: "st", Value: r.St},
		{Key: "sv", Value: r.Sv},
		{Key: "sign", Value: r.Sign},
	}
}

// VersionsResponse lists the supported protocol versions.
type VersionsResponse struct {
	Default  string   `json:"default"`
	Versions []string `json:"versions"`
}

// NormalizeBody turns a business body into JSON text. Strings are URI-decoded,
// raw JSON is compacted and anything else is serialized. The result must be valid JSON.
func NormalizeBody(v interface{}) (string, error) {
	var text string
	switch b := v.(type) {
	case nil:
		return "", nil
	case json.RawMessage:
		compact, err := utils.CompactJSON(b)
		if err != nil {
			return "", errors.ErrInvalidRequest("body需为JSON字符串").WithCause(err)
		}
		text = compact
	case string:
		decoded, err := utils.DecodeURIComponent(b)
		if err != nil {
			return "", errors.ErrInvalidRequest("body需为JSON字符串").WithCause(err)
		}
		text = decoded
	default:
		s, err := utils.ToJSON(b)
		if err != nil {
			return "", errors.ErrInvalidRequest("body需为JSON字符串").WithCause(err)
		}
		text = s
	}
	if !json.Valid([]byte(text)) {
		return "", errors.ErrInvalidRequest("body需为JSON字符串")
	}
	return text, nil
}
