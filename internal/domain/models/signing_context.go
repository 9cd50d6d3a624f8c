package models

import "time"

// SignOptions are the per-call inputs of an h5st signing call.
// SignOptions 是单次 h5st 加签调用的输入参数。
type SignOptions struct {
	AppID     string
	Debug     bool
	Pin       string
	UserAgent string
	// Stk is the allow-list of business fields to sign; empty means the default list.
	Stk []string
	// H5st is an inbound signature whose appId, token and env are reused.
	H5st string
	// ReuseToken writes the inbound token into field 4 instead of the fresh one.
	ReuseToken  bool
	DebugParams *DebugParams
}

// DebugParams pin parts of a call that are otherwise random or clock driven.
// DebugParams 用于固定调用中原本随机或依赖时钟的部分。
type DebugParams struct {
	Timestamp   *int64         `json:"timestamp,omitempty"`
	Fingerprint string         `json:"fingerprint,omitempty"`
	Token       string         `json:"token,omitempty"`
	Env         *OrderedObject `json:"env,omitempty"`
}

// CacheScope holds the cache keys of one call, without the pin prefix.
type CacheScope struct {
	Fingerprint string
	Canvas      string
	WebGL       string
}

// SigningContext is the state of one signing call. It is created at call start,
// owned by that call only, and discarded at call end.
// SigningContext 是单次加签调用的状态，仅由该调用持有。
type SigningContext struct {
	Profile   *VersionProfile
	AppID     string
	Debug     bool
	Pin       string
	UserAgent string
	Stk       []string

	Fingerprint  string
	Token        string
	DefaultToken string
	// InboundToken is field 4 of an inbound h5st.
	InboundToken string
	ReuseToken   bool
	// EnvExtend is the decrypted env of an inbound h5st or the debug override.
	EnvExtend *OrderedObject

	Scope CacheScope
	Now   time.Time

	DebugParams *DebugParams
}

// KV is one signed parameter.
type KV struct {
	Key   string
	Value string
}

// SignResult is the output of an h5st signing call.
// Params holds the allow-listed business fields; Signed is false when nothing was signed.
type SignResult struct {
	Params *OrderedObject
	Signed bool
	Stk    string
	Ste    int
	H5st   string
}

// Fields returns Params plus _stk, _ste and h5st when signed.
func (r *SignResult) Fields() *OrderedObject {
	out := NewOrderedObject()
	for _, k := range r.Params.Keys() {
		v, _ := r.Params.Get(k)
		out.Set(k, v)
	}
	if r.Signed {
		out.Set("_stk", r.Stk)
		out.Set("_ste", r.Ste)
		out.Set("h5st", r.H5st)
	}
	return out
}

// LegacySign is the output of the sign protocol.
type LegacySign struct {
	St   string `json:"st"`
	Sv   string `json:"sv"`
	Sign string `json:"sign"`
}
