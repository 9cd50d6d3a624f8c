package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

// Composer runs one h5st signing call through its states:
// initialized, validated, dependencies resolved, signed.
// It holds no per-call state; everything lives in the SigningContext.
type Composer struct {
	tokens       *TokenGenerator
	fingerprints *FingerprintResolver
	rand         utils.Rand
	clock        Clock
	location     *time.Location
	defaultStk   []string
	logger       logger.Logger
}

// ComposerOption customizes a Composer.
type ComposerOption func(*Composer)

// WithClock replaces time.Now.
func WithClock(c Clock) ComposerOption {
	return func(cp *Composer) { cp.clock = c }
}

// WithLocation sets the zone the date string is rendered in.
func WithLocation(loc *time.Location) ComposerOption {
	return func(cp *Composer) { cp.location = loc }
}

// WithDefaultStk replaces the allow-list used when a call supplies none.
func WithDefaultStk(stk []string) ComposerOption {
	return func(cp *Composer) {
		if len(stk) > 0 {
			cp.defaultStk = stk
		}
	}
}

// NewComposer creates a composer.
func NewComposer(tokens *TokenGenerator, fingerprints *FingerprintResolver, r utils.Rand, log logger.Logger, opts ...ComposerOption) *Composer {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	c := &Composer{
		tokens:       tokens,
		fingerprints: fingerprints,
		rand:         r,
		clock:        time.Now,
		location:     time.FixedZone("CST", 8*3600),
		defaultStk:   constants.DefaultStk,
		logger:       log.WithComponent("composer"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Sign signs params under profile.
func (c *Composer) Sign(ctx context.Context, profile *models.VersionProfile, params *models.OrderedObject, opts models.SignOptions) (*models.SignResult, error) {
	start := time.Now()
	sc, envCipher := c.initialize(profile, opts)
	if envCipher != "" {
		env, err := OpenEnv(envCipher, profile)
		if err != nil {
			return nil, err
		}
		sc.EnvExtend = env
	}
	if opts.DebugParams != nil && opts.DebugParams.Env != nil {
		sc.EnvExtend = opts.DebugParams.Env
	}

	if params == nil || params.Len() == 0 {
		return nil, errors.ErrValidation(constants.ValidationUnsignableParams, "params is empty")
	}
	filtered, err := filterParams(params, sc.Stk)
	if err != nil {
		return nil, err
	}
	if filtered.Len() == 0 {
		c.debug(ctx, sc, "no allow-listed parameter present, skip signing")
		return &models.SignResult{Params: filtered}, nil
	}
	pairs, err := c.validate(sc, filtered)
	if err != nil {
		return nil, err
	}

	envSig, err := c.resolveDeps(ctx, sc)
	if err != nil {
		return nil, err
	}

	result, err := c.makeSign(ctx, sc, pairs, envSig)
	if err != nil {
		return nil, err
	}
	result.Params = filtered
	c.debug(ctx, sc, "sign finished", logger.Duration("elapsed", time.Since(start)))
	return result, nil
}

// initialize builds the call context and returns the inbound env ciphertext, if any.
func (c *Composer) initialize(profile *models.VersionProfile, opts models.SignOptions) (*models.SigningContext, string) {
	sc := &models.SigningContext{
		Profile:     profile,
		AppID:       opts.AppID,
		Debug:       opts.Debug,
		Pin:         opts.Pin,
		UserAgent:   opts.UserAgent,
		Stk:         utils.RemoveDuplicates(opts.Stk),
		ReuseToken:  opts.ReuseToken,
		DebugParams: opts.DebugParams,
		Now:         c.clock(),
	}
	if len(sc.Stk) == 0 {
		sc.Stk = c.defaultStk
	}
	var envCipher string
	if opts.H5st != "" {
		parts := strings.Split(opts.H5st, ";")
		sc.AppID = field(parts, 2)
		sc.InboundToken = field(parts, 3)
		envCipher = field(parts, 7)
	}
	if sc.AppID != "" {
		sc.Scope = ScopeFor(sc.AppID, profile)
	}
	if dp := opts.DebugParams; dp != nil && dp.Timestamp != nil {
		sc.Now = time.UnixMilli(*dp.Timestamp)
	}
	return sc, envCipher
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// filterParams keeps the allow-listed fields in allow-list order. body is replaced by its SHA-256.
func filterParams(params *models.OrderedObject, stk []string) (*models.OrderedObject, error) {
	out := models.NewOrderedObject()
	for _, key := range stk {
		v, ok := params.Get(key)
		if !ok || v == nil {
			continue
		}
		if key == "body" {
			s, err := bodyText(v)
			if err != nil {
				return nil, errors.ErrValidation(constants.ValidationUnsignableParams, "body cannot be serialized")
			}
			v = crypto.SHA256Hex(s)
		}
		out.Set(key, v)
	}
	return out, nil
}

func bodyText(v interface{}) (string, error) {
	if s, ok := utils.ScalarString(v); ok {
		return s, nil
	}
	if o, ok := v.(*models.OrderedObject); ok {
		b, err := o.MarshalJSON()
		return string(b), err
	}
	return utils.ToJSON(v)
}

// validate applies the parameter checks and returns the sorted signable pairs.
// As in the browser client, the last failing check determines the reported error.
func (c *Composer) validate(sc *models.SigningContext, params *models.OrderedObject) ([]models.KV, error) {
	var failure errors.SignerError
	if sc.AppID == "" {
		failure = errors.ErrValidation(constants.ValidationAppIDAbsent, "appId is required")
	}
	for _, k := range params.Keys() {
		v, _ := params.Get(k)
		if !isFlat(v) {
			failure = errors.ErrValidation(constants.ValidationUnsignableParams, "params is not a plain object")
			break
		}
	}
	for _, k := range params.Keys() {
		if utils.Contains(constants.ReservedParams, k) {
			failure = errors.ErrValidation(constants.ValidationUnsignableParams, "params contains reserved param name.")
			break
		}
	}
	if failure != nil {
		return nil, failure
	}

	keys := params.Keys()
	sort.Strings(keys)
	pairs := make([]models.KV, 0, len(keys))
	for _, k := range keys {
		v, _ := params.Get(k)
		if !isSafeValue(v) {
			continue
		}
		s, _ := utils.ScalarString(v)
		pairs = append(pairs, models.KV{Key: k, Value: s})
	}
	if len(pairs) == 0 {
		return nil, errors.ErrValidation(constants.ValidationUnsignableParams, "all parameters were discarded during validation")
	}
	return pairs, nil
}

func isFlat(v interface{}) bool {
	switch v.(type) {
	case *models.OrderedObject, map[string]interface{}, []interface{}:
		return false
	}
	return true
}

func isSafeValue(v interface{}) bool {
	switch val := v.(type) {
	case string:
		return val != ""
	case bool:
		return true
	case json.Number:
		f, err := val.Float64()
		return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
	default:
		s, ok := utils.ScalarString(v)
		return ok && s != ""
	}
}

// resolveDeps reads the fingerprints and seals the env object.
func (c *Composer) resolveDeps(ctx context.Context, sc *models.SigningContext) (string, error) {
	if dp := sc.DebugParams; dp != nil && dp.Fingerprint != "" {
		sc.Fingerprint = dp.Fingerprint
	} else {
		fp, err := c.fingerprints.VisitKey(ctx, sc)
		if err != nil {
			return "", err
		}
		sc.Fingerprint = fp
	}
	c.debug(ctx, sc, "fingerprint resolved", logger.String("fp", sc.Fingerprint))

	canvas, webgl, err := c.fingerprints.DeviceFingerprints(ctx, sc)
	if err != nil {
		return "", err
	}
	env := BuildEnv(sc.EnvExtend, sc.Profile, EnvInputs{
		Pin:         sc.Pin,
		UserAgent:   sc.UserAgent,
		Canvas:      canvas,
		WebGL:       webgl,
		Fingerprint: sc.Fingerprint,
	}, c.rand)
	text, err := env.Indent()
	if err != nil {
		return "", errors.ErrInternal("env serialization failed").WithCause(err)
	}
	c.debug(ctx, sc, "env collected", logger.String("env", text))
	sealed, err := SealEnv(text, sc.Profile)
	if err != nil {
		return "", errors.ErrInternal("env encryption failed").WithCause(err)
	}
	return sealed, nil
}

// makeSign derives the key and assembles the h5st.
func (c *Composer) makeSign(ctx context.Context, sc *models.SigningContext, pairs []models.KV, envSig string) (*models.SignResult, error) {
	dateStr := utils.FormatDateStr(sc.Now.In(c.location))
	dateStrExtend := dateStr + sc.Profile.ExtendDateStr

	token := ""
	if dp := sc.DebugParams; dp != nil && dp.Token != "" {
		token = dp.Token
	} else {
		t, err := c.tokens.Generate(sc.Fingerprint, sc.Profile)
		if err != nil {
			return nil, errors.ErrInternal("token generation failed").WithCause(err)
		}
		token = t
	}
	sc.Token = token
	sc.DefaultToken = token

	key, express := DeriveKey(token, sc.Fingerprint, dateStrExtend, sc.AppID, sc.Profile)
	c.debug(ctx, sc, "key derived", logger.String("express", express), logger.String("key", key))
	if key == "" {
		return &models.SignResult{}, nil
	}

	bodySig := Digest(sc.Profile.SignAlgorithm, key, joinPairs(pairs, nil))
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}

	fieldToken := sc.DefaultToken
	if sc.ReuseToken && sc.InboundToken != "" {
		fieldToken = sc.InboundToken
	}
	parts := []string{
		dateStr,
		sc.Fingerprint,
		sc.AppID,
		fieldToken,
		bodySig,
		sc.Profile.WireVersion,
		strconv.FormatInt(sc.Now.UnixMilli(), 10),
		envSig,
	}
	if sc.Profile.GenSignDefault {
		parts = append(parts, Digest(sc.Profile.SignAlgorithm, key, joinPairs(pairs, defaultSignKeys)))
	}
	h5st := strings.Join(parts, ";")
	c.debug(ctx, sc, "h5st assembled", logger.String("h5st", h5st))

	return &models.SignResult{
		Signed: true,
		Stk:    strings.Join(keys, ","),
		Ste:    1,
		H5st:   h5st,
	}, nil
}

var defaultSignKeys = map[string]bool{"appid": true, "functionId": true}

// joinPairs renders key:value pairs joined by "&", optionally restricted to only.
func joinPairs(pairs []models.KV, only map[string]bool) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if only != nil && !only[p.Key] {
			continue
		}
		parts = append(parts, p.Key+":"+p.Value)
	}
	return strings.Join(parts, "&")
}

// Digest signs paramsStr with key using alg.
func Digest(alg models.SignAlgorithm, key, paramsStr string) string {
	switch alg {
	case models.SignMD5Wrap:
		return crypto.MD5Hex(key + paramsStr + key)
	case models.SignSHA256Wrap:
		return crypto.SHA256Hex(key + paramsStr + key)
	default:
		return crypto.HMACSHA256Hex(paramsStr, key)
	}
}

func (c *Composer) debug(ctx context.Context, sc *models.SigningContext, msg string, fields ...logger.Field) {
	if sc.Debug {
		c.logger.Debug(ctx, msg, append(fields, logger.String("version", sc.Profile.Version))...)
	}
}
