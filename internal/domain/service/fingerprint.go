package service

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

// GenerateVisitKey builds a fresh fingerprint for profile.
// The result has SelectLength + RandomLength + 1 characters.
func GenerateVisitKey(profile *models.VersionProfile, r utils.Rand) string {
	vk := profile.VisitKey
	selected := utils.SelectDistinct(r, vk.Seed, vk.SelectLength)
	n := utils.RandomInt10(r)
	remaining := utils.FilterChars(vk.Seed, selected)
	combined := utils.RandomID(r, n, remaining) +
		selected +
		utils.RandomID(r, vk.RandomLength-n, remaining) +
		strconv.Itoa(n)
	return ConvertVisitKey(profile, combined)
}

// ConvertVisitKey applies the family transform to a combined visit key.
func ConvertVisitKey(profile *models.VersionProfile, combined string) string {
	if profile.IsLegacyFamily() {
		return reverseDigits(combined)
	}
	return invertBase36Prefix(combined, profile.VisitKey.ConvertLength)
}

// reverseDigits reverses s and maps every digit d to 9-d.
func reverseDigits(s string) string {
	chars := []rune(s)
	var b strings.Builder
	for i := len(chars) - 1; i >= 0; i-- {
		d, err := strconv.Atoi(string(chars[i]))
		if err != nil {
			b.WriteString("NaN")
			continue
		}
		b.WriteString(strconv.Itoa(9 - d))
	}
	return b.String()
}

// invertBase36Prefix reverses the first n characters, mapping each base-36 digit v to 35-v.
// Characters after n are kept in place.
func invertBase36Prefix(s string, n int) string {
	chars := []rune(s)
	if n > len(chars) {
		n = len(chars)
	}
	if n < 0 {
		n = 0
	}
	var b strings.Builder
	for i := n - 1; i >= 0; i-- {
		v, err := strconv.ParseInt(string(chars[i]), 36, 64)
		if err != nil {
			b.WriteString("NaN")
			continue
		}
		b.WriteString(strconv.FormatInt(35-v, 36))
	}
	b.WriteString(string(chars[n:]))
	return b.String()
}

// randomDeviceFp is the canvas/webgl fingerprint: the MD5 of a random digit.
func randomDeviceFp(r utils.Rand) string {
	return crypto.MD5Hex(strconv.Itoa(utils.RandomInt10(r)))
}

// FingerprintResolver reads fingerprints through the cache, generating them on a miss.
// Concurrent misses for the same key share one generation.
type FingerprintResolver struct {
	cache   Cache
	rand    utils.Rand
	metrics Metrics
	logger  logger.Logger
	group   singleflight.Group
}

// NewFingerprintResolver creates a resolver. cache may be nil, which disables caching.
func NewFingerprintResolver(cache Cache, r utils.Rand, m Metrics, log logger.Logger) *FingerprintResolver {
	if m == nil {
		m = NoopMetrics{}
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &FingerprintResolver{cache: cache, rand: r, metrics: m, logger: log.WithComponent("fingerprint")}
}

// ScopeFor returns the cache keys of a call, without the pin prefix.
func ScopeFor(appID string, profile *models.VersionProfile) models.CacheScope {
	suffix := "_" + appID + "_" + profile.WireVersion
	return models.CacheScope{
		Fingerprint: string(constants.CachePurposeFingerprint) + suffix,
		Canvas:      string(constants.CachePurposeCanvas) + suffix,
		WebGL:       string(constants.CachePurposeWebGL) + suffix,
	}
}

// VisitKey returns the fingerprint of the call.
func (f *FingerprintResolver) VisitKey(ctx context.Context, sc *models.SigningContext) (string, error) {
	return f.readThrough(ctx, sc, constants.CachePurposeFingerprint, sc.Scope.Fingerprint, func() string {
		return GenerateVisitKey(sc.Profile, f.rand)
	})
}

// DeviceFingerprints returns the canvas and webgl fingerprints, looked up concurrently.
func (f *FingerprintResolver) DeviceFingerprints(ctx context.Context, sc *models.SigningContext) (canvas, webgl string, err error) {
	// candidates are drawn up front so the random sequence does not depend on scheduling
	canvasFp, webglFp := randomDeviceFp(f.rand), randomDeviceFp(f.rand)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := f.readThrough(gctx, sc, constants.CachePurposeCanvas, sc.Scope.Canvas, func() string {
			return canvasFp
		})
		canvas = v
		return err
	})
	g.Go(func() error {
		v, err := f.readThrough(gctx, sc, constants.CachePurposeWebGL, sc.Scope.WebGL, func() string {
			return webglFp
		})
		webgl = v
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return canvas, webgl, nil
}

func (f *FingerprintResolver) readThrough(ctx context.Context, sc *models.SigningContext, purpose constants.CachePurpose, scope string, gen func() string) (string, error) {
	if sc.Pin == "" || f.cache == nil {
		return gen(), nil
	}
	key := sc.Pin + "_" + scope
	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		cached, found, err := f.cache.Get(ctx, key)
		if err != nil {
			return "", errors.ErrCache("get", err)
		}
		f.metrics.RecordCacheLookup(string(purpose), found && cached != "")
		if found && cached != "" {
			if sc.Debug {
				f.logger.Debug(ctx, "use cached value", logger.String("purpose", string(purpose)), logger.String("value", cached))
			}
			return cached, nil
		}
		fresh := gen()
		if err := f.cache.Set(ctx, key, fresh, constants.FingerprintTTL); err != nil {
			return "", errors.ErrCache("set", err)
		}
		if sc.Debug {
			f.logger.Debug(ctx, "use new value", logger.String("purpose", string(purpose)), logger.String("value", fresh))
		}
		return fresh, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
