package service_test

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/internal/domain/profiles"
	"github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/domain/service/mocks"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/utils"
)

func TestGenerateVisitKey_LengthForEveryProfile(t *testing.T) {
	table := profiles.NewTable()
	r := utils.NewLockedRand(7)
	for _, v := range table.Versions() {
		p, err := table.Lookup(v)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			fp := service.GenerateVisitKey(p, r)
			assert.Len(t, fp, p.VisitKey.SelectLength+p.VisitKey.RandomLength+1, "version %s", v)
			assert.NotContains(t, fp, "NaN", "version %s", v)
		}
	}
}

func TestGenerateVisitKey_LegacyFamilyIsDigits(t *testing.T) {
	p, err := profiles.NewTable().Lookup("xcx3.1.0")
	require.NoError(t, err)
	fp := service.GenerateVisitKey(p, utils.NewLockedRand(1))
	assert.Regexp(t, regexp.MustCompile(`^[0-9]+$`), fp)
}

func TestConvertVisitKey_Involution(t *testing.T) {
	modern := &models.VersionProfile{Version: "4.7.4", VisitKey: models.VisitKeySpec{ConvertLength: 14}}
	legacy := &models.VersionProfile{Version: "xcx3.1.0"}

	tests := []struct {
		name    string
		profile *models.VersionProfile
		input   string
	}{
		{"base36 short", modern, "abc123"},
		{"base36 long", modern, "kl9i1uct6d0jhqw3pa74"},
		{"base36 prefix only", modern, "0123456789abcdefghijz"},
		{"digits", legacy, "0123456789012345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := service.ConvertVisitKey(tt.profile, tt.input)
			assert.NotEqual(t, tt.input, once, "transform is not the identity")
			assert.NotEqual(t, once, service.ConvertVisitKey(tt.profile, once), "transform is not idempotent")
			assert.Equal(t, tt.input, service.ConvertVisitKey(tt.profile, once))
		})
	}
}

func TestConvertVisitKey_Base36Mapping(t *testing.T) {
	p := &models.VersionProfile{Version: "4.2.0", VisitKey: models.VisitKeySpec{ConvertLength: 3}}
	// first three reversed and mirrored, the rest untouched
	assert.Equal(t, "zyxdef", service.ConvertVisitKey(p, "210def"))
	assert.Equal(t, "0", service.ConvertVisitKey(p, "z"))
}

func TestConvertVisitKey_UppercaseFolds(t *testing.T) {
	p := &models.VersionProfile{Version: "4.2.0", VisitKey: models.VisitKeySpec{ConvertLength: 4}}
	once := service.ConvertVisitKey(p, "ABCD")
	assert.Equal(t, "mnop", once)
	assert.Equal(t, "abcd", service.ConvertVisitKey(p, once))
}

func TestConvertVisitKey_LegacyDigits(t *testing.T) {
	p := &models.VersionProfile{Version: "xcx3.1.0"}
	assert.Equal(t, "9876", service.ConvertVisitKey(p, "3210"))
}

func TestFingerprintResolver_CachesPerPin(t *testing.T) {
	p, err := profiles.NewTable().Lookup("4.7.4")
	require.NoError(t, err)
	cache := newMemCache()
	res := service.NewFingerprintResolver(cache, utils.NewLockedRand(3), nil, nil)
	ctx := context.Background()

	sc := &models.SigningContext{Profile: p, Pin: "jd_user", AppID: "fb5df", Scope: service.ScopeFor("fb5df", p)}
	first, err := res.VisitKey(ctx, sc)
	require.NoError(t, err)
	second, err := res.VisitKey(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, ok, _ := cache.Get(ctx, "jd_user_WQ_vk1_fb5df_4.7")
	assert.True(t, ok)
	assert.Equal(t, first, stored)

	canvas, webgl, err := res.DeviceFingerprints(ctx, sc)
	require.NoError(t, err)
	assert.Len(t, canvas, 32)
	assert.Len(t, webgl, 32)
	c2, w2, err := res.DeviceFingerprints(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, canvas, c2)
	assert.Equal(t, webgl, w2)
	assert.Equal(t, 3, cache.sets)
}

func TestFingerprintResolver_NoPinNeverTouchesCache(t *testing.T) {
	p, err := profiles.NewTable().Lookup("5.0.8")
	require.NoError(t, err)
	cache := new(mocks.MockCache)
	res := service.NewFingerprintResolver(cache, utils.NewLockedRand(3), nil, nil)

	sc := &models.SigningContext{Profile: p, AppID: "fb5df", Scope: service.ScopeFor("fb5df", p)}
	fp, err := res.VisitKey(context.Background(), sc)
	require.NoError(t, err)
	assert.NotEmpty(t, fp)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFingerprintResolver_RecordsLookups(t *testing.T) {
	p, err := profiles.NewTable().Lookup("5.0.8")
	require.NoError(t, err)
	metrics := new(mocks.MockMetrics)
	metrics.On("RecordCacheLookup", string(constants.CachePurposeFingerprint), false).Once()
	metrics.On("RecordCacheLookup", string(constants.CachePurposeFingerprint), true).Once()

	res := service.NewFingerprintResolver(newMemCache(), utils.NewLockedRand(3), metrics, nil)
	sc := &models.SigningContext{Profile: p, Pin: "pin", AppID: "a", Scope: service.ScopeFor("a", p)}
	_, err = res.VisitKey(context.Background(), sc)
	require.NoError(t, err)
	_, err = res.VisitKey(context.Background(), sc)
	require.NoError(t, err)
	metrics.AssertExpectations(t)
}

func TestFingerprintResolver_CacheErrorSurfaces(t *testing.T) {
	p, err := profiles.NewTable().Lookup("5.0.8")
	require.NoError(t, err)
	cache := new(mocks.MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, assert.AnError)

	res := service.NewFingerprintResolver(cache, utils.NewLockedRand(3), nil, nil)
	sc := &models.SigningContext{Profile: p, Pin: "pin", AppID: "a", Scope: service.ScopeFor("a", p)}
	_, err = res.VisitKey(context.Background(), sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestFingerprintResolver_ConcurrentMissesAgree(t *testing.T) {
	p, err := profiles.NewTable().Lookup("4.9.1")
	require.NoError(t, err)
	cache := newMemCache()
	res := service.NewFingerprintResolver(cache, utils.NewLockedRand(11), nil, nil)
	sc := &models.SigningContext{Profile: p, Pin: "pin", AppID: "a", Scope: service.ScopeFor("a", p)}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fp, err := res.VisitKey(context.Background(), sc)
			assert.NoError(t, err)
			results[i] = fp
		}(i)
	}
	wg.Wait()
	stored, _, _ := cache.Get(context.Background(), "pin_"+sc.Scope.Fingerprint)
	for _, fp := range results {
		assert.Equal(t, stored, fp)
	}
	assert.True(t, strings.HasPrefix(sc.Scope.Fingerprint, "WQ_vk1_a_"))
}
