package service

import (
	"regexp"
	"unicode/utf8"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/pkg/utils"
)

var systemInfoPattern = regexp.MustCompile(`Mozilla/5.0 \((.*?)\)`)

// envOverrideKeys are refreshed on every call, in this order.
var envOverrideKeys = []string{"pp", "random", "sua", "canvas", "canvas1", "webglFp", "webglFp1"}

// EnvInputs are the per-call values written into the env object.
type EnvInputs struct {
	Pin         string
	UserAgent   string
	Canvas      string
	WebGL       string
	Fingerprint string
}

// BuildEnv returns the env object of a call. With an inbound object only its
// existing keys are refreshed; otherwise a fresh object is built. fp is always set last.
func BuildEnv(extend *models.OrderedObject, profile *models.VersionProfile, in EnvInputs, r utils.Rand) *models.OrderedObject {
	randomLength := profile.Env.RandomLength
	if extend != nil {
		if s, ok := extend.GetString("random"); ok {
			randomLength = utf8.RuneCountInString(s)
		}
	}
	update := envUpdate(in, randomLength, r)

	var env *models.OrderedObject
	if extend != nil {
		env = extend
		for _, k := range envOverrideKeys {
			if env.Has(k) {
				v, _ := update.Get(k)
				env.Set(k, v)
			}
		}
	} else {
		env = update
		env.Set("extend", defaultExtend())
		if profile.Env.Fv != "" {
			env.Set("v", profile.Env.Fv)
		}
	}
	env.Set("fp", in.Fingerprint)
	return env
}

func envUpdate(in EnvInputs, randomLength int, r utils.Rand) *models.OrderedObject {
	pp := models.NewOrderedObject()
	if in.Pin != "" {
		pp.Set("p1", in.Pin)
	}
	sua := ""
	if m := systemInfoPattern.FindStringSubmatch(in.UserAgent); m != nil {
		sua = m[1]
	}
	return models.NewOrderedObject().
		Set("pp", pp).
		Set("random", utils.RandomID(r, randomLength, utils.DictMax)).
		Set("sua", sua).
		Set("canvas", in.Canvas).
		Set("canvas1", in.Canvas).
		Set("webglFp", in.WebGL).
		Set("webglFp1", in.WebGL)
}

func defaultExtend() *models.OrderedObject {
	return models.NewOrderedObject().
		Set("wd", 0).
		Set("l", 0).
		Set("ls", 5).
		Set("wk", 0).
		Set("bu1", "0.1.6").
		Set("bu2", -1).
		Set("bu3", 36).
		Set("bu4", 0).
		Set("bu5", 0).
		Set("bu6", 33).
		Set("bu7", "").
		Set("bu8", 0)
}
