package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

// AlgoEngine is the entry point of the signing engine. It is safe for concurrent use:
// every call carries its own SigningContext.
type AlgoEngine struct {
	profiles ProfileSource
	composer *Composer
	legacy   *LegacySigner
	device   *DevicePayloadGenerator
	metrics  Metrics
	logger   logger.Logger
	tracer   trace.Tracer
}

// EngineDeps wires an AlgoEngine.
type EngineDeps struct {
	Profiles ProfileSource
	Cache    Cache
	Rand     utils.Rand
	Metrics  Metrics
	Logger   logger.Logger
	Clock    Clock
	Location *time.Location
	// DefaultStk overrides the allow-list used when a call supplies none.
	DefaultStk []string
}

// NewAlgoEngine creates the engine and its components.
func NewAlgoEngine(deps EngineDeps) *AlgoEngine {
	if deps.Rand == nil {
		deps.Rand = utils.DefaultRand
	}
	if deps.Metrics == nil {
		deps.Metrics = NoopMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNoopLogger()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	opts := []ComposerOption{WithClock(deps.Clock), WithDefaultStk(deps.DefaultStk)}
	if deps.Location != nil {
		opts = append(opts, WithLocation(deps.Location))
	}
	fps := NewFingerprintResolver(deps.Cache, deps.Rand, deps.Metrics, deps.Logger)
	return &AlgoEngine{
		profiles: deps.Profiles,
		composer: NewComposer(NewTokenGenerator(deps.Rand), fps, deps.Rand, deps.Logger, opts...),
		legacy:   NewLegacySigner(deps.Rand, deps.Clock),
		device:   NewDevicePayloadGenerator(deps.Rand, deps.Clock),
		metrics:  deps.Metrics,
		logger:   deps.Logger.WithComponent("engine"),
		tracer:   otel.Tracer(constants.ServiceName + "/engine"),
	}
}

// H5st signs params with the given protocol version.
func (e *AlgoEngine) H5st(ctx context.Context, version string, params *models.OrderedObject, opts models.SignOptions) (*models.SignResult, error) {
	ctx, span := e.tracer.Start(ctx, "h5st.sign", trace.WithAttributes(attribute.String("h5st.version", version)))
	defer span.End()
	start := time.Now()

	profile, err := e.profiles.Lookup(version)
	if err != nil {
		e.finish(span, string(constants.ProtocolH5st), version, start, err)
		return nil, err
	}
	result, err := e.composer.Sign(ctx, profile, params, opts)
	e.finish(span, string(constants.ProtocolH5st), version, start, err)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("h5st.signed", result.Signed))
	return result, nil
}

// Sign computes the sign protocol triple.
func (e *AlgoEngine) Sign(ctx context.Context, functionID, body, uuid, client, clientVersion string) (*models.LegacySign, error) {
	_, span := e.tracer.Start(ctx, "sign.sign", trace.WithAttributes(attribute.String("sign.function_id", functionID)))
	defer span.End()
	start := time.Now()

	out, err := e.legacy.Sign(functionID, body, uuid, client, clientVersion)
	e.finish(span, string(constants.ProtocolSign), "", start, err)
	return out, err
}

// DevicePayload returns the ep value of a sign request.
func (e *AlgoEngine) DevicePayload(uuid string) (string, error) {
	return e.device.Generate(uuid)
}

// Versions lists the supported protocol versions.
func (e *AlgoEngine) Versions() []string {
	return e.profiles.Versions()
}

func (e *AlgoEngine) finish(span trace.Span, protocol, version string, start time.Time, err error) {
	e.metrics.RecordSign(protocol, version, err == nil, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
