// Package service implements the application services behind the HTTP and CLI surfaces.
package service

import (
	"context"

	"github.com/turtacn/h5sign/internal/application/dto"
	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/errors"
	"github.com/turtacn/h5sign/pkg/logger"
	"github.com/turtacn/h5sign/pkg/utils"
)

// Engine is the subset of the signing engine the application layer drives.
// Engine 是应用层依赖的签名引擎接口。
type Engine interface {
	H5st(ctx context.Context, version string, params *models.OrderedObject, opts models.SignOptions) (*models.SignResult, error)
	Sign(ctx context.Context, functionID, body, uuid, client, clientVersion string) (*models.LegacySign, error)
	DevicePayload(uuid string) (string, error)
	Versions() []string
}

// AlgoAppService defines the h5st and sign use cases.
// AlgoAppService 定义 h5st 与 sign 加签用例。
type AlgoAppService interface {
	H5st(ctx context.Context, req *dto.H5stRequest) (*dto.H5stResponse, error)
	Sign(ctx context.Context, req *dto.SignRequest) (*dto.SignResponse, error)
	Versions(ctx context.Context) *dto.VersionsResponse
}

type algoAppServiceImpl struct {
	engine         Engine
	rand           utils.Rand
	defaultVersion string
	log            logger.Logger
}

// NewAlgoAppService creates an AlgoAppService. An empty defaultVersion falls back to 5.0.8.
func NewAlgoAppService(engine Engine, r utils.Rand, defaultVersion string, log logger.Logger) AlgoAppService {
	if r == nil {
		r = utils.DefaultRand
	}
	if defaultVersion == "" {
		defaultVersion = constants.DefaultH5stVersion
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &algoAppServiceImpl{
		engine:         engine,
		rand:           r,
		defaultVersion: defaultVersion,
		log:            log.WithComponent("algo_app_service"),
	}
}

// H5st signs the business body of req.
func (s *algoAppServiceImpl) H5st(ctx context.Context, req *dto.H5stRequest) (*dto.H5stResponse, error) {
	if req == nil {
		return nil, errors.ErrInvalidRequest("request body is empty")
	}
	if err := req.Normalize(s.defaultVersion); err != nil {
		return nil, err
	}
	done := logger.NewPerformanceLogger(s.log).StartOperation(ctx, "h5st")
	defer done(logger.String("version", req.Version))

	result, err := s.engine.H5st(ctx, req.Version, req.Body, req.SignOptions())
	if err != nil {
		if errors.ShouldLogError(err) {
			s.log.Error(ctx, "h5st signing failed", err, logger.String("version", req.Version))
		}
		return nil, err
	}

	body := models.NewOrderedObject()
	for _, k := range req.Body.Keys() {
		v, _ := req.Body.Get(k)
		body.Set(k, v)
	}
	if result.Signed {
		body.Set("h5st", result.H5st)
	}
	qs, err := queryOf(body)
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "h5st signed",
		logger.String("version", req.Version),
		logger.Bool("signed", result.Signed),
	)
	return &dto.H5stResponse{
		H5st:   result.H5st,
		Stk:    result.Stk,
		Ste:    result.Ste,
		Signed: result.Signed,
		Body:   body,
		Qs:     qs,
	}, nil
}

// Sign computes the sign protocol fields for req.
func (s *algoAppServiceImpl) Sign(ctx context.Context, req *dto.SignRequest) (*dto.SignResponse, error) {
	if req == nil {
		return nil, errors.ErrInvalidRequest("request body is empty")
	}
	body, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	return signClientRequest(ctx, s.engine, s.rand, req.FunctionID, body, req.Client, req.ClientVersion, req.UUID)
}

// Versions lists the supported versions and the default one.
func (s *algoAppServiceImpl) Versions(_ context.Context) *dto.VersionsResponse {
	return &dto.VersionsResponse{Default: s.defaultVersion, Versions: s.engine.Versions()}
}

// signClientRequest signs an already serialized body and assembles the full parameter set.
func signClientRequest(ctx context.Context, engine Engine, r utils.Rand, functionID, body, client, clientVersion, uuid string) (*dto.SignResponse, error) {
	if client == "" {
		client = constants.DefaultSignClient
	}
	if clientVersion == "" {
		clientVersion = constants.DefaultSignClientVersion
	}
	if uuid == "" {
		uuid = utils.RandomID(r, 16, utils.DictHex)
	}

	out, err := engine.Sign(ctx, functionID, body, uuid, client, clientVersion)
	if err != nil {
		return nil, err
	}
	ep, err := engine.DevicePayload(uuid)
	if err != nil {
		return nil, errors.WrapError(err, constants.ErrCodeInternal, "device payload generation failed")
	}

	resp := &dto.SignResponse{
		Client:        client,
		ClientVersion: clientVersion,
		FunctionID:    functionID,
		Body:          body,
		Ef:            "1",
		Ep:            ep,
		UUID:          uuid,
		St:            out.St,
		Sv:            out.Sv,
		Sign:          out.Sign,
	}
	resp.Qs = utils.BuildQuery(resp.QueryPairs())
	return resp, nil
}

// queryOf renders an object as a query string; non-scalar values are sent as JSON.
func queryOf(o *models.OrderedObject) (string, error) {
	pairs := make([]utils.QueryPair, 0, o.Len())
	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		s, ok := utils.ScalarString(v)
		if !ok {
			text, err := utils.ToJSON(v)
			if err != nil {
				return "", errors.WrapError(err, constants.ErrCodeInternal, "query serialization failed")
			}
			s = text
		}
		pairs = append(pairs, utils.QueryPair{Key: k, Value: s})
	}
	return utils.BuildQuery(pairs), nil
}
