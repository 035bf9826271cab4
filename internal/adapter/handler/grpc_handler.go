package handler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/rl1809/kata/internal/core/domain"
)

const requestIDKey = "x-request-id"

type GRPCHandler struct {
	calls  map[string]call
	order  []string
	logger *zap.Logger
}

func NewGRPCHandler(ops *Operations, logger *zap.Logger) *GRPCHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &GRPCHandler{
		calls:  make(map[string]call),
		logger: logger,
	}
	for _, rt := range ops.routes() {
		h.calls[rt.method] = rt.call
		h.order = append(h.order, rt.method)
	}
	return h
}

func (h *GRPCHandler) methodNames() []string {
	return h.order
}

func (h *GRPCHandler) Invoke(ctx context.Context, method string, req *structpb.Struct) (*structpb.Struct, error) {
	c, ok := h.calls[method]
	if !ok {
		return nil, status.Errorf(codes.Unimplemented, "method %s not implemented", method)
	}

	body, err := protojson.Marshal(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	result, err := c(ctx, body)
	if err != nil {
		return nil, grpcError(err)
	}

	out, err := toStruct(result)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}

func grpcError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNegativeInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// RequestIDInterceptor tags each call with the caller's x-request-id, or a
// fresh one, echoes it back as a header and logs the outcome.
func RequestIDInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(requestIDKey); len(vals) > 0 {
				id = vals[0]
			}
		}
		if id == "" {
			id = uuid.New().String()
		}
		if err := grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, id)); err != nil {
			logger.Debug("set request id header", zap.String("request_id", id), zap.Error(err))
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("grpc call",
			zap.String("request_id", id),
			zap.String("method", info.FullMethod),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("code", status.Code(err).String()),
		)
		return resp, err
	}
}
