package grpcserver

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dotflik/dotflik/internal/apperrors"
	"github.com/dotflik/dotflik/internal/pagination"
	"github.com/dotflik/dotflik/pkg/logger"
)

// loggingInterceptor logs method, duration and outcome of unary calls.
func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	duration := time.Since(start)

	if err != nil {
		logger.Warn("gRPC unary call failed: %s, duration: %v, error: %v", info.FullMethod, duration, err)
	} else {
		logger.Debug("gRPC unary call: %s, duration: %v", info.FullMethod, duration)
	}

	return resp, err
}

// statusInterceptor turns handler errors into gRPC status errors.
func statusInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, toStatus(info.FullMethod, err)
	}
	return resp, nil
}

// gateInterceptor runs the pagination gate ahead of the handler. Requests
// without GetPageSize/GetPageToken pass untouched.
func gateInterceptor(gate *pagination.Gate) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return gate.Intercept(ctx, req, pagination.Handler(handler))
	}
}

func toStatus(method string, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	if pagination.IsClientError(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.CodeNotFound:
			return status.Error(codes.NotFound, appErr.Message)
		case apperrors.CodeInvalidInput, apperrors.CodeValidation, apperrors.CodePagination:
			return status.Error(codes.InvalidArgument, appErr.Message)
		}
	}

	logger.Error("gRPC %s: unexpected error: %v", method, err)
	return status.Error(codes.Internal, "internal error")
}
