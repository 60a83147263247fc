package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Rule maps a domain sentinel error to a gRPC code.
type Rule struct {
	Err  error
	Code codes.Code
}

// Status converts err into a gRPC status error using the first matching rule.
// A matched error keeps its own message, which carries any wrapped detail.
// Unmatched errors become codes.Internal with msg as the public message, so
// store failures never leak driver details to callers.
func Status(err error, msg string, rules ...Rule) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, r := range rules {
		if errors.Is(err, r.Err) {
			return status.Error(r.Code, err.Error())
		}
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, msg)
}
