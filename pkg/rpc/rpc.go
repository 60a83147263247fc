// Package rpc carries plain Go request/response structs over gRPC without
// generated stubs. Messages travel as google.protobuf.Struct values, so the
// default protobuf codec is used on the wire and any gRPC tooling can read them.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Encode converts v into a Struct message through its JSON form.
func Encode(v any) (*structpb.Struct, error) {
	msg := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	if v == nil {
		return msg, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rpc: encode %T: %w", v, err)
	}
	if string(raw) == "null" {
		return msg, nil
	}
	if err := protojson.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("rpc: encode %T: %w", v, err)
	}
	return msg, nil
}

// Decode fills v from a Struct message.
func Decode(msg *structpb.Struct, v any) error {
	if msg == nil {
		return nil
	}
	raw, err := protojson.Marshal(msg)
	if err != nil {
		return fmt.Errorf("rpc: decode %T: %w", v, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("rpc: decode %T: %w", v, err)
	}
	return nil
}

// Unary builds the method descriptor for one unary call served by fn.
func Unary[Req, Resp any](service, method string, fn func(context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := FullMethod(service, method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(_ any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			handle := func(ctx context.Context, req any) (any, error) {
				msg, _ := req.(*structpb.Struct)
				var r Req
				if err := Decode(msg, &r); err != nil {
					return nil, status.Error(codes.InvalidArgument, err.Error())
				}
				resp, err := fn(ctx, &r)
				if err != nil {
					return nil, err
				}
				return Encode(resp)
			}
			if interceptor == nil {
				return handle(ctx, in)
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{FullMethod: fullMethod}, handle)
		},
	}
}

// Register attaches a service made of unary methods to s.
func Register(s grpc.ServiceRegistrar, service string, methods ...grpc.MethodDesc) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: service,
		HandlerType: (*any)(nil),
		Methods:     methods,
		Streams:     []grpc.StreamDesc{},
	}, struct{}{})
}

// Call invokes a unary method and decodes its reply into Resp.
func Call[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, req *Req, opts ...grpc.CallOption) (*Resp, error) {
	in, err := Encode(req)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, FullMethod(service, method), in, out, opts...); err != nil {
		return nil, err
	}
	resp := new(Resp)
	if err := Decode(out, resp); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func FullMethod(service, method string) string {
	return "/" + service + "/" + method
}
