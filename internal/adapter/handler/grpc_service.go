package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name. Messages are
// google.protobuf.Struct in both directions, so no generated stubs are needed.
const ServiceName = "kata.v1.KataService"

type KataServiceServer interface {
	Invoke(ctx context.Context, method string, req *structpb.Struct) (*structpb.Struct, error)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func methodHandler(method string) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return srv.(KataServiceServer).Invoke(ctx, method, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return srv.(KataServiceServer).Invoke(ctx, method, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func serviceDesc(methods []string) *grpc.ServiceDesc {
	desc := &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*KataServiceServer)(nil),
		Streams:     []grpc.StreamDesc{},
	}
	for _, m := range methods {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: m,
			Handler:    methodHandler(m),
		})
	}
	return desc
}

func RegisterKataServiceServer(s grpc.ServiceRegistrar, h *GRPCHandler) {
	s.RegisterService(serviceDesc(h.methodNames()), h)
}

type KataClient struct {
	cc grpc.ClientConnInterface
}

func NewKataClient(cc grpc.ClientConnInterface) *KataClient {
	return &KataClient{cc: cc}
}

func (c *KataClient) Invoke(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Call encodes req as a Struct, invokes method and decodes the reply into Resp.
func Call[Resp any](ctx context.Context, c *KataClient, method string, req any, opts ...grpc.CallOption) (Resp, error) {
	var resp Resp

	in, err := toStruct(req)
	if err != nil {
		return resp, err
	}
	out, err := c.Invoke(ctx, method, in, opts...)
	if err != nil {
		return resp, err
	}
	if err := fromStruct(out, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

func (c *KataClient) Square(ctx context.Context, n float64, opts ...grpc.CallOption) (float64, error) {
	resp, err := Call[SquareResponse](ctx, c, "Square", SquareRequest{N: &n}, opts...)
	if err != nil {
		return 0, err
	}
	return resp.Result, nil
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}
	s := new(structpb.Struct)
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return s, nil
}

func fromStruct(s *structpb.Struct, v any) error {
	b, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal struct: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}
	return nil
}
