package avatarrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AvatarServer is the server API for the Avatar gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain.
//
// Proto definition: avatar.proto.
type AvatarServer interface {
	// Render returns deterministic PNG bytes for a seed.
	Render(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	// Pin renders the seed, stores the PNG, and returns its CID.
	Pin(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	// Has reports whether the avatar for a seed is already stored.
	Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
}

// UnimplementedAvatarServer can be embedded to have forward compatible implementations.
type UnimplementedAvatarServer struct{}

func (UnimplementedAvatarServer) Render(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Render not implemented")
}
func (UnimplementedAvatarServer) Pin(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Pin not implemented")
}
func (UnimplementedAvatarServer) Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Has not implemented")
}

// RegisterAvatarServer registers the Avatar service on a gRPC server.
func RegisterAvatarServer(s grpc.ServiceRegistrar, srv AvatarServer) {
	s.RegisterService(&Avatar_ServiceDesc, srv)
}

// AvatarClient is the client API for the Avatar gRPC service.
type AvatarClient interface {
	Render(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Pin(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
}

type avatarClient struct{ cc grpc.ClientConnInterface }

func NewAvatarClient(cc grpc.ClientConnInterface) AvatarClient { return &avatarClient{cc: cc} }

func (c *avatarClient) Render(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.identicon.v1.Avatar/Render", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *avatarClient) Pin(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/xdao.identicon.v1.Avatar/Pin", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *avatarClient) Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	err := c.cc.Invoke(ctx, "/xdao.identicon.v1.Avatar/Has", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Avatar_Render_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AvatarServer).Render(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.identicon.v1.Avatar/Render"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AvatarServer).Render(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Avatar_Pin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AvatarServer).Pin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.identicon.v1.Avatar/Pin"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AvatarServer).Pin(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Avatar_Has_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AvatarServer).Has(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.identicon.v1.Avatar/Has"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AvatarServer).Has(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Avatar_ServiceDesc is the grpc.ServiceDesc for the Avatar service.
var Avatar_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.identicon.v1.Avatar",
	HandlerType: (*AvatarServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Render", Handler: _Avatar_Render_Handler},
		{MethodName: "Pin", Handler: _Avatar_Pin_Handler},
		{MethodName: "Has", Handler: _Avatar_Has_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "avatar.proto",
}
