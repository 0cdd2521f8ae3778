// Package avatarrpc exposes identicon rendering as a gRPC service.
//
// The service is deterministic end to end: a seed always renders to the same
// PNG bytes on a given server configuration, so responses can be cached and
// content-addressed by clients and servers alike.
package avatarrpc

import (
	"context"
	"image/color"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/identicon/blobid"
	"xdao.co/identicon/digest"
	"xdao.co/identicon/identicon"
	"xdao.co/identicon/render"
	"xdao.co/identicon/store"
)

// Server serves avatars rendered with Hasher. Pin and Has additionally
// require a Store; Render works without one.
type Server struct {
	UnimplementedAvatarServer

	Hasher digest.Hasher
	Store  store.Store

	// Background overrides the render background when non-nil.
	Background color.Color
}

func (s *Server) Render(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	data, err := s.renderSeed(in.GetValue())
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bytes(data), nil
}

func (s *Server) Pin(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	data, err := s.renderSeed(in.GetValue())
	if err != nil {
		return nil, err
	}
	id, err := s.Store.Put(data)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return wrapperspb.String(id.String()), nil
}

func (s *Server) Has(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	data, err := s.renderSeed(in.GetValue())
	if err != nil {
		return nil, err
	}
	id, err := blobid.For(data)
	if err != nil {
		return nil, status.Error(codes.Internal, "cid computation failed")
	}
	return wrapperspb.Bool(s.Store.Has(id)), nil
}

func (s *Server) renderSeed(seed string) ([]byte, error) {
	if s == nil || s.Hasher == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing hasher")
	}
	img, err := identicon.Generate(s.Hasher, seed)
	if err != nil {
		if identicon.IsKind(err, identicon.KindUnderflow) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	data, err := render.PNG(img.Color, img.Regions, render.Options{Background: s.Background})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return data, nil
}

func mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case err == store.ErrNotFound:
		return status.Error(codes.NotFound, err.Error())
	case err == store.ErrInvalidCID:
		return status.Error(codes.InvalidArgument, err.Error())
	case err == store.ErrCIDMismatch:
		return status.Error(codes.DataLoss, err.Error())
	case err == store.ErrImmutable:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
