package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors for the query pipeline
var (
	ErrEmptyInput = goerr.New("query is empty")
)

// Tags classifying generation service failures
var (
	TagTransient = goerr.NewTag("transient")
	TagPermanent = goerr.NewTag("permanent")
)

// IsPermanent reports whether err is a permanent service failure that no
// subsequent query can recover from (e.g. bad credentials).
func IsPermanent(err error) bool {
	return goerr.HasTag(err, TagPermanent)
}

// wrapServiceError wraps a generation service failure, tagging it as
// transient or permanent based on the gRPC status of the underlying
// transport. Plain network errors default to transient so an interactive
// session survives blips.
func wrapServiceError(err error, msg string, options ...goerr.Option) error {
	tag := TagTransient
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unauthenticated, codes.PermissionDenied, codes.InvalidArgument, codes.NotFound:
			tag = TagPermanent
		}
	}
	options = append(options, goerr.T(tag))
	return goerr.Wrap(err, msg, options...)
}
