package transport

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
)

var errNotFound = errors.New("not found")

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func codeOf(err error) codes.Code {
	if errors.Is(err, errNotFound) {
		return codes.NotFound
	}
	switch trackerr.KindOf(err) {
	case trackerr.KindValidation:
		return codes.InvalidArgument
	case trackerr.KindFetch:
		return codes.Unavailable
	case trackerr.KindTimeout:
		return codes.DeadlineExceeded
	case trackerr.KindCanceled:
		return codes.Canceled
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

func toErrorBody(err error) *errorBody {
	if err == nil {
		return nil
	}
	return &errorBody{Code: codeOf(err).String(), Message: err.Error()}
}

func httpStatusOf(err error) int {
	return gwruntime.HTTPStatusFromCode(codeOf(err))
}
