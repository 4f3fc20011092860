package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"
)

// StatusCoder lets a response choose its HTTP status. Responses without it
// are sent with 200.
type StatusCoder interface {
	StatusCode() int
}

type errorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

func writeResponse(ctx context.Context, w http.ResponseWriter, resp any) {
	status := http.StatusOK
	if coder, ok := resp.(StatusCoder); ok {
		status = coder.StatusCode()
	}

	if resp == nil {
		resp = struct {
			Success bool `json:"success"`
		}{Success: true}
	}

	if err := WriteJson(w, status, resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		xcontext.Logger(ctx).Errorf("Unexpected error: %v", err)
		errx = errorx.Unknown
	}

	resp := errorResponse{Success: false, Message: errx.Message, ErrorCode: errx.Reason}
	if err := WriteJson(w, errx.Code.HTTPStatus(), resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func WriteJson(w http.ResponseWriter, status int, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(b)
	return err
}

// Status reports the HTTP status written for the request held by ctx. It is
// meant for closers.
func Status(ctx context.Context) int {
	if err := xcontext.Error(ctx); err != nil {
		errx := errorx.Error{}
		if !errors.As(err, &errx) {
			return errorx.Unknown.Code.HTTPStatus()
		}

		return errx.Code.HTTPStatus()
	}

	if coder, ok := xcontext.Response(ctx).(StatusCoder); ok {
		return coder.StatusCode()
	}

	return http.StatusOK
}

// Reason returns the error code of a failed request, or an empty string.
func Reason(ctx context.Context) string {
	err := xcontext.Error(ctx)
	if err == nil {
		return ""
	}

	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		return errorx.Unknown.Reason
	}

	return errx.Reason
}
