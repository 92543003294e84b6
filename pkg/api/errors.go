package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imbecility/yt-metaproxy/pkg/gateway"
	"github.com/imbecility/yt-metaproxy/pkg/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	VideoID string `json:"video_id,omitempty"`
}

// statusFor maps an error kind to its HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, gateway.ErrEmptyQuery):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, models.ErrNoQualifyingFormat):
		return http.StatusUnprocessableEntity, "no_qualifying_format"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "extraction_timeout"
	case errors.Is(err, models.ErrMalformedUpstream):
		return http.StatusBadGateway, "malformed_upstream"
	case errors.Is(err, models.ErrExtraction):
		return http.StatusBadGateway, "extraction_failed"
	case errors.Is(err, context.Canceled):
		return 499, "client_closed_request"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) respondError(c *gin.Context, err error, fields logrus.Fields) {
	status, code := statusFor(err)

	body := errorResponse{Error: code, Message: err.Error()}
	var nq *models.NoQualifyingFormatError
	if errors.As(err, &nq) {
		body.VideoID = nq.VideoID
	}

	entry := logrus.WithFields(fields).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("Processing failed")
	} else {
		entry.Warn("Processing failed")
	}

	c.AbortWithStatusJSON(status, body)
}
