package controllers

import (
	"context"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func decodeAndValidate(r *http.Request, request interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func requestIDFrom(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// buildErrorResponse logs the failure once and renders the envelope. Bare
// deadline errors become 504.
func buildErrorResponse(log *zap.Logger, w http.ResponseWriter, requestID, message string, err error) {
	log.Error(message,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)

	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) && errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(log, w, err)
}
