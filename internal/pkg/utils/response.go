package utils

import (
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	writeJSON(w, code, response)
}

func BuildSuccessResponseWithMeta(w http.ResponseWriter, code int, message string, meta *responses.Meta, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Meta:    meta,
		Data:    data,
	}
	writeJSON(w, code, response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any(constvars.LoggingLocationKey, customErr.Location),
		)
	} else {
		log.Error(err.Error())
	}

	response := responses.ErrorResponseDTO{
		Success: false,
		Message: clientMessage,
	}
	if customErr != nil {
		response.Error = customErr.FieldErrors
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Location = customErr.Location
	}
	writeJSON(w, code, response)
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
