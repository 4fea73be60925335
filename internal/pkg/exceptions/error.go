package exceptions

import (
	"doccare-service/internal/pkg/constvars"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	DevMessage    string            `json:"dev_message,omitempty"`
	FieldErrors   map[string]string `json:"error,omitempty"`
	Location      *Location         `json:"location,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      &location,
		cause:         err,
	}
}

// BuildNewCustomError records the location of the caller of the ErrX
// constructor, not of the constructor itself.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
		cause:         err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
