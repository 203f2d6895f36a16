package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"wardrobeapi/models"
	"wardrobeapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

type ErrorKind string

const (
	KindConfig     ErrorKind = "config"
	KindValidation ErrorKind = "validation"
	KindUpstream   ErrorKind = "upstream"
	KindContent    ErrorKind = "content"
	KindFormat     ErrorKind = "format"
	KindInternal   ErrorKind = "internal"
)

const (
	msgInvalidImages   = "please provide valid image data"
	msgInvalidBody     = "invalid request body"
	msgEmptyContent    = "AI returned empty content"
	msgMalformedOutput = "AI returned malformed output, please retry"
	msgIncompletePlan  = "AI returned an incomplete plan"
	msgInternal        = "internal server error"
)

// Error is the single failure type of both gateways. Message is safe to show
// to the client as is.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func configError(err error) *Error {
	return &Error{
		Kind:    KindConfig,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("server configuration error: %v", err),
		Err:     err,
	}
}

func validationError(message string, err error) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Err: err}
}

func InvalidImagesError() *Error {
	return validationError(msgInvalidImages, nil)
}

// InvalidBodyError is for request bodies that do not decode at all.
func InvalidBodyError(err error) *Error {
	return validationError(msgInvalidBody, err)
}

func WardrobeTooSmallError() *Error {
	return validationError(models.ErrWardrobeTooSmall.Error(), models.ErrWardrobeTooSmall)
}

func contentError() *Error {
	return &Error{Kind: KindContent, Status: http.StatusInternalServerError, Message: msgEmptyContent}
}

func formatError(message string, err error) *Error {
	return &Error{Kind: KindFormat, Status: http.StatusInternalServerError, Message: message, Err: err}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: msgInternal, Err: err}
}

// providerError maps what an LLMProvider returned into the gateway taxonomy.
func providerError(err error) *Error {
	if errors.Is(err, services.ErrMissingCredential) {
		return configError(err)
	}
	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		return &Error{Kind: KindUpstream, Status: upstream.StatusCode, Message: upstream.Error(), Err: err}
	}
	return internalError(err)
}

// report logs the failure and forwards the kinds that point at the AI service to Sentry.
func report(op string, gwErr *Error, fields logrus.Fields) {
	entry := logrus.WithFields(fields).WithFields(logrus.Fields{
		"op":     op,
		"kind":   gwErr.Kind,
		"status": gwErr.Status,
	})
	if gwErr.Err != nil {
		entry = entry.WithError(gwErr.Err)
	}
	switch gwErr.Kind {
	case KindValidation:
		entry.Info(gwErr.Message)
	case KindUpstream, KindContent, KindFormat:
		entry.Error(gwErr.Message)
		sentry.CaptureException(fmt.Errorf("[%s] %w", op, gwErr))
	default:
		entry.Error(gwErr.Message)
	}
}
