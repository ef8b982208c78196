// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/internal/service"
	"github.com/MKhiriev/go-users-service/internal/store"
	"github.com/MKhiriev/go-users-service/internal/utils"
)

var errorStatusMap = map[error]int{
	utils.ErrUnauthenticated:  http.StatusUnauthorized,
	service.ErrBadCredentials: http.StatusUnauthorized,
	service.ErrForbidden:      http.StatusForbidden,
	service.ErrValidation:     http.StatusBadRequest,
	ErrInvalidUserID:          http.StatusBadRequest,

	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusConflict,

	context.DeadlineExceeded: http.StatusServiceUnavailable,
	context.Canceled:         statusClientClosedRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	utils.ErrHashingFailure:     http.StatusInternalServerError,
}

// errorMessages holds the client-facing text per error. Errors missing here
// are answered with the generic text of their status.
var errorMessages = map[error]string{
	utils.ErrUnauthenticated:       "unauthenticated",
	service.ErrBadCredentials:      "invalid credentials",
	service.ErrForbidden:           "forbidden",
	ErrInvalidUserID:               "invalid user id",
	store.ErrNoUserWasFound:        "user not found",
	store.ErrUsernameAlreadyExists: "username already exists",
	context.DeadlineExceeded:       "request timed out",
	context.Canceled:               "request canceled",
}

const (
	internalErrorMessage = "internal server error"

	// statusClientClosedRequest is the non-standard status nginx logs when
	// the client goes away before the response is written.
	statusClientClosedRequest = 499
)

func statusFromError(err error) int {
	// a timeout or cancellation may be wrapped together with a store error
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, context.Canceled) {
		return statusClientClosedRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns text safe to show to a client. Validation errors
// carry their own rule text; everything unexpected is reduced to a generic
// message.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return internalErrorMessage
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errorMessages[context.DeadlineExceeded]
	}
	if errors.Is(err, context.Canceled) {
		return errorMessages[context.Canceled]
	}
	if status == http.StatusBadRequest && errors.Is(err, service.ErrValidation) {
		return err.Error()
	}
	for target, message := range errorMessages {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeServiceError logs err with the request logger and answers with the
// mapped status and a generic JSON body. Requests abandoned by the client are
// logged at info level.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	switch {
	case status == statusClientClosedRequest:
		event = log.Info()
	case status >= http.StatusInternalServerError:
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteError(w, messageFromError(err, status), status)
}
