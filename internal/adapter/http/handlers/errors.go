package handlers

import (
	"errors"
	"net/http"

	"production_scheduler/internal/adapter/http/dto/request"
	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase"
	"production_scheduler/internal/usecase/interfaces"
	"production_scheduler/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "A valid session is required", http.StatusUnauthorized)
	errForbidden        = pkg.NewDomainErrorSimple("FORBIDDEN", "This session cannot access the resource", http.StatusForbidden)
	errInvalidLogin     = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Incorrect username or password", http.StatusUnauthorized)
	errInvalidLinkToken = pkg.NewDomainErrorSimple("INVALID_LINK_TOKEN", "This link is not valid", http.StatusUnauthorized)
)

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return errInvalidLogin
	case errors.Is(err, usecase.ErrInvalidLinkToken):
		return errInvalidLinkToken
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errUnauthenticated
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoPermittedCustomers):
		return errForbidden
	case errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, usecase.ErrEmptyBatch):
		return pkg.NewDomainError("INVALID_ORDER", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPrintMonth),
		errors.Is(err, request.ErrInvalidMatchMode),
		errors.Is(err, request.ErrInvalidMonth),
		errors.Is(err, entities.ErrMalformedDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrRepositoryUnavailable):
		return pkg.NewDomainError("ORDER_BOOK_UNAVAILABLE", "The order book is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
