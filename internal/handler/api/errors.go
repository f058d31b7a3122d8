package api

import (
	"errors"
	"log/slog"
	"net/http"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/handler/httperr"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/queries"
	"workshop-quotes/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeAlreadyClaimed     = "ALREADY_CLAIMED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeConversionConflict = "CONVERSION_CONFLICT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeFeatureDisabled    = "FEATURE_DISABLED"
	CodePlanLimitExceeded  = "PLAN_LIMIT_EXCEEDED"
	CodeConcurrentUpdate   = "CONCURRENT_UPDATE"
	CodeRendererDown       = "RENDERER_UNAVAILABLE"
	CodeBadRequest         = "BAD_REQUEST"
	CodeInternal           = "INTERNAL"
)

// abortWithDomainError maps the usecase error taxonomy onto HTTP.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, quote.ErrTokenInvalid):
		var tokenErr *quote.TokenError
		if errors.As(err, &tokenErr) {
			slog.InfoContext(c.Request.Context(), "public link rejected", "reason", string(tokenErr.Reason))
		}
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeTokenInvalid, quote.ErrTokenInvalid.Error(), nil)
	case errs.IsAny(err, quote.ErrNotFound, serviceorder.ErrNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, CodeNotFound, "Not found", nil)
	case errs.Is(err, quote.ErrValidation):
		var verr *quote.ValidationError
		var detail any
		if errors.As(err, &verr) {
			detail = gin.H{"field": verr.Field, "message": verr.Message}
		}
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, CodeValidation, "Validation failed", detail)
	case errs.Is(err, quote.ErrAlreadyClaimed):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeAlreadyClaimed, "Quote already claimed by another mechanic", nil)
	case errs.Is(err, quote.ErrInvalidTransition):
		var terr *quote.InvalidTransitionError
		var detail any
		if errors.As(err, &terr) {
			detail = gin.H{"action": string(terr.Action), "status": string(terr.From)}
		}
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeInvalidTransition, "Action not allowed in the current status", detail)
	case errs.IsAny(err, quote.ErrConversionConflict, serviceorder.ErrNotConvertible):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeConversionConflict, "Quote cannot be converted", nil)
	case errs.Is(err, shared.ErrStaleQuote):
		httperr.AbortWithCode(c, http.StatusConflict, err, CodeConcurrentUpdate, "Quote was changed concurrently, retry", nil)
	case errs.Is(err, shared.ErrFeatureDisabled):
		httperr.AbortWithCode(c, http.StatusForbidden, err, CodeFeatureDisabled, "Feature not available on the current plan", nil)
	case errs.Is(err, shared.ErrPlanLimitExceeded):
		httperr.AbortWithCode(c, http.StatusPaymentRequired, err, CodePlanLimitExceeded, "Plan usage limit exceeded", nil)
	case errs.Is(err, shared.ErrRendererUnavailable):
		httperr.AbortWithCode(c, http.StatusServiceUnavailable, err, CodeRendererDown, "Document renderer unavailable", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeBadRequest, "Invalid cursor", nil)
	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, err, CodeInternal, "Internal server error", nil)
	}
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeBadRequest, msg, nil)
}
