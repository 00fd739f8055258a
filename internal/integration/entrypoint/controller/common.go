// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/farmlink/backend/internal/domain/error"
	"github.com/farmlink/backend/internal/integration/entrypoint/dto"
)

// respondUnauthenticated writes a 401 for requests missing auth context.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope(
		"Authentication required",
		string(domainerror.ErrCodeMissingToken),
		"missing authentication context",
	))
}

// respondInvalidBody writes a 400 for request body binding failures.
func respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
		"Invalid request body",
		string(domainerror.ErrCodeMissingFields),
		err.Error(),
	))
}

// respondInternalError writes a generic 500 without leaking internals.
func respondInternalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorEnvelope(
		"An internal error occurred",
		"INTERNAL",
		"an internal error occurred",
	))
}
