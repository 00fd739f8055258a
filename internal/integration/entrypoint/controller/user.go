// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmlink/backend/internal/application/usecase/user"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
	"github.com/farmlink/backend/internal/integration/entrypoint/dto"
	"github.com/farmlink/backend/internal/integration/entrypoint/middleware"
)

// UserController handles profile endpoints.
type UserController struct {
	getProfileUseCase        *user.GetProfileUseCase
	updateProfileUseCase     *user.UpdateProfileUseCase
	updateBankDetailsUseCase *user.UpdateBankDetailsUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	updateBankDetailsUseCase *user.UpdateBankDetailsUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:        getProfileUseCase,
		updateProfileUseCase:     updateProfileUseCase,
		updateBankDetailsUseCase: updateBankDetailsUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Profile fetched", dto.ToUserResponse(output.User)))
}

// UpdateProfile handles PATCH /users/me requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	input := user.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Phone:  req.Phone,
	}
	if req.Location != nil {
		input.Location = &entity.Location{
			Village:  req.Location.Village,
			District: req.Location.District,
			State:    req.Location.State,
			Pincode:  req.Location.Pincode,
		}
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Profile updated", dto.ToUserResponse(output.User)))
}

// UpdateBankDetails handles PUT /users/me/bank-details requests.
func (c *UserController) UpdateBankDetails(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateBankDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	input := user.UpdateBankDetailsInput{
		UserID: userID,
		BankDetails: entity.BankDetails{
			AccountHolder: req.AccountHolder,
			AccountNumber: req.AccountNumber,
			IFSC:          req.IFSC,
			BankName:      req.BankName,
		},
	}

	output, err := c.updateBankDetailsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Bank details updated", dto.ToUserResponse(output.User)))
}

// handleUserError handles profile errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		statusCode := c.getStatusCodeForUserError(userErr.Code)
		ctx.JSON(statusCode, dto.NewErrorEnvelope(
			userErr.Message,
			string(userErr.Code),
			userErr.Message,
		))
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForUserError maps profile error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBankDetails,
		domainerror.ErrCodeInvalidPincode:
		return http.StatusBadRequest
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
