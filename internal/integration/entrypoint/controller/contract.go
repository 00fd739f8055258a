// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/usecase/contract"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
	"github.com/farmlink/backend/internal/integration/entrypoint/dto"
	"github.com/farmlink/backend/internal/integration/entrypoint/middleware"
)

// ContractController handles contract lifecycle endpoints.
type ContractController struct {
	requestContractUseCase  *contract.RequestContractUseCase
	acceptContractUseCase   *contract.AcceptContractUseCase
	startDeliveryUseCase    *contract.StartDeliveryUseCase
	rejectContractUseCase   *contract.RejectContractUseCase
	completeContractUseCase *contract.CompleteContractUseCase
	cancelContractUseCase   *contract.CancelContractUseCase
	getContractUseCase      *contract.GetContractUseCase
	listContractsUseCase    *contract.ListContractsUseCase
}

// NewContractController creates a new contract controller instance.
func NewContractController(
	requestContractUseCase *contract.RequestContractUseCase,
	acceptContractUseCase *contract.AcceptContractUseCase,
	startDeliveryUseCase *contract.StartDeliveryUseCase,
	rejectContractUseCase *contract.RejectContractUseCase,
	completeContractUseCase *contract.CompleteContractUseCase,
	cancelContractUseCase *contract.CancelContractUseCase,
	getContractUseCase *contract.GetContractUseCase,
	listContractsUseCase *contract.ListContractsUseCase,
) *ContractController {
	return &ContractController{
		requestContractUseCase:  requestContractUseCase,
		acceptContractUseCase:   acceptContractUseCase,
		startDeliveryUseCase:    startDeliveryUseCase,
		rejectContractUseCase:   rejectContractUseCase,
		completeContractUseCase: completeContractUseCase,
		cancelContractUseCase:   cancelContractUseCase,
		getContractUseCase:      getContractUseCase,
		listContractsUseCase:    listContractsUseCase,
	}
}

// Request handles POST /contracts/:id/request requests: a buyer
// requesting a contract against the listing addressed by :id.
func (c *ContractController) Request(ctx *gin.Context) {
	buyerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	listingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
			"Invalid listing ID",
			string(domainerror.ErrCodeMissingListingFields),
			"listing ID must be a UUID",
		))
		return
	}

	// The terms body is optional
	var req dto.RequestContractRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(ctx, err)
			return
		}
	}

	input := contract.RequestContractInput{
		ListingID: listingID,
		BuyerID:   buyerID,
		Terms:     req.Terms,
	}

	output, err := c.requestContractUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessEnvelope("Contract requested", dto.ToContractResponse(output.Contract)))
}

// Accept handles PUT /contracts/:id/accept requests.
func (c *ContractController) Accept(ctx *gin.Context) {
	farmerID, contractID, ok := c.actorAndContract(ctx)
	if !ok {
		return
	}

	output, err := c.acceptContractUseCase.Execute(ctx.Request.Context(), contract.AcceptContractInput{
		ContractID: contractID,
		FarmerID:   farmerID,
	})
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Contract accepted", dto.ToContractResponse(output.Contract)))
}

// Start handles PUT /contracts/:id/start requests: the farmer marking
// the contract as in progress.
func (c *ContractController) Start(ctx *gin.Context) {
	farmerID, contractID, ok := c.actorAndContract(ctx)
	if !ok {
		return
	}

	output, err := c.startDeliveryUseCase.Execute(ctx.Request.Context(), contract.StartDeliveryInput{
		ContractID: contractID,
		FarmerID:   farmerID,
	})
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Delivery started", dto.ToContractResponse(output.Contract)))
}

// Reject handles PUT /contracts/:id/reject requests.
func (c *ContractController) Reject(ctx *gin.Context) {
	actorID, contractID, ok := c.actorAndContract(ctx)
	if !ok {
		return
	}

	var req dto.ContractReasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.rejectContractUseCase.Execute(ctx.Request.Context(), contract.RejectContractInput{
		ContractID: contractID,
		ActorID:    actorID,
		Reason:     req.Reason,
	})
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Contract rejected", dto.ToContractResponse(output.Contract)))
}

// Complete handles PUT /contracts/:id/complete requests.
func (c *ContractController) Complete(ctx *gin.Context) {
	actorID, contractID, ok := c.actorAndContract(ctx)
	if !ok {
		return
	}

	// The delivery proof body is optional
	var req dto.CompleteContractRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondInvalidBody(ctx, err)
			return
		}
	}

	output, err := c.completeContractUseCase.Execute(ctx.Request.Context(), contract.CompleteContractInput{
		ContractID:    contractID,
		ActorID:       actorID,
		DeliveryProof: req.DeliveryProof,
	})
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Contract completed", dto.ToContractResponse(output.Contract)))
}

// Cancel handles PUT /contracts/:id/cancel requests.
func (c *ContractController) Cancel(ctx *gin.Context) {
	actorID, contractID, ok := c.actorAndContract(ctx)
	if !ok {
		return
	}

	var req dto.ContractReasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.cancelContractUseCase.Execute(ctx.Request.Context(), contract.CancelContractInput{
		ContractID: contractID,
		ActorID:    actorID,
		Reason:     req.Reason,
	})
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Contract cancelled", dto.ToContractResponse(output.Contract)))
}

// Get handles GET /contracts/:id requests.
func (c *ContractController) Get(ctx *gin.Context) {
	userID, contractID, ok := c.actorAndContract(ctx)
	if !ok {
		return
	}

	output, err := c.getContractUseCase.Execute(ctx.Request.Context(), contract.GetContractInput{
		ContractID: contractID,
		UserID:     userID,
	})
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Contract fetched", dto.ToContractResponse(output.Contract)))
}

// List handles GET /contracts requests: the contracts the user is a
// party to.
func (c *ContractController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	page, limit := parsePageQuery(ctx)

	input := contract.ListContractsInput{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	}
	if statusQuery := ctx.Query("status"); statusQuery != "" {
		status := entity.ContractStatus(statusQuery)
		input.Status = &status
	}

	output, err := c.listContractsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleContractError(ctx, err)
		return
	}

	result := output.Result
	ctx.JSON(http.StatusOK, dto.NewPaginatedEnvelope(
		"Contracts fetched",
		dto.ToContractResponses(result.Contracts),
		dto.NewPagination(result.Page, result.Limit, result.TotalPages, result.Total),
	))
}

// actorAndContract extracts the authenticated user and the :id path
// parameter, writing the error response itself on failure.
func (c *ContractController) actorAndContract(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return uuid.Nil, uuid.Nil, false
	}

	contractID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
			"Invalid contract ID",
			string(domainerror.ErrCodeMissingContractFields),
			"contract ID must be a UUID",
		))
		return uuid.Nil, uuid.Nil, false
	}

	return userID, contractID, true
}

// handleContractError handles contract errors and returns appropriate HTTP responses.
func (c *ContractController) handleContractError(ctx *gin.Context, err error) {
	var contractErr *domainerror.ContractError
	if errors.As(err, &contractErr) {
		statusCode := c.getStatusCodeForContractError(contractErr.Code)
		ctx.JSON(statusCode, dto.NewErrorEnvelope(
			contractErr.Message,
			string(contractErr.Code),
			contractErr.Message,
		))
		return
	}

	var listingErr *domainerror.ListingError
	if errors.As(err, &listingErr) {
		statusCode := c.getStatusCodeForListingError(listingErr.Code)
		ctx.JSON(statusCode, dto.NewErrorEnvelope(
			listingErr.Message,
			string(listingErr.Code),
			listingErr.Message,
		))
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForContractError maps contract error codes to HTTP status codes.
func (c *ContractController) getStatusCodeForContractError(code domainerror.ContractErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingContractFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeContractNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSelfDealing,
		domainerror.ErrCodeNotContractParty:
		return http.StatusForbidden
	case domainerror.ErrCodeContractStatusConflict,
		domainerror.ErrCodeContractCompleted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForListingError maps listing error codes raised during
// contract operations to HTTP status codes.
func (c *ContractController) getStatusCodeForListingError(code domainerror.ListingErrorCode) int {
	switch code {
	case domainerror.ErrCodeListingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeListingNotActive,
		domainerror.ErrCodeListingStatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
