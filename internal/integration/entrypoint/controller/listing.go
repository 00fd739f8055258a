// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmlink/backend/internal/application/usecase/listing"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
	"github.com/farmlink/backend/internal/integration/entrypoint/dto"
	"github.com/farmlink/backend/internal/integration/entrypoint/middleware"
)

// ListingController handles crop listing endpoints.
type ListingController struct {
	createListingUseCase  *listing.CreateListingUseCase
	getListingUseCase     *listing.GetListingUseCase
	browseListingsUseCase *listing.BrowseListingsUseCase
	listMyListingsUseCase *listing.ListMyListingsUseCase
}

// NewListingController creates a new listing controller instance.
func NewListingController(
	createListingUseCase *listing.CreateListingUseCase,
	getListingUseCase *listing.GetListingUseCase,
	browseListingsUseCase *listing.BrowseListingsUseCase,
	listMyListingsUseCase *listing.ListMyListingsUseCase,
) *ListingController {
	return &ListingController{
		createListingUseCase:  createListingUseCase,
		getListingUseCase:     getListingUseCase,
		browseListingsUseCase: browseListingsUseCase,
		listMyListingsUseCase: listMyListingsUseCase,
	}
}

// Create handles POST /contracts/listing requests.
func (c *ListingController) Create(ctx *gin.Context) {
	farmerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateListingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
			"Invalid quantity",
			string(domainerror.ErrCodeInvalidQuantity),
			"quantity must be a decimal number",
		))
		return
	}

	price, err := decimal.NewFromString(req.ExpectedPrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
			"Invalid expected price",
			string(domainerror.ErrCodeInvalidPrice),
			"expected price must be a decimal number",
		))
		return
	}

	var harvestDate *time.Time
	if req.HarvestDate != "" {
		parsed, err := time.Parse("2006-01-02", req.HarvestDate)
		if err != nil {
			respondInvalidBody(ctx, err)
			return
		}
		harvestDate = &parsed
	}

	input := listing.CreateListingInput{
		FarmerID:      farmerID,
		CropType:      req.CropType,
		Quantity:      quantity,
		Unit:          req.Unit,
		ExpectedPrice: price,
		HarvestDate:   harvestDate,
		ImageURLs:     req.ImageURLs,
		District:      req.District,
		State:         req.State,
	}

	output, err := c.createListingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleListingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessEnvelope("Listing created", dto.ToListingResponse(output.Listing)))
}

// Get handles GET /contracts/listings/:id requests.
func (c *ListingController) Get(ctx *gin.Context) {
	listingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(
			"Invalid listing ID",
			string(domainerror.ErrCodeMissingListingFields),
			"listing ID must be a UUID",
		))
		return
	}

	output, err := c.getListingUseCase.Execute(ctx.Request.Context(), listing.GetListingInput{ListingID: listingID})
	if err != nil {
		c.handleListingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope("Listing fetched", dto.ToListingResponse(output.Listing)))
}

// Browse handles GET /contracts/listings requests: active listings with filters.
func (c *ListingController) Browse(ctx *gin.Context) {
	page, limit := parsePageQuery(ctx)

	input := listing.BrowseListingsInput{
		CropType: ctx.Query("crop_type"),
		District: ctx.Query("district"),
		State:    ctx.Query("state"),
		Page:     page,
		Limit:    limit,
	}

	output, err := c.browseListingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleListingError(ctx, err)
		return
	}

	result := output.Result
	ctx.JSON(http.StatusOK, dto.NewPaginatedEnvelope(
		"Listings fetched",
		dto.ToListingResponses(result.Listings),
		dto.NewPagination(result.Page, result.Limit, result.TotalPages, result.Total),
	))
}

// ListMine handles GET /contracts/listings/mine requests: the farmer's own
// listings in any status.
func (c *ListingController) ListMine(ctx *gin.Context) {
	farmerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	page, limit := parsePageQuery(ctx)

	input := listing.ListMyListingsInput{
		FarmerID: farmerID,
		Page:     page,
		Limit:    limit,
	}
	if statusQuery := ctx.Query("status"); statusQuery != "" {
		status := entity.ListingStatus(statusQuery)
		input.Status = &status
	}

	output, err := c.listMyListingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleListingError(ctx, err)
		return
	}

	result := output.Result
	ctx.JSON(http.StatusOK, dto.NewPaginatedEnvelope(
		"Listings fetched",
		dto.ToListingResponses(result.Listings),
		dto.NewPagination(result.Page, result.Limit, result.TotalPages, result.Total),
	))
}

// handleListingError handles listing errors and returns appropriate HTTP responses.
func (c *ListingController) handleListingError(ctx *gin.Context, err error) {
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

// getStatusCodeForListingError maps listing error codes to HTTP status codes.
func (c *ListingController) getStatusCodeForListingError(code domainerror.ListingErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidPrice,
		domainerror.ErrCodeTooManyImages,
		domainerror.ErrCodeMissingListingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeListingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeListingNotActive,
		domainerror.ErrCodeListingStatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parsePageQuery reads page and limit query parameters.
func parsePageQuery(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	return page, limit
}
