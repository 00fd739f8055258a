package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
	"github.com/farmlink/backend/internal/integration/persistence/model"
)

// listingRepository implements the adapter.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository instance.
func NewListingRepository(db *gorm.DB) adapter.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// Create creates a new listing in the database.
func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingModel := model.ListingFromEntity(listing)
	result := r.db.WithContext(ctx).Create(listingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a listing by its ID.
func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingModel model.ListingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&listingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrListingNotFound
		}
		return nil, result.Error
	}
	return listingModel.ToEntity(), nil
}

// FindByFilter retrieves listings matching the filter with pagination.
func (r *listingRepository) FindByFilter(ctx context.Context, filter adapter.ListingFilter, pagination adapter.ListingPagination) (*entity.ListingListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ListingModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.FarmerID != nil {
		query = query.Where("farmer_id = ?", *filter.FarmerID)
	}
	if filter.CropType != "" {
		query = query.Where("LOWER(crop_type) = LOWER(?)", filter.CropType)
	}
	if filter.District != "" {
		query = query.Where("LOWER(district) = LOWER(?)", filter.District)
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) = LOWER(?)", filter.State)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var listingModels []model.ListingModel
	result := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&listingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	listings := make([]*entity.Listing, len(listingModels))
	for i, lm := range listingModels {
		listings[i] = lm.ToEntity()
	}

	return &entity.ListingListResult{
		Listings:   listings,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}
