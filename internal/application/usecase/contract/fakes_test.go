package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// fakeListingRepository serves listings from an in-memory map.
type fakeListingRepository struct {
	listings map[uuid.UUID]*entity.Listing
}

func newFakeListingRepository(listings ...*entity.Listing) *fakeListingRepository {
	repo := &fakeListingRepository{listings: make(map[uuid.UUID]*entity.Listing)}
	for _, listing := range listings {
		repo.listings[listing.ID] = listing
	}
	return repo
}

func (r *fakeListingRepository) Create(_ context.Context, listing *entity.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, domainerror.ErrListingNotFound
	}
	return listing, nil
}

func (r *fakeListingRepository) FindByFilter(_ context.Context, _ adapter.ListingFilter, _ adapter.ListingPagination) (*entity.ListingListResult, error) {
	return &entity.ListingListResult{Page: 1, Limit: 20, TotalPages: 1}, nil
}

// fakeContractRepository records created contracts and returns canned
// errors for lifecycle transitions.
type fakeContractRepository struct {
	created       []*entity.Contract
	transitionErr error
	contract      *entity.Contract
}

func (r *fakeContractRepository) Create(_ context.Context, contract *entity.Contract) error {
	r.created = append(r.created, contract)
	return nil
}

func (r *fakeContractRepository) FindByIDForParty(_ context.Context, _, _ uuid.UUID) (*entity.Contract, error) {
	if r.transitionErr != nil {
		return nil, r.transitionErr
	}
	return r.contract, nil
}

func (r *fakeContractRepository) FindByFilter(_ context.Context, _ adapter.ContractFilter, _ adapter.ContractPagination) (*entity.ContractListResult, error) {
	return &entity.ContractListResult{Page: 1, Limit: 20, TotalPages: 1}, nil
}

func (r *fakeContractRepository) transition() (*entity.Contract, error) {
	if r.transitionErr != nil {
		return nil, r.transitionErr
	}
	return r.contract, nil
}

func (r *fakeContractRepository) Accept(_ context.Context, _, _ uuid.UUID) (*entity.Contract, error) {
	return r.transition()
}

func (r *fakeContractRepository) StartDelivery(_ context.Context, _, _ uuid.UUID) (*entity.Contract, error) {
	return r.transition()
}

func (r *fakeContractRepository) Reject(_ context.Context, _, _ uuid.UUID, _ string) (*entity.Contract, error) {
	return r.transition()
}

func (r *fakeContractRepository) Complete(_ context.Context, _, _ uuid.UUID, _ string) (*entity.Contract, error) {
	return r.transition()
}

func (r *fakeContractRepository) Cancel(_ context.Context, _, _ uuid.UUID, _ string) (*entity.Contract, error) {
	return r.transition()
}

var (
	_ adapter.ListingRepository  = (*fakeListingRepository)(nil)
	_ adapter.ContractRepository = (*fakeContractRepository)(nil)
)
