package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

func activeListing(farmerID uuid.UUID) *entity.Listing {
	return entity.NewListing(
		farmerID,
		"wheat",
		decimal.RequireFromString("100"),
		"kg",
		decimal.RequireFromString("20"),
		nil,
		nil,
		"Nashik",
		"Maharashtra",
	)
}

func TestRequestContractUseCaseExecute(t *testing.T) {
	ctx := context.Background()
	farmerID := uuid.New()
	buyerID := uuid.New()

	t.Run("creates a requested contract from an active listing", func(t *testing.T) {
		listing := activeListing(farmerID)
		listingRepo := newFakeListingRepository(listing)
		contractRepo := &fakeContractRepository{}
		useCase := NewRequestContractUseCase(listingRepo, contractRepo)

		output, err := useCase.Execute(ctx, RequestContractInput{
			ListingID: listing.ID,
			BuyerID:   buyerID,
			Terms:     "Payment on delivery",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		contract := output.Contract
		if contract.Status != entity.ContractStatusRequested {
			t.Errorf("Status = %v, want %v", contract.Status, entity.ContractStatusRequested)
		}
		if contract.BuyerID != buyerID || contract.FarmerID != farmerID {
			t.Error("contract parties do not match the listing and buyer")
		}
		want := decimal.RequireFromString("2000")
		if !contract.TotalAmount.Equal(want) {
			t.Errorf("TotalAmount = %s, want %s", contract.TotalAmount, want)
		}
		if len(contractRepo.created) != 1 {
			t.Errorf("created contracts = %d, want 1", len(contractRepo.created))
		}
	})

	t.Run("unknown listing is not found", func(t *testing.T) {
		useCase := NewRequestContractUseCase(newFakeListingRepository(), &fakeContractRepository{})

		_, err := useCase.Execute(ctx, RequestContractInput{ListingID: uuid.New(), BuyerID: buyerID})

		var listingErr *domainerror.ListingError
		if !errors.As(err, &listingErr) {
			t.Fatalf("Execute() error = %T, want *domainerror.ListingError", err)
		}
		if listingErr.Code != domainerror.ErrCodeListingNotFound {
			t.Errorf("Code = %q, want %q", listingErr.Code, domainerror.ErrCodeListingNotFound)
		}
	})

	t.Run("farmer cannot request own listing", func(t *testing.T) {
		listing := activeListing(farmerID)
		useCase := NewRequestContractUseCase(newFakeListingRepository(listing), &fakeContractRepository{})

		_, err := useCase.Execute(ctx, RequestContractInput{ListingID: listing.ID, BuyerID: farmerID})

		var contractErr *domainerror.ContractError
		if !errors.As(err, &contractErr) {
			t.Fatalf("Execute() error = %T, want *domainerror.ContractError", err)
		}
		if contractErr.Code != domainerror.ErrCodeSelfDealing {
			t.Errorf("Code = %q, want %q", contractErr.Code, domainerror.ErrCodeSelfDealing)
		}
	})

	t.Run("non-active listing conflicts", func(t *testing.T) {
		for _, status := range []entity.ListingStatus{entity.ListingStatusContracted, entity.ListingStatusCompleted} {
			listing := activeListing(farmerID)
			listing.Status = status
			contractRepo := &fakeContractRepository{}
			useCase := NewRequestContractUseCase(newFakeListingRepository(listing), contractRepo)

			_, err := useCase.Execute(ctx, RequestContractInput{ListingID: listing.ID, BuyerID: buyerID})

			var listingErr *domainerror.ListingError
			if !errors.As(err, &listingErr) {
				t.Fatalf("Execute() with %s listing error = %T, want *domainerror.ListingError", status, err)
			}
			if listingErr.Code != domainerror.ErrCodeListingNotActive {
				t.Errorf("Code = %q, want %q", listingErr.Code, domainerror.ErrCodeListingNotActive)
			}
			if len(contractRepo.created) != 0 {
				t.Errorf("created contracts = %d, want 0", len(contractRepo.created))
			}
		}
	})
}
