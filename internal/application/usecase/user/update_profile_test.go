// Package user contains profile-related use cases.
package user

import (
	"context"
	"errors"
	"testing"

	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

func TestUpdateProfileUseCaseExecute(t *testing.T) {
	ctx := context.Background()

	newUser := func() *entity.User {
		user := entity.NewUser("farmer@farmlink.test", "Ravi Kumar", "9876543210", "hash", entity.UserRoleFarmer)
		user.Location = entity.Location{Village: "Ozar", District: "Nashik", State: "Maharashtra", Pincode: "422206"}
		return user
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		user := newUser()
		repo := &fakeUserRepository{user: user}
		useCase := NewUpdateProfileUseCase(repo)

		name := "Ravi K"
		output, err := useCase.Execute(ctx, UpdateProfileInput{UserID: user.ID, Name: &name})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.User.Name != "Ravi K" {
			t.Errorf("Name = %q, want %q", output.User.Name, "Ravi K")
		}
		if output.User.Phone != "9876543210" {
			t.Errorf("Phone = %q, want unchanged", output.User.Phone)
		}
		if output.User.Location.District != "Nashik" {
			t.Errorf("District = %q, want unchanged", output.User.Location.District)
		}
	})

	t.Run("replaces the location", func(t *testing.T) {
		user := newUser()
		repo := &fakeUserRepository{user: user}
		useCase := NewUpdateProfileUseCase(repo)

		location := entity.Location{Village: "Pimpalgaon", District: "Nashik", State: "Maharashtra", Pincode: "422209"}
		output, err := useCase.Execute(ctx, UpdateProfileInput{UserID: user.ID, Location: &location})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.User.Location.Village != "Pimpalgaon" {
			t.Errorf("Village = %q, want %q", output.User.Location.Village, "Pimpalgaon")
		}
	})

	t.Run("rejects a malformed pincode", func(t *testing.T) {
		for _, pincode := range []string{"12345", "0422206", "42220A", "4222066"} {
			user := newUser()
			repo := &fakeUserRepository{user: user}
			useCase := NewUpdateProfileUseCase(repo)

			location := entity.Location{District: "Nashik", State: "Maharashtra", Pincode: pincode}
			_, err := useCase.Execute(ctx, UpdateProfileInput{UserID: user.ID, Location: &location})

			var userErr *domainerror.UserError
			if !errors.As(err, &userErr) {
				t.Fatalf("Execute() with pincode %q error = %T, want *domainerror.UserError", pincode, err)
			}
			if userErr.Code != domainerror.ErrCodeInvalidPincode {
				t.Errorf("Code = %q, want %q", userErr.Code, domainerror.ErrCodeInvalidPincode)
			}
			if repo.updated {
				t.Error("invalid location was persisted")
			}
		}
	})
}
