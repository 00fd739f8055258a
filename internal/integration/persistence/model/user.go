// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(10);not null;index"`

	// Location details
	Village  string `gorm:"type:varchar(100)"`
	District string `gorm:"type:varchar(100);index"`
	State    string `gorm:"type:varchar(100);index"`
	Pincode  string `gorm:"type:varchar(10)"`

	// Bank details for payouts
	AccountHolder string `gorm:"type:varchar(100)"`
	AccountNumber string `gorm:"type:varchar(30)"`
	IFSC          string `gorm:"type:varchar(15)"`
	BankName      string `gorm:"type:varchar(100)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		Role:         entity.UserRole(m.Role),
		Location: entity.Location{
			Village:  m.Village,
			District: m.District,
			State:    m.State,
			Pincode:  m.Pincode,
		},
		BankDetails: entity.BankDetails{
			AccountHolder: m.AccountHolder,
			AccountNumber: m.AccountNumber,
			IFSC:          m.IFSC,
			BankName:      m.BankName,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Phone:         user.Phone,
		PasswordHash:  user.PasswordHash,
		Role:          string(user.Role),
		Village:       user.Location.Village,
		District:      user.Location.District,
		State:         user.Location.State,
		Pincode:       user.Location.Pincode,
		AccountHolder: user.BankDetails.AccountHolder,
		AccountNumber: user.BankDetails.AccountNumber,
		IFSC:          user.BankDetails.IFSC,
		BankName:      user.BankDetails.BankName,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
