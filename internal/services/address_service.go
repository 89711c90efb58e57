package services

import (
	"context"
	"errors"
	"time"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/repositories"

	"github.com/google/uuid"
)

// DeliveryBarangays is the delivery coverage area. Orders outside these
// Quezon City barangays are pickup only.
var DeliveryBarangays = []string{
	"Bagumbayan",
	"Cubao",
	"Diliman",
	"Kamuning",
	"Katipunan",
	"Loyola Heights",
	"Project 4",
}

// IsValidBarangay reports whether delivery covers the given barangay.
func IsValidBarangay(barangay string) bool {
	for _, b := range DeliveryBarangays {
		if b == barangay {
			return true
		}
	}
	return false
}

type AddressService struct {
	addressRepo repositories.AddressRepository
	userRepo    repositories.UserRepository
}

func NewAddressService(addressRepo repositories.AddressRepository, userRepo repositories.UserRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		userRepo:    userRepo,
	}
}

type CreateAddressRequest struct {
	Label        string `json:"label" binding:"omitempty,oneof=home office other"`
	AddressLine  string `json:"address_line" binding:"required"`
	Barangay     string `json:"barangay" binding:"required"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	IsDefault    bool   `json:"is_default"`
}

type UpdateAddressRequest struct {
	Label        string `json:"label" binding:"omitempty,oneof=home office other"`
	AddressLine  string `json:"address_line"`
	Barangay     string `json:"barangay"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	IsDefault    *bool  `json:"is_default"`
}

func (s *AddressService) CreateAddress(ctx context.Context, userID string, req *CreateAddressRequest) (*models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	if !IsValidBarangay(req.Barangay) {
		return nil, errors.New("delivery is not available in the selected barangay")
	}

	label := req.Label
	if label == "" {
		label = "home"
	}

	address := &models.Address{
		UserID:       userUUID,
		Label:        label,
		AddressLine:  req.AddressLine,
		Barangay:     req.Barangay,
		City:         "Quezon City",
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		IsDefault:    req.IsDefault,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if req.IsDefault {
		if err := s.addressRepo.UnsetDefaultAddresses(ctx, userUUID); err != nil {
			return nil, err
		}
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	if req.IsDefault {
		if err := s.setUserDefault(ctx, userUUID, address.ID); err != nil {
			return nil, err
		}
	}

	return address, nil
}

func (s *AddressService) setUserDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.DefaultAddressID = &addressID
	return s.userRepo.Update(ctx, user)
}

func (s *AddressService) GetAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	return s.addressRepo.GetByUserID(ctx, userUUID)
}

func (s *AddressService) UpdateAddress(ctx context.Context, userID, addressID string, req *UpdateAddressRequest) (*models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return nil, errors.New("invalid address ID")
	}

	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("address not found")
	}
	if address.UserID != userUUID {
		return nil, errors.New("address not found")
	}

	if req.Label != "" {
		address.Label = req.Label
	}
	if req.AddressLine != "" {
		address.AddressLine = req.AddressLine
	}
	if req.Barangay != "" {
		if !IsValidBarangay(req.Barangay) {
			return nil, errors.New("delivery is not available in the selected barangay")
		}
		address.Barangay = req.Barangay
	}
	if req.ContactName != "" {
		address.ContactName = req.ContactName
	}
	if req.ContactPhone != "" {
		address.ContactPhone = req.ContactPhone
	}
	if req.IsDefault != nil {
		address.IsDefault = *req.IsDefault
		if *req.IsDefault {
			if err := s.addressRepo.UnsetDefaultAddresses(ctx, userUUID); err != nil {
				return nil, err
			}
			if err := s.setUserDefault(ctx, userUUID, address.ID); err != nil {
				return nil, err
			}
		}
	}
	address.UpdatedAt = time.Now()

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return errors.New("invalid address ID")
	}

	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return errors.New("address not found")
	}
	if address.UserID != userUUID {
		return errors.New("address not found")
	}

	return s.addressRepo.Delete(ctx, id)
}
