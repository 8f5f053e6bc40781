package dto

import (
	"storekeep/internal/core/entity"
	"storekeep/internal/domain/catalogs/supplier"
)

// ContactDTO is the nested contact block of a supplier.
type ContactDTO struct {
	Phone        string `json:"phone" binding:"omitempty,max=32,printascii"`
	OtherContact string `json:"otherContact" binding:"max=255"`
	Email        string `json:"email" binding:"omitempty,email"`
}

// AddressDTO is the nested address block of a supplier.
type AddressDTO struct {
	City       string `json:"city" binding:"max=128"`
	District   string `json:"district" binding:"max=128"`
	PostalCode string `json:"postalCode" binding:"max=16"`
}

// --- Request DTOs ---

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Name    string        `json:"name" binding:"required,max=255"`
	Contact ContactDTO    `json:"contact"`
	Address AddressDTO    `json:"address"`
	Status  entity.Status `json:"status" binding:"entity_status"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.NewSupplier(r.Name,
		supplier.Contact{
			Phone:        r.Contact.Phone,
			OtherContact: r.Contact.OtherContact,
			Email:        r.Contact.Email,
		},
		supplier.Address{
			City:       r.Address.City,
			District:   r.Address.District,
			PostalCode: r.Address.PostalCode,
		},
	)
	s.Status = r.Status
	return s
}

// --- Response DTOs ---

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Contact ContactDTO    `json:"contact"`
	Address AddressDTO    `json:"address"`
	Status  entity.Status `json:"status"`
	TimestampsResponse
}

// FromSupplier creates response DTO from domain entity.
func FromSupplier(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:   s.ID,
		Name: s.Name,
		Contact: ContactDTO{
			Phone:        s.Phone,
			OtherContact: s.OtherContact,
			Email:        s.Email,
		},
		Address: AddressDTO{
			City:       s.City,
			District:   s.District,
			PostalCode: s.PostalCode,
		},
		Status:             s.Status,
		TimestampsResponse: FromTimestamps(s.Timestamps),
	}
}
