// Package model holds the stored record shape shared by every persistence adapter.
package model

import (
	"time"

	"addressconv/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressModel is the stored form of an address: one JSON file or one row in
// the 'addresses' table.
type AddressModel struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"not null;autoUpdateTime:false"`
	SourceFormat     string    `json:"source_format" gorm:"type:varchar(16);not null"`
	Kind             string    `json:"kind" gorm:"type:varchar(16);not null"`
	RecipientName    string    `json:"recipient_name,omitempty" gorm:"type:text"`
	CompanyName      string    `json:"company_name,omitempty" gorm:"type:text"`
	Contact          string    `json:"contact,omitempty" gorm:"type:text"`
	ExternalDelivery string    `json:"external_delivery,omitempty" gorm:"type:text"`
	InternalDelivery string    `json:"internal_delivery,omitempty" gorm:"type:text"`
	Postbox          string    `json:"postbox,omitempty" gorm:"type:text"`
	StreetNumber     string    `json:"street_number,omitempty" gorm:"type:varchar(32)"`
	StreetName       string    `json:"street_name" gorm:"type:text;not null"`
	Postcode         string    `json:"postcode" gorm:"type:varchar(16);not null"`
	Town             string    `json:"town" gorm:"type:text;not null"`
	TownLocation     string    `json:"town_location,omitempty" gorm:"type:text"`
	Country          string    `json:"country" gorm:"type:char(2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// FromAddressDomain converts a domain Address entity to its stored form.
func FromAddressDomain(address *entity.Address) *AddressModel {
	if address == nil {
		return nil
	}

	fields := address.Fields()

	return &AddressModel{
		ID:               address.ID(),
		UpdatedAt:        address.UpdatedAt(),
		SourceFormat:     address.Source().String(),
		Kind:             fields.Kind.String(),
		RecipientName:    fields.Recipient.Name,
		CompanyName:      fields.Recipient.CompanyName,
		Contact:          fields.Recipient.Contact,
		ExternalDelivery: fields.DeliveryPoint.External,
		InternalDelivery: fields.DeliveryPoint.Internal,
		Postbox:          fields.DeliveryPoint.Postbox,
		StreetNumber:     fields.Street.Number,
		StreetName:       fields.Street.Name,
		Postcode:         fields.PostalDetails.Postcode,
		Town:             fields.PostalDetails.Town,
		TownLocation:     fields.PostalDetails.TownLocation,
		Country:          fields.Country.Code(),
	}
}

// ToAddressDomain rebuilds the domain Address; corrupted records are rejected.
func ToAddressDomain(data *AddressModel) (*entity.Address, error) {
	fields := entity.CanonicalFields{
		Kind: entity.AddressKind(data.Kind),
		Recipient: entity.Recipient{
			Name:        data.RecipientName,
			CompanyName: data.CompanyName,
			Contact:     data.Contact,
		},
		DeliveryPoint: entity.DeliveryPoint{
			External: data.ExternalDelivery,
			Internal: data.InternalDelivery,
			Postbox:  data.Postbox,
		},
		Street: entity.Street{
			Number: data.StreetNumber,
			Name:   data.StreetName,
		},
		PostalDetails: entity.PostalDetails{
			Postcode:     data.Postcode,
			Town:         data.Town,
			TownLocation: data.TownLocation,
		},
		Country: entity.Country(data.Country),
	}

	return entity.RestoreAddress(data.ID, data.UpdatedAt, entity.Format(data.SourceFormat), fields)
}
