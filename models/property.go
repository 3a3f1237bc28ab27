package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxImages caps the number of image URLs a property may carry. The upload
// endpoint enforces the same cap client-side; this is the defensive check
// before any store write.
const MaxImages = 5

var PropertyTypes = []string{"Apartment", "House & Villa", "Office & Studio", "Commercial", "Homes & Villas", "Condos"}

var Categories = []string{"For Rent", "For Sale"}

var PropertyStatuses = []string{"available", "rented", "unavailable"}

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Location     string             `bson:"location" json:"location"`
	PropertyType string             `bson:"propertyType" json:"propertyType"`
	Category     string             `bson:"category" json:"category"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int                `bson:"bathrooms" json:"bathrooms"`
	Area         float64            `bson:"area,omitempty" json:"area,omitempty"`
	Images       []string           `bson:"images" json:"images"`
	Amenities    []string           `bson:"amenities" json:"amenities"`
	Landlord     primitive.ObjectID `bson:"landlord" json:"landlord"`
	Status       string             `bson:"status" json:"status"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyDefaults fills the schema defaults for fields the client omitted.
func (p *Property) ApplyDefaults() {
	if p.Category == "" {
		p.Category = "For Rent"
	}
	if p.Bedrooms == 0 {
		p.Bedrooms = 1
	}
	if p.Bathrooms == 0 {
		p.Bathrooms = 1
	}
	if p.Status == "" {
		p.Status = "available"
	}
}

func (p *Property) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("Please add a property title")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errors.New("Please add a description")
	}
	if p.Price < 0 {
		return errors.New("Price must be a non-negative number")
	}
	if strings.TrimSpace(p.Location) == "" {
		return errors.New("Please add a location")
	}
	if !contains(PropertyTypes, p.PropertyType) {
		return fmt.Errorf("Invalid property type: %s", p.PropertyType)
	}
	if !contains(Categories, p.Category) {
		return fmt.Errorf("Invalid category: %s", p.Category)
	}
	if p.Bedrooms < 1 {
		return errors.New("Bedrooms must be at least 1")
	}
	if p.Bathrooms < 1 {
		return errors.New("Bathrooms must be at least 1")
	}
	if p.Area < 0 {
		return errors.New("Area must be a non-negative number")
	}
	if len(p.Images) > MaxImages {
		return fmt.Errorf("A property may have at most %d images", MaxImages)
	}
	if !contains(PropertyStatuses, p.Status) {
		return fmt.Errorf("Invalid status: %s", p.Status)
	}
	return nil
}

// PropertyUpdate is the partial-update body for PUT /api/properties/:id.
// Nil fields are left untouched; the landlord reference is deliberately not
// representable here, so it can never be overwritten through an update.
type PropertyUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Location     *string  `json:"location"`
	PropertyType *string  `json:"propertyType"`
	Category     *string  `json:"category"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Area         *float64 `json:"area"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	Status       *string  `json:"status"`
	Featured     *bool    `json:"featured"`
}

func (u *PropertyUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return errors.New("Please add a property title")
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		return errors.New("Please add a description")
	}
	if u.Price != nil && *u.Price < 0 {
		return errors.New("Price must be a non-negative number")
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) == "" {
		return errors.New("Please add a location")
	}
	if u.PropertyType != nil && !contains(PropertyTypes, *u.PropertyType) {
		return fmt.Errorf("Invalid property type: %s", *u.PropertyType)
	}
	if u.Category != nil && !contains(Categories, *u.Category) {
		return fmt.Errorf("Invalid category: %s", *u.Category)
	}
	if u.Bedrooms != nil && *u.Bedrooms < 1 {
		return errors.New("Bedrooms must be at least 1")
	}
	if u.Bathrooms != nil && *u.Bathrooms < 1 {
		return errors.New("Bathrooms must be at least 1")
	}
	if u.Area != nil && *u.Area < 0 {
		return errors.New("Area must be a non-negative number")
	}
	if u.Images != nil && len(u.Images) > MaxImages {
		return fmt.Errorf("A property may have at most %d images", MaxImages)
	}
	if u.Status != nil && !contains(PropertyStatuses, *u.Status) {
		return fmt.Errorf("Invalid status: %s", *u.Status)
	}
	return nil
}

// LandlordInfo is the public projection of a property's owner. Only the
// fields selected by the store's projection are populated; credential
// material never leaves the users collection.
type LandlordInfo struct {
	ID     primitive.ObjectID `bson:"_id" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Phone  string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// PropertyDetail is a property enriched with its landlord projection. The
// outer Landlord field shadows the embedded ObjectID reference in JSON.
type PropertyDetail struct {
	Property
	Landlord *LandlordInfo `json:"landlord"`
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
