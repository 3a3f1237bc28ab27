package store

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"homebuddy/models"
)

// PropertyFilter is the parsed search configuration for property listings.
// Zero-value fields impose no constraint; all supplied constraints combine
// with logical AND.
type PropertyFilter struct {
	Location     string
	PropertyType string
	Category     string
	MinPrice     *float64
	MaxPrice     *float64
}

// ParsePropertyFilter reads the supported query parameters into a filter.
// Non-numeric minPrice/maxPrice values are treated as absent rather than
// rejected; numeric coercion happens here and nowhere else.
func ParsePropertyFilter(params url.Values) PropertyFilter {
	filter := PropertyFilter{
		Location:     params.Get("location"),
		PropertyType: params.Get("propertyType"),
		Category:     params.Get("category"),
	}
	if v := params.Get("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := params.Get("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &max
		}
	}
	return filter
}

// BSON renders the filter as a Mongo query document. An empty filter yields
// an empty document, which matches every property.
func (f PropertyFilter) BSON() bson.M {
	query := bson.M{}
	if f.Location != "" {
		query["location"] = bson.M{"$regex": f.Location, "$options": "i"}
	}
	if f.PropertyType != "" {
		query["propertyType"] = f.PropertyType
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}
	return query
}

// Matches is the in-memory equivalent of BSON: it reports whether p
// satisfies every supplied constraint. Location matching is a
// case-insensitive substring test; price bounds are inclusive on both ends.
func (f PropertyFilter) Matches(p models.Property) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}
