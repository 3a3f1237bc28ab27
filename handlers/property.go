package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"homebuddy/models"
	"homebuddy/store"
	"homebuddy/utils"
)

const (
	featuredLimit    = 6
	propertyCacheTTL = 5 * time.Minute
	// Cache key namespace for property reads; mutations drop the whole
	// namespace rather than tracking which filtered lists a write affects.
	propertyCachePrefix = "properties"
)

type PropertyController struct {
	store store.PropertyStore
}

func NewPropertyController(s store.PropertyStore) *PropertyController {
	return &PropertyController{store: s}
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	filter := store.ParsePropertyFilter(c.QueryParams())

	var cacheKey string
	if utils.RedisClient != nil {
		cacheKey = utils.GenerateQueryCacheKey(propertyCachePrefix, map[string]string{
			"location":     c.QueryParam("location"),
			"propertyType": c.QueryParam("propertyType"),
			"category":     c.QueryParam("category"),
			"minPrice":     c.QueryParam("minPrice"),
			"maxPrice":     c.QueryParam("maxPrice"),
		})
		var cached []models.PropertyDetail
		if found, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && found {
			return c.JSON(http.StatusOK, cached)
		}
	}

	properties, err := pc.store.List(context.Background(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch properties"})
	}
	if properties == nil {
		properties = []models.PropertyDetail{}
	}

	if utils.RedisClient != nil {
		_ = utils.SetCached(context.Background(), cacheKey, properties, propertyCacheTTL)
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetFeaturedProperties(c echo.Context) error {
	cacheKey := propertyCachePrefix + ":featured"
	if utils.RedisClient != nil {
		var cached []models.PropertyDetail
		if found, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && found {
			return c.JSON(http.StatusOK, cached)
		}
	}

	properties, err := pc.store.ListFeatured(context.Background(), featuredLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch featured properties"})
	}
	if properties == nil {
		properties = []models.PropertyDetail{}
	}

	if utils.RedisClient != nil {
		_ = utils.SetCached(context.Background(), cacheKey, properties, propertyCacheTTL)
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
	}

	property, err := pc.store.Get(context.Background(), id)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	property.ID = primitive.NilObjectID
	property.Landlord = userID
	property.ApplyDefaults()
	if err := property.Validate(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}

	if err := pc.store.Create(context.Background(), &property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create property"})
	}

	invalidatePropertyCache()
	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
	}

	var update models.PropertyUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := update.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	// Ownership is checked against a fresh load on every mutation.
	property, err := pc.store.FindByID(context.Background(), id)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch property"})
	}
	if property.Landlord.Hex() != userID.Hex() {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Not authorized to update this property"})
	}

	updated, err := pc.store.Update(context.Background(), id, update)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update property"})
	}

	invalidatePropertyCache()
	return c.JSON(http.StatusOK, updated)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
	}

	property, err := pc.store.FindByID(context.Background(), id)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch property"})
	}
	if property.Landlord.Hex() != userID.Hex() {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Not authorized to delete this property"})
	}

	if err := pc.store.Delete(context.Background(), id); err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete property"})
	}

	invalidatePropertyCache()
	return c.JSON(http.StatusOK, map[string]string{"message": "Property removed"})
}

func invalidatePropertyCache() {
	if utils.RedisClient != nil {
		_ = utils.InvalidateByPrefix(context.Background(), propertyCachePrefix)
	}
}
