package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homebuddy/config"
	"homebuddy/models"
)

// Landlord projections per read path. The full projection is only used for
// single-property reads; list views never expose the avatar.
var (
	landlordListProjection     = bson.M{"name": 1, "email": 1, "phone": 1}
	landlordDetailProjection   = bson.M{"name": 1, "email": 1, "phone": 1, "avatar": 1}
	landlordFeaturedProjection = bson.M{"name": 1, "email": 1}
)

type PropertyStore interface {
	List(ctx context.Context, filter PropertyFilter) ([]models.PropertyDetail, error)
	ListFeatured(ctx context.Context, limit int64) ([]models.PropertyDetail, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.PropertyDetail, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, id primitive.ObjectID, update models.PropertyUpdate) (*models.Property, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoPropertyStore struct {
	properties *mongo.Collection
	users      *mongo.Collection
}

func NewMongoPropertyStore() *MongoPropertyStore {
	propertiesName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if propertiesName == "" {
		propertiesName = "properties"
	}
	usersName := os.Getenv("MONGODB_COLLECTION_USERS")
	if usersName == "" {
		usersName = "users"
	}
	return &MongoPropertyStore{
		properties: config.GetCollection(propertiesName),
		users:      config.GetCollection(usersName),
	}
}

func (s *MongoPropertyStore) List(ctx context.Context, filter PropertyFilter) ([]models.PropertyDetail, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.properties.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return s.attachLandlords(ctx, properties, landlordListProjection)
}

func (s *MongoPropertyStore) ListFeatured(ctx context.Context, limit int64) ([]models.PropertyDetail, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.properties.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return s.attachLandlords(ctx, properties, landlordFeaturedProjection)
}

func (s *MongoPropertyStore) Get(ctx context.Context, id primitive.ObjectID) (*models.PropertyDetail, error) {
	property, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.attachLandlords(ctx, []models.Property{*property}, landlordDetailProjection)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *MongoPropertyStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := s.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *MongoPropertyStore) Create(ctx context.Context, property *models.Property) error {
	// Handlers validate before calling; the store still refuses an
	// over-limit image list rather than trusting the caller.
	if len(property.Images) > models.MaxImages {
		return fmt.Errorf("a property may have at most %d images", models.MaxImages)
	}
	property.ID = primitive.NewObjectID()
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now
	_, err := s.properties.InsertOne(ctx, property)
	return err
}

func (s *MongoPropertyStore) Update(ctx context.Context, id primitive.ObjectID, update models.PropertyUpdate) (*models.Property, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.PropertyType != nil {
		set["propertyType"] = *update.PropertyType
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Bedrooms != nil {
		set["bedrooms"] = *update.Bedrooms
	}
	if update.Bathrooms != nil {
		set["bathrooms"] = *update.Bathrooms
	}
	if update.Area != nil {
		set["area"] = *update.Area
	}
	if update.Images != nil {
		set["images"] = update.Images
	}
	if update.Amenities != nil {
		set["amenities"] = update.Amenities
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var property models.Property
	err := s.properties.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *MongoPropertyStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.properties.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// attachLandlords loads the owning users for a batch of properties in a
// single query and pairs each property with its landlord projection.
func (s *MongoPropertyStore) attachLandlords(ctx context.Context, properties []models.Property, projection bson.M) ([]models.PropertyDetail, error) {
	details := make([]models.PropertyDetail, 0, len(properties))
	if len(properties) == 0 {
		return details, nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0, len(properties))
	for _, property := range properties {
		if !seen[property.Landlord] {
			seen[property.Landlord] = true
			ids = append(ids, property.Landlord)
		}
	}

	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var landlords []models.LandlordInfo
	if err := cursor.All(ctx, &landlords); err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.LandlordInfo, len(landlords))
	for _, landlord := range landlords {
		byID[landlord.ID] = landlord
	}

	for _, property := range properties {
		detail := models.PropertyDetail{Property: property}
		if landlord, ok := byID[property.Landlord]; ok {
			info := landlord
			detail.Landlord = &info
		}
		details = append(details, detail)
	}
	return details, nil
}
