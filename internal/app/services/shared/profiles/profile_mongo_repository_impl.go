package profiles

import (
	"context"
	"errors"
	"riraku-service/internal/app/contracts"
	"riraku-service/internal/app/models"
	"riraku-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollection = "contact_profiles"

type profileMongoRepository struct {
	collection *mongo.Collection
}

func NewProfileMongoRepository(client *mongo.Client, dbName string) contracts.ProfileRepository {
	return &profileMongoRepository{
		collection: client.Database(dbName).Collection(profileCollection),
	}
}

func (r *profileMongoRepository) Upsert(ctx context.Context, profile *models.ContactProfile) error {
	filter := bson.M{"phone": profile.Phone}
	update := bson.M{"$set": bson.M{
		"name":       profile.Name,
		"phone":      profile.Phone,
		"email":      profile.Email,
		"updated_at": profile.UpdatedAt,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}

func (r *profileMongoRepository) FindByPhone(ctx context.Context, phone string) (*models.ContactProfile, error) {
	var profile models.ContactProfile
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}
