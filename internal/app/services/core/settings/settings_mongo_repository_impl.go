package settings

import (
	"context"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type option struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type SettingsMongoRepository struct {
	Collection *mongo.Collection
}

func NewSettingsMongoRepository(db *mongo.Client, dbName string) contracts.SettingsRepository {
	return &SettingsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOptions),
	}
}

func (repo *SettingsMongoRepository) FindByKeys(ctx context.Context, keys []string) (map[string]string, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var stored []option
	err = cursor.All(ctx, &stored)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	result := make(map[string]string, len(stored))
	for _, opt := range stored {
		result[opt.Key] = opt.Value
	}
	return result, nil
}

func (repo *SettingsMongoRepository) Upsert(ctx context.Context, key, value string) error {
	_, err := repo.Collection.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
