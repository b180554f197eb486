package pages

import (
	"context"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PageMongoRepository struct {
	Collection *mongo.Collection
}

func NewPageMongoRepository(db *mongo.Client, dbName string) contracts.PageRepository {
	return &PageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPages),
	}
}

func (repo *PageMongoRepository) FindByID(ctx context.Context, pageID string) (*models.Page, error) {
	return repo.findOne(ctx, bson.M{"_id": pageID})
}

func (repo *PageMongoRepository) FindTranslation(ctx context.Context, translationGroup, language string) (*models.Page, error) {
	return repo.findOne(ctx, bson.M{
		"translation_group": translationGroup,
		"language":          language,
	})
}

func (repo *PageMongoRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &pages)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return pages, nil
}

func (repo *PageMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Page, error) {
	var page models.Page
	err := repo.Collection.FindOne(ctx, filter).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &page, nil
}
