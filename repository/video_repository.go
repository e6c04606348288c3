package repository

import (
	"context"

	"github.com/medina-atelier/admin-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoVideoRepository implements VideoRepository on a Mongo collection.
type MongoVideoRepository struct {
	collection *mongo.Collection
}

func NewMongoVideoRepository(db *mongo.Database) *MongoVideoRepository {
	return &MongoVideoRepository{collection: db.Collection("videos")}
}

func (r *MongoVideoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

func (r *MongoVideoRepository) Insert(ctx context.Context, video *models.CoverVideo) error {
	_, err := r.collection.InsertOne(ctx, video)
	return err
}

func (r *MongoVideoRepository) FindFirst(ctx context.Context) (*models.CoverVideo, error) {
	var video models.CoverVideo
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}
