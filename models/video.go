package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CoverVideo is the homepage cover video, stored inline as base64. At most
// one document is intended to exist in the collection.
type CoverVideo struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Data        string             `json:"data" bson:"data"`
	ContentType string             `json:"contentType" bson:"contentType"`
}
