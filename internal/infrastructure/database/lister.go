package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"songart/internal/domain/model"
	"songart/pkg/logger"
)

type MediaLister struct {
	db *Database
}

func NewMediaLister(db *Database) *MediaLister {
	return &MediaLister{db: db}
}

// Recent returns catalog rows ordered newest first.
func (l *MediaLister) Recent(ctx context.Context, limit int64) ([]model.MediaObject, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(MediaCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "upload_time", Value: -1}}).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("failed to list media catalog", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	var media []model.MediaObject
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}

	return media, nil
}
