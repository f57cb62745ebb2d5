package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/progress-card/internal/models"
)

// ErrTableNotFound is returned when the collection holds no document for a table.
var ErrTableNotFound = errors.New("table not found")

const tableDocumentType = "table"

type queryObserver interface {
	ObserveStoreQuery(table string, duration time.Duration)
}

type tableDocument struct {
	Type string   `bson:"type"`
	Name string   `bson:"name"`
	Data []bson.M `bson:"data"`
}

// TableRepository reads logical tables from the progress card collection, where each
// table is stored as a single {type: "table", name, data: [...]} document.
type TableRepository struct {
	collection *mongo.Collection
	metrics    queryObserver
}

// NewTableRepository constructs a table repository over the given collection.
func NewTableRepository(collection *mongo.Collection, metrics queryObserver) *TableRepository {
	return &TableRepository{collection: collection, metrics: metrics}
}

// Rows returns the raw rows of the named table.
func (r *TableRepository) Rows(ctx context.Context, name models.TableName) ([]bson.M, error) {
	start := time.Now()
	var doc tableDocument
	err := r.collection.FindOne(ctx, bson.M{"type": tableDocumentType, "name": string(name)}).Decode(&doc)
	if r.metrics != nil {
		r.metrics.ObserveStoreQuery(string(name), time.Since(start))
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", name, ErrTableNotFound)
		}
		return nil, fmt.Errorf("find table %s: %w", name, err)
	}
	if doc.Data == nil {
		return []bson.M{}, nil
	}
	return doc.Data, nil
}
