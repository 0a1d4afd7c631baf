package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctrlz-wear/ctrlz-api/app/models"
	"github.com/ctrlz-wear/ctrlz-api/pkg/metrics"
)

const productCollection = "product"

// MongoProductStore implements ProductStore over a MongoDB collection. The
// database handle is injected at construction; a nil handle is a valid state
// meaning "not connected" and makes every operation report unavailability.
type MongoProductStore struct {
	db *mongo.Database
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{db: db}
}

func (s *MongoProductStore) Available() bool {
	return s.db != nil
}

func (s *MongoProductStore) col() *mongo.Collection {
	return s.db.Collection(productCollection)
}

func (s *MongoProductStore) CountAll(ctx context.Context) (int64, error) {
	if !s.Available() {
		return 0, ErrStoreUnavailable
	}
	defer metrics.ObserveStoreQuery("count", time.Now())

	n, err := s.col().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (s *MongoProductStore) InsertMany(ctx context.Context, products []models.Product) error {
	if !s.Available() {
		return ErrStoreUnavailable
	}
	if len(products) == 0 {
		return nil
	}
	defer metrics.ObserveStoreQuery("insert", time.Now())

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}

	if _, err := s.col().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

func (s *MongoProductStore) Find(ctx context.Context, filter Filter, limit int64) ([]models.Product, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}
	defer metrics.ObserveStoreQuery("find", time.Now())

	cur, err := s.col().Find(ctx, bsonFilter(filter), options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return out, nil
}

func (s *MongoProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	defer metrics.ObserveStoreQuery("find_one", time.Now())

	var p models.Product
	err = s.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &p, nil
}

// bsonFilter compiles a Filter into a Mongo query document. The category
// regex is anchored for an exact case-insensitive match; the search term is
// an unanchored case-insensitive substring over name, description and tags.
// User input is escaped so it matches literally, never as a pattern.
func bsonFilter(f Filter) bson.M {
	q := bson.M{}

	if f.Category != "" {
		q["category"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(f.Category) + "$",
			Options: "i",
		}
	}

	if f.Query != "" {
		sub := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"name": sub},
			bson.M{"description": sub},
			bson.M{"tags": sub},
		}
	}

	return q
}
