package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"getsbiplay.ru/store/api/pkg/models"
)

const productsCollection = "products"

// Store is the remote tier of the product repository, backed by the products
// collection and keyed on the app-level id field.
type Store struct {
	db *mongo.Database
}

func NewStore(client *mongo.Client, database string) *Store {
	return &Store{db: client.Database(database)}
}

func (s *Store) collection() *mongo.Collection {
	return s.db.Collection(productsCollection)
}

func (s *Store) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.collection().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// Save performs an idempotent upsert keyed by id; create and update are not
// distinguished.
func (s *Store) Save(ctx context.Context, product models.Product) (models.Product, error) {
	filter := bson.D{{Key: "id", Value: product.ID}}
	update := bson.D{{Key: "$set", Value: product}}

	_, err := s.collection().UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// Delete removes the product with the given id. A missing id deletes zero
// documents and is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.collection().DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	return err
}
