package mongo

import (
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"getsbiplay.ru/store/api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Upserts and deletes are keyed on the app-level id.
	{
		CollectionName: productsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_product_id_unique"),
		},
	},
	// Category filtering on the catalog page.
	{
		CollectionName: productsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		},
	},
}

func (s *Store) EnsureIndexes() error {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	for _, cfg := range requiredIndexes {
		collection := s.db.Collection(cfg.CollectionName)
		if _, err := collection.Indexes().CreateOne(ctx, cfg.IndexModel); err != nil {
			return fmt.Errorf("create index on %s: %w", cfg.CollectionName, err)
		}
	}

	return nil
}

// EnsureIndexesOnStartup logs instead of failing; the store stays usable
// without its indexes.
func (s *Store) EnsureIndexesOnStartup() {
	if err := s.EnsureIndexes(); err != nil {
		log.Printf("Warning: failed to ensure indexes: %v", err)
	}
}
