package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"

	"getsbiplay.ru/store/api/internal/router"
	"getsbiplay.ru/store/api/pkg/cart"
	"getsbiplay.ru/store/api/pkg/global"
	"getsbiplay.ru/store/api/pkg/mongo"
	"getsbiplay.ru/store/api/pkg/redis"
	"getsbiplay.ru/store/api/pkg/store"
	"getsbiplay.ru/store/api/pkg/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Remote tier. A missing URI or failed connection is not fatal; the
	// repository serves the local store instead.
	var mongoClient *mongodriver.Client
	var primary store.ProductStore
	if uri := global.GetMongoURI(); uri != "" {
		client, err := mongo.Connect(uri)
		if err != nil {
			log.Printf("Warning: remote product store unavailable: %v", err)
		} else {
			mongoClient = client
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Printf("Warning: mongo disconnect: %v", err)
				}
			}()

			remote := mongo.NewStore(client, global.GetDatabaseName())
			remote.EnsureIndexesOnStartup()
			primary = remote
			log.Println("Connected to MongoDB successfully")
		}
	} else {
		log.Println("MONGODB_URI not set; remote product store disabled")
	}

	// Local tier: Redis when configured, in-memory otherwise.
	var secondary store.ProductStore
	var carts cart.Store
	if os.Getenv("REDIS_ADDRESS") != "" {
		client := redis.NewClient()
		defer client.Close()

		secondary = redis.NewProductStore(client)
		carts = redis.NewCartStore(client)
	} else {
		log.Println("REDIS_ADDRESS not set; using in-memory local store")
		secondary = store.NewMemory()
		carts = cart.NewMemoryStore()
	}

	products := store.NewFallback(primary, secondary)
	notifier := telegram.NewNotifierFromEnv()

	h := router.NewHandler(products, carts, notifier, mongoClient)
	r := router.New(h)

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
