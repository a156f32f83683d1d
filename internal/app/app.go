package app

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/middleware"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/connection"
)

// backends holds whichever persistence handles the configured driver
// produced. Exactly one of gorm/mongo is non-nil.
type backends struct {
	driver connection.Driver
	gorm   *gorm.DB
	mongo  *mongo.Database
}

func connectBackends() (*backends, error) {
	driver, err := connection.ParseDriver(os.Getenv("DB_DRIVER"))
	if err != nil {
		return nil, err
	}

	b := &backends{driver: driver}

	switch driver {
	case connection.DriverMongo:
		db, err := connection.ConnectMongoWithRetry(
			os.Getenv("MONGO_URI"),
			os.Getenv("MONGO_DB"),
			5,
		)
		if err != nil {
			return nil, err
		}
		b.mongo = db
	default:
		db, err := connection.ConnectGORMWithRetry(
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
			5,
		)
		if err != nil {
			return nil, err
		}
		b.gorm = db
	}

	return b, nil
}

func kafkaBrokers() []string {
	raw := os.Getenv("KAFKA_BROKERS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

// BuildApp connects infrastructure and mounts every module's routes on
// the router.
func BuildApp(router *gin.Engine) error {
	b, err := connectBackends()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, b, redisClient)
}
