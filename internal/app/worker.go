package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/connection"
)

// RunWorker polls the transactional outbox and publishes pending events
// to kafka until the process is signalled.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	b, err := connectBackends()
	if err != nil {
		return err
	}

	brokers := kafkaBrokers()
	if len(brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(brokers, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	var outboxRepo notification.OutboxRepository
	if b.driver == connection.DriverMongo {
		outboxRepo = notification.NewMongoOutboxRepository(b.mongo)
	} else {
		outboxRepo = notification.NewOutboxRepository(b.gorm)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go notification.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
