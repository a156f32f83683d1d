package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/events"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/settings"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/connection"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/smsgateway"
)

// RunConsumer reads lifecycle events and dispatches notifications built
// from the stored SMS/email templates.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	b, err := connectBackends()
	if err != nil {
		return err
	}

	brokers := kafkaBrokers()
	if len(brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	var (
		smsRepo      smsgateway.Repository
		settingsRepo settings.Repository
	)
	if b.driver == connection.DriverMongo {
		smsRepo = smsgateway.NewMongoRepository(b.mongo)
		settingsRepo = settings.NewMongoRepository(b.mongo)
	} else {
		smsRepo = smsgateway.NewRepository(b.gorm)
		settingsRepo = settings.NewRepository(b.gorm)
	}

	smsAdapter := smsgateway.NewNotificationAdapter(smsRepo)
	emailAdapter := settings.NewNotificationAdapter(settingsRepo)

	dispatcher := notification.NewDispatcher(smsAdapter, emailAdapter, smsAdapter, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        brokers,
		GroupTopics:    []string{events.UserLifecycleTopic, events.JobLifecycleTopic},
		GroupID:        "talent-spark-notifications",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go dispatcher.Consume(ctx, reader)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
