package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"farm_hub/internal/application/catalog"
	"farm_hub/internal/application/order"
	"farm_hub/internal/config"
	"farm_hub/internal/infrastructure/encoding/avro"
	ginserver "farm_hub/internal/infrastructure/http/gin"
	"farm_hub/internal/infrastructure/http/twilio"
	kafkainfra "farm_hub/internal/infrastructure/messaging/kafka"
	"farm_hub/internal/infrastructure/metrics"
	"farm_hub/internal/infrastructure/notification/whatsapp"
	"farm_hub/internal/infrastructure/persistence/sheets"
	"farm_hub/internal/interfaces/http/handler"
	"farm_hub/internal/interfaces/http/router"
	"farm_hub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env, cfg.App.Name)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.App.Location()
	if err != nil {
		appLog.Fatal("load notify timezone failed", logger.Error(err))
	}

	sheetsClient, err := sheets.NewClient(context.Background(), cfg.Sheets)
	if err != nil {
		appLog.Fatal("google sheets client failed", logger.Error(err))
	}
	productRepo := sheets.NewProductRepository(sheetsClient, cfg.Sheets.ProductsRange())
	orderRepo := sheets.NewOrderRepository(sheetsClient, cfg.Sheets.OrdersRange())

	notifiers := []order.Notifier{
		whatsapp.NewNotifier(twilio.NewClient(cfg.Twilio), cfg.Twilio, cfg.App.ShopName, appLog),
	}

	if cfg.Kafka.Enabled() {
		producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka, appLog)
		if err != nil {
			appLog.Fatal("kafka producer failed", logger.Error(err))
		}
		defer producer.Close(context.Background())

		encoder, err := avro.NewOrderPlacedEncoder()
		if err != nil {
			appLog.Fatal("avro encoder failed", logger.Error(err))
		}
		notifiers = append(notifiers, kafkainfra.NewEventNotifier(producer, encoder, cfg.App.ShopName))
	}

	engine := ginserver.NewEngine(appLog, cfg.App.Env)
	handlers := router.Handlers{}

	opts := []order.Option{order.WithLocation(loc)}
	if cfg.Metrics.Enabled {
		reg := metrics.NewRegistry()
		engine.Use(ginserver.Metrics(reg))
		opts = append(opts, order.WithRecorder(reg))
		handlers.Metrics = reg.Handler()
	}

	handlers.Products = handler.NewProductHandler(catalog.NewService(productRepo))
	handlers.Orders = handler.NewOrderHandler(order.NewService(orderRepo, notifiers, appLog, opts...))
	router.RegisterRoutes(engine, handlers)

	server := ginserver.NewServer(cfg.Server, engine, appLog)
	if err := server.Run(ctx); err != nil {
		appLog.Fatal("server run failed", logger.Error(err))
	}
}
