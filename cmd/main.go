package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/pharmacy-delivery-service/docs"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/app"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/catalog"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/checkout"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/events"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/handler"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/i18n"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/postgres"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/cache"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Pharmacy Delivery API
// @version         1.0
// @description     Checkout, delivery and order tracking HTTP API
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	store := newStorage(ctx, logger, conf)
	defer store.Close()

	var publisher interface {
		service.EventPublisher
		io.Closer
	} = events.NopPublisher{}
	if conf.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(logger, conf.Kafka)
	}

	trackingCache := cache.NewLRUCache[[]byte](conf.Cache.Capacity, conf.Cache.TTL)
	sessionCache := cache.NewLRUCache[*checkout.Session](conf.Checkout.SessionCapacity, conf.Checkout.SessionTTL)

	deliveryService := service.NewDeliveryService(logger, store.slots, conf.Checkout.SlotCapacity)
	addressService := service.NewAddressService(logger, repo.NewMemoryAddressRepo(catalog.SeedAddresses()), conf.Store.StrictIDs)
	orderService := service.NewOrderService(logger, store.txManager, store.orders, trackingCache, publisher, deliveryService, conf.Store.StrictIDs)
	checkoutService := service.NewCheckoutService(
		logger,
		sessionCache,
		addressService,
		deliveryService,
		catalog.Static{},
		orderService,
		conf.Checkout.TrackingDelay,
	)

	translator := i18n.New(i18n.Language(conf.DefaultLanguage))
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewCatalogHandler(logger, translator, catalog.Static{}),
		handler.NewAddressHandler(logger, translator, addressService),
		handler.NewDeliveryHandler(logger, translator, deliveryService, addressService),
		handler.NewCheckoutHandler(logger, translator, checkoutService),
		handler.NewOrderHandler(logger, translator, orderService),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(trackingCache, sessionCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

type storage struct {
	orders    service.OrderRepo
	slots     service.SlotRepo
	txManager trm.Manager
	close     func() error
}

func (s storage) Close() error {
	return s.close()
}

func newStorage(ctx context.Context, logger *slog.Logger, conf config.Config) storage {
	if conf.StorageDriver == config.StorageMemory {
		logger.Info("using in-memory storage")
		return storage{
			orders:    repo.NewMemoryOrderRepo(),
			slots:     repo.NewMemorySlotRepo(),
			txManager: trm.NewNopManager(),
			close:     func() error { return nil },
		}
	}

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(ctx, db))

	pg := repo.NewPostgresRepo(db)
	return storage{
		orders:    pg,
		slots:     pg,
		txManager: trm.NewManager(db),
		close:     db.Close,
	}
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
