package main

import (
	"fmt"
	"net/http"

	"fleetlink/config"
	"fleetlink/db"
	"fleetlink/db/mongo"
	"fleetlink/db/postgres"
	"fleetlink/handlers"
	"fleetlink/repository"
	"fleetlink/routes"
	"fleetlink/services"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var clientRepo repository.ClientRepository
	var orderRepo repository.OrderRepository
	var fleetRepo repository.FleetRepository
	var userRepo repository.UserRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		clientRepo = repository.NewPostgresClientRepo(pg.Conn)
		orderRepo = repository.NewPostgresOrderRepo(pg.Conn)
		fleetRepo = repository.NewPostgresFleetRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		clientRepo = repository.NewMongoClientRepo(mg.Client)
		orderRepo = repository.NewMongoOrderRepo(mg.Client)
		fleetRepo = repository.NewMongoFleetRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	case db.Memory:
		clientRepo = repository.NewMemoryClientRepo()
		orderRepo = repository.NewMemoryOrderRepo()
		fleetRepo = repository.NewMemoryFleetRepo()
		userRepo = repository.NewMemoryUserRepo()

	default:
		panic("DB_TYPE not supported")
	}

	// Distance resolution: external API when configured, static table otherwise.
	var distanceService services.DistanceService
	if cfg.DistanceAPIURL != "" {
		distanceService = services.NewHTTPDistanceService(cfg.DistanceAPIURL)
	} else {
		distanceService = services.NewStaticDistanceService()
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	clientHandler := &handlers.ClientHandler{Repo: clientRepo}
	orderHandler := &handlers.OrderHandler{Repo: orderRepo, Fleet: fleetRepo}
	fleetHandler := &handlers.FleetHandler{Repo: fleetRepo}
	distanceHandler := &handlers.DistanceHandler{Service: distanceService}
	paymentHandler := &handlers.PaymentHandler{}
	uploadHandler := &handlers.UploadHandler{}
	invoiceHandler := &handlers.InvoiceHandler{Repo: orderRepo, SavePath: cfg.PDFSavePath}

	routes.SetupRoutes(
		userHandler,
		clientHandler,
		orderHandler,
		fleetHandler,
		distanceHandler,
		paymentHandler,
		uploadHandler,
		invoiceHandler,
	)

	port := cfg.Port
	fmt.Printf("Server running on port %s (db=%s)\n", port, cfg.DBType)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
