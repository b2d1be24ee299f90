package main

import (
	"identity-market/pkg/appbuilder"
	"identity-market/pkg/logger"
	"identity-market/pkg/rabbitmq"
	"identity-market/pkg/rest"
	"identity-market/src/database"
	"identity-market/src/engine"
	"identity-market/src/goals"
	"identity-market/src/identity"
	"identity-market/src/indexer"
	"identity-market/src/market"
	"identity-market/src/middleware"
	"identity-market/src/outbox"
	"identity-market/src/payments"
	"identity-market/src/reputation"
)

// @title           Identity Market API
// @version         1.0
// @description     API to manage reputation-bearing identities, goals and the resale market
// @host localhost:9000
// @BasePath /v1
func main() {

	var identityHandler *identity.Handler
	var reputationHandler *reputation.Handler
	var goalsHandler *goals.Handler
	var marketHandler *market.Handler

	appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{}).
		LoadConfig("config.json").
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			// ----- DATABASE + MIGRATIONS -----
			database.ConnectToDatabase(a.Config.GetDatabaseConnectionString())
			database.RunMigrations()
		}).

		// ----- RABBITMQ -----
		InitRabbitmqConnection().
		InitRabbitmqRegistries().
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			// ----- RABBITMQ LOGGING SINK -----
			logPublisher := rabbitmq.GetPublisher("LogPublisher")
			loggerInstance := logger.Default()
			logSink := rabbitmq.CreateRabbitmqLoggerSink(logPublisher)
			logger.AddSinkToLoggerInstance(loggerInstance, logSink)

			// ----- CORE ENGINE -----
			settlementPublisher := rabbitmq.GetPublisher(payments.SettlementPublisher)
			core := engine.New(
				a.Config.GetEngineConfig(),
				engine.WithEventSink(outbox.NewSink(outbox.NewRepo())),
				engine.WithPaymentSender(payments.NewQueuePaymentSender(settlementPublisher)),
				engine.WithLogger(logger.Default()),
			)

			identityHandler = identity.Build(core)
			reputationHandler = reputation.Build(core)
			goalsHandler = goals.Build(core)
			marketHandler = market.Build(core)
		}).

		// ----- WORKERS -----
		AddWorkerServices(
			outbox.NewOutboxWorker(),
			indexer.NewIndexerWorker(),
		).

		// ----- CORS -----
		AddGinMiddleware(
			rest.NewMiddleware("*", middleware.CORSMiddleware()),
		).

		// ----- ROUTES -----
		AddGinRoutes(
			// Registry
			rest.NewRoute(rest.POST, "v1", "identity", middleware.RequireAccount(), identityHandler.CreateIdentity),
			rest.NewRoute(rest.GET, "v1", "identity/:id", identityHandler.GetIdentity),
			rest.NewRoute(rest.POST, "v1", "identity/:id/verify", middleware.RequireAccount(), identityHandler.VerifyIdentity),
			rest.NewRoute(rest.GET, "v1", "identity/:id/metadata", identityHandler.GetMetadata),

			// Reputation + achievements
			rest.NewRoute(rest.POST, "v1", "identity/:id/reputation", middleware.RequireAccount(), reputationHandler.UpdateReputation),
			rest.NewRoute(rest.POST, "v1", "identity/:id/achievements", middleware.RequireAccount(), reputationHandler.AddAchievement),
			rest.NewRoute(rest.GET, "v1", "identity/:id/achievements", reputationHandler.GetAchievements),

			// Goals
			rest.NewRoute(rest.POST, "v1", "identity/:id/goals", middleware.RequireAccount(), goalsHandler.SetGoal),
			rest.NewRoute(rest.GET, "v1", "identity/:id/goals", goalsHandler.GetGoals),
			rest.NewRoute(rest.POST, "v1", "identity/:id/goals/:goal/progress", middleware.RequireAccount(), goalsHandler.RecordProgress),
			rest.NewRoute(rest.POST, "v1", "identity/:id/goals/:goal/evaluate", goalsHandler.EvaluateDeadline),

			// Market
			rest.NewRoute(rest.POST, "v1", "market/:id/list", middleware.RequireAccount(), marketHandler.List),
			rest.NewRoute(rest.POST, "v1", "market/:id/buy", middleware.RequireAccount(), marketHandler.Buy),
			rest.NewRoute(rest.POST, "v1", "market/:id/unlist", middleware.RequireAccount(), marketHandler.Unlist),
			rest.NewRoute(rest.GET, "v1", "identity/:id/listing", marketHandler.GetListing),
		).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}
