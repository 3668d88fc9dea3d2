package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"club-management-system/console"
	"club-management-system/handlers"
	"club-management-system/middleware"
	"club-management-system/models"
	"club-management-system/repository"
	"club-management-system/services"
	"club-management-system/utils"
	"club-management-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	memberRepo, tournamentRepo := buildRepositories()

	memberRegistry := services.NewMemberRegistry(memberRepo)
	tournamentRegistry := services.NewTournamentRegistry(tournamentRepo)
	engine := services.NewRegistrationEngine(tournamentRepo, memberRepo)
	reports := services.NewReportService(tournamentRepo, memberRepo)

	if err := utils.InitR2(); err != nil {
		log.Printf("⚠️  R2 not configured, CSV export disabled: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if strings.EqualFold(os.Getenv("APP_MODE"), "console") {
		cli := console.New(memberRegistry, tournamentRegistry, engine, reports, os.Stdin, os.Stdout)
		cli.Run(ctx)
		return
	}

	sched, err := workers.StartMembershipExpiryWorker(memberRepo)
	if err != nil {
		log.Fatal("failed to start membership expiry worker:", err)
	}
	defer func() { _ = sched.Shutdown() }()

	app := fiber.New()

	app.Use(middleware.APIKeyMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-Api-Key",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	handlers.SetupMemberRoutes(app, memberRegistry)
	handlers.SetupTournamentRoutes(app, tournamentRegistry, engine)
	handlers.SetupReportRoutes(app, reports)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Membership expiry worker running")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// buildRepositories picks the storage backend: Postgres when DATABASE_URL is
// set, in-memory otherwise. The in-memory backend is meant for console mode
// and local experiments; server mode works against either.
func buildRepositories() (repository.MemberRepository, repository.TournamentRepository) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("⚠️  DATABASE_URL not set, using in-memory storage (data is not persisted)")
		members := repository.NewMemoryMemberRepository()
		tournaments := repository.NewMemoryTournamentRepository(members)
		return members, tournaments
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}
	if err := db.AutoMigrate(
		&models.Member{},
		&models.Tournament{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}
	return repository.NewGormMemberRepository(db), repository.NewGormTournamentRepository(db)
}
