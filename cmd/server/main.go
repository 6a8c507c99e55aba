package main

import (
	"context"
	"os"

	"github.com/qolzam/jobly/auth"
	"github.com/qolzam/jobly/auth/jwks"
	"github.com/qolzam/jobly/auth/login"
	"github.com/qolzam/jobly/auth/signup"
	"github.com/qolzam/jobly/companies"
	companyHandlers "github.com/qolzam/jobly/companies/handlers"
	companyRepository "github.com/qolzam/jobly/companies/repository"
	companyServices "github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/schema"
	"github.com/qolzam/jobly/internal/middleware/ratelimit"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/server"
	"github.com/qolzam/jobly/jobs"
	jobHandlers "github.com/qolzam/jobly/jobs/handlers"
	jobRepository "github.com/qolzam/jobly/jobs/repository"
	jobServices "github.com/qolzam/jobly/jobs/services"
	"github.com/qolzam/jobly/users"
	userHandlers "github.com/qolzam/jobly/users/handlers"
	userRepository "github.com/qolzam/jobly/users/repository"
	userServices "github.com/qolzam/jobly/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		fatal("Failed to load platform config: %v", err)
	}
	log.SetDebug(cfg.Server.Debug)

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		fatal("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	if cfg.Database.ApplySchema {
		if err := schema.Apply(ctx, pgClient.DB(), pgClient.Schema()); err != nil {
			fatal("Failed to apply schema: %v", err)
		}
		log.Info("Schema applied to %q", pgClient.Schema())
	}

	issuer, err := tokens.NewIssuer(cfg.JWT)
	if err != nil {
		fatal("Failed to create token issuer: %v", err)
	}

	limiterStorage, err := ratelimit.NewStorage(cfg.RateLimits)
	if err != nil {
		fatal("Failed to create rate limit storage: %v", err)
	}

	app := server.New(cfg, pgClient)

	// Companies
	companyService := companyServices.NewCompanyService(companyRepository.NewPostgresCompanyRepository(pgClient))
	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyService),
	}, cfg)

	// Jobs
	jobService := jobServices.NewJobService(jobRepository.NewPostgresJobRepository(pgClient))
	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobService),
	}, cfg)

	// Users
	userService := userServices.NewUserService(userRepository.NewPostgresUserRepository(pgClient), cfg.Security)
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService, issuer),
	}, cfg)

	// Auth
	jwksHandler, err := jwks.NewHandler(cfg.JWT.PublicKey)
	if err != nil {
		fatal("Failed to create JWKS handler: %v", err)
	}
	auth.RegisterRoutes(app, auth.NewAuthHandlers(
		login.NewHandler(userService, issuer),
		signup.NewHandler(userService, issuer),
		jwksHandler,
	), cfg, limiterStorage)

	log.Info("Starting Jobly API on %s", cfg.Server.Addr())
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		fatal("Server stopped: %v", err)
	}
}

func fatal(format string, a ...interface{}) {
	log.Error(format, a...)
	os.Exit(1)
}
