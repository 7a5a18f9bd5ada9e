package main

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Abraxas-365/chamba/pkg/configx"
	"github.com/Abraxas-365/chamba/pkg/fsx"
	"github.com/Abraxas-365/chamba/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/chamba/pkg/iam/auth"
	"github.com/Abraxas-365/chamba/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/chamba/pkg/iam/user/userinfra"
	"github.com/Abraxas-365/chamba/pkg/logx"
	"github.com/Abraxas-365/chamba/tracking/document/documentapi"
	"github.com/Abraxas-365/chamba/tracking/document/documentinfra"
	"github.com/Abraxas-365/chamba/tracking/document/documentsrv"
	"github.com/Abraxas-365/chamba/tracking/interaction/interactionapi"
	"github.com/Abraxas-365/chamba/tracking/interaction/interactioninfra"
	"github.com/Abraxas-365/chamba/tracking/interaction/interactionsrv"
	"github.com/Abraxas-365/chamba/tracking/process/processapi"
	"github.com/Abraxas-365/chamba/tracking/process/processinfra"
	"github.com/Abraxas-365/chamba/tracking/process/processsrv"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config     *configx.Config
	AuthConfig auth.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	S3Client   *s3.Client
	FileSystem fsx.FileSystem

	// Services
	ProcessService     *processsrv.Service
	InteractionService *interactionsrv.Service
	DocumentService    *documentsrv.Service

	// API Handlers
	AuthHandlers        *auth.AuthHandlers
	ProcessHandlers     *processapi.Handlers
	InteractionHandlers *interactionapi.Handlers
	DocumentHandlers    *documentapi.Handlers

	// Middleware
	AuthMiddleware *auth.SessionMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *configx.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsCfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(c.Config.AWS.Region))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(awsCfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.AWS.Bucket, "documents")

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = c.Config.Auth.JWTSecret
	c.AuthConfig.JWT.Issuer = c.Config.Auth.Issuer
	c.AuthConfig.JWT.SessionTTL = c.Config.Auth.SessionTTL
	c.AuthConfig.Cookie.Name = c.Config.Auth.CookieName
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("AUTH_JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	processRepo := processinfra.NewPostgresProcessRepository(c.DB)
	interactionRepo := interactioninfra.NewPostgresInteractionRepository(c.DB)
	documentRepo := documentinfra.NewPostgresDocumentRepository(c.DB)

	// --- Infrastructure Services ---
	sessionStore := authinfra.NewRedisSessionStore(c.Redis)
	passwordSvc := authinfra.NewBcryptPasswordService()
	tokenSvc := auth.NewJWTService(c.AuthConfig.JWT.SecretKey, c.AuthConfig.JWT.Issuer)

	// --- Domain Services ---
	c.ProcessService = processsrv.NewService(processRepo)
	c.InteractionService = interactionsrv.NewService(interactionRepo)
	c.DocumentService = documentsrv.NewService(documentRepo, c.FileSystem)

	// --- Handlers ---
	c.AuthHandlers = auth.NewAuthHandlers(userRepo, passwordSvc, tokenSvc, sessionStore, c.AuthConfig)
	c.ProcessHandlers = processapi.NewHandlers(c.ProcessService)
	c.InteractionHandlers = interactionapi.NewHandlers(c.InteractionService)
	c.DocumentHandlers = documentapi.NewHandlers(c.DocumentService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewSessionMiddleware(tokenSvc, sessionStore, c.AuthConfig.Cookie.Name)
}
