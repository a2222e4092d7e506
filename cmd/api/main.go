package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oscahub/osca-backend/api/routes"
	"github.com/oscahub/osca-backend/internal/config"
	"github.com/oscahub/osca-backend/internal/handlers"
	"github.com/oscahub/osca-backend/internal/repositories"
	mongorepo "github.com/oscahub/osca-backend/internal/repositories/mongodb"
	"github.com/oscahub/osca-backend/internal/services"
	"github.com/oscahub/osca-backend/pkg/blobstore"
	"github.com/oscahub/osca-backend/pkg/mongodb"
	"github.com/oscahub/osca-backend/pkg/smsgateway"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not configured")
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var memberRepo repositories.MemberRepository = mongorepo.NewMemberRepository(db)
	var benefitRepo repositories.BenefitRepository = mongorepo.NewBenefitRepository(db)
	var availmentRepo repositories.AvailmentRepository = mongorepo.NewAvailmentRepository(db)
	var paymentRepo repositories.PaymentRepository = mongorepo.NewPaymentRepository(db)

	// External collaborators
	blobs := blobstore.NewS3Store(blobstore.Config{
		Endpoint:  cfg.Storage.Endpoint,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	var sms smsgateway.Gateway
	if cfg.SMS.Mock {
		sms = smsgateway.NewMockGateway()
	} else {
		sms = smsgateway.NewHTTPGateway(cfg.SMS.BaseURL, cfg.SMS.APIKey)
	}

	// Services
	authService := services.NewAuthService(memberRepo, cfg)
	memberService := services.NewMemberService(memberRepo, authService, blobs)
	benefitService := services.NewBenefitService(benefitRepo)
	availmentService := services.NewAvailmentService(availmentRepo, benefitRepo, memberRepo, blobs, sms)
	paymentService := services.NewPaymentService(paymentRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService),
		MemberHandler:    handlers.NewMemberHandler(memberService),
		BenefitHandler:   handlers.NewBenefitHandler(benefitService),
		AvailmentHandler: handlers.NewAvailmentHandler(availmentService),
		PaymentHandler:   handlers.NewPaymentHandler(paymentService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
