package routes

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"

	_ "github.com/francois2metz/siign/docs" // This will be auto-generated
	"github.com/francois2metz/siign/internal/adapter/http/handlers"
	repository2 "github.com/francois2metz/siign/internal/adapter/persistence/repository"
	"github.com/francois2metz/siign/internal/infrastructure/auth"
	"github.com/francois2metz/siign/internal/infrastructure/database"
	"github.com/francois2metz/siign/internal/infrastructure/docage"
	"github.com/francois2metz/siign/internal/infrastructure/notification"
	"github.com/francois2metz/siign/internal/infrastructure/tiime"
	"github.com/francois2metz/siign/internal/usecase"
	"github.com/francois2metz/siign/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ledger := buildLedger()

	broker := auth.NewTokenBroker(os.Getenv("TIIME_AUTH_URL"))
	tiimeClient := tiime.NewClient(os.Getenv("TIIME_API_URL"), broker, os.Getenv("TIIME_USER"), os.Getenv("TIIME_PASSWORD"))
	docageClient := docage.NewClient(os.Getenv("DOCAGE_API_URL"), os.Getenv("DOCAGE_USER"), os.Getenv("DOCAGE_API_KEY"))

	notifier := notification.NewHTTPNotifier(os.Getenv("NOTIFICATION_URL"))
	quoteNotifier := usecase.NewQuoteNotificationUseCase(notifier)

	webhookSecret := os.Getenv("WEBHOOK_SECRET")
	if webhookSecret == "" {
		log.Printf("[routes] WEBHOOK_SECRET not set; every webhook call will be rejected")
	}

	reconciliationUseCase := usecase.NewReconciliationUseCase(ledger, tiimeClient, docageClient, quoteNotifier, webhookSecret)
	signingUseCase := usecase.NewSigningUseCase(ledger, tiimeClient, docageClient)

	sessionSecret := sessionSecretFromEnv()

	webhookHandler := handlers.NewWebhookHandler(reconciliationUseCase)
	signingHandler := handlers.NewSigningHandler(
		signingUseCase,
		os.Getenv("WEBHOOK_BASE_URL"),
		webhookSecret,
		getenvDefault("DOCAGE_TEST_MODE", "false") != "false",
	)
	authHandler := handlers.NewAuthHandler(os.Getenv("TIIME_PASSWORD"), sessionSecret)

	addSigningRoutes(router, webhookHandler, signingHandler, authHandler, sessionSecret)
}

func buildLedger() interfaces.IAssociationLedger {
	switch getenvDefault("LEDGER_BACKEND", "bolt") {
	case "dynamodb":
		return repository2.NewAssociationDynamoRepository(database.ConnectDynamoDB())
	default:
		ledger, err := repository2.NewAssociationBoltRepository(getenvDefault("DB_PATH", "siign.db"))
		if err != nil {
			log.Fatalf("failed to open association ledger: %v", err)
		}
		return ledger
	}
}

// sessionSecretFromEnv falls back to a random per-process secret, which
// invalidates sessions on restart but keeps the app bootable without config.
func sessionSecretFromEnv() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("failed to generate session secret: %v", err)
	}
	return []byte(hex.EncodeToString(buf))
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
