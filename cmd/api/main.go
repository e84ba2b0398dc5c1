package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"tailorlink/internal/adapter/api"
	"tailorlink/internal/adapter/api/handler"
	apimiddleware "tailorlink/internal/adapter/api/middleware"
	"tailorlink/internal/adapter/api/router"
	"tailorlink/internal/adapter/repository"
	domainrepo "tailorlink/internal/domain/repository"
	"tailorlink/internal/infrastructure/cache"
	"tailorlink/internal/infrastructure/firebase"
	"tailorlink/internal/infrastructure/storage"
	"tailorlink/internal/infrastructure/websocket"
	"tailorlink/internal/usecase"
	"tailorlink/pkg/config"
	"tailorlink/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	var (
		userRepo        domainrepo.UserRepository
		tailorRepo      domainrepo.TailorRepository
		reviewRepo      domainrepo.ReviewRepository
		orderRepo       domainrepo.OrderRepository
		measurementRepo domainrepo.MeasurementRepository
		chatRepo        domainrepo.ChatRepository

		authClient    usecase.AuthClient
		tokenVerifier apimiddleware.TokenVerifier
		storageClient *storage.CloudStorageClient
		storeDriver   = "memory"
	)

	if cfg.FirebaseProject == "" {
		logger.Warn("FIREBASE_PROJECT_ID not set; using in-memory store and local auth")
	} else if fb, err := setupFirebase(ctx, cfg); err != nil {
		logger.Warn("Firebase init failed (%v); falling back to in-memory store", err)
	} else {
		defer fb.close()

		userRepo = repository.NewFirestoreUserRepository(fb.firestore)
		tailorRepo = repository.NewFirestoreTailorRepository(fb.firestore)
		reviewRepo = repository.NewFirestoreReviewRepository(fb.firestore)
		orderRepo = repository.NewFirestoreOrderRepository(fb.firestore)
		measurementRepo = repository.NewFirestoreMeasurementRepository(fb.firestore)
		chatRepo = repository.NewFirestoreChatRepository(fb.firestore)

		authClient = fb.auth
		tokenVerifier = fb.auth
		storageClient = fb.storage
		storeDriver = "firestore"
	}

	if storeDriver == "memory" {
		userRepo = repository.NewMemoryUserRepository()
		tailorRepo = repository.NewMemoryTailorRepository()
		reviewRepo = repository.NewMemoryReviewRepository()
		orderRepo = repository.NewMemoryOrderRepository()
		measurementRepo = repository.NewMemoryMeasurementRepository()
		chatRepo = repository.NewMemoryChatRepository()

		localAuth := firebase.NewLocalAuthClient()
		authClient = localAuth
		tokenVerifier = localAuth
	}

	discoveryCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTLSeconds)
	if discoveryCache == nil {
		logger.Info("REDIS_ADDR not set; discovery cache disabled")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, tailorRepo, authClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	tailorUseCase := usecase.NewTailorUseCase(tailorRepo, reviewRepo, discoveryCache)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, tailorRepo, orderRepo, userRepo, tailorUseCase)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, tailorRepo)
	measurementUseCase := usecase.NewMeasurementUseCase(measurementRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, tailorRepo, wsManager)

	handler.Setup(authUseCase, userUseCase, tailorUseCase, reviewUseCase, orderUseCase, measurementUseCase, chatUseCase)
	handler.SetupFileHandler(storageClient)
	handler.SetupHealthHandler(storeDriver)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenVerifier)

	router.Setup(e, authMiddleware)
	router.SetupWebSocketRouter(e, handler.NewWebSocketHandler(wsManager), authMiddleware)

	logger.Info("Starting server on port %s (store: %s)", cfg.ServerPort, storeDriver)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

type firebaseStack struct {
	auth      *firebase.FirebaseAuthClient
	firestore *firestore.Client
	storage   *storage.CloudStorageClient
}

func (f *firebaseStack) close() {
	f.firestore.Close()
	if f.storage != nil {
		f.storage.Close()
	}
}

// setupFirebase brings up Auth, Firestore and (when a bucket is configured)
// Cloud Storage. Any failure returns an error so the caller can fall back to
// the in-memory store instead of crashing.
func setupFirebase(ctx context.Context, cfg *config.Config) (*firebaseStack, error) {
	opts := credentialOptions()

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	fbAuth, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w", err)
	}

	stack := &firebaseStack{
		auth:      firebase.NewFirebaseAuthClient(fbAuth, cfg.FirebaseApiKey),
		firestore: firestoreClient,
	}

	if cfg.StorageBucket != "" {
		stack.storage, err = storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			firestoreClient.Close()
			return nil, fmt.Errorf("cloud storage: %w", err)
		}
	} else {
		logger.Warn("STORAGE_BUCKET not set; file uploads disabled")
	}

	return stack, nil
}

// credentialOptions resolves Google credentials the same way in every
// environment: inline JSON first, then a file path, then ADC.
func credentialOptions() []option.ClientOption {
	if json := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); json != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(json))}
	}
	if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
		return []option.ClientOption{option.WithCredentialsFile(path)}
	}
	return nil
}
