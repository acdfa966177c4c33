// File: postpilot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postpilot/config"
	"postpilot/cron"
	"postpilot/database"
	postRepoPkg "postpilot/database/repository/post"
	scheduleRepoPkg "postpilot/database/repository/schedule"
	userRepoPkg "postpilot/database/repository/user"
	"postpilot/handlers"
	"postpilot/middleware"
	"postpilot/routes"
	"postpilot/services/billing"
	ai "postpilot/services/intelligence"
	"postpilot/services/notification"
	postSvc "postpilot/services/post"
	scheduleSvc "postpilot/services/schedule"
	"postpilot/services/user"
	"postpilot/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	postRepo := postRepoPkg.NewMongoPostRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	scheduleService := &scheduleSvc.DefaultScheduleService{
		Repo:  scheduleRepo,
		Cache: utils.GetCacheClient(),
	}

	billingService := &billing.StripeBillingService{
		Users:      userRepo,
		ProPriceID: config.AppConfig.StripeProPriceID,
	}

	publisher := postSvc.NewLinkedInPublisher(config.AppConfig.LinkedInAPIBase, userRepo)
	enqueuer := cron.NewPublishEnqueuer()
	defer enqueuer.Close()

	postService := &postSvc.DefaultPostService{
		Repo:        postRepo,
		ScheduleSvc: scheduleService,
		Publisher:   publisher,
		Enqueuer:    enqueuer,
	}

	notificationService, err := notification.NewDefaultNotificationService(userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	aiSvc := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey, ctxStore)

	// Deferred publishes drain through the async worker.
	cron.InitPublishWorker(postService, notificationService)

	userHandler := handlers.NewUserHandler(userService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	postHandler := handlers.NewPostHandler(postService, billingService)
	aiHandler := handlers.NewAIHandler(aiSvc, billingService)
	billingHandler := handlers.NewBillingHandler(billingService)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.Register,
		AuthenticateUserHandler: userHandler.Login,
		RevokeUserTokenHandler:  userHandler.RevokeToken,
		UpdateFCMTokenHandler:   userHandler.UpdateFCMToken,
		ConnectLinkedInHandler:  userHandler.ConnectLinkedIn,

		// Schedule endpoints.
		GetScheduleHandler:  scheduleHandler.GetSchedule,
		SaveScheduleHandler: scheduleHandler.SaveSchedule,
		QuickPicksHandler:   scheduleHandler.QuickPicks,
		TimeOptionsHandler:  scheduleHandler.TimeOptions,

		// Post endpoints.
		CreateDraftHandler:  postHandler.CreateDraft,
		UpdateDraftHandler:  postHandler.UpdateDraft,
		DeletePostHandler:   postHandler.DeletePost,
		ListPostsHandler:    postHandler.ListPosts,
		PublishNowHandler:   postHandler.PublishNow,
		SchedulePostHandler: postHandler.SchedulePost,
		QueuePostHandler:    postHandler.QueuePost,

		// AI endpoints.
		AIComposeHandler: aiHandler.Compose,
		AIResetHandler:   aiHandler.ResetContext,

		// Billing endpoints.
		CheckoutHandler:     billingHandler.CreateCheckout,
		ActivatePlanHandler: billingHandler.ActivatePlan,

		// Storage endpoints.
		UploadImageHandler: storageHandler.UploadImage,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
