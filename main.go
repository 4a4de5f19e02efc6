package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aswin-004/restaurant-ordering-platform/cart"
	"github.com/Aswin-004/restaurant-ordering-platform/checkout"
	"github.com/Aswin-004/restaurant-ordering-platform/config"
	"github.com/Aswin-004/restaurant-ordering-platform/handlers"
	"github.com/Aswin-004/restaurant-ordering-platform/location"
	"github.com/Aswin-004/restaurant-ordering-platform/middleware"
	"github.com/Aswin-004/restaurant-ordering-platform/orders"
	"github.com/Aswin-004/restaurant-ordering-platform/payment"
	"github.com/Aswin-004/restaurant-ordering-platform/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	defer db.Close()

	// Sessions live in Redis when configured, otherwise in process memory.
	var sessions session.Store
	if cfg.RedisAddr != "" {
		client, err := config.NewRedis(cfg.RedisAddr)
		if err != nil {
			logger.Fatal("redis init failed", zap.Error(err))
		}
		defer client.Close()
		sessions = session.NewRedisStore(client, session.DefaultTTL)
		logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	} else {
		sessions = session.NewMemoryStore()
		logger.Warn("REDIS_ADDR not set, sessions are in-memory and lost on restart")
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("hashing admin password failed", zap.Error(err))
	}

	carts := cart.NewStore(sessions, logger)
	locations := location.NewStore(sessions, logger)
	repo := orders.NewRepository(db, logger)
	gateway := payment.New(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, repo, logger)
	flow := checkout.NewFlow(repo, gateway, carts, logger)

	menuHandler := &handlers.MenuHandler{DB: db}
	specialsHandler := &handlers.SpecialsHandler{DB: db}
	orderHandler := &handlers.OrderHandler{Repo: repo}
	paymentHandler := &handlers.PaymentHandler{Gateway: gateway}
	cartHandler := &handlers.CartHandler{Cart: carts, Location: locations}
	locationHandler := &handlers.LocationHandler{Location: locations, Cart: carts}
	checkoutHandler := &handlers.CheckoutHandler{Flow: flow, Cart: carts, Location: locations}
	authHandler := &handlers.AuthHandler{
		JWTSecret:         []byte(cfg.JWTSecret),
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: adminHash,
	}
	adminHandler := &handlers.AdminHandler{DB: db, Repo: repo}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health(db))
		api.POST("/auth/login", authHandler.Login)

		api.GET("/menu", menuHandler.List)
		api.GET("/menu/categories", menuHandler.Categories)
		api.GET("/menu/:id", menuHandler.Get)

		api.GET("/specials", specialsHandler.List)
		api.GET("/specials/:id", specialsHandler.Get)

		api.GET("/location/areas", locationHandler.Areas)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/:orderNumber", orderHandler.GetByNumber)

		api.POST("/payment/create-order", paymentHandler.CreateRazorpayOrder)
		api.POST("/payment/verify", paymentHandler.VerifyPayment)
	}

	scoped := api.Group("/")
	scoped.Use(middleware.Session())
	{
		scoped.GET("/cart", cartHandler.Get)
		scoped.POST("/cart/items", cartHandler.AddItem)
		scoped.PUT("/cart/items/:itemId", cartHandler.UpdateItem)
		scoped.DELETE("/cart/items/:itemId", cartHandler.RemoveItem)
		scoped.DELETE("/cart", cartHandler.Clear)

		scoped.GET("/location", locationHandler.Get)
		scoped.PUT("/location", locationHandler.Set)
		scoped.DELETE("/location", locationHandler.Clear)

		scoped.POST("/checkout", checkoutHandler.Submit)
		scoped.POST("/checkout/confirm", checkoutHandler.ConfirmPayment)
		scoped.POST("/checkout/cancel", checkoutHandler.CancelPayment)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)), middleware.AdminRequired())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/orders", orderHandler.List)
		admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
		admin.DELETE("/orders/:id", orderHandler.Delete)

		admin.POST("/menu", menuHandler.Create)
		admin.PUT("/menu/:id", menuHandler.Update)
		admin.DELETE("/menu/:id", menuHandler.Delete)

		admin.POST("/specials", specialsHandler.Create)
		admin.PUT("/specials/:id", specialsHandler.Update)
		admin.DELETE("/specials/:id", specialsHandler.Delete)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
