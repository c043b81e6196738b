package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gg-note/ggnote/broker"
	"gg-note/ggnote/config"
	"gg-note/ggnote/database"
	"gg-note/ggnote/middleware"
	"gg-note/ggnote/routes"
	"gg-note/ggnote/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	brokerAvailable := true
	if err := broker.InitProducer(cfg); err != nil {
		log.Printf("Warning: Failed to initialize broker producer: %v", err)
		log.Println("The application will continue, but change notifications will be disabled")
		brokerAvailable = false
	} else {
		defer broker.CloseProducer()
	}

	webSocketService := services.NewWebSocketService()
	services.WebSocketServiceInstance = webSocketService
	webSocketService.Start(cfg)
	defer webSocketService.Stop()

	if brokerAvailable {
		eventDispatcher := services.NewEventDispatcherService(db)
		eventDispatcher.Start()
		defer eventDispatcher.Stop()
	} else {
		log.Println("Event dispatcher is disabled due to broker unavailability")
	}

	uploadService, err := services.NewUploadService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload service: %v", err)
	}
	services.UploadServiceInstance = uploadService

	sessionService := services.NewEditorSessionService(services.NoteServiceInstance)
	services.EditorSessionServiceInstance = sessionService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterFolderRoutes(router, db, services.FolderServiceInstance)
	routes.RegisterNoteRoutes(router, db, services.NoteServiceInstance)
	routes.RegisterUploadRoutes(router, uploadService, cfg.UploadDir)
	routes.RegisterWebSocketRoutes(router, webSocketService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		broker.CloseProducer()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
