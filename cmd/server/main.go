package main

import (
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/matisaar/T661-Checker/config"
	"github.com/matisaar/T661-Checker/internal/eventbus"
	"github.com/matisaar/T661-Checker/internal/handler"
	"github.com/matisaar/T661-Checker/internal/pkg/database"
	"github.com/matisaar/T661-Checker/internal/pkg/llm"
	"github.com/matisaar/T661-Checker/internal/repository"
	"github.com/matisaar/T661-Checker/internal/router"
	"github.com/matisaar/T661-Checker/internal/service"
	"github.com/matisaar/T661-Checker/internal/subscriber"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("starting t661-writer...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if err := os.MkdirAll(cfg.Data.TrainingDir, 0755); err != nil {
		log.Fatalf("Failed to create training directory: %v", err)
	}

	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	generationRepo := repository.NewGenerationRepository(db)
	feedbackLog := repository.NewFeedbackLog(cfg.FeedbackLogPath())
	datasetRepo := repository.NewDatasetRepository(cfg.Data.TrainingDir)

	// the generation route is fixed here for the life of the process
	capability, loadReason := llm.Load(cfg)
	if capability != nil {
		log.Printf("AI mode: model %s ready", cfg.LLM.Model)
	} else {
		log.Printf("Template mode: %s", loadReason)
	}

	generationBus := eventbus.NewGenerationEventBus()
	feedbackBus := eventbus.NewFeedbackEventBus()
	subscriber.NewActivitySubscriber().Register(generationBus, feedbackBus)

	generationService := service.NewGenerationService(capability, loadReason, generationRepo, generationBus)
	datasetService := service.NewDatasetService(feedbackLog, datasetRepo)
	feedbackService := service.NewFeedbackService(feedbackLog, datasetService, feedbackBus)

	statusHandler := handler.NewStatusHandler(generationService)
	generationHandler := handler.NewGenerationHandler(generationService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	r := router.Setup(cfg, statusHandler, generationHandler, feedbackHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
