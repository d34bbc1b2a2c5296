package httpt

import (
	"time"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/config"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/service"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/logger"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/metric"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	svc         *service.InventoryService
	log         logger.Logger
	metrics     metric.HTTP
	serviceName string
	router      *gin.Engine
}

func NewInventoryHandler(
	svc *service.InventoryService,
	cfg *config.Config,
	log logger.Logger,
	metrics metric.HTTP,
) *InventoryHandler {
	h := &InventoryHandler{
		svc:         svc,
		log:         log,
		metrics:     metrics,
		serviceName: cfg.App.Name,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	// Only configured origins may call the API cross-origin.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h.router = router
	h.setupRoutes()

	return h
}

func (h *InventoryHandler) Engine() *gin.Engine {
	return h.router
}
