package routes

import (
	"context"
	"log"

	_ "warebill/docs" // This will be auto-generated
	"warebill/internal/adapter/http/handlers"
	"warebill/internal/adapter/persistence/repository"
	"warebill/internal/infrastructure/cache"
	"warebill/internal/infrastructure/config"
	"warebill/internal/infrastructure/database"
	"warebill/internal/infrastructure/worker"
	"warebill/internal/usecase"
	"warebill/pkg/keyedmutex"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the service together and starts the HTTP server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.Address); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	containerRepo := repository.NewContainerDynamoRepository(ddb)
	billRepo := repository.NewBillDynamoRepository(ddb)
	assignmentRepo := repository.NewAssignmentDynamoRepository(ddb)
	auditRepo := repository.NewAuditDynamoRepository(ddb)

	dashboardCache := cache.NewDashboardCache(cfg.DashboardCacheTTL())
	billLocks := keyedmutex.New(cfg.LinkLockTimeout())

	containerUseCase := usecase.NewContainerUseCase(containerRepo)
	billUseCase := usecase.NewBillUseCase(billRepo, assignmentRepo, dashboardCache, billLocks)
	linkingUseCase := usecase.NewLinkingUseCase(containerRepo, billRepo, assignmentRepo, auditRepo, dashboardCache, billLocks)
	reconciliationUseCase := usecase.NewReconciliationUseCase(billRepo, assignmentRepo, dashboardCache, billLocks)

	reconciliationWorker := worker.NewReconciliationWorker(reconciliationUseCase, cfg.ReconcileInterval())
	reconciliationWorker.Start(context.Background())

	billHandler := handlers.NewBillHandler(billUseCase)
	containerHandler := handlers.NewContainerHandler(containerUseCase)
	linkingHandler := handlers.NewLinkingHandler(linkingUseCase)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWarehouseRoutes(v1, billHandler, containerHandler, linkingHandler, auditHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
