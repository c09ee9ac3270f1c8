package routes

import (
	"warebill/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills      = "/bills"
	PathContainers = "/containers"
)

func addWarehouseRoutes(
	rg *gin.RouterGroup,
	billHandler *handlers.BillHandler,
	containerHandler *handlers.ContainerHandler,
	linkingHandler *handlers.LinkingHandler,
	auditHandler *handlers.AuditHandler,
) {
	bills := rg.Group(PathBills)
	{
		bills.POST("", billHandler.CreateBill)
		bills.GET("/:bill_id", billHandler.GetBill)
		bills.PATCH("/:bill_id/complete", billHandler.CompleteBill)
		bills.POST("/:bill_id/links", linkingHandler.LinkContainer)
		bills.DELETE("/:bill_id/links/:container_code", linkingHandler.UnlinkContainer)
		bills.GET("/:bill_id/audit", auditHandler.ListByBill)
	}

	containers := rg.Group(PathContainers)
	{
		containers.POST("", containerHandler.CreateContainer)
		containers.POST("/:parent_code/children", containerHandler.AttachChild)
		containers.GET("/:container_id/audit", auditHandler.ListByContainer)
	}
}
