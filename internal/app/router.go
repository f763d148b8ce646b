// internal/app/router.go
package app

import (
	inventoryHandler "workshop-service/internal/handlers/inventory"
	jobHandler "workshop-service/internal/handlers/job"
	reportHandler "workshop-service/internal/handlers/report"
	wsHandler "workshop-service/internal/handlers/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	JobHandler       *jobHandler.JobHandler
	QuoteHandler     *jobHandler.QuoteHandler
	InventoryHandler *inventoryHandler.InventoryHandler
	ReportHandler    *reportHandler.ReportHandler
	WSHandler        *wsHandler.WebSocketHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)
	api.GET("/ws/stats", h.WSHandler.GetStats)

	// ==================== Vehicle Records ====================
	records := api.Group("/records")
	{
		// List and retrieve; ?state=active|completed filters the collection
		records.GET("", h.JobHandler.ListRecords)
		records.GET("/:id", h.JobHandler.GetRecord)

		// Intake and check-in
		records.POST("", h.JobHandler.CreateRecord)
		records.POST("/checkin", h.JobHandler.CheckIn)

		// Inspection and quoting
		records.POST("/:id/inspection/photo", h.QuoteHandler.IdentifyDamage)
		records.DELETE("/:id/inspection/photo", h.QuoteHandler.ClearPhoto)
		records.POST("/:id/quote", h.QuoteHandler.Finalize)
		records.POST("/:id/quote/manual", h.QuoteHandler.FinalizeManual)

		// Lifecycle progression
		records.PUT("/:id/approve", h.JobHandler.Approve)
		records.PUT("/:id/complete", h.JobHandler.Complete)
		records.PUT("/:id/cancel", h.JobHandler.Cancel)
		records.PUT("/:id/status", h.JobHandler.PushStatus)

		// Office actions
		records.POST("/:id/reminder", h.JobHandler.SendReminder)
		records.PUT("/:id/assign", h.JobHandler.AssignMechanic)
		records.PUT("/:id/payment", h.JobHandler.TogglePayment)
	}

	// ==================== Inventory ====================
	inventory := api.Group("/inventory")
	{
		inventory.GET("", h.InventoryHandler.ListParts)
		inventory.GET("/low-stock", h.InventoryHandler.ListLowStock)
		inventory.POST("", h.InventoryHandler.AddPart)
		inventory.PUT("/:id/threshold", h.InventoryHandler.UpdateThreshold)
		inventory.DELETE("/:id", h.InventoryHandler.RemovePart)
	}

	// ==================== Reports ====================
	reports := api.Group("/reports")
	{
		reports.GET("/summary", h.ReportHandler.GetSummary)
	}
}
