package inventory

import (
	"net/http"

	invdomain "workshop-service/internal/domain/inventory"
	"workshop-service/internal/pkg/response"
	invservice "workshop-service/internal/service/inventory"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService *invservice.InventoryService
}

func NewInventoryHandler(inventoryService *invservice.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListParts retrieves the full parts ledger.
func (h *InventoryHandler) ListParts(c *gin.Context) {
	parts, err := h.inventoryService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list inventory", err)
		return
	}
	response.Success(c, http.StatusOK, "inventory retrieved", parts)
}

// ListLowStock retrieves the reorder set.
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	parts, err := h.inventoryService.LowStock(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list low-stock parts", err)
		return
	}
	response.Success(c, http.StatusOK, "low-stock parts retrieved", parts)
}

// AddPart appends a part to the ledger.
func (h *InventoryHandler) AddPart(c *gin.Context) {
	var req invdomain.AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid part", err)
		return
	}

	part, err := h.inventoryService.AddPart(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to add part", err)
		return
	}
	response.Success(c, http.StatusCreated, "part added", part)
}

// UpdateThreshold changes a part's low-stock alert level.
func (h *InventoryHandler) UpdateThreshold(c *gin.Context) {
	var req invdomain.UpdateThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid threshold", err)
		return
	}

	part, err := h.inventoryService.UpdateThreshold(c.Request.Context(), c.Param("id"), *req.LowStockThreshold)
	if err != nil {
		response.FromError(c, "failed to update threshold", err)
		return
	}
	response.Success(c, http.StatusOK, "threshold updated", part)
}

// RemovePart deletes a part from the ledger.
func (h *InventoryHandler) RemovePart(c *gin.Context) {
	if err := h.inventoryService.RemovePart(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "failed to remove part", err)
		return
	}
	response.Success(c, http.StatusOK, "part removed", nil)
}
