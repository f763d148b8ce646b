package job

import (
	"net/http"

	jobdomain "workshop-service/internal/domain/job"
	"workshop-service/internal/pkg/response"
	quoteservice "workshop-service/internal/service/quote"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService *quoteservice.QuoteService
}

func NewQuoteHandler(quoteService *quoteservice.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// IdentifyDamage attaches a damage capture and returns candidate quotes.
func (h *QuoteHandler) IdentifyDamage(c *gin.Context) {
	var req jobdomain.InspectPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid photo request", err)
		return
	}

	result, err := h.quoteService.IdentifyDamage(c.Request.Context(), c.Param("id"), []byte(req.Image))
	if err != nil {
		response.FromError(c, "damage identification failed", err)
		return
	}
	response.Success(c, http.StatusOK, "damage identified", result)
}

// ClearPhoto discards the damage capture for a retake.
func (h *QuoteHandler) ClearPhoto(c *gin.Context) {
	record, err := h.quoteService.ClearPhoto(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to clear photo", err)
		return
	}
	response.Success(c, http.StatusOK, "photo cleared", record)
}

// Finalize commits an adjusted candidate quote and sends it to the client.
func (h *QuoteHandler) Finalize(c *gin.Context) {
	var req jobdomain.FinalizeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid quote", err)
		return
	}

	record, err := h.quoteService.Finalize(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "quote finalization failed", err)
		return
	}
	response.Success(c, http.StatusOK, "quote sent", record)
}

// FinalizeManual commits a manually entered quote.
func (h *QuoteHandler) FinalizeManual(c *gin.Context) {
	var req jobdomain.ManualQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid manual quote", err)
		return
	}

	record, err := h.quoteService.FinalizeManual(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "manual quote failed", err)
		return
	}
	response.Success(c, http.StatusOK, "manual quote sent", record)
}
