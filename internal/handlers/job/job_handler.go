package job

import (
	"net/http"

	jobdomain "workshop-service/internal/domain/job"
	"workshop-service/internal/pkg/response"
	jobservice "workshop-service/internal/service/job"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobService *jobservice.JobService
}

func NewJobHandler(jobService *jobservice.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// ListRecords retrieves the collection, optionally filtered by ?state=.
func (h *JobHandler) ListRecords(c *gin.Context) {
	records, err := h.jobService.ListRecords(c.Request.Context(), c.Query("state"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to list records", err)
		return
	}
	response.Success(c, http.StatusOK, "records retrieved", records)
}

// GetRecord retrieves a single vehicle record by id.
func (h *JobHandler) GetRecord(c *gin.Context) {
	record, err := h.jobService.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "record not found", err)
		return
	}
	response.Success(c, http.StatusOK, "record retrieved", record)
}

// CreateRecord registers a new vehicle intake.
func (h *JobHandler) CreateRecord(c *gin.Context) {
	var req jobdomain.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid intake form", err)
		return
	}

	record, err := h.jobService.CreateIntake(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create record", err)
		return
	}
	response.Success(c, http.StatusCreated, "record created", record)
}

// CheckIn resolves a plate capture and checks the vehicle in.
func (h *JobHandler) CheckIn(c *gin.Context) {
	var req jobdomain.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid check-in request", err)
		return
	}

	record, err := h.jobService.CheckInByPlate(c.Request.Context(), []byte(req.Image))
	if err != nil {
		response.FromError(c, "check-in failed", err)
		return
	}
	response.Success(c, http.StatusOK, "vehicle checked in", record)
}

// Approve records the client's approval of the pending quote.
func (h *JobHandler) Approve(c *gin.Context) {
	record, err := h.jobService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "approval failed", err)
		return
	}
	response.Success(c, http.StatusOK, "quote approved", record)
}

// Complete finalizes the work on a job.
func (h *JobHandler) Complete(c *gin.Context) {
	var req jobdomain.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid completion request", err)
		return
	}

	record, err := h.jobService.Complete(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "completion failed", err)
		return
	}
	response.Success(c, http.StatusOK, "job completed", record)
}

// Cancel aborts a job.
func (h *JobHandler) Cancel(c *gin.Context) {
	record, err := h.jobService.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "cancellation failed", err)
		return
	}
	response.Success(c, http.StatusOK, "job cancelled", record)
}

// PushStatus advances a job on behalf of the office.
func (h *JobHandler) PushStatus(c *gin.Context) {
	var req jobdomain.PushStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid status request", err)
		return
	}

	record, err := h.jobService.PushStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.FromError(c, "status update failed", err)
		return
	}
	response.Success(c, http.StatusOK, "status updated", record)
}

// SendReminder logs an automated reminder to the client.
func (h *JobHandler) SendReminder(c *gin.Context) {
	record, err := h.jobService.SendReminder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "reminder failed", err)
		return
	}
	response.Success(c, http.StatusOK, "reminder sent", record)
}

// AssignMechanic sets the responsible mechanic.
func (h *JobHandler) AssignMechanic(c *gin.Context) {
	var req jobdomain.AssignMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid assignment request", err)
		return
	}

	record, err := h.jobService.AssignMechanic(c.Request.Context(), c.Param("id"), req.MechanicName)
	if err != nil {
		response.FromError(c, "assignment failed", err)
		return
	}
	response.Success(c, http.StatusOK, "mechanic assigned", record)
}

// TogglePayment flips the payment status of a completed job.
func (h *JobHandler) TogglePayment(c *gin.Context) {
	record, err := h.jobService.TogglePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "payment toggle failed", err)
		return
	}
	response.Success(c, http.StatusOK, "payment status toggled", record)
}
