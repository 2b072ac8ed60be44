package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/ports/primary"
)

// Handler serves the application and statistics endpoints.
type Handler struct {
	apps  primary.ApplicationService
	stats primary.StatsService
	now   func() time.Time
}

// NewHandler creates a Handler over the given services.
func NewHandler(apps primary.ApplicationService, stats primary.StatsService) *Handler {
	return &Handler{apps: apps, stats: stats, now: time.Now}
}

// RegisterRoutes mounts the handler on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
	rg.POST("/applications", h.create)
	rg.GET("/applications/:id", h.get)
	rg.PUT("/applications/:id", h.replace)
	rg.PATCH("/applications/:id", h.patch)
	rg.DELETE("/applications/:id", h.delete)
	rg.GET("/applications/:id/history", h.history)
	rg.GET("/stats", h.statistics)
	rg.GET("/reminders", h.reminders)
}

func (h *Handler) list(c *gin.Context) {
	filters := primary.ApplicationFilters{Company: c.Query("company")}
	if raw := c.Query("status"); raw != "" {
		status, err := application.ParseStatus(raw)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		filters.Status = status
	}

	ascending := true
	switch strings.ToLower(c.DefaultQuery("order", "asc")) {
	case "asc":
	case "desc":
		ascending = false
	default:
		respondError(c, http.StatusBadRequest, "invalid_request", "order must be asc or desc", nil)
		return
	}

	apps, err := h.apps.ListApplications(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if raw := c.Query("sort"); raw != "" {
		field, err := application.ParseSortField(raw)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		apps = application.Sort(apps, field, ascending)
	}

	c.JSON(http.StatusOK, gin.H{"applications": toResponses(apps), "count": len(apps)})
}

func (h *Handler) create(c *gin.Context) {
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", err.Error())
		return
	}
	app, err := req.toApplication()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	created, err := h.apps.CreateApplication(c.Request.Context(), app)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Location", "/api/v1/applications/"+strconv.FormatInt(created.ID, 10))
	c.JSON(http.StatusCreated, toResponse(created))
}

func (h *Handler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.apps.GetApplication(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(app))
}

func (h *Handler) replace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", err.Error())
		return
	}
	app, err := req.toApplication()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.apps.ReplaceApplication(c.Request.Context(), id, app)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(updated))
}

func (h *Handler) patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", err.Error())
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.apps.UpdateApplication(c.Request.Context(), id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(updated))
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.apps.DeleteApplication(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) history(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.apps.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if entries == nil {
		entries = []*primary.HistoryEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

func (h *Handler) statistics(c *gin.Context) {
	st, err := h.stats.ComputeStatistics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) reminders(c *gin.Context) {
	asOf := h.now()
	if raw := c.Query("as_of"); raw != "" {
		t, err := application.ParseDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_request", "as_of must be YYYY-MM-DD", nil)
			return
		}
		asOf = t
	}

	apps, err := h.apps.ListDueReminders(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"as_of": application.FormatDate(asOf), "applications": toResponses(apps)})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_request", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
