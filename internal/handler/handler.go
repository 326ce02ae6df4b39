package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sprintpulse/internal/models"
	"sprintpulse/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	repoService *service.RepoService
	syncService *service.SyncService
	evalService *service.EvaluationService

	log *zap.Logger
}

func New(repoService *service.RepoService, syncService *service.SyncService, evalService *service.EvaluationService, log *zap.Logger) *Handler {
	return &Handler{
		repoService: repoService,
		syncService: syncService,
		evalService: evalService,
		log:         log,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.POST("/repositories", h.CreateRepository)
	e.GET("/repositories", h.ListRepositories)
	e.PUT("/repositories/:id/sprint-settings", h.UpdateSprintSettings)
	e.POST("/repositories/:id/tracked-collaborators", h.TrackCollaborator)
	e.DELETE("/repositories/:id/tracked-collaborators/:userName", h.UntrackCollaborator)
	e.POST("/repositories/:id/sync", h.RunSync)
	e.POST("/repositories/:id/evaluations/:axis", h.RunEvaluation)
	e.GET("/repositories/:id/sprints/current", h.CurrentSprint)
}

type errorResponse struct {
	Error string `json:"error"`
}

type createRepositoryRequest struct {
	OwnerName            string    `json:"owner_name"`
	RepoName             string    `json:"repo_name"`
	SprintStartDayOfWeek int       `json:"sprint_start_day_of_week"`
	SprintDurationWeeks  int       `json:"sprint_duration_weeks"`
	TrackingStartDate    time.Time `json:"tracking_start_date"`
}

func (h *Handler) CreateRepository(c echo.Context) error {
	req := &createRepositoryRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "bad request"})
	}
	if req.OwnerName == "" || req.RepoName == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "owner_name and repo_name are required"})
	}

	repo := &models.Repository{
		OwnerName:            req.OwnerName,
		RepoName:             req.RepoName,
		SprintStartDayOfWeek: req.SprintStartDayOfWeek,
		SprintDurationWeeks:  req.SprintDurationWeeks,
		TrackingStartDate:    req.TrackingStartDate,
	}

	if err := h.repoService.Create(c.Request().Context(), repo); err != nil {
		if errors.Is(err, service.ErrRepositoryExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "repository already tracked"})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, repo)
}

func (h *Handler) ListRepositories(c echo.Context) error {
	repos, err := h.repoService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, repos)
}

type sprintSettingsRequest struct {
	SprintStartDayOfWeek int `json:"sprint_start_day_of_week"`
	SprintDurationWeeks  int `json:"sprint_duration_weeks"`
}

func (h *Handler) UpdateSprintSettings(c echo.Context) error {
	repoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	req := &sprintSettingsRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "bad request"})
	}

	err = h.repoService.UpdateSprintSettings(c.Request().Context(), repoID, req.SprintStartDayOfWeek, req.SprintDurationWeeks)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "repository not found"})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

type trackCollaboratorRequest struct {
	UserName string `json:"user_name"`
}

func (h *Handler) TrackCollaborator(c echo.Context) error {
	repoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	req := &trackCollaboratorRequest{}
	if err := c.Bind(req); err != nil || req.UserName == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_name is required"})
	}

	if err := h.repoService.TrackCollaborator(c.Request().Context(), repoID, req.UserName); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "repository not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UntrackCollaborator(c echo.Context) error {
	repoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	err = h.repoService.UntrackCollaborator(c.Request().Context(), repoID, c.Param("userName"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "collaborator not tracked"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.NoContent(http.StatusNoContent)
}

type syncResponse struct {
	SyncedCount  int       `json:"synced_count"`
	SkippedCount int       `json:"skipped_count"`
	IsFullSync   bool      `json:"is_full_sync"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}

func (h *Handler) RunSync(c echo.Context) error {
	repoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	force, _ := strconv.ParseBool(c.QueryParam("force"))

	result, err := h.syncService.Run(c.Request().Context(), repoID, force)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "repository not found"})
		}
		h.log.Error("sync run failed",
			zap.Error(err),
			zap.String("repository_id", repoID.String()),
		)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "sync failed"})
	}

	return c.JSON(http.StatusOK, syncResponse{
		SyncedCount:  result.Synced,
		SkippedCount: result.Skipped,
		IsFullSync:   result.FullSync,
		LastSyncedAt: result.LastSyncedAt,
	})
}

type batchResponse struct {
	Evaluated int `json:"evaluated"`
	Errors    int `json:"errors"`
	Skipped   int `json:"skipped"`
	Remaining int `json:"remaining"`
}

func (h *Handler) RunEvaluation(c echo.Context) error {
	repoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	axis := c.Param("axis")
	ctx := c.Request().Context()

	// The speed axis is deterministic and unbatched.
	if axis == "speed" {
		evaluated, err := h.evalService.EvaluateSpeed(ctx, repoID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "repository not found"})
			}
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return c.JSON(http.StatusOK, batchResponse{Evaluated: evaluated})
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		}
	}

	result, err := h.evalService.RunBatch(ctx, repoID, service.Axis(axis), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAxis) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown axis"})
		}
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "repository not found"})
		}
		h.log.Error("evaluation batch failed",
			zap.Error(err),
			zap.String("repository_id", repoID.String()),
			zap.String("axis", axis),
		)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "evaluation failed"})
	}

	return c.JSON(http.StatusOK, batchResponse{
		Evaluated: result.Evaluated,
		Errors:    result.Errors,
		Skipped:   result.Skipped,
		Remaining: result.Remaining,
	})
}

type sprintResponse struct {
	Number    int       `json:"number"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Label     string    `json:"label"`
	IsCurrent bool      `json:"is_current"`
}

func (h *Handler) CurrentSprint(c echo.Context) error {
	repoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid offset"})
		}
	}

	sp, err := h.syncService.ComputeSprint(c.Request().Context(), repoID, time.Now(), offset)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "repository not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, sprintResponse{
		Number:    sp.Number,
		StartDate: sp.Period.Start,
		EndDate:   sp.Period.End,
		Label:     sp.Period.Format(),
		IsCurrent: sp.IsCurrent,
	})
}
