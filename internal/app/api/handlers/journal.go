package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/api/middleware"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/analysis"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/logctx"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/response"
)

type CreateJournalRequest struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type RespJournal struct {
	Journal *models.JournalEntry `json:"journal"`
}

type RespJournalList struct {
	Journals []*models.JournalEntry `json:"journals"`
}

type RespJournalCount struct {
	Count int64 `json:"count"`
}

type RespJournalsDeleted struct {
	Deleted int64 `json:"deleted"`
}

// userIDFromRequest resolves the target user: explicit userId query first,
// authenticated identity as fallback.
func userIDFromRequest(c *gin.Context) string {
	if id := c.Query("userId"); id != "" {
		return id
	}
	if ident := middleware.IdentityFromGin(c); ident != nil {
		return ident.UserID
	}
	return ""
}

// @Summary      Create journal entry
// @Description  Analyzes the entry content with the AI model and persists the entry with its analysis in a single insert.
// @Tags         Journal
// @Accept       json
// @Produce      json
// @Param        request body CreateJournalRequest true "New journal entry"
// @Success      200  {object}  handlers.RespJournal
// @Failure      400  {object}  response.ErrorBody
// @Failure      422  {object}  response.ErrorBody
// @Failure      502  {object}  response.ErrorBody
// @Router       /api/v1/journal [post]
func ApiCreateJournal(an analysis.Analyzer, store journal.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateJournalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.AbortError(c, http.StatusBadRequest, err.Error())
			return
		}

		userID := req.UserID
		if userID == "" {
			if ident := middleware.IdentityFromGin(c); ident != nil {
				userID = ident.UserID
			}
		}
		if userID == "" {
			response.AbortError(c, http.StatusBadRequest, "missing userId")
			return
		}
		if req.Content == "" {
			response.AbortError(c, http.StatusBadRequest, "missing content")
			return
		}

		res, err := an.Analyze(c.Request.Context(), req.Content)
		if err != nil {
			switch {
			case errors.Is(err, analysis.ErrProviderUnavailable):
				response.AbortError(c, http.StatusBadGateway, "analysis provider unavailable")
			case errors.Is(err, analysis.ErrMalformedOutput), errors.Is(err, analysis.ErrInvalidShape):
				response.AbortError(c, http.StatusUnprocessableEntity, "analysis failed")
			default:
				response.AbortError(c, http.StatusInternalServerError, "analysis failed")
			}
			return
		}

		entry, err := store.Create(c.Request.Context(), userID, req.Title, req.Content, res.MoodScore, res)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "failed to save journal entry")
			return
		}
		c.JSON(http.StatusOK, RespJournal{Journal: entry})
	}
}

// @Summary      List journal entries
// @Description  Returns all entries of a user ordered by creation time ascending.
// @Tags         Journal
// @Produce      json
// @Param        userId query string true "User ID"
// @Success      200  {object}  handlers.RespJournalList
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/v1/journal [get]
func ApiListJournals(store journal.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := userIDFromRequest(c)
		if userID == "" {
			response.AbortError(c, http.StatusBadRequest, "missing userId")
			return
		}

		entries, err := store.ListByUser(c.Request.Context(), userID)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "failed to list journal entries")
			return
		}
		c.JSON(http.StatusOK, RespJournalList{Journals: entries})
	}
}

// @Summary      Count journal entries
// @Description  Returns the number of entries a user has. Never fails toward the caller; internal errors are logged and reported as zero.
// @Tags         Journal
// @Produce      json
// @Param        userId query string true "User ID"
// @Success      200  {object}  handlers.RespJournalCount
// @Router       /api/v1/journal/count [get]
func ApiCountJournals(store journal.Store, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := userIDFromRequest(c)
		var count int64
		if userID != "" {
			n, err := store.CountByUser(c.Request.Context(), userID)
			if err != nil {
				logctx.FromGin(c, log).Errorf("failed to count journal entries: %v", err)
			} else {
				count = n
			}
		}
		c.JSON(http.StatusOK, RespJournalCount{Count: count})
	}
}

// @Summary      Delete all journal entries
// @Description  Irreversibly removes every entry owned by the user. Idempotent; confirmation is a UI concern.
// @Tags         Journal
// @Produce      json
// @Param        userId query string true "User ID"
// @Success      200  {object}  handlers.RespJournalsDeleted
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/v1/journal [delete]
func ApiDeleteJournals(store journal.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := userIDFromRequest(c)
		if userID == "" {
			response.AbortError(c, http.StatusBadRequest, "missing userId")
			return
		}

		deleted, err := store.DeleteAllByUser(c.Request.Context(), userID)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "failed to delete journal entries")
			return
		}
		c.JSON(http.StatusOK, RespJournalsDeleted{Deleted: deleted})
	}
}

func RegisterJournalRoutes(r gin.IRouter, an analysis.Analyzer, store journal.Store, log *zap.SugaredLogger) {
	r.POST("/journal", ApiCreateJournal(an, store))
	r.GET("/journal", ApiListJournals(store))
	r.DELETE("/journal", ApiDeleteJournals(store))
	r.GET("/journal/count", ApiCountJournals(store, log))
}
