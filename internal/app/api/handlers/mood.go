package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/api/middleware"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/mood"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/response"
)

type RespMoodSummary struct {
	Journals        []*models.JournalEntry `json:"journals"`
	MoodData        []mood.Point           `json:"moodData"`
	MoodStats       mood.Stats             `json:"moodStats"`
	MonthlyAverages map[string]float64     `json:"monthlyAverages"`
}

// @Summary      Mood summary
// @Description  Returns the caller's journal history together with aggregated mood statistics for the dashboard.
// @Tags         Mood
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handlers.RespMoodSummary
// @Failure      401  {object}  response.ErrorBody
// @Router       /api/v1/mood-summary [get]
func ApiMoodSummary(store journal.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.IdentityFromGin(c)
		if ident == nil {
			response.AbortError(c, http.StatusUnauthorized, "missing or invalid credentials")
			return
		}

		entries, err := store.ListByUser(c.Request.Context(), ident.UserID)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "failed to load journal entries")
			return
		}

		c.JSON(http.StatusOK, RespMoodSummary{
			Journals:        entries,
			MoodData:        mood.Series(entries),
			MoodStats:       mood.Aggregate(entries),
			MonthlyAverages: mood.MonthlyAverages(entries),
		})
	}
}

func RegisterMoodRoutes(r gin.IRouter, store journal.Store) {
	r.GET("/mood-summary", ApiMoodSummary(store))
}
