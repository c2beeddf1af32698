package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/report"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/response"
)

// @Summary      Download entry report
// @Description  Renders one journal entry as a PDF and returns it as a download.
// @Tags         Report
// @Produce      application/pdf
// @Param        id path string true "Journal entry ID"
// @Success      200  {file}  file
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/report/{id} [get]
func ApiGetReport(exp report.Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		data, err := exp.RenderByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, journal.ErrNotFound) {
				response.AbortError(c, http.StatusNotFound, "report not found")
				return
			}
			response.AbortError(c, http.StatusInternalServerError, "failed to render report")
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.ArchiveEntryName(id)))
		c.Data(http.StatusOK, "application/pdf", data)
	}
}

// @Summary      Download all reports
// @Description  Renders every entry of a user into one zip archive. All-or-nothing: any failed render aborts the batch.
// @Tags         Report
// @Produce      application/zip
// @Param        userId query string true "User ID"
// @Success      200  {file}  file
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/reports/all [get]
func ApiGetAllReports(exp report.Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := userIDFromRequest(c)
		if userID == "" {
			response.AbortError(c, http.StatusBadRequest, "missing userId")
			return
		}

		data, err := exp.RenderAllByUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, journal.ErrNotFound) {
				response.AbortError(c, http.StatusNotFound, "no journal entries to export")
				return
			}
			response.AbortError(c, http.StatusInternalServerError, "failed to render reports")
			return
		}

		c.Header("Content-Disposition", "attachment; filename=journal_reports.zip")
		c.Data(http.StatusOK, "application/zip", data)
	}
}

func RegisterReportRoutes(r gin.IRouter, exp report.Exporter) {
	r.GET("/report/:id", ApiGetReport(exp))
	r.GET("/reports/all", ApiGetAllReports(exp))
}
