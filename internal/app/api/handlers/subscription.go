package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/api/middleware"
	subsvc "github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/subscription"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/response"
)

// @Summary      Subscription status
// @Description  Returns the advisory quota snapshot for the authenticated caller. Informational only; entry creation is not gated on it.
// @Tags         Subscription
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  subscription.Status
// @Failure      401  {object}  response.ErrorBody
// @Router       /api/v1/subscription/status [get]
func ApiSubscriptionStatus(gate *subsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.IdentityFromGin(c)
		if ident == nil {
			response.AbortError(c, http.StatusUnauthorized, "missing or invalid credentials")
			return
		}

		st, err := gate.Status(c.Request.Context(), ident.UserID, ident.Subscribed())
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "failed to compute subscription status")
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

func RegisterSubscriptionRoutes(r gin.IRouter, gate *subsvc.Service) {
	r.GET("/subscription/status", ApiSubscriptionStatus(gate))
}
