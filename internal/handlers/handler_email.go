package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/latadairy/dairy_backend/internal/apperrors"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
	"github.com/latadairy/dairy_backend/internal/dto"
	"github.com/latadairy/dairy_backend/internal/middleware"
)

// emailHandler handles the generic outbound email endpoint.
type emailHandler struct {
	emailService portssvc.EmailSvcFacade
}

func newEmailHandler(es portssvc.EmailSvcFacade) *emailHandler {
	return &emailHandler{emailService: es}
}

// registerEmailRoutes registers the generic email route.
func registerEmailRoutes(rg *gin.RouterGroup, emailService portssvc.EmailSvcFacade) {
	h := newEmailHandler(emailService)
	rg.POST("/send-email", h.sendEmail)
}

// sendEmail godoc
// @Summary Send an HTML email
// @Description Sends a caller-composed HTML email through the configured provider
// @Tags email
// @Accept json
// @Produce json
// @Param request body dto.SendEmailRequest true "Email details"
// @Success 200 {object} dto.EmailSentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to send email"
// @Router /send-email [post]
func (h *emailHandler) sendEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	emailID, err := h.emailService.SendEmail(c.Request.Context(), req.RecipientEmail, req.Subject, req.HTMLContent)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
			return
		}
		logger.Error("Failed to send email", slog.String("recipient", req.RecipientEmail), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, dto.EmailSentResponse{
		Status:  "success",
		Message: fmt.Sprintf("Email sent to %s", req.RecipientEmail),
		EmailID: emailID,
	})
}
