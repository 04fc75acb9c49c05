package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
	"github.com/sazonapp/pos_backend/internal/middleware"
)

// webhookHandler handles payment gateway callbacks.
type webhookHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newWebhookHandler(ps portssvc.PaymentSvcFacade) *webhookHandler {
	return &webhookHandler{paymentService: ps}
}

// registerWebhookRoutes registers the gateway webhook. The route is public;
// authenticity comes from the HMAC signature, not from a session.
func registerWebhookRoutes(r *gin.Engine, ps portssvc.PaymentSvcFacade) {
	h := newWebhookHandler(ps)
	r.POST("/webhooks/wompi", h.handleWompiEvent)
}

// handleWompiEvent godoc
// @Summary Receive a payment gateway event
// @Description Verifies the event's HMAC signature and applies the transaction outcome to the referenced order. Redeliveries of already-recorded transactions are acknowledged without side effects.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Signature header string true "Hex HMAC-SHA256 event signature"
// @Param X-Timestamp header string true "Signature timestamp"
// @Param event body dto.WompiEvent true "Gateway event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Malformed event or reference"
// @Failure 401 {object} ErrorResponse "Invalid signature"
// @Failure 404 {object} ErrorResponse "Referenced order not found"
// @Router /webhooks/wompi [post]
func (h *webhookHandler) handleWompiEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var event dto.WompiEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid event body"})
		return
	}

	signature := c.GetHeader("X-Signature")
	timestamp := c.GetHeader("X-Timestamp")

	// Reject before touching any state: an unsigned event proves nothing.
	if !h.paymentService.VerifyEventSignature(event, timestamp, signature) {
		logger.Warn("Rejected gateway event with bad signature",
			slog.String("transaction_id", event.Data.Transaction.ID))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid signature"})
		return
	}

	if err := h.paymentService.ProcessGatewayEvent(c.Request.Context(), event); err != nil {
		respondWithError(c, err, "Failed to process gateway event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
