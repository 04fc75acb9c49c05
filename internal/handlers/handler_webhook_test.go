package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
	"github.com/sazonapp/pos_backend/internal/handlers"
	"github.com/sazonapp/pos_backend/internal/platform/config"
	"github.com/sazonapp/pos_backend/internal/realtime"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ProcessOrderPayment(ctx context.Context, user *domain.User, orderID string, req dto.PayOrderRequest) (*domain.Order, *domain.Payment, error) {
	args := m.Called(ctx, user, orderID, req)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	var payment *domain.Payment
	if args.Get(1) != nil {
		payment = args.Get(1).(*domain.Payment)
	}
	return order, payment, args.Error(2)
}

func (m *MockPaymentService) ProcessGatewayEvent(ctx context.Context, event dto.WompiEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPaymentService) VerifyEventSignature(event dto.WompiEvent, timestamp string, signature string) bool {
	args := m.Called(event, timestamp, signature)
	return args.Bool(0)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	paymentService *MockPaymentService
}

func (suite *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.paymentService = new(MockPaymentService)

	cfg := &config.Config{IsProduction: true, JWTSecret: "test-secret"}
	services := &portssvc.ServiceContainer{Payment: suite.paymentService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, realtime.NewHub())
}

func (suite *WebhookHandlerTestSuite) postEvent(event dto.WompiEvent, signature, timestamp string) *httptest.ResponseRecorder {
	body, err := json.Marshal(event)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/wompi", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Signature", signature)
	}
	if timestamp != "" {
		req.Header.Set("X-Timestamp", timestamp)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testEvent() dto.WompiEvent {
	return dto.WompiEvent{
		Event: "transaction.updated",
		Data: dto.WompiEventData{
			Transaction: dto.WompiTransaction{
				ID:            "txn-001",
				Status:        "APPROVED",
				Reference:     "ORDER-9f5b7a-1724960000000",
				AmountInCents: 3500000,
			},
		},
	}
}

func (suite *WebhookHandlerTestSuite) TestValidEventIsProcessed() {
	event := testEvent()
	suite.paymentService.On("VerifyEventSignature", event, "1724960000", "deadbeef").Return(true)
	suite.paymentService.On("ProcessGatewayEvent", mock.Anything, event).Return(nil)

	w := suite.postEvent(event, "deadbeef", "1724960000")

	suite.Equal(http.StatusOK, w.Code)
	suite.paymentService.AssertExpectations(suite.T())
}

func (suite *WebhookHandlerTestSuite) TestBadSignatureIsRejectedWithoutSideEffects() {
	event := testEvent()
	suite.paymentService.On("VerifyEventSignature", event, "1724960000", "tampered").Return(false)

	w := suite.postEvent(event, "tampered", "1724960000")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.paymentService.AssertNotCalled(suite.T(), "ProcessGatewayEvent", mock.Anything, mock.Anything)
}

func (suite *WebhookHandlerTestSuite) TestMissingSignatureIsRejected() {
	event := testEvent()
	suite.paymentService.On("VerifyEventSignature", event, "", "").Return(false)

	w := suite.postEvent(event, "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.paymentService.AssertNotCalled(suite.T(), "ProcessGatewayEvent", mock.Anything, mock.Anything)
}

func (suite *WebhookHandlerTestSuite) TestMalformedBodyIsBadRequest() {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/wompi", bytes.NewReader([]byte("{not-json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.paymentService.AssertNotCalled(suite.T(), "ProcessGatewayEvent", mock.Anything, mock.Anything)
}

func (suite *WebhookHandlerTestSuite) TestProcessingErrorIsSurfaced() {
	event := testEvent()
	suite.paymentService.On("VerifyEventSignature", event, "1724960000", "deadbeef").Return(true)
	suite.paymentService.On("ProcessGatewayEvent", mock.Anything, event).
		Return(apperrors.ErrNotFound)

	w := suite.postEvent(event, "deadbeef", "1724960000")

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}
