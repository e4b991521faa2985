package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/apperror"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubAuth struct {
	calls int
	err   error
}

func (s *stubAuth) Register(_ context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &response.UserResponse{ID: uuid.NewString(), Username: req.Username, Email: req.Email}, nil
}

func (s *stubAuth) Login(_ context.Context, _ *request.LoginRequest) (*response.AuthResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &response.AuthResponse{Token: "t"}, nil
}

type stubOrders struct {
	gotUser  uuid.UUID
	gotOrder uuid.UUID
	gotReq   *request.UpdateOrderStatusRequest
}

func (s *stubOrders) Place(context.Context, uuid.UUID, *request.PlaceOrderRequest) (*response.OrderResponse, error) {
	return nil, errors.New("not used")
}

func (s *stubOrders) GetAll(context.Context, uuid.UUID, request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	return nil, errors.New("not used")
}

func (s *stubOrders) GetMine(context.Context, uuid.UUID) ([]response.OrderResponse, error) {
	return []response.OrderResponse{}, nil
}

func (s *stubOrders) UpdateStatus(_ context.Context, userID, orderID uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	s.gotUser, s.gotOrder, s.gotReq = userID, orderID, req
	return &response.OrderResponse{ID: orderID.String(), OrderStatus: req.OrderStatus}, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister_ValidationRunsBeforeService(t *testing.T) {
	svc := &stubAuth{}
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{"email":"bad","password":"abc"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, utils.StatusFailed, body.Status)
	assert.Equal(t, "username is required\nvalid email is required\npassword must be at least 5 characters", body.Message)
}

func TestRegister_MalformedBody(t *testing.T) {
	svc := &stubAuth{}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MessageInvalidBody, decodeEnvelope(t, rec).Message)
	assert.Zero(t, svc.calls)
}

func TestRegister_Created(t *testing.T) {
	h := NewAuthHandler(&stubAuth{}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"username":"ann","email":"ann@example.com","password":"secret"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, utils.StatusSuccess, body.Status)
	assert.Equal(t, "Registration is Success", body.Message)
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "validation", err: apperror.ValidationFailed("a", "b"), wantCode: http.StatusBadRequest, wantMsg: "a\nb"},
		{name: "unauthenticated", err: apperror.Unauthenticated("who?"), wantCode: http.StatusUnauthorized, wantMsg: "who?"},
		{name: "not found", err: apperror.NotFound("gone"), wantCode: http.StatusNotFound, wantMsg: "gone"},
		{name: "conflict", err: apperror.Conflict("taken"), wantCode: http.StatusConflict, wantMsg: "taken"},
		{name: "wrapped conflict", err: errors.Join(errors.New("ctx"), apperror.Conflict("taken")), wantCode: http.StatusConflict, wantMsg: "taken"},
		{name: "value too long", err: fmt.Errorf("update address: %w", fmt.Errorf("%w: %w", errors.New("value too long"), apperror.ValidationFailed("pin_code is too long"))), wantCode: http.StatusBadRequest, wantMsg: "pin_code is too long"},
		{name: "unknown", err: errors.New("pq: connection refused"), wantCode: http.StatusInternalServerError, wantMsg: utils.MessageServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec).Message)
		})
	}
}

func TestHandleServiceError_LogsUnknownErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	handleServiceError(httptest.NewRecorder(), zap.New(core), errors.New("boom"), "place order")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Failed to place order", entry.Message)
	assert.Equal(t, "boom", entry.ContextMap()["error"])
}

func TestOrderUpdateStatus_PathAndCaller(t *testing.T) {
	svc := &stubOrders{}
	h := NewOrderHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/orders/{orderId}", h.UpdateStatus)

	userID := uuid.New()
	orderID := uuid.New()

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders/not-a-uuid", strings.NewReader(`{"orderStatus":"shipped"}`))
		req = req.WithContext(utils.SetUserContext(req.Context(), userID, "ann@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.gotReq)
	})

	t.Run("no caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID.String(), strings.NewReader(`{"orderStatus":"shipped"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, svc.gotReq)
	})

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID.String(), strings.NewReader(`{"orderStatus":"shipped"}`))
		req = req.WithContext(utils.SetUserContext(req.Context(), userID, "ann@example.com"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Order Status is Updated!", decodeEnvelope(t, rec).Message)
		assert.Equal(t, userID, svc.gotUser)
		assert.Equal(t, orderID, svc.gotOrder)
		assert.Equal(t, "shipped", svc.gotReq.OrderStatus)
	})
}
