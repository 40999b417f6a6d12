package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
	"github.com/PrinceSD2/lms-sub001/internal/infra/http/handlers"
	"github.com/PrinceSD2/lms-sub001/internal/infra/queue"
	"github.com/PrinceSD2/lms-sub001/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, limit, offset int) ([]*entity.Lead, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Lead), args.Int(1), args.Error(2)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockStatusEventRepository
type MockStatusEventRepository struct {
	mock.Mock
}

func (m *MockStatusEventRepository) Create(ctx context.Context, event *entity.StatusEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStatusEventRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.StatusEvent, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.StatusEvent), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newHandler(leadRepo *MockLeadRepository, eventRepo *MockStatusEventRepository, producer *MockQueueProducer) *handlers.LeadHandler {
	createUC := usecase.NewCreateLeadUseCase(leadRepo, eventRepo, producer, nil)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	statusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, eventRepo, nil)
	return handlers.NewLeadHandler(createUC, listUC, statusUC, leadRepo, eventRepo, nil)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	chiCtx := chi.NewRouteContext()
	chiCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

// ============ TESTS ============

func TestCreateLeadHandlerSuccess(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	eventRepo := new(MockStatusEventRepository)
	producer := new(MockQueueProducer)

	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(nil)

	handler := newHandler(leadRepo, eventRepo, producer)

	body, _ := json.Marshal(usecase.CreateLeadInput{
		Name:            "Jane Doe",
		DebtCategory:    "unsecured",
		DebtTypes:       []string{"Credit Cards"},
		TotalDebtAmount: "5000",
	})
	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLead(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var stored entity.Lead
	json.NewDecoder(w.Body).Decode(&stored)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Credit Card Debt", stored.Source)
	assert.Equal(t, entity.StatusNew, stored.Status)
	assert.NotNil(t, stored.TotalDebtAmount)
	assert.Equal(t, 5000.0, *stored.TotalDebtAmount)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestCreateLeadHandlerInvalidJSON(t *testing.T) {
	handler := newHandler(new(MockLeadRepository), new(MockStatusEventRepository), new(MockQueueProducer))

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	handler.CreateLead(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "INVALID_JSON", errResponse["error"])
}

func TestCreateLeadHandlerMissingName(t *testing.T) {
	handler := newHandler(new(MockLeadRepository), new(MockStatusEventRepository), new(MockQueueProducer))

	body, _ := json.Marshal(usecase.CreateLeadInput{Email: "jane@example.com"})
	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateLead(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "VALIDATION_ERROR", errResponse["error"])
}

func TestListLeadsHandlerReturnsMaskedViews(t *testing.T) {
	leadRepo := new(MockLeadRepository)

	amount := 5000.0
	leadRepo.On("List", mock.Anything, 20, 0).Return([]*entity.Lead{
		{
			ID:              "lead-1",
			Name:            "Jane Doe",
			Email:           "jane.doe@example.com",
			Phone:           "5551234567",
			Source:          "Credit Card Debt",
			TotalDebtAmount: &amount,
			Status:          entity.StatusNew,
		},
	}, 1, nil)

	handler := newHandler(leadRepo, new(MockStatusEventRepository), new(MockQueueProducer))

	req := httptest.NewRequest("GET", "/leads", nil)
	w := httptest.NewRecorder()

	handler.ListLeads(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Leads []struct {
			Email                string `json:"email"`
			Phone                string `json:"phone"`
			TotalDebtAmount      string `json:"total_debt_amount"`
			Category             string `json:"category"`
			CompletionPercentage int    `json:"completion_percentage"`
		} `json:"leads"`
		Total int `json:"total"`
	}
	json.NewDecoder(w.Body).Decode(&response)

	assert.Equal(t, 1, response.Total)
	assert.Len(t, response.Leads, 1)
	assert.Equal(t, "ja***@example.com", response.Leads[0].Email)
	assert.Equal(t, "***-***-4567", response.Leads[0].Phone)
	assert.Equal(t, "$5***", response.Leads[0].TotalDebtAmount)
	assert.Equal(t, entity.TierCold, response.Leads[0].Category)
	assert.Equal(t, 30, response.Leads[0].CompletionPercentage)
}

func TestListLeadsHandlerEmptyState(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("List", mock.Anything, 20, 0).Return([]*entity.Lead{}, 0, nil)

	handler := newHandler(leadRepo, new(MockStatusEventRepository), new(MockQueueProducer))

	req := httptest.NewRequest("GET", "/leads", nil)
	w := httptest.NewRecorder()

	handler.ListLeads(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Empty page serializes as [], not null.
	assert.Contains(t, w.Body.String(), `"leads":[]`)
}

func TestGetLeadHandlerNotFound(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, "lead-999").Return(nil, entity.ErrLeadNotFound)

	handler := newHandler(leadRepo, new(MockStatusEventRepository), new(MockQueueProducer))

	req := withURLParam(httptest.NewRequest("GET", "/leads/lead-999", nil), "id", "lead-999")
	w := httptest.NewRecorder()

	handler.GetLead(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "LEAD_NOT_FOUND", errResponse["error"])
}

func TestUpdateStatusHandlerSuccess(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	eventRepo := new(MockStatusEventRepository)

	existing := &entity.Lead{
		ID:     "lead-1",
		Name:   "Jane Doe",
		Source: "Credit Card Debt",
		Status: entity.StatusNew,
	}

	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(existing, nil)
	leadRepo.On("UpdateStatus", mock.Anything, "lead-1", "interested").Return(nil)
	eventRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newHandler(leadRepo, eventRepo, new(MockQueueProducer))

	body := []byte(`{"status":"interested"}`)
	req := withURLParam(httptest.NewRequest("PATCH", "/leads/lead-1/status", bytes.NewReader(body)), "id", "lead-1")
	w := httptest.NewRecorder()

	handler.UpdateStatus(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view map[string]interface{}
	json.NewDecoder(w.Body).Decode(&view)
	assert.Equal(t, "interested", view["status"])
}

func TestUpdateStatusHandlerUnknownStatus(t *testing.T) {
	handler := newHandler(new(MockLeadRepository), new(MockStatusEventRepository), new(MockQueueProducer))

	body := []byte(`{"status":"archived"}`)
	req := withURLParam(httptest.NewRequest("PATCH", "/leads/lead-1/status", bytes.NewReader(body)), "id", "lead-1")
	w := httptest.NewRecorder()

	handler.UpdateStatus(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "INVALID_STATUS", errResponse["error"])
}

func TestGetHistoryHandler(t *testing.T) {
	eventRepo := new(MockStatusEventRepository)
	eventRepo.On("ListByLead", mock.Anything, "lead-1").Return([]*entity.StatusEvent{
		{ID: "ev-1", LeadID: "lead-1", ToStatus: entity.StatusNew},
		{ID: "ev-2", LeadID: "lead-1", FromStatus: entity.StatusNew, ToStatus: entity.StatusInterested},
	}, nil)

	handler := newHandler(new(MockLeadRepository), eventRepo, new(MockQueueProducer))

	req := withURLParam(httptest.NewRequest("GET", "/leads/lead-1/history", nil), "id", "lead-1")
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Events []entity.StatusEvent `json:"events"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.Len(t, response.Events, 2)
	assert.Equal(t, entity.StatusInterested, response.Events[1].ToStatus)
}
