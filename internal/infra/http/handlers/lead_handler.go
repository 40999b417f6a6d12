package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
	"github.com/PrinceSD2/lms-sub001/internal/infra/http/middleware"
	"github.com/PrinceSD2/lms-sub001/internal/presenter"
	"github.com/PrinceSD2/lms-sub001/internal/usecase"
)

type LeadHandler struct {
	CreateUC    *usecase.CreateLeadUseCase
	ListUC      *usecase.ListLeadsUseCase
	StatusUC    *usecase.UpdateLeadStatusUseCase
	LeadRepo    usecase.LeadRepositoryInterface
	EventRepo   usecase.StatusEventRepositoryInterface
	Log         *zap.Logger
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	statusUC *usecase.UpdateLeadStatusUseCase,
	leadRepo usecase.LeadRepositoryInterface,
	eventRepo usecase.StatusEventRepositoryInterface,
	log *zap.Logger,
) *LeadHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeadHandler{
		CreateUC:    createUC,
		ListUC:      listUC,
		StatusUC:    statusUC,
		LeadRepo:    leadRepo,
		EventRepo:   eventRepo,
		Log:         log,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 submissions/min per IP
	}
}

// CreateLead handles POST /leads. The response echoes the stored record —
// including the server-derived source — so the agent who typed it in can
// confirm what was saved. List/read paths return masked views instead.
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		h.respondUseCaseError(w, err)
		return
	}

	c := entity.Classify(lead)
	middleware.RecordLeadCaptured(lead.Source, c.Category)

	respondJSON(w, http.StatusCreated, lead)
}

// ListLeads handles GET /leads. Every record goes through the classifier and
// the masking layer before it reaches the wire; an empty page is a valid
// empty collection, not an error.
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLeadsInput{
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "per_page"),
	}

	output, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		h.respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"leads":    presenter.NewLeadViews(output.Leads),
		"page":     output.Page,
		"per_page": output.PerPage,
		"total":    output.Total,
	})
}

// GetLead handles GET /leads/{id}, returning the masked display view.
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	lead, err := h.LeadRepo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "LEAD_NOT_FOUND", "no lead with id "+id)
			return
		}
		h.Log.Error("failed to load lead", zap.String("lead_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load lead")
		return
	}

	respondJSON(w, http.StatusOK, presenter.NewLeadView(lead))
}

// UpdateStatus handles PATCH /leads/{id}/status.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	var input usecase.UpdateLeadStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}
	input.LeadID = id

	lead, err := h.StatusUC.Execute(r.Context(), input)
	if err != nil {
		h.respondUseCaseError(w, err)
		return
	}

	middleware.RecordStatusTransition(lead.Status)
	respondJSON(w, http.StatusOK, presenter.NewLeadView(lead))
}

// GetHistory handles GET /leads/{id}/history.
func (h *LeadHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	events, err := h.EventRepo.ListByLead(r.Context(), id)
	if err != nil {
		h.Log.Error("failed to load status history", zap.String("lead_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load status history")
		return
	}
	if events == nil {
		events = []*entity.StatusEvent{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

func (h *LeadHandler) respondUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case "LEAD_NOT_FOUND":
			status = http.StatusNotFound
		case "DUPLICATE_EMAIL":
			status = http.StatusConflict
		}
		respondError(w, status, domainErr.Code, domainErr.Message)
		return
	}

	h.Log.Error("use case failed", zap.Error(err))
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong, please try again")
}
