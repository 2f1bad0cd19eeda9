package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/cardengine"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes wires all endpoints onto the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/cards", h.CreateCard).Methods("POST")
	r.HandleFunc("/cards", h.ListCards).Methods("GET")
	r.HandleFunc("/cards/{id}/summary", h.CardSummary).Methods("GET")
	r.HandleFunc("/cards/{id}/transactions", h.RecordTransaction).Methods("POST")
	r.HandleFunc("/cards/{id}/payments", h.RecordPayment).Methods("POST")
	r.HandleFunc("/cards/{id}/payments/preview", h.PreviewPayment).Methods("POST")
	r.HandleFunc("/cards/{id}/statements", h.GenerateStatement).Methods("POST")
	r.HandleFunc("/cards/{id}/trap", h.SimulateCardTrap).Methods("POST")
	r.HandleFunc("/simulations/trap", h.SimulateTrap).Methods("POST")
	r.HandleFunc("/loans/schedule", h.LoanSchedule).Methods("POST")
	r.HandleFunc("/risk", h.RiskAnalysis).Methods("GET")
	r.HandleFunc("/net-worth", h.NetWorth).Methods("GET")
	r.HandleFunc("/insights", h.ListInsights).Methods("GET")
	r.HandleFunc("/insights/refresh", h.RefreshInsights).Methods("POST")
	r.HandleFunc("/market-rates", h.MarketRates).Methods("GET")
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, err error) {
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// CreateCard handles new card registration
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var card models.CreditCard
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.svc.CreateCard(&card); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, card)
}

// ListCards returns all registered cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCards()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, cards)
}

// CardSummary returns the dashboard view of one card
func (h *Handler) CardSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	summary, err := h.svc.CardSummary(id, time.Now())
	if err != nil {
		h.respondError(w, http.StatusNotFound, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

// RecordTransaction stores a purchase, refund, fee or cash advance
func (h *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	var txn models.CardTransaction
	if err := json.NewDecoder(r.Body).Decode(&txn); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	txn.CreditCardID = id
	if err := h.svc.RecordTransaction(&txn); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, txn)
}

// RecordPayment stores a payment against a card
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	var payment models.CardPayment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	payment.CreditCardID = id
	if err := h.svc.RecordPayment(&payment); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, payment)
}

// PreviewPayment shows how a payment would be allocated without saving it
func (h *Handler) PreviewPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	preview, err := h.svc.PreviewPayment(id, req.Amount)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusOK, preview)
}

// GenerateStatement closes the current billing cycle for a card
func (h *Handler) GenerateStatement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	stmt, err := h.svc.GenerateStatement(id, time.Now())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, stmt)
}

// SimulateCardTrap runs the minimum-payment simulation on a card's debt
func (h *Handler) SimulateCardTrap(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.runTrap(w, r, id)
}

// SimulateTrap runs the minimum-payment simulation on an explicit debt
func (h *Handler) SimulateTrap(w http.ResponseWriter, r *http.Request) {
	h.runTrap(w, r, 0)
}

func (h *Handler) runTrap(w http.ResponseWriter, r *http.Request, cardID int64) {
	var in cardengine.TrapInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	result, err := h.svc.SimulateTrap(cardID, in)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// LoanSchedule builds an annuity repayment plan
func (h *Handler) LoanSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal    float64 `json:"principal"`
		MonthlyRate  float64 `json:"monthly_rate"`
		Installments int     `json:"installments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	schedule, err := h.svc.LoanSchedule(req.Principal, req.MonthlyRate, req.Installments)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err)
		return
	}
	h.respondJSON(w, http.StatusOK, schedule)
}

// RiskAnalysis returns the overall financial health score
func (h *Handler) RiskAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.svc.RiskAnalysis(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, analysis)
}

// NetWorth values all assets at market rates and nets out debts
func (h *Handler) NetWorth(w http.ResponseWriter, r *http.Request) {
	worth, err := h.svc.NetWorth(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, worth)
}

// ListInsights returns the latest persisted insights
func (h *Handler) ListInsights(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.svc.Insights(limit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, list)
}

// RefreshInsights regenerates the insight feed on demand
func (h *Handler) RefreshInsights(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.RefreshInsights(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]int{"created": created})
}

// MarketRates returns the current FX, gold and crypto rate table
func (h *Handler) MarketRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.MarketRates(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rates)
}
