package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/user/invoicer/internal/adapter/metrics"
	"github.com/user/invoicer/internal/domain"
	"github.com/user/invoicer/internal/usecase"
)

// InvoiceHandler serves the invoice form actions and the dashboard read
// endpoints.
type InvoiceHandler struct {
	createUC  *usecase.CreateInvoiceUseCase
	updateUC  *usecase.UpdateInvoiceUseCase
	deleteUC  *usecase.DeleteInvoiceUseCase
	invoices  domain.InvoiceRepository
	customers domain.CustomerRepository
	revenue   domain.RevenueRepository
	cache     domain.PageCache
	logger    *slog.Logger
	metrics   *metrics.ActionMetrics
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(
	createUC *usecase.CreateInvoiceUseCase,
	updateUC *usecase.UpdateInvoiceUseCase,
	deleteUC *usecase.DeleteInvoiceUseCase,
	invoices domain.InvoiceRepository,
	customers domain.CustomerRepository,
	revenue domain.RevenueRepository,
	cache domain.PageCache,
	logger *slog.Logger,
	m *metrics.ActionMetrics,
) *InvoiceHandler {
	return &InvoiceHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		invoices:  invoices,
		customers: customers,
		revenue:   revenue,
		cache:     cache,
		logger:    logger,
		metrics:   m,
	}
}

// invoiceListPage is the rendered payload of the invoices list page. It is
// what gets cached under the invoices path.
type invoiceListPage struct {
	Invoices   []domain.InvoiceListItem `json:"invoices"`
	TotalPages int                      `json:"total_pages"`
}

// Create handles the create-invoice form submission.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	res := h.createUC.Create(r.Context(), usecase.ActionResult{}, r.PostForm)
	h.writeActionResult(w, r, "create", res)
}

// Update handles the update-invoice form submission for the invoice in the
// path.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	id := r.PathValue("id")
	res := h.updateUC.Update(r.Context(), id, usecase.ActionResult{}, r.PostForm)
	h.writeActionResult(w, r, "update", res)
}

// Delete handles the inline delete action for the invoice in the path.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	res := h.deleteUC.Delete(r.Context(), id)
	h.writeActionResult(w, r, "delete", res)
}

// writeActionResult maps an ActionResult onto the HTTP response: redirects
// become 303 See Other, field errors 422, caught database errors 500, and
// plain messages 200.
func (h *InvoiceHandler) writeActionResult(w http.ResponseWriter, r *http.Request, action string, res usecase.ActionResult) {
	switch {
	case res.RedirectTo != "":
		h.countAction(action, "success")
		http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
	case res.Errors != nil:
		h.countAction(action, "rejected")
		writeJSON(w, http.StatusUnprocessableEntity, res)
	case res.Failed:
		h.countAction(action, "db_error")
		writeJSON(w, http.StatusInternalServerError, res)
	default:
		h.countAction(action, "success")
		writeJSON(w, http.StatusOK, res)
	}
}

// List serves the invoices list page. The unfiltered first page is served
// from the page cache when possible; mutations invalidate it.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	cacheable := query == "" && page == 1

	if cacheable {
		payload, ok, err := h.cache.Get(r.Context(), usecase.InvoicesPath)
		if err != nil {
			h.logger.Warn("page cache read failed", "error", err)
		}
		if ok {
			if h.metrics != nil {
				h.metrics.PageCacheHits.Inc()
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			w.WriteHeader(http.StatusOK)
			w.Write(payload)
			return
		}
		if h.metrics != nil {
			h.metrics.PageCacheMisses.Inc()
		}
	}

	invoices, err := h.invoices.FetchFiltered(r.Context(), query, page)
	if err != nil {
		h.logger.Error("failed to fetch invoices", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	totalPages, err := h.invoices.CountPages(r.Context(), query)
	if err != nil {
		h.logger.Error("failed to count invoice pages", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	listPage := invoiceListPage{Invoices: invoices, TotalPages: totalPages}
	payload, err := json.Marshal(listPage)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		if err := h.cache.Set(r.Context(), usecase.InvoicesPath, payload); err != nil {
			h.logger.Warn("page cache write failed", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "miss")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// GetByID serves a single invoice, as needed by the edit form.
func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.FetchByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to fetch invoice", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// Customers serves the customer reference list.
func (h *InvoiceHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list customers", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// Revenue serves the monthly revenue series.
func (h *InvoiceHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.revenue.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list revenue", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

// Cards serves the dashboard overview aggregates.
func (h *InvoiceHandler) Cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.invoices.CardData(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch card data", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *InvoiceHandler) countAction(action, outcome string) {
	if h.metrics != nil {
		h.metrics.ActionsTotal.WithLabelValues(action, outcome).Inc()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
