package http

import (
	"net/http"

	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	customer := req.toDomain()
	if err := h.customerSvc.CreateCustomer(r.Context(), customer); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message    string `json:"message"`
		CustomerID string `json:"customerID"`
	}{"Customer created successfully!", customer.ID})
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.ListCustomers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customers": nonNil(customers)})
}

func (h *CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.SearchCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(customers) == 0 {
		writeMessage(w, http.StatusOK, "No customers found matching the search query")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customers": customers})
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerSvc.GetCustomer(r.Context(), mux.Vars(r)["customerID"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customer": customer})
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req updateCustomerRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.customerSvc.UpdateCustomer(r.Context(), mux.Vars(r)["customerID"], req.toDomain()); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Customer updated successfully")
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.customerSvc.DeleteCustomer(r.Context(), mux.Vars(r)["customerID"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Customer deleted successfully")
}
