package http

import (
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

type LoanHandler struct {
	loanSvc service.LoanService
}

func NewLoanHandler(loanSvc service.LoanService) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc}
}

func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	loan, err := h.loanSvc.CreateLoan(r.Context(), *req.LoanDate, *req.BookID, *req.CustomerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message    string `json:"message"`
		LoanID     int32  `json:"loanID"`
		ReturnDate string `json:"returnDate"`
	}{"Loan created successfully!", loan.ID, loan.ReturnDate.Format(domain.DateLayout)})
}

func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.ListLoans(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loans": mapDomainLoansToView(loans)})
}

// EndLoan ends the loan of the book titled by the q parameter.
func (h *LoanHandler) EndLoan(w http.ResponseWriter, r *http.Request) {
	if _, err := h.loanSvc.EndLoan(r.Context(), r.URL.Query().Get("q")); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Loan ended successfully")
}

func (h *LoanHandler) ListLateLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.ListLateLoans(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"late_loans": mapDomainLoansToView(loans)})
}
