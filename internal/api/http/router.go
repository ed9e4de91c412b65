package http

import (
	"net/http"

	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every route to its handler.
func NewRouter(books service.BookService, customers service.CustomerService, loans service.LoanService, db Pinger) *mux.Router {
	bookHandler := NewBookHandler(books)
	customerHandler := NewCustomerHandler(customers)
	loanHandler := NewLoanHandler(loans)
	healthHandler := NewHealthHandler(db)

	router := mux.NewRouter()
	router.Use(requestID, accessLog, recoverPanic)
	// mux skips Use middleware when no route matches.
	router.NotFoundHandler = requestID(accessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found"})
	})))
	router.MethodNotAllowedHandler = requestID(accessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})))

	router.HandleFunc("/books", bookHandler.CreateBook).Methods(http.MethodPost)
	router.HandleFunc("/books", bookHandler.ListBooks).Methods(http.MethodGet)
	router.HandleFunc("/books/search", bookHandler.SearchBooks).Methods(http.MethodGet)
	router.HandleFunc("/books/{bookID:[0-9]+}", bookHandler.GetBook).Methods(http.MethodGet)
	router.HandleFunc("/books/{bookID:[0-9]+}", bookHandler.UpdateBook).Methods(http.MethodPut)
	router.HandleFunc("/books/{bookID:[0-9]+}", bookHandler.DeleteBook).Methods(http.MethodDelete)

	router.HandleFunc("/customers", customerHandler.CreateCustomer).Methods(http.MethodPost)
	router.HandleFunc("/customers", customerHandler.ListCustomers).Methods(http.MethodGet)
	router.HandleFunc("/customers/search", customerHandler.SearchCustomers).Methods(http.MethodGet)
	router.HandleFunc("/customers/{customerID}", customerHandler.GetCustomer).Methods(http.MethodGet)
	router.HandleFunc("/customers/{customerID}", customerHandler.UpdateCustomer).Methods(http.MethodPut)
	router.HandleFunc("/customers/{customerID}", customerHandler.DeleteCustomer).Methods(http.MethodDelete)

	router.HandleFunc("/loans", loanHandler.CreateLoan).Methods(http.MethodPost)
	router.HandleFunc("/loans", loanHandler.ListLoans).Methods(http.MethodGet)
	router.HandleFunc("/loans", loanHandler.EndLoan).Methods(http.MethodDelete)
	router.HandleFunc("/loans/late", loanHandler.ListLateLoans).Methods(http.MethodGet)

	router.HandleFunc("/healthz", healthHandler.Health).Methods(http.MethodGet)

	return router
}
