package http

import (
	"net/http"
	"strconv"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	book := req.toDomain()
	if err := h.bookSvc.CreateBook(r.Context(), book); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string `json:"message"`
		BookID  int32  `json:"bookID"`
	}{"Book created successfully!", book.ID})
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookSvc.ListBooks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": nonNil(books)})
}

func (h *BookHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookSvc.SearchBooks(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(books) == 0 {
		writeMessage(w, http.StatusOK, "No books found matching the search query")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	book, err := h.bookSvc.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"book": book})
}

func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req updateBookRequest
	if err := bind(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.bookSvc.UpdateBook(r.Context(), id, req.toDomain()); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Book updated successfully")
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.bookSvc.DeleteBook(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Book deleted successfully")
}

// bookIDFromPath reads the {bookID} route variable. The route only matches
// digits, so a parse failure means the id is out of range and cannot exist.
func bookIDFromPath(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookID"], 10, 32)
	if err != nil {
		return 0, domain.NotFoundf("book not found")
	}
	return int32(id), nil
}
