package game

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gameapi/internal/httpx"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
	defaultShelf    = 10
	maxShelf        = 50
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// clampPaging applies the boundary contract the service relies on:
// page >= 1 and 1 <= pageSize <= 50, with invalid values defaulted.
func clampPaging(r *http.Request) (page, pageSize int) {
	query := r.URL.Query()

	page, _ = strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(query.Get("pageSize"))
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func clampShelfCount(r *http.Request) int {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	if count < 1 || count > maxShelf {
		count = defaultShelf
	}
	return count
}

// List handles GET /api/games
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := clampPaging(r)

	result, err := h.service.ListAll(r.Context(), page, pageSize)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

// GetByID handles GET /api/games/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Game id must be an integer")
		return
	}

	g, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Game not found")
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, g)
}

// ListByCategory handles GET /api/games/category/{category}
func (h *HTTPHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if strings.TrimSpace(category) == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Category cannot be empty")
		return
	}
	page, pageSize := clampPaging(r)

	result, err := h.service.ListByCategory(r.Context(), category, page, pageSize)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

// Search handles GET /api/games/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("query")
	if strings.TrimSpace(term) == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Search query cannot be empty")
		return
	}
	page, pageSize := clampPaging(r)

	result, err := h.service.Search(r.Context(), term, page, pageSize)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

// TopRated handles GET /api/games/top-rated
func (h *HTTPHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.TopRated(r.Context(), clampShelfCount(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, games)
}

// Recent handles GET /api/games/recent
func (h *HTTPHandler) Recent(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.Recent(r.Context(), clampShelfCount(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, games)
}

// Categories handles GET /api/games/categories
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	httpx.JSON(w, http.StatusOK, categories)
}
