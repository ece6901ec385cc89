package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

type paginationParams struct {
	page     int
	pageSize int
	limit    int
	offset   int
}

type paginationError string

func (e paginationError) Error() string { return string(e) }

// parsePaginationParams reads page (1-based) and page_size from the query.
// Missing values fall back to page 1 and defaultSize; page_size above
// maxSize is an error.
func parsePaginationParams(r *http.Request, defaultSize, maxSize int) (paginationParams, error) {
	p := paginationParams{page: 1, pageSize: defaultSize}
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, paginationError("page must be a positive integer")
		}
		p.page = n
	}
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, paginationError("page_size must be a positive integer")
		}
		if n > maxSize {
			return p, paginationError("page_size must be at most " + strconv.Itoa(maxSize))
		}
		p.pageSize = n
	}

	p.limit = p.pageSize
	p.offset = (p.page - 1) * p.pageSize
	return p, nil
}

type paginatedResponse struct {
	Data       any `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func writePaginatedResponse(w http.ResponseWriter, status int, data any, page, pageSize, total int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	writeJSON(w, status, paginatedResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	})
}

// pageOf slices one page out of an in-memory result.
func pageOf[T any](items []T, p paginationParams) []T {
	if p.offset >= len(items) {
		return []T{}
	}
	end := p.offset + p.limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.offset:end]
}
