// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// Envelope is the uniform response body for every API endpoint. Error
// is null on success; Data and Pagination are omitted when empty.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *ErrorBody  `json:"error"`
	Timestamp  string      `json:"timestamp"`
}

// ErrorBody carries the machine-readable error code and a human-readable
// detail string.
type ErrorBody struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Pagination describes the page of a list response.
type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
}

// NewSuccessEnvelope builds a success envelope around the given data.
func NewSuccessEnvelope(message string, data interface{}) Envelope {
	return Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewPaginatedEnvelope builds a success envelope with pagination metadata.
func NewPaginatedEnvelope(message string, data interface{}, pagination Pagination) Envelope {
	return Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
		Error:      nil,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// NewErrorEnvelope builds an error envelope with the given code and detail.
func NewErrorEnvelope(message, code, details string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Code:    code,
			Details: details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewPagination derives pagination metadata from a page of results.
func NewPagination(page, limit, totalPages int, totalItems int64) Pagination {
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrevious:  page > 1,
	}
}
