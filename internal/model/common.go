package model

import (
	"net/http"
	"time"
)

const DefaultTimeLayout string = time.RFC3339Nano
const DefaultDateLayout string = "2006-01-02"

// Status is embedded by every response. Its fields are inlined in the JSON
// body next to the operation specific fields.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func OK(message string) Status {
	return Status{Success: true, Message: message}
}

// Created is embedded by responses of create operations to answer with 201.
type Created struct{}

func (Created) StatusCode() int {
	return http.StatusCreated
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}
