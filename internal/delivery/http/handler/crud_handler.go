package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
)

// CrudHandler serves the plain create/read/patch entities. Updates decode the
// request body over the stored record, so absent fields keep their values.
type CrudHandler[T any] struct {
	crudUsecase usecase.CrudUsecase[T]
	name        string
}

func NewCrudHandler[T any](crudUsecase usecase.CrudUsecase[T], name string) *CrudHandler[T] {
	return &CrudHandler[T]{
		crudUsecase: crudUsecase,
		name:        name,
	}
}

func (h *CrudHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	created, err := h.crudUsecase.Create(r.Context(), &record)
	if err != nil {
		response.InternalServerError(w, "Failed to create "+h.name)
		return
	}

	response.Success(w, http.StatusCreated, h.name+" created successfully", created)
}

func (h *CrudHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.crudUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list "+h.name)
		return
	}

	response.Success(w, http.StatusOK, h.name+" retrieved successfully", records)
}

func (h *CrudHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return
	}

	record, err := h.crudUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, h.name+" not found")
		default:
			response.InternalServerError(w, "Failed to get "+h.name)
		}
		return
	}

	response.Success(w, http.StatusOK, h.name+" retrieved successfully", record)
}

func (h *CrudHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return
	}

	record, err := h.crudUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, h.name+" not found")
		default:
			response.InternalServerError(w, "Failed to get "+h.name)
		}
		return
	}

	if err := json.NewDecoder(r.Body).Decode(record); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	updated, err := h.crudUsecase.Update(r.Context(), record)
	if err != nil {
		response.InternalServerError(w, "Failed to update "+h.name)
		return
	}

	response.Success(w, http.StatusOK, h.name+" updated successfully", updated)
}
