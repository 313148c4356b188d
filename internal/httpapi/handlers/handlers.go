/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/bookroster/pkg/config"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/store"
	"github.com/redhat-data-and-ai/bookroster/pkg/telemetry"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// error kinds reported to telemetry
const (
	errKindValidation = "validation"
	errKindNotFound   = "not_found"
	errKindConflict   = "conflict"
	errKindInternal   = "internal"
)

type Handlers struct {
	config *config.AppConfig
	store  *store.Store
}

func NewHandlers(cfg *config.AppConfig, dataStore *store.Store) *Handlers {
	return &Handlers{
		config: cfg,
		store:  dataStore,
	}
}

// CreatedResponse is returned by every create endpoint
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a mutation that returns no record
type MessageResponse struct {
	Message string `json:"message"`
}

// AddBookRequest is the body of the add-to-list endpoint
type AddBookRequest struct {
	BookID int64 `json:"book_id" binding:"required,gt=0"`
}

// RegisterRoutes mounts the record and reading list endpoints on rg
func (h *Handlers) RegisterRoutes(rg *gin.RouterGroup) {
	registerResource(rg, resource[types.Company, types.CompanyUpdate]{kind: "company", store: h.store.Company})
	registerResource(rg, resource[types.Employee, types.EmployeeUpdate]{kind: "employee", store: h.store.Employee})
	registerResource(rg, resource[types.Book, types.BookUpdate]{kind: "book", store: h.store.Book})
	registerResource(rg, resource[types.Admin, types.AdminUpdate]{kind: "admin", store: h.store.Admin})

	books := rg.Group("/employee/:id/books")
	books.GET("", h.GetReadingLists)
	books.GET("/:listName", h.GetReadingList)
	books.POST("/:listName", h.AddToReadingList)
	books.DELETE("/:listName/:bookId", h.RemoveFromReadingList)
}

// Healthz reports whether the key-value store answers
func (h *Handlers) Healthz(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		logger.Logger(c.Request.Context()).WithError(err).Error("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"service": h.config.App.Name,
			"status":  "unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service": h.config.App.Name,
		"status":  "running",
	})
}

// respondError maps store errors onto status codes. Anything that is not a
// store sentinel is logged and reported as a 500 without details
func respondError(c *gin.Context, err error) {
	switch errorKind(err) {
	case errKindValidation:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errKindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errKindConflict:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Logger(c.Request.Context()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrValidation):
		return errKindValidation
	case errors.Is(err, store.ErrNotFound):
		return errKindNotFound
	case errors.Is(err, store.ErrConflict):
		return errKindConflict
	default:
		return errKindInternal
	}
}

// observe records the outcome of one store operation
func observe(c *gin.Context, kind, operation string, start time.Time, err error) {
	telemetry.GetStoreMetrics().RecordOperation(c.Request.Context(), kind, operation, errorKind(err), start)
}

// pathID reads a positive integer path parameter, answering 400 otherwise
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " " + strconv.Quote(c.Param(name))})
		return 0, false
	}
	return id, true
}
