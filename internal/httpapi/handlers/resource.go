package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// recordStore is the repository shape shared by every record kind
type recordStore[T, U any] interface {
	Create(ctx context.Context, record T) (int64, error)
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, update U) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// resource serves the CRUD endpoints of one record kind
type resource[T, U any] struct {
	kind  string
	store recordStore[T, U]
}

func registerResource[T, U any](rg *gin.RouterGroup, r resource[T, U]) {
	g := rg.Group("/" + r.kind)
	g.POST("", r.create)
	g.GET("", r.list)
	g.GET("/:id", r.get)
	g.PUT("/:id", r.update)
	g.DELETE("/:id", r.delete)
}

func (r resource[T, U]) create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	id, err := r.store.Create(c.Request.Context(), record)
	observe(c, r.kind, "create", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

func (r resource[T, U]) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	start := time.Now()
	record, err := r.store.Get(c.Request.Context(), id)
	observe(c, r.kind, "get", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (r resource[T, U]) list(c *gin.Context) {
	start := time.Now()
	records, err := r.store.List(c.Request.Context())
	observe(c, r.kind, "list", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	if records == nil {
		records = []T{}
	}
	c.JSON(http.StatusOK, records)
}

func (r resource[T, U]) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var update U
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	record, err := r.store.Update(c.Request.Context(), id, update)
	observe(c, r.kind, "update", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (r resource[T, U]) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	start := time.Now()
	err := r.store.Delete(c.Request.Context(), id)
	observe(c, r.kind, "delete", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: r.kind + " deleted"})
}
