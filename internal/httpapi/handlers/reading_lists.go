package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

const readingListKind = "reading_list"

// GetReadingLists returns the three lists of an employee
func (h *Handlers) GetReadingLists(c *gin.Context) {
	employeeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	start := time.Now()
	lists, err := h.store.Relations.GetLists(c.Request.Context(), employeeID)
	observe(c, readingListKind, "get_all", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// GetReadingList returns a single list keyed by its name
func (h *Handlers) GetReadingList(c *gin.Context) {
	employeeID, list, ok := employeeAndList(c)
	if !ok {
		return
	}

	start := time.Now()
	ids, err := h.store.Relations.GetList(c.Request.Context(), employeeID, list)
	observe(c, readingListKind, "get", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{string(list): ids})
}

func (h *Handlers) AddToReadingList(c *gin.Context) {
	employeeID, list, ok := employeeAndList(c)
	if !ok {
		return
	}
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	err := h.store.Relations.AddToList(c.Request.Context(), employeeID, list, req.BookID)
	observe(c, readingListKind, "add", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "book added to " + string(list)})
}

func (h *Handlers) RemoveFromReadingList(c *gin.Context) {
	employeeID, list, ok := employeeAndList(c)
	if !ok {
		return
	}
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	start := time.Now()
	err := h.store.Relations.RemoveFromList(c.Request.Context(), employeeID, list, bookID)
	observe(c, readingListKind, "remove", start, err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "book removed from " + string(list)})
}

func employeeAndList(c *gin.Context) (int64, types.ListName, bool) {
	employeeID, ok := pathID(c, "id")
	if !ok {
		return 0, "", false
	}
	list, err := types.ParseListName(c.Param("listName"))
	if err != nil {
		badRequest(c, err)
		return 0, "", false
	}
	return employeeID, list, true
}
