package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/store"
)

// GetAllShelves is the handler for GET /api/shelves. An optional ?rack=<id>
// query narrows the result to one rack's shelves, bottom level first.
func (h *Handlers) GetAllShelves(c *gin.Context) {
	ctx := c.Request.Context()

	if rackID := c.Query("rack"); rackID != "" {
		shelves, err := h.Services.Shelves.ListByRack(ctx, rackID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, shelves)
		return
	}

	shelves, err := h.Services.Shelves.GetAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shelves)
}

// GetShelfByID is the handler for GET /api/shelves/:id.
func (h *Handlers) GetShelfByID(c *gin.Context) {
	shelf, err := h.Services.Shelves.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if shelf == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, shelf)
}

// CreateShelf is the handler for POST /api/shelves.
func (h *Handlers) CreateShelf(c *gin.Context) {
	var input store.CreateShelfInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shelf, err := h.Services.Shelves.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shelf)
}

// UpdateShelf is the handler for PUT /api/shelves/:id.
func (h *Handlers) UpdateShelf(c *gin.Context) {
	var input store.UpdateShelfInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shelf, err := h.Services.Shelves.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if shelf == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, shelf)
}

// DeleteShelf is the handler for DELETE /api/shelves/:id. Deleting a shelf
// removes its cells.
func (h *Handlers) DeleteShelf(c *gin.Context) {
	shelf, err := h.Services.Shelves.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if shelf == nil {
		respondNotFound(c)
		return
	}
	respondDeleted(c)
}
