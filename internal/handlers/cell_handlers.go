package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/store"
)

// GetAllCells is the handler for GET /api/cells. Optional ?shelf=<id> or
// ?product=<id> queries narrow the result.
func (h *Handlers) GetAllCells(c *gin.Context) {
	ctx := c.Request.Context()

	if shelfID := c.Query("shelf"); shelfID != "" {
		cells, err := h.Services.Cells.ListByShelf(ctx, shelfID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cells)
		return
	}
	if productID := c.Query("product"); productID != "" {
		cells, err := h.Services.Cells.ListByProduct(ctx, productID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cells)
		return
	}

	cells, err := h.Services.Cells.GetAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cells)
}

// GetCellByID is the handler for GET /api/cells/:id. The cell comes back
// with its full ancestor chain and product resolved.
func (h *Handlers) GetCellByID(c *gin.Context) {
	cell, err := h.Services.Cells.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cell == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, cell)
}

// CreateCell is the handler for POST /api/cells.
func (h *Handlers) CreateCell(c *gin.Context) {
	var input store.CreateCellInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cell, err := h.Services.Cells.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cell)
}

// UpdateCell is the handler for PUT /api/cells/:id.
func (h *Handlers) UpdateCell(c *gin.Context) {
	var input store.UpdateCellInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cell, err := h.Services.Cells.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cell == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, cell)
}

// DeleteCell is the handler for DELETE /api/cells/:id.
func (h *Handlers) DeleteCell(c *gin.Context) {
	cell, err := h.Services.Cells.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cell == nil {
		respondNotFound(c)
		return
	}
	respondDeleted(c)
}
