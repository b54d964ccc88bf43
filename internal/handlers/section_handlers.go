package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/store"
)

// GetAllSections is the handler for GET /api/sections. An optional
// ?warehouse=<id> query narrows the result to one warehouse's sections.
func (h *Handlers) GetAllSections(c *gin.Context) {
	ctx := c.Request.Context()

	if warehouseID := c.Query("warehouse"); warehouseID != "" {
		sections, err := h.Services.Sections.ListByWarehouse(ctx, warehouseID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sections)
		return
	}

	sections, err := h.Services.Sections.GetAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// GetSectionByID is the handler for GET /api/sections/:id.
func (h *Handlers) GetSectionByID(c *gin.Context) {
	sec, err := h.Services.Sections.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if sec == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, sec)
}

// CreateSection is the handler for POST /api/sections.
func (h *Handlers) CreateSection(c *gin.Context) {
	var input store.CreateSectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sec, err := h.Services.Sections.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sec)
}

// UpdateSection is the handler for PUT /api/sections/:id.
func (h *Handlers) UpdateSection(c *gin.Context) {
	var input store.UpdateSectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sec, err := h.Services.Sections.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if sec == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, sec)
}

// DeleteSection is the handler for DELETE /api/sections/:id.
func (h *Handlers) DeleteSection(c *gin.Context) {
	sec, err := h.Services.Sections.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if sec == nil {
		respondNotFound(c)
		return
	}
	respondDeleted(c)
}
