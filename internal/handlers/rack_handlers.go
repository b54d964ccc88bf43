package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/store"
)

// GetAllRacks is the handler for GET /api/racks. An optional ?section=<id>
// query narrows the result to one section's racks.
func (h *Handlers) GetAllRacks(c *gin.Context) {
	ctx := c.Request.Context()

	if sectionID := c.Query("section"); sectionID != "" {
		racks, err := h.Services.Racks.ListBySection(ctx, sectionID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, racks)
		return
	}

	racks, err := h.Services.Racks.GetAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, racks)
}

// GetRackByID is the handler for GET /api/racks/:id.
func (h *Handlers) GetRackByID(c *gin.Context) {
	rack, err := h.Services.Racks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if rack == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, rack)
}

// CreateRack is the handler for POST /api/racks.
func (h *Handlers) CreateRack(c *gin.Context) {
	var input store.CreateRackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rack, err := h.Services.Racks.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rack)
}

// UpdateRack is the handler for PUT /api/racks/:id.
func (h *Handlers) UpdateRack(c *gin.Context) {
	var input store.UpdateRackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rack, err := h.Services.Racks.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if rack == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, rack)
}

// DeleteRack is the handler for DELETE /api/racks/:id. Deleting a rack
// removes its shelves and their cells.
func (h *Handlers) DeleteRack(c *gin.Context) {
	rack, err := h.Services.Racks.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if rack == nil {
		respondNotFound(c)
		return
	}
	respondDeleted(c)
}
