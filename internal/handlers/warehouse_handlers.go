package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/store"
)

// GetAllWarehouses is the handler for GET /api/warehouses.
func (h *Handlers) GetAllWarehouses(c *gin.Context) {
	warehouses, err := h.Services.Warehouses.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehouses)
}

// GetWarehouseByID is the handler for GET /api/warehouses/:id.
func (h *Handlers) GetWarehouseByID(c *gin.Context) {
	wh, err := h.Services.Warehouses.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if wh == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, wh)
}

// GetWarehouseStats is the handler for GET /api/warehouses/:id/stats. It
// reports how many sections, racks, shelves and cells the warehouse
// transitively contains.
func (h *Handlers) GetWarehouseStats(c *gin.Context) {
	stats, err := h.Services.Warehouses.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if stats == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateWarehouse is the handler for POST /api/warehouses.
func (h *Handlers) CreateWarehouse(c *gin.Context) {
	var input store.CreateWarehouseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wh, err := h.Services.Warehouses.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wh)
}

// UpdateWarehouse is the handler for PUT /api/warehouses/:id.
func (h *Handlers) UpdateWarehouse(c *gin.Context) {
	var input store.UpdateWarehouseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wh, err := h.Services.Warehouses.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if wh == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, wh)
}

// DeleteWarehouse is the handler for DELETE /api/warehouses/:id. Deleting a
// warehouse removes its whole subtree.
func (h *Handlers) DeleteWarehouse(c *gin.Context) {
	wh, err := h.Services.Warehouses.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if wh == nil {
		respondNotFound(c)
		return
	}
	respondDeleted(c)
}
