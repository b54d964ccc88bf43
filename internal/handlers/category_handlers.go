package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/store"
)

// GetAllCategories is the handler for GET /api/categories.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Services.Categories.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID is the handler for GET /api/categories/:id.
func (h *Handlers) GetCategoryByID(c *gin.Context) {
	cat, err := h.Services.Categories.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cat == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateCategory is the handler for POST /api/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input store.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.Services.Categories.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// UpdateCategory is the handler for PUT /api/categories/:id.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input store.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.Services.Categories.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cat == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategory is the handler for DELETE /api/categories/:id. The
// category's products go with it.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	cat, err := h.Services.Categories.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cat == nil {
		respondNotFound(c)
		return
	}
	respondDeleted(c)
}
