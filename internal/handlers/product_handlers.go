package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/store"
)

// GetAllProducts is the handler for GET /api/products. An optional
// ?category=<id> query narrows the result to one category's products.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if categoryID := c.Query("category"); categoryID != "" {
		products, err := h.Services.Products.ListByCategory(ctx, categoryID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := h.Services.Products.GetAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID is the handler for GET /api/products/:id.
func (h *Handlers) GetProductByID(c *gin.Context) {
	product, err := h.Services.Products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct is the handler for POST /api/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input store.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Services.Products.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct is the handler for PUT /api/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input store.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Services.Products.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct is the handler for DELETE /api/products/:id. Cells that
// held the product are emptied, not deleted.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	product, err := h.Services.Products.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if product == nil {
		respondNotFound(c)
		return
	}
	respondDeleted(c)
}
