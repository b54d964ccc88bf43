package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/handlers"
)

// CORSMiddleware allows the browser frontend to call the API. The allowed
// origin defaults to the local Vite dev server.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter builds the gin engine: one resource group per entity type,
// each with the standard five CRUD routes.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		warehouses := api.Group("/warehouses")
		{
			warehouses.GET("", h.GetAllWarehouses)
			warehouses.GET("/:id", h.GetWarehouseByID)
			warehouses.GET("/:id/stats", h.GetWarehouseStats)
			warehouses.POST("", h.CreateWarehouse)
			warehouses.PUT("/:id", h.UpdateWarehouse)
			warehouses.DELETE("/:id", h.DeleteWarehouse)
		}

		sections := api.Group("/sections")
		{
			sections.GET("", h.GetAllSections)
			sections.GET("/:id", h.GetSectionByID)
			sections.POST("", h.CreateSection)
			sections.PUT("/:id", h.UpdateSection)
			sections.DELETE("/:id", h.DeleteSection)
		}

		racks := api.Group("/racks")
		{
			racks.GET("", h.GetAllRacks)
			racks.GET("/:id", h.GetRackByID)
			racks.POST("", h.CreateRack)
			racks.PUT("/:id", h.UpdateRack)
			racks.DELETE("/:id", h.DeleteRack)
		}

		shelves := api.Group("/shelves")
		{
			shelves.GET("", h.GetAllShelves)
			shelves.GET("/:id", h.GetShelfByID)
			shelves.POST("", h.CreateShelf)
			shelves.PUT("/:id", h.UpdateShelf)
			shelves.DELETE("/:id", h.DeleteShelf)
		}

		cells := api.Group("/cells")
		{
			cells.GET("", h.GetAllCells)
			cells.GET("/:id", h.GetCellByID)
			cells.POST("", h.CreateCell)
			cells.PUT("/:id", h.UpdateCell)
			cells.DELETE("/:id", h.DeleteCell)
		}

		products := api.Group("/products")
		{
			products.GET("", h.GetAllProducts)
			products.GET("/:id", h.GetProductByID)
			products.POST("", h.CreateProduct)
			products.PUT("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.GetAllCategories)
			categories.GET("/:id", h.GetCategoryByID)
			categories.POST("", h.CreateCategory)
			categories.PUT("/:id", h.UpdateCategory)
			categories.DELETE("/:id", h.DeleteCategory)
		}
	}

	return router
}
