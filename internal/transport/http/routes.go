package httpt

func (h *InventoryHandler) setupRoutes() {
	api := h.router.Group("/api")
	{
		api.GET("/health", h.healthHandler)

		items := api.Group("/items")
		{
			items.GET("", h.listItemsHandler)
			items.POST("", h.createItemHandler)
			items.POST("/batch", h.createBatchHandler)
			items.PUT("/:id", h.updateItemHandler)
			items.DELETE("/:id", h.deleteItemHandler)
			items.POST("/:id/stock", h.addStockHandler)
		}

		sales := api.Group("/sales")
		{
			sales.GET("", h.listSalesHandler)
			sales.POST("", h.recordSaleHandler)
		}

		api.GET("/analytics/dashboard", h.dashboardHandler)
	}
}
