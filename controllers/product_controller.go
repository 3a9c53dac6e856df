package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrilog/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// GET /products?title=apple
func (pc *ProductController) SearchProducts(c *gin.Context) {
	out, err := pc.products.FindAllByTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}
