package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrilog/services"
)

type EatenProductController struct {
	eaten *services.EatenProductService
}

func NewEatenProductController(eaten *services.EatenProductService) *EatenProductController {
	return &EatenProductController{eaten: eaten}
}

type AddEatenProductInput struct {
	Title  string  `json:"title" binding:"required"`
	Weight float64 `json:"weight" binding:"required,gt=0,lte=100000"`
}

// POST /eaten-products  { "title": "banana", "weight": 200 }
func (ec *EatenProductController) AddProduct(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	var input AddEatenProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	entry, err := ec.eaten.LogEntry(c.Request.Context(), id, input.Title, input.Weight)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /eaten-products/:date   (DD.MM.YYYY)
func (ec *EatenProductController) ListProducts(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	entries, err := ec.eaten.EntriesForDay(c.Request.Context(), id, c.Param("date"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /eaten-products/:date/summary
func (ec *EatenProductController) DaySummary(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	summary, err := ec.eaten.SummaryForDay(c.Request.Context(), id, c.Param("date"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DELETE /eaten-products/:id
func (ec *EatenProductController) RemoveProduct(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	if _, err := ec.eaten.RemoveEntry(c.Request.Context(), id, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
