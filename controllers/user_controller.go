package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrilog/models"
	"nutrilog/services"
)

type UserController struct {
	calories *services.CalorieService
}

func NewUserController(calories *services.CalorieService) *UserController {
	return &UserController{calories: calories}
}

// POST /users/daily-rate
func (uc *UserController) DailyRatePreview(c *gin.Context) {
	var input models.UserProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	rate, err := uc.calories.Preview(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// POST /users/me/daily-rate
func (uc *UserController) DailyRateCommit(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	var input models.UserProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	profile, err := uc.calories.Commit(c.Request.Context(), id, input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
