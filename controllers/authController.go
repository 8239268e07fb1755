package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barflow-api/dtos"
	"barflow-api/services"
)

type AuthController struct {
	Auth services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Auth: services.NewAuthService(db)}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := ac.Auth.Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}
