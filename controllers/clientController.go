package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barflow-api/dtos"
	"barflow-api/models"
	"barflow-api/services"
)

type ClientController struct {
	DB      *gorm.DB
	Clients *services.ClientService
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db, Clients: services.NewClientService(db)}
}

func (cc *ClientController) GetClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Order("last_visit DESC").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (cc *ClientController) CreateClient(c *gin.Context) {
	var input dtos.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := models.Client{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Notes:     input.Notes,
		LastVisit: time.Now(),
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient touches identity and contact fields only. Balance, spend and
// loyalty points are owned by settlement and AdjustBalance.
func (cc *ClientController) UpdateClient(c *gin.Context) {
	var client models.Client
	if err := cc.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var input dtos.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":  input.Name,
		"phone": input.Phone,
		"email": input.Email,
		"notes": input.Notes,
	}
	if err := cc.DB.Model(&client).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := cc.DB.First(&client, client.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes the client row. Historical orders keep their
// snapshotted client id and name.
func (cc *ClientController) DeleteClient(c *gin.Context) {
	var client models.Client
	if err := cc.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if err := cc.DB.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

func (cc *ClientController) AdjustBalance(c *gin.Context) {
	var client models.Client
	if err := cc.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var input dtos.AdjustBalanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := cc.Clients.AdjustBalance(client.ID, input.Amount)
	if err != nil {
		if errors.Is(err, services.ErrZeroAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
