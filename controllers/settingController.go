package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"barflow-api/dtos"
	"barflow-api/models"
	"barflow-api/services"
)

type SettingController struct {
	DB    *gorm.DB
	Store *services.StoreService
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db, Store: services.NewStoreService(db)}
}

func (sc *SettingController) GetSetting(c *gin.Context) {
	var setting models.Setting
	if err := sc.DB.First(&setting, "key = ?", c.Param("key")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (sc *SettingController) SaveSetting(c *gin.Context) {
	var input dtos.SettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting := models.Setting{Key: c.Param("key"), Value: input.Value}
	err := sc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// ResetStore wipes all durable state back to the seeded defaults.
func (sc *SettingController) ResetStore(c *gin.Context) {
	if err := sc.Store.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store reset to defaults"})
}
