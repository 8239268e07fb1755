package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barflow-api/models"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type TopProduct struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// GetDashboard aggregates today's takings from the order ledger. It reads
// the snapshotted line prices and costs, so catalog edits never shift
// historical figures.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var todayRevenue float64
	dc.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status = ? AND DATE(timestamp) = ?", models.OrderPaid, today).
		Scan(&todayRevenue)

	var todayProfit float64
	var paidToday []models.Order
	dc.DB.Preload("Items").
		Where("status = ? AND DATE(timestamp) = ?", models.OrderPaid, today).
		Find(&paidToday)
	for _, order := range paidToday {
		for _, item := range order.Items {
			todayProfit += float64(item.Quantity) * (item.Price - item.CostPrice)
		}
	}

	var openOrders int64
	dc.DB.Model(&models.Order{}).
		Where("status != ?", models.OrderPaid).
		Count(&openOrders)

	var lowStock int64
	dc.DB.Model(&models.Product{}).
		Where("stock <= alert_threshold").
		Count(&lowStock)

	var topProducts []TopProduct
	dc.DB.Model(&models.OrderItem{}).
		Select("order_items.name, SUM(order_items.quantity) as quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", models.OrderPaid).
		Group("order_items.name").
		Order("quantity desc").
		Limit(5).
		Scan(&topProducts)

	c.JSON(http.StatusOK, gin.H{
		"today_revenue":        todayRevenue,
		"today_profit":         todayProfit,
		"open_orders":          openOrders,
		"low_stock":            lowStock,
		"top_selling_products": topProducts,
	})
}
