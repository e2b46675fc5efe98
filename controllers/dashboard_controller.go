package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-bike/models"
	"bar-bike/services"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// @Summary Admin dashboard
// @Description Catalog size, inventory value, products per category and user count
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := ctrl.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dashboard retrieved",
		Data:    dashboard,
	})
}
