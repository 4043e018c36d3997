package controllers

import (
	"net/http"

	"github.com/launchbase/launchbase/app/services"
	"github.com/launchbase/launchbase/pkg/response"
)

type AnalyticsController struct {
	service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{service: service}
}

func (c *AnalyticsController) SystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.SystemStats(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "System statistics retrieved", stats)
}

func (c *AnalyticsController) UserActivity(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.UserActivity(r.Context(), queryInt(r, "days", 30))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "User activity retrieved", rows)
}

func (c *AnalyticsController) OrderAnalytics(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.OrderAnalytics(r.Context(), queryInt(r, "days", 30))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "Order analytics retrieved", rows)
}

func (c *AnalyticsController) Revenue(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.Revenue(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "Revenue analytics retrieved", rows)
}

func (c *AnalyticsController) ProductPerformance(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.ProductPerformance(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "Product performance retrieved", rows)
}

func (c *AnalyticsController) CategoryPerformance(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.CategoryPerformance(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "Category performance retrieved", rows)
}

func (c *AnalyticsController) TopCustomers(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.TopCustomers(r.Context(), queryInt(r, "limit", 10))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "Top customers retrieved", rows)
}

func (c *AnalyticsController) FileActivity(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.FileActivity(r.Context(), queryInt(r, "days", 30))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "File activity retrieved", rows)
}

func (c *AnalyticsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := c.service.Dashboard(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, "Dashboard summary retrieved", summary)
}
