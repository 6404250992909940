// file: controllers/analytics_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/services"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func timeRangeParam(c *gin.Context) services.TimeRange {
	return services.TimeRange(c.DefaultQuery("time_range", string(services.RangeLast30Days)))
}

func GetTotalChallengeAnalytics(c *gin.Context) {
	resp, err := analyticsService.GetTotalChallenges(c.Request.Context(), timeRangeParam(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", resp)
}

func GetOpenChallengeAnalytics(c *gin.Context) {
	resp, err := analyticsService.GetOpenChallenges(c.Request.Context(), timeRangeParam(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", resp)
}

func GetOngoingChallengeAnalytics(c *gin.Context) {
	resp, err := analyticsService.GetOngoingChallenges(c.Request.Context(), timeRangeParam(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", resp)
}

func GetCompletedChallengeAnalytics(c *gin.Context) {
	resp, err := analyticsService.GetCompletedChallenges(c.Request.Context(), timeRangeParam(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", resp)
}

func GetChallengeStatusOverview(c *gin.Context) {
	overview, err := analyticsService.GetStatusOverview(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "success", overview)
}
