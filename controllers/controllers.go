// file: controllers/controllers.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/services"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

var (
	authService        *services.AuthService
	applicationService *services.ApplicationService
	challengeService   *services.ChallengeService
	categoryService    *services.CategoryService
	submissionService  *services.SubmissionService
	analyticsService   *services.AnalyticsService
	formService        *services.FormService
)

// Init wires the service layer into the handler package. Called once
// from main before the router is built.
func Init(
	auth *services.AuthService,
	application *services.ApplicationService,
	challenge *services.ChallengeService,
	category *services.CategoryService,
	submission *services.SubmissionService,
	analytics *services.AnalyticsService,
	form *services.FormService,
) {
	authService = auth
	applicationService = application
	challengeService = challenge
	categoryService = category
	submissionService = submission
	analyticsService = analytics
	formService = form
}

// handleServiceError translates service failure kinds onto the response
// envelope's business codes.
func handleServiceError(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindInvalidInput:
		utils.Error(c, 1001, err.Error())
	case services.KindConflict:
		utils.Error(c, 2001, err.Error())
	case services.KindInvalidState:
		utils.Error(c, 3002, err.Error())
	case services.KindNotFound:
		utils.Error(c, 4004, err.Error())
	default:
		utils.Error(c, 5000, "Internal server error")
	}
}

func currentUserID(c *gin.Context) uint32 {
	userIDAny, _ := c.Get("user_id")
	userID, _ := userIDAny.(uint32)
	return userID
}
