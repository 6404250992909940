// file: controllers/team_invitation_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func AcceptInvitation(c *gin.Context) {
	err := applicationService.HandleInvitationResponse(c.Request.Context(), c.Param("token"), true)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "Invitation accepted successfully", nil)
}

func RejectInvitation(c *gin.Context) {
	err := applicationService.HandleInvitationResponse(c.Request.Context(), c.Param("token"), false)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Success(c, "Invitation rejected successfully", nil)
}
