// file: controllers/challenge_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/mappers"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	challenge, err := challengeService.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Challenge created successfully", challenge)
}

func ListChallenges(c *gin.Context) {
	var req dto.QueryChallengesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, 1001, "Invalid query: "+err.Error())
		return
	}

	result, err := challengeService.FindAll(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Challenges retrieved successfully", result)
}

func GetChallengeDetail(c *gin.Context) {
	challenge, err := challengeService.FindByIdentifier(c.Param("identifier"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "success", challenge)
}

func UpdateChallenge(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("identifier"))
	if err != nil {
		utils.Error(c, 1002, "Invalid challenge ID")
		return
	}

	var req dto.UpdateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	challenge, err := challengeService.Update(uint32(id), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Challenge updated successfully", challenge)
}

func DeleteChallenge(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("identifier"))
	if err != nil {
		utils.Error(c, 1002, "Invalid challenge ID")
		return
	}

	if err := challengeService.Delete(uint32(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Challenge deleted successfully", nil)
}

// ApplyToChallenge creates an individual or team application for the
// authenticated user.
func ApplyToChallenge(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("identifier"))
	if err != nil {
		utils.Error(c, 1002, "Invalid challenge ID")
		return
	}

	var req dto.ApplyChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	app, err := applicationService.ApplyToChallenge(c.Request.Context(), currentUserID(c), uint32(id), req.TeamMembers)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Application submitted successfully", mappers.MapApplicationToResp(app))
}

func GetChallengeParticipants(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("identifier"))
	if err != nil {
		utils.Error(c, 1002, "Invalid challenge ID")
		return
	}

	var req dto.QueryParticipantsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, 1001, "Invalid query: "+err.Error())
		return
	}

	result, err := applicationService.GetChallengeParticipants(c.Request.Context(), uint32(id), req.Page, req.Limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "success", result)
}
