// file: controllers/submission_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/mappers"
	"github.com/derrick-nuby/talent-vortex-be/models"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func CreateSubmission(c *gin.Context) {
	var req dto.CreateSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	submission, err := submissionService.Create(currentUserID(c), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Submission created successfully", submission)
}

func AddSubmissionFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid submission ID")
		return
	}

	var req dto.AddFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	submission, err := submissionService.AddFeedback(uint32(id), currentUserID(c), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Feedback added successfully", submission)
}

func UpdateSubmissionStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid submission ID")
		return
	}

	var req dto.UpdateSubmissionStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	submission, err := submissionService.UpdateStatus(uint32(id), models.SubmissionStatus(req.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Success(c, "Submission status updated", submission)
}

func GetMySubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	submissions, total, err := submissionService.GetByUser(currentUserID(c), page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(submissions))
	for _, s := range submissions {
		items = append(items, mappers.MapSubmissionToResp(s))
	}

	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	utils.Success(c, "success", gin.H{
		"submissions": items,
		"total":       total,
		"page":        page,
		"pages":       pages,
	})
}

func GetAllSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := models.SubmissionStatus(c.Query("status"))

	submissions, total, err := submissionService.GetAll(page, limit, status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(submissions))
	for _, s := range submissions {
		items = append(items, mappers.MapSubmissionToAdminResp(s))
	}

	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	utils.Success(c, "success", gin.H{
		"submissions": items,
		"total":       total,
		"page":        page,
		"pages":       pages,
	})
}
