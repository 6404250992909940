// file: dto/submission.go
package dto

import "github.com/derrick-nuby/talent-vortex-be/models"

type CreateSubmissionReq struct {
	ApplicationID     uint32        `json:"application_id" binding:"required"`
	DeployedLinks     []models.Link `json:"deployed_links"`
	GithubLinks       []models.Link `json:"github_links"`
	FigmaLinks        []models.Link `json:"figma_links"`
	OtherLinks        []models.Link `json:"other_links"`
	SubmitterComments string        `json:"submitter_comments"`
}

type AddFeedbackReq struct {
	Comment   string `json:"comment" binding:"required"`
	IsPrivate bool   `json:"is_private"`
}

type UpdateSubmissionStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending_review in_review reviewed rejected winner"`
}
