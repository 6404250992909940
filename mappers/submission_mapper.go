// file: mappers/submission_mapper.go
package mappers

import (
	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

func mapFeedback(items []models.Feedback) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, f := range items {
		out = append(out, gin.H{
			"reviewer_id": f.ReviewerID,
			"comment":     f.Comment,
			"is_private":  f.IsPrivate,
			"created_at":  f.CreatedAt,
		})
	}
	return out
}

// MapSubmissionToResp shapes a submission row for the submitter-facing
// listing: challenge identity joined in, private feedback already
// filtered by the service.
func MapSubmissionToResp(s models.Submission) gin.H {
	return gin.H{
		"id":                 s.ID,
		"application_id":     s.ApplicationID,
		"status":             s.Status,
		"deployed_links":     s.DeployedLinks,
		"github_links":       s.GithubLinks,
		"figma_links":        s.FigmaLinks,
		"other_links":        s.OtherLinks,
		"submitter_comments": s.SubmitterComments,
		"feedback":           mapFeedback(s.Feedback),
		"challenge": gin.H{
			"title": s.Application.Challenge.Title,
			"slug":  s.Application.Challenge.Slug,
		},
		"created_at":   s.CreatedAt,
		"last_updated": s.LastUpdated,
	}
}

// MapSubmissionToAdminResp adds the submitter identity for reviewers.
func MapSubmissionToAdminResp(s models.Submission) gin.H {
	resp := MapSubmissionToResp(s)
	resp["submitter"] = gin.H{
		"first_name": s.Submitter.FirstName,
		"last_name":  s.Submitter.LastName,
		"email":      s.Submitter.Email,
	}
	return resp
}
