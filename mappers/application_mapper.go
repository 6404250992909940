// file: mappers/application_mapper.go
package mappers

import (
	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

// MapApplicationToResp shapes an application for API responses. Member
// tokens never leave the server; only invitation metadata does.
func MapApplicationToResp(app *models.Application) gin.H {
	members := make([]gin.H, 0, len(app.TeamMembers))
	for _, m := range app.TeamMembers {
		members = append(members, gin.H{
			"user_id":    m.UserID,
			"email":      m.Email,
			"status":     m.Status,
			"invited_at": m.InvitedAt,
		})
	}

	return gin.H{
		"id":           app.ID,
		"challenge_id": app.ChallengeID,
		"applicant_id": app.ApplicantID,
		"type":         app.Type,
		"status":       app.Status,
		"team_members": members,
		"created_at":   app.CreatedAt,
	}
}
