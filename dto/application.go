// file: dto/application.go
package dto

// ========== 请求 DTO ==========

type ApplyChallengeReq struct {
	// Team member emails, required when the challenge type is team.
	TeamMembers []string `json:"team_members" binding:"omitempty,dive,email"`
}

type QueryParticipantsReq struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1"`
}

// ========== 响应 DTO ==========

type ParticipantRole string

const (
	RoleTeamLeader ParticipantRole = "team_leader"
	RoleTeamMember ParticipantRole = "team_member"
)

// Participant is one accepted person (leader or member) in the
// flattened roster of a challenge.
type Participant struct {
	UserID        uint32          `json:"user_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Role          ParticipantRole `json:"role"`
	ApplicationID uint32          `json:"application_id"`
}

type PaginatedParticipants struct {
	Data  []Participant `json:"data"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}
