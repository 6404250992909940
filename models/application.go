// file: models/application.go
package models

import (
	"errors"
	"time"
)

type ApplicationType string
type ApplicationStatus string
type TeamMemberStatus string

const (
	ApplicationTypeIndividual ApplicationType = "individual"
	ApplicationTypeTeam       ApplicationType = "team"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"

	TeamMemberPending  TeamMemberStatus = "pending"
	TeamMemberAccepted TeamMemberStatus = "accepted"
	TeamMemberRejected TeamMemberStatus = "rejected"
)

// InvitationTTL is how long a team invitation token stays valid.
const InvitationTTL = 48 * time.Hour

// ErrAlreadyResponded is returned when a member transition is attempted
// after the member has left the pending state.
var ErrAlreadyResponded = errors.New("invitation has already been responded to")

// TeamMember is an invited participant inside a team application. It has
// no lifecycle of its own: rows are created together with their
// application and mutated in place by invitation responses.
//
// ChallengeID duplicates Application.ChallengeID so that "a user may sit
// on at most one team per challenge" is a plain composite unique index.
type TeamMember struct {
	ID             uint32           `gorm:"primarykey" json:"-"`
	ApplicationID  uint32           `gorm:"not null;index" json:"-"`
	ChallengeID    uint32           `gorm:"uniqueIndex:uniq_challenge_member;not null" json:"-"`
	UserID         uint32           `gorm:"uniqueIndex:uniq_challenge_member;not null" json:"user_id"`
	User           User             `gorm:"foreignKey:UserID" json:"-"`
	Email          string           `gorm:"size:100;not null" json:"email"`
	Status         TeamMemberStatus `gorm:"type:enum('pending','accepted','rejected');not null;default:'pending'" json:"status"`
	InvitedAt      time.Time        `gorm:"not null" json:"invited_at"`
	RespondedAt    *time.Time       `json:"responded_at,omitempty"`
	Token          *string          `gorm:"size:36;uniqueIndex" json:"-"`
	TokenExpiresAt *time.Time       `json:"-"`
}

func (TeamMember) TableName() string {
	return "tv_application_team_member"
}

// Respond moves a pending member to accepted or rejected at the given
// instant and voids the invitation token. Terminal states stay terminal.
func (m *TeamMember) Respond(accept bool, now time.Time) error {
	if m.Status != TeamMemberPending {
		return ErrAlreadyResponded
	}
	if accept {
		m.Status = TeamMemberAccepted
	} else {
		m.Status = TeamMemberRejected
	}
	m.RespondedAt = &now
	m.Token = nil
	m.TokenExpiresAt = nil
	return nil
}

// TokenValidAt reports whether the member still holds a live invitation.
func (m *TeamMember) TokenValidAt(now time.Time) bool {
	return m.Status == TeamMemberPending &&
		m.Token != nil && m.TokenExpiresAt != nil &&
		m.TokenExpiresAt.After(now)
}

// Application is one applicant's (or team's) bid for one challenge. The
// applicant is the team leader for team applications. A rejection by any
// member destroys the whole application; there is no rejected status.
type Application struct {
	ID          uint32            `gorm:"primarykey" json:"id"`
	ChallengeID uint32            `gorm:"uniqueIndex:uniq_challenge_applicant;not null" json:"challenge_id"`
	Challenge   Challenge         `gorm:"foreignKey:ChallengeID" json:"-"`
	ApplicantID uint32            `gorm:"uniqueIndex:uniq_challenge_applicant;not null" json:"applicant_id"`
	Applicant   User              `gorm:"foreignKey:ApplicantID" json:"-"`
	Type        ApplicationType   `gorm:"type:enum('individual','team');not null" json:"type"`
	Status      ApplicationStatus `gorm:"type:enum('pending','accepted');not null;default:'pending';index" json:"status"`
	TeamMembers []TeamMember      `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"team_members"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (Application) TableName() string {
	return "tv_application"
}

// RecomputeStatus derives the aggregate application status from its
// members: accepted once every member has accepted, pending otherwise.
// Rejections never reach this point; they delete the application.
func RecomputeStatus(members []TeamMember) ApplicationStatus {
	for _, m := range members {
		if m.Status != TeamMemberAccepted {
			return ApplicationStatusPending
		}
	}
	return ApplicationStatusAccepted
}

// MemberByToken finds the team member holding the given invitation token.
func (a *Application) MemberByToken(token string) *TeamMember {
	for i := range a.TeamMembers {
		if a.TeamMembers[i].Token != nil && *a.TeamMembers[i].Token == token {
			return &a.TeamMembers[i]
		}
	}
	return nil
}
