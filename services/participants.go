// file: services/participants.go
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/models"
)

// GetChallengeParticipants flattens the accepted applications of a
// challenge into one row per person (leader first, then members) and
// paginates the flattened list. Names and emails come from the user
// directory at query time, not from the invitation-time snapshot.
func (s *ApplicationService) GetChallengeParticipants(ctx context.Context, challengeID uint32, page, limit int) (*dto.PaginatedParticipants, error) {
	if _, err := s.challenges.FindByID(ctx, challengeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Challenge not found")
		}
		return nil, err
	}

	apps, err := s.store.ListAccepted(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	idSet := make(map[uint32]bool)
	var ids []uint32
	for _, app := range apps {
		if !idSet[app.ApplicantID] {
			idSet[app.ApplicantID] = true
			ids = append(ids, app.ApplicantID)
		}
		for _, m := range app.TeamMembers {
			if !idSet[m.UserID] {
				idSet[m.UserID] = true
				ids = append(ids, m.UserID)
			}
		}
	}

	usersByID := make(map[uint32]models.User, len(ids))
	if len(ids) > 0 {
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			usersByID[u.ID] = u
		}
	}

	flat := make([]dto.Participant, 0, len(apps))
	for _, app := range apps {
		flat = append(flat, participantRow(usersByID, app.ApplicantID, dto.RoleTeamLeader, app.ID))
		if app.Type == models.ApplicationTypeTeam {
			for _, m := range app.TeamMembers {
				flat = append(flat, participantRow(usersByID, m.UserID, dto.RoleTeamMember, app.ID))
			}
		}
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total := len(flat)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &dto.PaginatedParticipants{
		Data:  flat[start:end],
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}

func participantRow(usersByID map[uint32]models.User, userID uint32, role dto.ParticipantRole, appID uint32) dto.Participant {
	u := usersByID[userID]
	return dto.Participant{
		UserID:        userID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Role:          role,
		ApplicationID: appID,
	}
}
