// file: services/application_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

// ApplicationStore is the persistence surface of the application
// lifecycle. One application document (row plus its member rows) is the
// unit of mutual exclusion: conditional updates carry the guards that
// settle concurrent responses.
type ApplicationStore interface {
	ExistsForUsers(ctx context.Context, challengeID uint32, userIDs []uint32) (bool, error)
	Create(ctx context.Context, app *models.Application) error
	FindByToken(ctx context.Context, token string, now time.Time) (*models.Application, error)
	RespondMember(ctx context.Context, token string, status models.TeamMemberStatus, now time.Time) (bool, error)
	MarkAccepted(ctx context.Context, applicationID uint32) (bool, error)
	Members(ctx context.Context, applicationID uint32) ([]models.TeamMember, error)
	Delete(ctx context.Context, applicationID uint32) error
	ListAccepted(ctx context.Context, challengeID uint32) ([]models.Application, error)
}

// ChallengeReader is the read-only challenge view the lifecycle needs.
type ChallengeReader interface {
	FindByID(ctx context.Context, id uint32) (*models.Challenge, error)
}

// UserDirectory resolves user ids and emails to registered users.
type UserDirectory interface {
	FindByID(ctx context.Context, id uint32) (*models.User, error)
	FindVerifiedByEmails(ctx context.Context, emails []string) ([]models.User, error)
	FindByIDs(ctx context.Context, ids []uint32) ([]models.User, error)
}

// NotificationDispatcher sends lifecycle emails. Dispatch is
// fire-and-forget: implementations swallow delivery failures.
type NotificationDispatcher interface {
	SendTeamInvitation(email, token string, expiresInHours int)
	SendApproval(email, challengeTitle string)
	SendRejection(email, challengeTitle, reason string)
}

// ApplicationService orchestrates application creation, invitation
// responses and aggregate status transitions.
type ApplicationService struct {
	store      ApplicationStore
	challenges ChallengeReader
	users      UserDirectory
	mail       NotificationDispatcher
	logger     *zap.Logger

	now      func() time.Time
	newToken func() string
}

func NewApplicationService(
	store ApplicationStore,
	challenges ChallengeReader,
	users UserDirectory,
	mail NotificationDispatcher,
	logger *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		store:      store,
		challenges: challenges,
		users:      users,
		mail:       mail,
		logger:     logger,
		now:        time.Now,
		newToken:   func() string { return uuid.New().String() },
	}
}

// ApplyToChallenge creates an application for an open challenge. For
// individual challenges the application is accepted on the spot; team
// challenges start pending, with one invitation per resolved member.
func (s *ApplicationService) ApplyToChallenge(ctx context.Context, userID, challengeID uint32, teamMemberEmails []string) (*models.Application, error) {
	challenge, err := s.challenges.FindByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Challenge with id %d not found", challengeID))
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("User not found")
		}
		return nil, err
	}

	if challenge.Status != models.ChallengeStatusOpen {
		return nil, InvalidState("Challenge is not open for applications")
	}

	exists, err := s.store.ExistsForUsers(ctx, challenge.ID, []uint32{user.ID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflict("You already have an application for this challenge")
	}

	if challenge.Type == models.ChallengeTypeIndividual {
		return s.createIndividualApplication(ctx, user, challenge)
	}
	return s.createTeamApplication(ctx, user, challenge, teamMemberEmails)
}

func (s *ApplicationService) createIndividualApplication(ctx context.Context, user *models.User, challenge *models.Challenge) (*models.Application, error) {
	app := &models.Application{
		ChallengeID: challenge.ID,
		ApplicantID: user.ID,
		Type:        models.ApplicationTypeIndividual,
		Status:      models.ApplicationStatusAccepted,
	}
	if err := s.store.Create(ctx, app); err != nil {
		return nil, translateStoreError(err)
	}
	return app, nil
}

func (s *ApplicationService) createTeamApplication(ctx context.Context, user *models.User, challenge *models.Challenge, emails []string) (*models.Application, error) {
	if len(emails) == 0 {
		return nil, InvalidInput("Team members emails are required")
	}

	// A repeated address would resolve to one user and shrink the team
	// below the required size.
	seen := make(map[string]bool, len(emails))
	for _, e := range emails {
		if seen[e] {
			return nil, InvalidInput("Duplicate team member email: " + e)
		}
		seen[e] = true
	}

	teamSize := 0
	if challenge.TeamSize != nil {
		teamSize = *challenge.TeamSize
	}
	if teamSize == 0 || len(emails)+1 != teamSize {
		return nil, InvalidInput(fmt.Sprintf("Team size must be exactly %d members", teamSize))
	}

	members, err := s.users.FindVerifiedByEmails(ctx, emails)
	if err != nil {
		return nil, err
	}

	// Report every unresolvable address at once rather than failing on
	// the first one.
	found := make(map[string]bool, len(members))
	for _, m := range members {
		found[m.Email] = true
	}
	var missing []string
	for _, e := range emails {
		if !found[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) > 0 {
		return nil, InvalidInput(fmt.Sprintf(
			"The following users are not registered or verified: %s",
			strings.Join(missing, ", ")))
	}

	memberIDs := make([]uint32, 0, len(members))
	for _, m := range members {
		if m.ID == user.ID {
			return nil, InvalidInput("Cannot add yourself as a team member")
		}
		memberIDs = append(memberIDs, m.ID)
	}

	taken, err := s.store.ExistsForUsers(ctx, challenge.ID, memberIDs)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Conflict("Some team members are already part of another team")
	}

	now := s.now()
	expiresAt := now.Add(models.InvitationTTL)
	teamMembers := make([]models.TeamMember, 0, len(members))
	for _, m := range members {
		token := s.newToken()
		teamMembers = append(teamMembers, models.TeamMember{
			ChallengeID:    challenge.ID,
			UserID:         m.ID,
			Email:          m.Email,
			Status:         models.TeamMemberPending,
			InvitedAt:      now,
			Token:          &token,
			TokenExpiresAt: &expiresAt,
		})
	}

	app := &models.Application{
		ChallengeID: challenge.ID,
		ApplicantID: user.ID,
		Type:        models.ApplicationTypeTeam,
		Status:      models.ApplicationStatusPending,
		TeamMembers: teamMembers,
	}
	if err := s.store.Create(ctx, app); err != nil {
		return nil, translateStoreError(err)
	}

	// Invitations go out only after the application is durable. Failed
	// sends are logged inside the dispatcher and never roll it back.
	for _, m := range app.TeamMembers {
		s.mail.SendTeamInvitation(m.Email, *m.Token, int(models.InvitationTTL.Hours()))
	}

	return app, nil
}

// HandleInvitationResponse settles one member's accept or reject. A
// rejection destroys the whole application; acceptance may complete it.
func (s *ApplicationService) HandleInvitationResponse(ctx context.Context, token string, accept bool) error {
	now := s.now()

	app, err := s.store.FindByToken(ctx, token, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvalidInput("Invalid or expired invitation")
		}
		return err
	}

	member := app.MemberByToken(token)
	if member == nil || member.Status != models.TeamMemberPending {
		return InvalidInput("Invitation has already been responded to")
	}

	status := models.TeamMemberRejected
	if accept {
		status = models.TeamMemberAccepted
	}

	// Conditional update keyed on (token, pending): of two racing
	// responses to the same token, exactly one lands here with ok=true.
	ok, err := s.store.RespondMember(ctx, token, status, now)
	if err != nil {
		return err
	}
	if !ok {
		return InvalidInput("Invitation has already been responded to")
	}

	if !accept {
		s.mail.SendRejection(
			app.Applicant.Email,
			app.Challenge.Title,
			fmt.Sprintf("Team member %s has declined the invitation", member.Email),
		)
		if err := s.store.Delete(ctx, app.ID); err != nil {
			return err
		}
		return nil
	}

	return s.checkApplicationStatus(ctx, app)
}

// checkApplicationStatus promotes the application once every member has
// accepted. The pending guard on MarkAccepted makes sure the approval
// email is sent exactly once even when the last two acceptances race.
func (s *ApplicationService) checkApplicationStatus(ctx context.Context, app *models.Application) error {
	members, err := s.store.Members(ctx, app.ID)
	if err != nil {
		// The application can be gone already if a concurrent rejection
		// deleted it; the acceptance is simply discarded.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if models.RecomputeStatus(members) != models.ApplicationStatusAccepted {
		return nil
	}

	ok, err := s.store.MarkAccepted(ctx, app.ID)
	if err != nil {
		return err
	}
	if ok {
		s.mail.SendApproval(app.Applicant.Email, app.Challenge.Title)
	}
	return nil
}

// translateStoreError maps unique-index violations onto the conflict the
// precondition checks would have reported, so constraint backstops never
// leak storage errors.
func translateStoreError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict("You already have an application for this challenge")
	}
	return err
}
