// file: services/application_service_test.go
package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

// fakeApplicationStore keeps applications in memory and mirrors the
// conditional-update guards of the real store.
type fakeApplicationStore struct {
	apps   map[uint32]*models.Application
	nextID uint32

	// Backing fakes for the Applicant and Challenge associations the
	// real store preloads on FindByToken.
	users      *fakeUserDirectory
	challenges *fakeChallengeReader

	createErr error

	// Hooks for interleaving a concurrent actor between the snapshot
	// read and the guarded write.
	beforeRespond      func()
	afterRespond       func()
	beforeMarkAccepted func()
}

func newFakeStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: map[uint32]*models.Application{}, nextID: 1}
}

func (f *fakeApplicationStore) ExistsForUsers(_ context.Context, challengeID uint32, userIDs []uint32) (bool, error) {
	want := map[uint32]bool{}
	for _, id := range userIDs {
		want[id] = true
	}
	for _, app := range f.apps {
		if app.ChallengeID != challengeID {
			continue
		}
		if want[app.ApplicantID] {
			return true, nil
		}
		for _, m := range app.TeamMembers {
			if want[m.UserID] {
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	app.ID = f.nextID
	f.nextID++
	for i := range app.TeamMembers {
		app.TeamMembers[i].ID = f.nextID
		f.nextID++
		app.TeamMembers[i].ApplicationID = app.ID
	}
	stored := *app
	stored.TeamMembers = append([]models.TeamMember(nil), app.TeamMembers...)
	f.apps[app.ID] = &stored
	return nil
}

func (f *fakeApplicationStore) FindByToken(ctx context.Context, token string, now time.Time) (*models.Application, error) {
	for _, app := range f.apps {
		for i := range app.TeamMembers {
			m := &app.TeamMembers[i]
			if m.Token != nil && *m.Token == token && m.TokenValidAt(now) {
				snapshot := *app
				snapshot.TeamMembers = append([]models.TeamMember(nil), app.TeamMembers...)
				f.hydrate(ctx, &snapshot)
				return &snapshot, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeApplicationStore) hydrate(ctx context.Context, app *models.Application) {
	if f.users != nil {
		if u, err := f.users.FindByID(ctx, app.ApplicantID); err == nil {
			app.Applicant = *u
		}
	}
	if f.challenges != nil {
		if c, err := f.challenges.FindByID(ctx, app.ChallengeID); err == nil {
			app.Challenge = *c
		}
	}
}

func (f *fakeApplicationStore) RespondMember(_ context.Context, token string, status models.TeamMemberStatus, now time.Time) (bool, error) {
	if f.beforeRespond != nil {
		f.beforeRespond()
		f.beforeRespond = nil
	}
	for _, app := range f.apps {
		for i := range app.TeamMembers {
			m := &app.TeamMembers[i]
			if m.Token != nil && *m.Token == token && m.Status == models.TeamMemberPending {
				if err := m.Respond(status == models.TeamMemberAccepted, now); err != nil {
					return false, nil
				}
				if f.afterRespond != nil {
					f.afterRespond()
					f.afterRespond = nil
				}
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) MarkAccepted(_ context.Context, applicationID uint32) (bool, error) {
	if f.beforeMarkAccepted != nil {
		f.beforeMarkAccepted()
		f.beforeMarkAccepted = nil
	}
	app, ok := f.apps[applicationID]
	if !ok || app.Status != models.ApplicationStatusPending {
		return false, nil
	}
	app.Status = models.ApplicationStatusAccepted
	return true, nil
}

func (f *fakeApplicationStore) Members(_ context.Context, applicationID uint32) ([]models.TeamMember, error) {
	app, ok := f.apps[applicationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return append([]models.TeamMember(nil), app.TeamMembers...), nil
}

func (f *fakeApplicationStore) Delete(_ context.Context, applicationID uint32) error {
	delete(f.apps, applicationID)
	return nil
}

func (f *fakeApplicationStore) ListAccepted(_ context.Context, challengeID uint32) ([]models.Application, error) {
	var out []models.Application
	for id := uint32(1); id < f.nextID; id++ {
		app, ok := f.apps[id]
		if !ok || app.ChallengeID != challengeID || app.Status != models.ApplicationStatusAccepted {
			continue
		}
		snapshot := *app
		snapshot.TeamMembers = append([]models.TeamMember(nil), app.TeamMembers...)
		out = append(out, snapshot)
	}
	return out, nil
}

type fakeChallengeReader struct {
	challenges map[uint32]*models.Challenge
}

func (f *fakeChallengeReader) FindByID(_ context.Context, id uint32) (*models.Challenge, error) {
	c, ok := f.challenges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

type fakeUserDirectory struct {
	users []models.User
}

func (f *fakeUserDirectory) FindByID(_ context.Context, id uint32) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserDirectory) FindVerifiedByEmails(_ context.Context, emails []string) ([]models.User, error) {
	want := map[string]bool{}
	for _, e := range emails {
		want[e] = true
	}
	var out []models.User
	for _, u := range f.users {
		if want[u.Email] && u.IsVerified {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserDirectory) FindByIDs(_ context.Context, ids []uint32) ([]models.User, error) {
	want := map[uint32]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.User
	for _, u := range f.users {
		if want[u.ID] {
			out = append(out, u)
		}
	}
	return out, nil
}

type sentInvitation struct {
	email string
	token string
	hours int
}

type sentRejection struct {
	email  string
	reason string
}

type fakeMailer struct {
	invitations []sentInvitation
	approvals   []string
	rejections  []sentRejection
}

func (f *fakeMailer) SendTeamInvitation(email, token string, expiresInHours int) {
	f.invitations = append(f.invitations, sentInvitation{email, token, expiresInHours})
}

func (f *fakeMailer) SendApproval(email, _ string) {
	f.approvals = append(f.approvals, email)
}

func (f *fakeMailer) SendRejection(email, _, reason string) {
	f.rejections = append(f.rejections, sentRejection{email: email, reason: reason})
}

type testEnv struct {
	svc    *ApplicationService
	store  *fakeApplicationStore
	mailer *fakeMailer
	users  *fakeUserDirectory
	now    time.Time
}

func teamSizePtr(n int) *int { return &n }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	mailer := &fakeMailer{}
	users := &fakeUserDirectory{users: []models.User{
		{ID: 1, FirstName: "Alice", LastName: "Umutoni", Email: "alice@example.com", IsVerified: true},
		{ID: 2, FirstName: "Bob", LastName: "Mugisha", Email: "bob@example.com", IsVerified: true},
		{ID: 3, FirstName: "Carol", LastName: "Keza", Email: "carol@example.com", IsVerified: true},
		{ID: 4, FirstName: "Dan", LastName: "Nshuti", Email: "dan@example.com", IsVerified: false},
		{ID: 5, FirstName: "Eve", LastName: "Ingabire", Email: "eve@example.com", IsVerified: true},
	}}
	challenges := &fakeChallengeReader{challenges: map[uint32]*models.Challenge{
		10: {ID: 10, Title: "Solo Sprint", Status: models.ChallengeStatusOpen, Type: models.ChallengeTypeIndividual},
		20: {ID: 20, Title: "Team Build", Status: models.ChallengeStatusOpen, Type: models.ChallengeTypeTeam, TeamSize: teamSizePtr(3)},
		30: {ID: 30, Title: "Closed Doors", Status: models.ChallengeStatusCompleted, Type: models.ChallengeTypeIndividual},
	}}

	store.users = users
	store.challenges = challenges

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	env := &testEnv{store: store, mailer: mailer, users: users, now: now}

	svc := NewApplicationService(store, challenges, users, mailer, zap.NewNop())
	svc.now = func() time.Time { return env.now }
	tokenSeq := 0
	svc.newToken = func() string {
		tokenSeq++
		return fmt.Sprintf("tok-%04d", tokenSeq)
	}
	env.svc = svc
	return env
}

func TestApplyIndividualAcceptedImmediately(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 10, nil)
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}
	if app.Status != models.ApplicationStatusAccepted {
		t.Errorf("status = %q, want accepted", app.Status)
	}
	if app.Type != models.ApplicationTypeIndividual {
		t.Errorf("type = %q, want individual", app.Type)
	}
	if len(env.mailer.invitations)+len(env.mailer.approvals)+len(env.mailer.rejections) != 0 {
		t.Errorf("individual application must not send any email")
	}
}

func TestApplyChallengeNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 999, nil)
	if KindOf(err) != KindNotFound {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestApplyUserNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ApplyToChallenge(context.Background(), 999, 10, nil)
	if KindOf(err) != KindNotFound {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestApplyChallengeNotOpen(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 30, nil)
	if KindOf(err) != KindInvalidState {
		t.Fatalf("err = %v, want invalid-state", err)
	}
}

func TestApplyTwiceIsConflict(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.svc.ApplyToChallenge(context.Background(), 1, 10, nil); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 10, nil)
	if KindOf(err) != KindConflict {
		t.Fatalf("second apply err = %v, want conflict", err)
	}
}

func TestApplyDuplicateKeyBackstopIsConflict(t *testing.T) {
	env := newTestEnv(t)
	env.store.createErr = gorm.ErrDuplicatedKey

	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 10, nil)
	if KindOf(err) != KindConflict {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestApplyTeamRequiresEmails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, nil)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
}

func TestApplyTeamSizeMismatch(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com"})
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
	if !strings.Contains(err.Error(), "exactly 3 members") {
		t.Errorf("error %q should name the required team size", err)
	}
}

func TestApplyTeamRejectsDuplicateEmails(t *testing.T) {
	env := newTestEnv(t)

	// Two copies of bob pass the raw length check but resolve to one
	// user, which would leave the team one member short.
	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "bob@example.com"})
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
	if !strings.Contains(err.Error(), "bob@example.com") {
		t.Errorf("error %q should name the repeated address", err)
	}
	if len(env.store.apps) != 0 {
		t.Errorf("no application may be created")
	}
	if len(env.mailer.invitations) != 0 {
		t.Errorf("no invitation may be sent")
	}
}

func TestApplyTeamReportsAllUnresolvableEmails(t *testing.T) {
	env := newTestEnv(t)

	// dan is registered but unverified, ghost does not exist. Both must
	// show up in the same error.
	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"dan@example.com", "ghost@example.com"})
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
	if !strings.Contains(err.Error(), "dan@example.com") || !strings.Contains(err.Error(), "ghost@example.com") {
		t.Errorf("error %q should list every unresolvable address", err)
	}
}

func TestApplyTeamSelfInviteRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"alice@example.com", "bob@example.com"})
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
}

func TestApplyTeamMemberAlreadyOnAnotherTeam(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.svc.ApplyToChallenge(context.Background(), 3, 20, []string{"bob@example.com", "eve@example.com"}); err != nil {
		t.Fatalf("seed apply: %v", err)
	}

	// Bob already holds a pending membership on challenge 20.
	_, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "eve@example.com"})
	if KindOf(err) != KindConflict {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestApplyTeamCreatesPendingWithInvitations(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}

	if app.Status != models.ApplicationStatusPending {
		t.Errorf("status = %q, want pending", app.Status)
	}
	if len(app.TeamMembers) != 2 {
		t.Fatalf("got %d team members, want 2", len(app.TeamMembers))
	}
	if len(env.mailer.invitations) != 2 {
		t.Fatalf("got %d invitations, want 2", len(env.mailer.invitations))
	}

	wantExpiry := env.now.Add(models.InvitationTTL)
	seen := map[string]bool{}
	for i, m := range app.TeamMembers {
		if m.Status != models.TeamMemberPending {
			t.Errorf("member %d status = %q, want pending", i, m.Status)
		}
		if m.Token == nil || *m.Token == "" {
			t.Fatalf("member %d has no token", i)
		}
		if seen[*m.Token] {
			t.Errorf("duplicate token %q", *m.Token)
		}
		seen[*m.Token] = true
		if m.TokenExpiresAt == nil || !m.TokenExpiresAt.Equal(wantExpiry) {
			t.Errorf("member %d expiry = %v, want %v", i, m.TokenExpiresAt, wantExpiry)
		}
		inv := env.mailer.invitations[i]
		if inv.email != m.Email || inv.token != *m.Token {
			t.Errorf("invitation %d = %+v, want email %q token %q", i, inv, m.Email, *m.Token)
		}
		if inv.hours != 48 {
			t.Errorf("invitation %d expiry hours = %d, want 48", i, inv.hours)
		}
	}
}

func TestInvitationResponseUnknownToken(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.HandleInvitationResponse(context.Background(), "no-such-token", true)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
	if !strings.Contains(err.Error(), "Invalid or expired") {
		t.Errorf("error %q should read as invalid or expired", err)
	}
}

func TestInvitationResponseExpiredToken(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}
	token := *app.TeamMembers[0].Token

	// An expired token must be indistinguishable from an unknown one.
	env.now = env.now.Add(models.InvitationTTL + time.Minute)
	err = env.svc.HandleInvitationResponse(context.Background(), token, true)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
	if !strings.Contains(err.Error(), "Invalid or expired") {
		t.Errorf("error %q should read as invalid or expired", err)
	}
}

func TestRejectionDeletesApplicationAndNotifiesLeader(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}
	bobToken := *app.TeamMembers[0].Token
	carolToken := *app.TeamMembers[1].Token

	if err := env.svc.HandleInvitationResponse(context.Background(), bobToken, false); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, ok := env.store.apps[app.ID]; ok {
		t.Errorf("application should be deleted after a rejection")
	}
	if len(env.mailer.rejections) != 1 {
		t.Fatalf("got %d rejection emails, want 1", len(env.mailer.rejections))
	}
	if env.mailer.rejections[0].email != "alice@example.com" {
		t.Errorf("rejection went to %q, want the leader", env.mailer.rejections[0].email)
	}
	if !strings.Contains(env.mailer.rejections[0].reason, "bob@example.com") {
		t.Errorf("rejection reason %q should name the declining member", env.mailer.rejections[0].reason)
	}
	if len(env.mailer.approvals) != 0 {
		t.Errorf("no approval email may follow a rejection")
	}

	// The surviving member's token died with the application.
	err = env.svc.HandleInvitationResponse(context.Background(), carolToken, true)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("stale token err = %v, want invalid-input", err)
	}
}

func TestAllAcceptedPromotesExactlyOnce(t *testing.T) {
	for name, reversed := range map[string]bool{"in order": false, "reversed": true} {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)

			app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
			if err != nil {
				t.Fatalf("ApplyToChallenge: %v", err)
			}
			tokens := []string{*app.TeamMembers[0].Token, *app.TeamMembers[1].Token}
			if reversed {
				tokens[0], tokens[1] = tokens[1], tokens[0]
			}

			if err := env.svc.HandleInvitationResponse(context.Background(), tokens[0], true); err != nil {
				t.Fatalf("first accept: %v", err)
			}
			if got := env.store.apps[app.ID].Status; got != models.ApplicationStatusPending {
				t.Errorf("status after first accept = %q, want pending", got)
			}
			if len(env.mailer.approvals) != 0 {
				t.Errorf("approval must wait for every member")
			}

			if err := env.svc.HandleInvitationResponse(context.Background(), tokens[1], true); err != nil {
				t.Fatalf("second accept: %v", err)
			}
			if got := env.store.apps[app.ID].Status; got != models.ApplicationStatusAccepted {
				t.Errorf("status after last accept = %q, want accepted", got)
			}
			if len(env.mailer.approvals) != 1 {
				t.Fatalf("got %d approval emails, want exactly 1", len(env.mailer.approvals))
			}
			if env.mailer.approvals[0] != "alice@example.com" {
				t.Errorf("approval went to %q, want the leader", env.mailer.approvals[0])
			}
		})
	}
}

func TestTokenIsSingleUse(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}
	token := *app.TeamMembers[0].Token

	if err := env.svc.HandleInvitationResponse(context.Background(), token, true); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	err = env.svc.HandleInvitationResponse(context.Background(), token, true)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("second use err = %v, want invalid-input", err)
	}
}

func TestLostRespondRaceReportsAlreadyResponded(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}
	token := *app.TeamMembers[0].Token

	// A concurrent response lands between the snapshot read and the
	// guarded update; the loser must not double-apply.
	env.store.beforeRespond = func() {
		m := env.store.apps[app.ID].TeamMembers
		_ = m[0].Respond(true, env.now)
	}
	err = env.svc.HandleInvitationResponse(context.Background(), token, false)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("err = %v, want invalid-input", err)
	}
	if got := env.store.apps[app.ID].TeamMembers[0].Status; got != models.TeamMemberAccepted {
		t.Errorf("member status = %q, the earlier acceptance must stand", got)
	}
	if len(env.mailer.rejections) != 0 {
		t.Errorf("losing rejection must not email the leader")
	}
}

func TestAcceptanceAfterConcurrentDeletionIsDiscarded(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}
	token := *app.TeamMembers[0].Token

	// A concurrent rejection deletes the application right after this
	// acceptance is recorded. The status check must swallow the gap.
	env.store.afterRespond = func() {
		delete(env.store.apps, app.ID)
	}
	if err := env.svc.HandleInvitationResponse(context.Background(), token, true); err != nil {
		t.Fatalf("accept after deletion: %v", err)
	}
	if len(env.mailer.approvals) != 0 {
		t.Errorf("no approval email for a deleted application")
	}
}

func TestPromotionRaceSendsSingleApproval(t *testing.T) {
	env := newTestEnv(t)

	app, err := env.svc.ApplyToChallenge(context.Background(), 1, 20, []string{"bob@example.com", "carol@example.com"})
	if err != nil {
		t.Fatalf("ApplyToChallenge: %v", err)
	}
	tokens := []string{*app.TeamMembers[0].Token, *app.TeamMembers[1].Token}

	if err := env.svc.HandleInvitationResponse(context.Background(), tokens[0], true); err != nil {
		t.Fatalf("first accept: %v", err)
	}

	// The racing acceptance promoted the application first; this
	// caller's MarkAccepted guard fails and it stays silent.
	env.store.beforeMarkAccepted = func() {
		env.store.apps[app.ID].Status = models.ApplicationStatusAccepted
	}
	if err := env.svc.HandleInvitationResponse(context.Background(), tokens[1], true); err != nil {
		t.Fatalf("second accept: %v", err)
	}
	if len(env.mailer.approvals) != 0 {
		t.Errorf("got %d approval emails, the guard loser must send none", len(env.mailer.approvals))
	}
}
