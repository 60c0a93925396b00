package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

type fakeTeamRepo struct {
	createErr error
	created   *models.Team
	byID      map[uuid.UUID]*models.Team
	byEvent   map[uuid.UUID][]models.Team
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error {
	if f.createErr != nil {
		return f.createErr
	}
	team.ID = uuid.New()
	f.created = team
	return nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Team, error) {
	return f.byEvent[eventID], nil
}

type fakeUserRepo struct {
	byName    map[string]*models.User
	createErr error
	created   *models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uuid.New()
	f.created = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByName(ctx context.Context, name string) (*models.User, error) {
	user, ok := f.byName[name]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func TestTeamCreateSetsReaderFromIdentity(t *testing.T) {
	reader := &models.User{ID: uuid.New(), Name: "octocat"}
	teamRepo := &fakeTeamRepo{}
	userRepo := &fakeUserRepo{byName: map[string]*models.User{"octocat": reader}}
	svc := NewTeamService(teamRepo, userRepo)

	eventID := uuid.New()
	team, err := svc.Create(context.Background(), &Identity{Login: "octocat"}, CreateTeamInput{
		EventID: eventID.String(),
		Name:    "gophers",
		Desc:    "we like Go",
	})
	require.NoError(t, err)
	assert.Equal(t, reader.ID, team.ReaderID)
	assert.Equal(t, eventID, team.EventID)
}

func TestTeamCreateMalformedEventID(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{}, &fakeUserRepo{})

	_, err := svc.Create(context.Background(), &Identity{Login: "octocat"}, CreateTeamInput{
		EventID: "not-a-uuid",
		Name:    "gophers",
	})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestTeamCreateRequiresName(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{}, &fakeUserRepo{})

	_, err := svc.Create(context.Background(), &Identity{Login: "octocat"}, CreateTeamInput{
		EventID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, ErrTeamNameRequired)
}

func TestTeamCreateUnknownEvent(t *testing.T) {
	reader := &models.User{ID: uuid.New(), Name: "octocat"}
	teamRepo := &fakeTeamRepo{createErr: repositories.ErrTeamEventInvalid}
	userRepo := &fakeUserRepo{byName: map[string]*models.User{"octocat": reader}}
	svc := NewTeamService(teamRepo, userRepo)

	_, err := svc.Create(context.Background(), &Identity{Login: "octocat"}, CreateTeamInput{
		EventID: uuid.NewString(),
		Name:    "gophers",
	})
	assert.ErrorIs(t, err, ErrEventReferenceInvalid)
	assert.Nil(t, teamRepo.created, "team must not be persisted")
}

func TestTeamCreateUnknownIdentity(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{}, &fakeUserRepo{})

	_, err := svc.Create(context.Background(), &Identity{Login: "ghost"}, CreateTeamInput{
		EventID: uuid.NewString(),
		Name:    "gophers",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTeamGetByIDNotFound(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{}, &fakeUserRepo{})

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestTeamListByEvent(t *testing.T) {
	eventID := uuid.New()
	teamRepo := &fakeTeamRepo{byEvent: map[uuid.UUID][]models.Team{
		eventID: {{ID: uuid.New(), EventID: eventID, Name: "gophers"}},
	}}
	svc := NewTeamService(teamRepo, &fakeUserRepo{})

	teams, err := svc.ListByEvent(context.Background(), eventID.String())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "gophers", teams[0].Name)
}
