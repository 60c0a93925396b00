package db_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/db"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/models"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/repositories"
)

// Exercises the real schema end to end: migrations, inserts across the
// foreign-key graph, composite-key rejection, and event deletion.
func TestPostgresIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	conn, err := db.Connect(dsn, 5*time.Second)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, db.Migrate(conn))

	ctx := context.Background()
	userRepo := repositories.NewPostgresUserRepository(conn)
	eventRepo := repositories.NewPostgresEventRepository(conn)
	teamRepo := repositories.NewPostgresTeamRepository(conn)
	joinRepo := repositories.NewPostgresJoinRepository(conn)

	user := &models.User{Name: "octocat-" + time.Now().Format("150405.000")}
	require.NoError(t, userRepo.Create(ctx, user))

	event := &models.Event{Name: "Hack Day", URL: "http://example.com"}
	require.NoError(t, eventRepo.Create(ctx, event))

	team := &models.Team{EventID: event.ID, ReaderID: user.ID, Name: "gophers"}
	require.NoError(t, teamRepo.Create(ctx, team))

	join := &models.Join{TeamID: team.ID, UserID: user.ID}
	require.NoError(t, joinRepo.Create(ctx, join))

	// Second membership for the same pair must hit the composite key.
	dup := &models.Join{TeamID: team.ID, UserID: user.ID}
	assert.ErrorIs(t, joinRepo.Create(ctx, dup), repositories.ErrJoinConflict)

	// Event deletion cascades to the team and its joins.
	require.NoError(t, eventRepo.Delete(ctx, event.ID))
	_, err = teamRepo.GetByID(ctx, team.ID)
	assert.ErrorIs(t, err, repositories.ErrTeamNotFound)

	events, err := eventRepo.List(ctx)
	require.NoError(t, err)
	for _, e := range events {
		assert.NotEqual(t, event.ID, e.ID, "deleted event must not be listed")
	}
}
