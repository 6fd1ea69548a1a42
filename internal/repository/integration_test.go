//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/pkg/database"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("trashtrack"),
		postgres.WithUsername("trashtrack"),
		postgres.WithPassword("trashtrack"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sqlx.Connect("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(ctx, db))
	return db
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	addr, err := container.PortEndpoint(ctx, "6379/tcp", "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestIntegrationUserRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	id, err := users.Create(ctx, dto.UserInput{
		FirstName:    strPtr("Ann"),
		LastName:     strPtr("Lee"),
		Email:        strPtr("ann@x.com"),
		PasswordHash: strPtr("hash"),
		Role:         strPtr("Reporter"),
	})
	require.NoError(t, err)

	got, err := users.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", got.Email)
	assert.Nil(t, got.City)

	_, err = users.Create(ctx, dto.UserInput{
		FirstName:    strPtr("Bob"),
		LastName:     strPtr("Lee"),
		Email:        strPtr("ann@x.com"),
		PasswordHash: strPtr("hash"),
		Role:         strPtr("Reporter"),
	})
	assert.True(t, database.IsUniqueViolation(err))

	require.NoError(t, users.Update(ctx, id, dto.UserInput{
		FirstName: strPtr("Ann"),
		LastName:  strPtr("Lee"),
		Email:     strPtr("ann@x.com"),
		Role:      strPtr("Admin"),
	}))
	got, err = users.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.True(t, got.Role.IsAdmin())

	require.NoError(t, users.Delete(ctx, id))
	require.NoError(t, users.Delete(ctx, id))
	_, err = users.FindByID(ctx, id)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestIntegrationReportLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userID, err := NewUserRepository(db).Create(ctx, dto.UserInput{
		FirstName:    strPtr("Regular"),
		LastName:     strPtr("User"),
		Email:        strPtr("regular@user.com"),
		PasswordHash: strPtr("hash"),
		Role:         strPtr("Reporter"),
		AddressLine1: strPtr("456 User Ave"),
	})
	require.NoError(t, err)

	schedules := NewPickupScheduleRepository(db)
	monday, err := schedules.Create(ctx, dto.PickupScheduleRequest{DayOfWeek: strPtr("Monday"), TimeSlot: strPtr("08:00:00"), IsActive: boolPtr(true)})
	require.NoError(t, err)
	tuesday, err := schedules.Create(ctx, dto.PickupScheduleRequest{DayOfWeek: strPtr("Tuesday"), TimeSlot: strPtr("08:00:00"), IsActive: boolPtr(true)})
	require.NoError(t, err)

	reports := NewReportRepository(db)
	reportID, err := reports.Create(ctx, dto.ReportRequest{
		ReporterUserID:  int64Ptr(userID),
		ReportType:      strPtr("Illegal Dumping"),
		LocationAddress: strPtr("123 Main St"),
		ReportDate:      strPtr("2023-10-01"),
		Status:          strPtr("Pending"),
	})
	require.NoError(t, err)

	patch, err := dto.ReportPatchSchema.Parse([]byte(`{"status":"Resolved","latitude":40.7128}`))
	require.NoError(t, err)
	require.NoError(t, reports.Patch(ctx, reportID, patch))

	report, err := reports.FindByID(ctx, reportID)
	require.NoError(t, err)
	assert.Equal(t, "Resolved", *report.Status)
	assert.Equal(t, "123 Main St", *report.LocationAddress)
	assert.Equal(t, "2023-10-01", *report.ReportDate)
	assert.InDelta(t, 40.7128, *report.Latitude, 1e-9)

	links := NewReportScheduleRepository(db)
	_, err = links.SetForReport(ctx, reportID, int64Ptr(monday))
	require.NoError(t, err)
	linkID, err := links.SetForReport(ctx, reportID, int64Ptr(tuesday))
	require.NoError(t, err)
	require.NotNil(t, linkID)

	all, err := links.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, tuesday, all[0].ScheduleID)

	cleared, err := links.SetForReport(ctx, reportID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared)
	all, err = links.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = links.SetForReport(ctx, reportID+1000, int64Ptr(monday))
	assert.ErrorIs(t, err, ErrReportNotFound)

	pickupID, _, err := reports.CreatePickupRequest(ctx, dto.PickupRequest{ReporterUserID: userID, ScheduleID: monday, WasteType: "Electronics", ReportDate: "2023-11-01"})
	require.NoError(t, err)
	pickup, err := reports.FindByID(ctx, pickupID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportTypePickupRequest, *pickup.ReportType)
	assert.Equal(t, "456 User Ave", *pickup.LocationAddress)

	stats, err := reports.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, []models.ScheduleUsage{{ScheduleID: monday, Count: 1}}, stats.ScheduleUsage)
}

func TestIntegrationSessionStore(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()
	repo := NewSessionRepository(client, "trashtrack:session:", nil)

	session := models.Session{ID: "jti-1", UserID: 7, CreatedAt: time.Now().UTC(), ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Find(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)

	require.NoError(t, repo.Delete(ctx, "jti-1"))
	_, err = repo.Find(ctx, "jti-1")
	assert.ErrorIs(t, err, appErrors.ErrSessionMiss)
}
