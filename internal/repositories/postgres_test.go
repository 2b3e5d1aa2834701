package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a disposable Postgres, applies the schema and returns a connection.
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	require.NoError(t, logger.Initialize("debug"))
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	// a session zone west of UTC; month windows must not follow it
	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable&timezone=America/New_York", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	require.NoError(t, Migrate(ctx, db))
	return db
}

// fixture bundles the repositories under test against one database.
type fixture struct {
	db        *sqlx.DB
	users     *UserWriteRepository
	userRead  *UserReadRepository
	requests  *ServiceRequestWriteRepository
	reqRead   *ServiceRequestReadRepository
	responses *ServiceResponseWriteRepository
	respRead  *ServiceResponseReadRepository
	accepts   *AcceptRecordRepository
	stats     *StatsRepository
	refs      *ReferenceRepository
}

func newFixture(t *testing.T) *fixture {
	db := setupPostgres(t)
	return &fixture{
		db:        db,
		users:     NewUserWriteRepository(db, nil),
		userRead:  NewUserReadRepository(db, nil),
		requests:  NewServiceRequestWriteRepository(db, nil),
		reqRead:   NewServiceRequestReadRepository(db, nil),
		responses: NewServiceResponseWriteRepository(db, nil),
		respRead:  NewServiceResponseReadRepository(db, nil),
		accepts:   NewAcceptRecordRepository(db, nil),
		stats:     NewStatsRepository(db, nil),
		refs:      NewReferenceRepository(db, nil),
	}
}

func (f *fixture) user(t *testing.T, username, phone string) *models.UserDB {
	t.Helper()
	u, err := f.users.Create(context.Background(), models.NewUser{
		Username:     username,
		DisplayName:  "User " + username,
		PasswordHash: "hash",
		IDType:       "id_card",
		IDNumber:     "ID" + phone,
		Phone:        phone,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) request(t *testing.T, ownerID, serviceTypeID, cityID int64, title string) *models.ServiceRequestDB {
	t.Helper()
	req, err := f.requests.Create(context.Background(), ownerID, models.ServiceRequestFields{
		Title:         title,
		ServiceTypeID: serviceTypeID,
		CityID:        cityID,
		BeginDate:     time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Files:         models.FileList{},
	})
	require.NoError(t, err)
	return req
}

func (f *fixture) response(t *testing.T, responderID, requestID int64, title string) *models.ServiceResponseDB {
	t.Helper()
	resp, err := f.responses.Create(context.Background(), responderID, requestID, models.ServiceResponseFields{
		Title: title,
		Files: models.FileList{},
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) setCreatedAt(t *testing.T, table, idColumn string, id int64, at time.Time) {
	t.Helper()
	_, err := f.db.Exec(fmt.Sprintf(`UPDATE %s SET created_at = $2 WHERE %s = $1`, table, idColumn), id, at)
	require.NoError(t, err)
}

func (f *fixture) setBeginDate(t *testing.T, requestID int64, day time.Time) {
	t.Helper()
	_, err := f.db.Exec(`UPDATE service_requests SET begin_date = $2 WHERE request_id = $1`, requestID, day)
	require.NoError(t, err)
}
