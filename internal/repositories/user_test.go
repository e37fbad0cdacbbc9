package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		email VARCHAR(320) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS posts (
		post_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		caption TEXT NOT NULL DEFAULT '',
		url VARCHAR(512) NOT NULL,
		file_type VARCHAR(16) NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	userID, err := repo.Save(ctx, "alice@example.com", "hashed-password")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	var user struct {
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
		IsActive     bool   `db:"is_active"`
		IsSuperuser  bool   `db:"is_superuser"`
		IsVerified   bool   `db:"is_verified"`
	}
	err = db.Get(&user, "SELECT email, password_hash, is_active, is_superuser, is_verified FROM users WHERE user_id=$1", userID)
	assert.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.False(t, user.IsVerified)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	_, err := repo.Save(ctx, "bob@example.com", "hash1")
	assert.NoError(t, err)

	// Second insert with the same email hits the unique constraint
	userID, err := repo.Save(ctx, "bob@example.com", "hash2")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, uuid.Nil, userID)

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM users WHERE email=$1", "bob@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserWriteRepository_Save_ParallelSameEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	const workers = 8

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, "race@example.com", "hash")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, sql.ErrNoRows):
			duplicates++
		default:
			t.Fatalf("unexpected error from parallel save: %v", err)
		}
	}

	// Exactly one registration wins; the rest lose on the unique constraint
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, duplicates)

	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM users WHERE email=$1", "race@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Save(ctx, "charlie@example.com", "secret-hash")
	assert.NoError(t, err)

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "charlie@example.com", user.Email)
		assert.Equal(t, "secret-hash", user.PasswordHash)
		assert.True(t, user.IsActive)
	})

	t.Run("GetByEmail_NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie@example.com", user.Email)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_Save_WithTransaction(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewUserWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	userID, err := repo.Save(ctx, "dave@example.com", "hash")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	// Not visible outside the transaction until commit
	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM users WHERE email=$1", "dave@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.NoError(t, tx.Commit())

	err = db.Get(&count, "SELECT COUNT(*) FROM users WHERE email=$1", "dave@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
