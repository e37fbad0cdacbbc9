package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-social-feed/internal/models"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestFeedCacheRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()

	items := []models.FeedItemDB{
		{
			PostID:    uuid.New(),
			UserID:    uuid.New(),
			Email:     "alice@example.com",
			Caption:   "newest",
			URL:       "/media/a.jpg",
			FileType:  models.MediaTypeImage,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		},
		{
			PostID:    uuid.New(),
			UserID:    uuid.New(),
			Email:     "bob@example.com",
			Caption:   "older",
			URL:       "/media/b.mp4",
			FileType:  models.MediaTypeVideo,
			CreatedAt: time.Now().UTC().Add(-time.Hour).Truncate(time.Second),
		},
	}

	t.Run("Set and Get", func(t *testing.T) {
		repo := NewFeedCacheRepository(client, time.Minute)

		err := repo.SetFeed(ctx, items)
		assert.NoError(t, err)

		got, err := repo.GetFeed(ctx)
		assert.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		repo := NewFeedCacheRepository(client, time.Minute)

		assert.NoError(t, repo.InvalidateFeed(ctx))

		got, err := repo.GetFeed(ctx)
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate drops cached feed", func(t *testing.T) {
		repo := NewFeedCacheRepository(client, time.Minute)

		assert.NoError(t, repo.SetFeed(ctx, items))
		assert.NoError(t, repo.InvalidateFeed(ctx))

		got, err := repo.GetFeed(ctx)
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		repo := NewFeedCacheRepository(client, time.Second)

		assert.NoError(t, repo.SetFeed(ctx, items))

		time.Sleep(1500 * time.Millisecond)

		got, err := repo.GetFeed(ctx)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
