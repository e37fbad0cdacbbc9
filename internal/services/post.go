package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-feed/internal/logger"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrPostNotFound is returned when a post does not exist, including a
	// second delete of an already-deleted post.
	ErrPostNotFound = errors.New("post not found")
	// ErrPostForbidden is returned when a user tries to delete a post they do not own.
	ErrPostForbidden = errors.New("post belongs to another user")
	// ErrEmptyMediaURL is returned when the media store hands back an empty URL.
	ErrEmptyMediaURL = errors.New("empty media url")
	// ErrUnsupportedMediaType is returned for media that is neither image nor video.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// PostReader defines read operations for posts.
type PostReader interface {
	ListAllWithOwner(ctx context.Context) ([]models.FeedItemDB, error)
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, userID uuid.UUID, url, fileType, fileName, caption string) (*models.PostDB, error)
	Delete(ctx context.Context, postID uuid.UUID) (int64, error)
}

// MediaSaver stores media content and returns its opaque URL and type.
type MediaSaver interface {
	Save(ctx context.Context, fileName string, content io.Reader) (url, fileType string, err error)
}

// FeedCacheReader caches the owner-joined feed rows.
type FeedCacheReader interface {
	GetFeed(ctx context.Context) ([]models.FeedItemDB, error)
	SetFeed(ctx context.Context, items []models.FeedItemDB) error
	InvalidateFeed(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PostService handles post creation, the feed, deletion, and Kafka publishing.
type PostService struct {
	readRepo    PostReader
	writeRepo   PostWriter
	media       MediaSaver
	cacheRepo   FeedCacheReader
	kafkaWriter KafkaWriter
}

// NewPostService creates a new PostService.
func NewPostService(
	readRepo PostReader,
	writeRepo PostWriter,
	media MediaSaver,
	cacheRepo FeedCacheReader,
	kafkaWriter KafkaWriter,
) *PostService {
	return &PostService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		media:       media,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishPostEvent publishes a post lifecycle event to Kafka.
func (s *PostService) publishPostEvent(ctx context.Context, event models.PostEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal post event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PostID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish post event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Post event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// CreatePost stores the media content, persists the post, and publishes
// a post_created event. The stored media URL is opaque and immutable.
func (s *PostService) CreatePost(ctx context.Context, userID uuid.UUID, fileName string, content io.Reader, caption string) (*models.PostDB, error) {
	url, fileType, err := s.media.Save(ctx, fileName, content)
	if err != nil {
		logger.Log.Errorw("failed to store media", "userID", userID, "file_name", fileName, "error", err)
		return nil, ErrUnsupportedMediaType
	}

	if url == "" {
		logger.Log.Errorw("media store returned empty url", "userID", userID, "file_name", fileName)
		return nil, ErrEmptyMediaURL
	}
	if fileType != models.MediaTypeImage && fileType != models.MediaTypeVideo {
		logger.Log.Errorw("media store returned unknown type", "userID", userID, "file_type", fileType)
		return nil, ErrUnsupportedMediaType
	}

	post, err := s.writeRepo.Save(ctx, userID, url, fileType, fileName, caption)
	if err != nil {
		logger.Log.Errorw("failed to save post", "userID", userID, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.InvalidateFeed(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate feed cache", "error", err)
		}
	}

	event := models.PostEvent{
		EventID:   uuid.NewString(),
		Operation: models.PostEventCreated,
		PostID:    post.PostID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}
	s.publishPostEvent(ctx, event)

	return post, nil
}

// GetFeed returns every post joined with its owner's email, newest first.
// The cache is consulted first; a miss falls back to the database.
func (s *PostService) GetFeed(ctx context.Context) ([]models.FeedItemDB, error) {
	if s.cacheRepo != nil {
		items, err := s.cacheRepo.GetFeed(ctx)
		if err == nil {
			return items, nil
		}
	}

	items, err := s.readRepo.ListAllWithOwner(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list feed", "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetFeed(ctx, items); err != nil {
			logger.Log.Errorw("failed to cache feed", "error", err)
		}
	}

	return items, nil
}

// DeletePost removes a post owned by requesterID and publishes a
// post_deleted event. Only the owner may delete; anyone else gets
// ErrPostForbidden regardless of their other flags.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID uuid.UUID) error {
	post, err := s.readRepo.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "postID", postID, "error", err)
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if post.UserID != requesterID {
		logger.Log.Errorw("forbidden delete attempt", "postID", postID, "requesterID", requesterID, "ownerID", post.UserID)
		return ErrPostForbidden
	}

	rowsAffected, err := s.writeRepo.Delete(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to delete post", "postID", postID, "error", err)
		return err
	}
	if rowsAffected == 0 {
		// Lost a race against a concurrent delete of the same post.
		return ErrPostNotFound
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.InvalidateFeed(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate feed cache", "error", err)
		}
	}

	event := models.PostEvent{
		EventID:   uuid.NewString(),
		Operation: models.PostEventDeleted,
		PostID:    postID.String(),
		UserID:    requesterID.String(),
		Timestamp: time.Now().Unix(),
	}
	s.publishPostEvent(ctx, event)

	return nil
}
