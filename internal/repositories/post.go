package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-feed/internal/logger"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
)

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// ListAllWithOwner returns every post joined with its owner's email,
// newest first. Ties on created_at are broken by post id so repeated
// calls always return the same order.
func (r *PostReadRepository) ListAllWithOwner(ctx context.Context) ([]models.FeedItemDB, error) {
	const query = `
		SELECT p.post_id, p.user_id, u.email, p.caption, p.url, p.file_type, p.created_at
		FROM posts p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.created_at DESC, p.post_id DESC
	`

	var items []models.FeedItemDB
	err := r.db.SelectContext(ctx, &items, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetByID returns the post with the given id, or nil if no such post exists.
func (r *PostReadRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	const query = `
		SELECT post_id, user_id, caption, url, file_type, file_name, created_at
		FROM posts
		WHERE post_id = $1
	`

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, postID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new post and returns the stored row with its
// server-assigned id and creation timestamp.
func (r *PostWriteRepository) Save(ctx context.Context, userID uuid.UUID, url, fileType, fileName, caption string) (*models.PostDB, error) {
	query := `
		INSERT INTO posts (post_id, user_id, caption, url, file_type, file_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING post_id, user_id, caption, url, file_type, file_name, created_at
	`
	args := []any{uuid.New(), userID, caption, url, fileType, fileName}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var post models.PostDB
	err := sqlx.GetContext(ctx, executor, &post, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, url, fileType, fileName},
		"result", post.PostID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete removes the post with the given id and reports how many rows
// were affected. A concurrent delete of the same post sees zero rows.
func (r *PostWriteRepository) Delete(ctx context.Context, postID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM posts
		WHERE post_id = $1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
