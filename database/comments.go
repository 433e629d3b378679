package database

import (
	"context"
	"database/sql"
	"time"
)

type Comment struct {
	ID          uint64
	ArticleSlug string
	Username    string
	AvatarURL   string
	Body        string
	CreatedAt   time.Time
}

// Queries bundles the handwritten SQL the site runs.
type Queries struct {
	db *sql.DB
}

func NewQueries(db *sql.DB) *Queries {
	return &Queries{db: db}
}

const createCommentQuery = `
INSERT INTO comments (id, article_slug, username, avatar_url, body)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`

func (q *Queries) CreateComment(ctx context.Context, c Comment) (Comment, error) {
	row := q.db.QueryRowContext(
		ctx,
		createCommentQuery,
		int64(c.ID),
		c.ArticleSlug,
		c.Username,
		c.AvatarURL,
		c.Body,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return Comment{}, err
	}
	return c, nil
}

const getCommentsByArticleSlugQuery = `
SELECT id, article_slug, username, avatar_url, body, created_at
FROM comments
WHERE article_slug = $1
ORDER BY created_at ASC`

func (q *Queries) GetCommentsByArticleSlug(ctx context.Context, slug string) ([]Comment, error) {
	rows, err := q.db.QueryContext(ctx, getCommentsByArticleSlugQuery, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var (
			c  Comment
			id int64
		)
		if err := rows.Scan(&id, &c.ArticleSlug, &c.Username, &c.AvatarURL, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ID = uint64(id)
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
