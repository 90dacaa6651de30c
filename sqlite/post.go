package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/tutorials"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tutorials.PostService = (*PostService)(nil)

// postNamespace scopes name-based post IDs.
var postNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tutorials:posts"))

const postColumns = "id, slug, source_path, title, abstract, date, body, html, searchable_text, content_hash, built_at"

// PostService implements tutorials.PostService using SQLite.
type PostService struct {
	db *DB
}

// NewPostService creates a new PostService.
func NewPostService(db *DB) *PostService {
	return &PostService{db: db}
}

// PostID returns the stable ID of the post with the given slug.
func PostID(slug string) string {
	return uuid.NewSHA1(postNamespace, []byte(slug)).String()
}

// UpsertPost creates the post or replaces the post with the same slug.
// The ID is derived from the slug, so rebuilding a post keeps its ID.
// ContentHash is stored as given; the builder owns its definition.
func (s *PostService) UpsertPost(ctx context.Context, post *tutorials.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	post.ID = PostID(post.Slug)
	post.BuiltAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			source_path = excluded.source_path,
			title = excluded.title,
			abstract = excluded.abstract,
			date = excluded.date,
			body = excluded.body,
			html = excluded.html,
			searchable_text = excluded.searchable_text,
			content_hash = excluded.content_hash,
			built_at = excluded.built_at
	`, post.ID, post.Slug, post.SourcePath, post.Title, post.Abstract, post.Date, post.Body,
		post.HTML, post.SearchableText, post.ContentHash, post.BuiltAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM post_keywords WHERE post_id = ?", post.ID); err != nil {
		return err
	}
	for i, keyword := range post.Keywords {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO post_keywords (post_id, position, keyword) VALUES (?, ?, ?)",
			post.ID, i, keyword); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindPostByID retrieves a post by ID.
func (s *PostService) FindPostByID(ctx context.Context, id string) (*tutorials.Post, error) {
	posts, err := s.FindPosts(ctx, tutorials.PostFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, tutorials.Errorf(tutorials.ENOTFOUND, "post not found")
	}
	return posts[0], nil
}

// FindPostBySlug retrieves a post by slug.
func (s *PostService) FindPostBySlug(ctx context.Context, slug string) (*tutorials.Post, error) {
	posts, err := s.FindPosts(ctx, tutorials.PostFilter{Slug: &slug, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, tutorials.Errorf(tutorials.ENOTFOUND, "post %q not found", slug)
	}
	return posts[0], nil
}

// FindPosts retrieves posts matching the filter.
// Posts are sorted by title then date unless the filter asks otherwise.
func (s *PostService) FindPosts(ctx context.Context, filter tutorials.PostFilter) ([]*tutorials.Post, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + postColumns + " FROM posts WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Keyword != nil {
		query.WriteString(" AND id IN (SELECT post_id FROM post_keywords WHERE keyword = ?)")
		args = append(args, *filter.Keyword)
	}

	switch filter.SortBy {
	case tutorials.SortByBuiltAt:
		query.WriteString(" ORDER BY built_at DESC, slug ASC")
	default:
		query.WriteString(" ORDER BY title ASC, date ASC, slug ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*tutorials.Post
	for rows.Next() {
		var post tutorials.Post
		var builtAt string

		if err := rows.Scan(&post.ID, &post.Slug, &post.SourcePath, &post.Title, &post.Abstract,
			&post.Date, &post.Body, &post.HTML, &post.SearchableText, &post.ContentHash, &builtAt); err != nil {
			return nil, err
		}

		post.BuiltAt, err = parseTime(builtAt, "built_at")
		if err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachKeywords(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// attachKeywords loads the ordered keywords of each post.
func (s *PostService) attachKeywords(ctx context.Context, posts []*tutorials.Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[string]*tutorials.Post, len(posts))
	args := make([]any, 0, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
		args = append(args, p.ID)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(posts)), ",")
	rows, err := s.db.QueryContext(ctx,
		"SELECT post_id, keyword FROM post_keywords WHERE post_id IN ("+placeholders+") ORDER BY post_id, position",
		args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var postID, keyword string
		if err := rows.Scan(&postID, &keyword); err != nil {
			return err
		}
		if p, ok := byID[postID]; ok {
			p.Keywords = append(p.Keywords, keyword)
		}
	}
	return rows.Err()
}

// Keywords returns the distinct keywords of all posts, sorted.
func (s *PostService) Keywords(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT keyword FROM post_keywords WHERE keyword != '' ORDER BY keyword")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}

// DeletePost permanently removes a post and its keywords.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return tutorials.Errorf(tutorials.ENOTFOUND, "post not found")
	}

	return nil
}
