package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// PostRepository defines post persistence operations. Likes and comments are
// child rows mutated with single statements keyed by exact entry id.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	AddLike(ctx context.Context, like *model.Like) error
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) error
	ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	FindComment(ctx context.Context, postID, commentID uuid.UUID) (*model.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID finds a post by ID with its likes and comments.
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Likes", mostRecentFirst).
		Preload("Comments", mostRecentFirst).
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll lists all posts, newest first.
func (r *postRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Likes", mostRecentFirst).
		Preload("Comments", mostRecentFirst).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

// DeleteByUserID removes all posts authored by a user.
func (r *postRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Post{}).Error
}

// HasLike reports whether the user already has a like on the post.
func (r *postRepository) HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddLike inserts a like. The unique (post_id, user_id) index backstops the
// duplicate check under concurrent requests.
func (r *postRepository) AddLike(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// RemoveLike deletes the caller's like on a post. Returns
// gorm.ErrRecordNotFound when the caller has no like recorded.
func (r *postRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListLikes returns a post's likes, newest first.
func (r *postRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	var likes []model.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// AddComment inserts a comment.
func (r *postRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindComment finds a comment by id within a post.
func (r *postRepository) FindComment(ctx context.Context, postID, commentID uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// RemoveComment deletes exactly the comment with the given id within the
// post. Returns gorm.ErrRecordNotFound when no such comment exists.
func (r *postRepository) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", commentID, postID).
		Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListComments returns a post's comments, newest first.
func (r *postRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
