package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/cache"
	apperrors "devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

const postCacheTTL = 1 * time.Minute

// PostService handles the post feed: posting, liking and commenting, with
// ownership checks on every mutation.
type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, postID uuid.UUID) (*model.Post, error)
	Delete(ctx context.Context, callerID, postID uuid.UUID) error
	Like(ctx context.Context, callerID, postID uuid.UUID) ([]model.Like, error)
	Unlike(ctx context.Context, callerID, postID uuid.UUID) ([]model.Like, error)
	AddComment(ctx context.Context, callerID, postID uuid.UUID, text string) ([]model.Comment, error)
	RemoveComment(ctx context.Context, callerID, postID, commentID uuid.UUID) ([]model.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, cacheClient *cache.Client) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		cache:    cacheClient,
	}
}

func (s *postService) cacheKey(postID uuid.UUID) string {
	return fmt.Sprintf("post:%s", postID)
}

// Create stores a new post with the author's name and avatar snapshotted.
func (s *postService) Create(ctx context.Context, userID uuid.UUID, text string) (*model.Post, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	post := &model.Post{
		UserID:    user.ID,
		Text:      text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Get retrieves a post by id, read through the cache.
func (s *postService) Get(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(postID)); data != nil {
		var cached model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(post); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(postID), payload, postCacheTTL)
	}
	return post, nil
}

// Delete removes a post. Only its author may delete it.
func (s *postService) Delete(ctx context.Context, callerID, postID uuid.UUID) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return apperrors.ErrNotOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(postID))
	return nil
}

// Like records the caller's like on a post. Liking twice is a conflict.
func (s *postService) Like(ctx context.Context, callerID, postID uuid.UUID) ([]model.Like, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.postRepo.HasLike(ctx, post.ID, callerID)
	if err != nil {
		return nil, fmt.Errorf("check like: %w", err)
	}
	if liked {
		return nil, apperrors.ErrAlreadyLiked
	}

	like := &model.Like{PostID: post.ID, UserID: callerID}
	if err := s.postRepo.AddLike(ctx, like); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(postID))
	return s.postRepo.ListLikes(ctx, post.ID)
}

// Unlike removes the caller's like. The liking user may always remove their
// own like, regardless of who owns the post.
func (s *postService) Unlike(ctx context.Context, callerID, postID uuid.UUID) ([]model.Like, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.RemoveLike(ctx, post.ID, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotLiked
		}
		return nil, fmt.Errorf("remove like: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(postID))
	return s.postRepo.ListLikes(ctx, post.ID)
}

// AddComment prepends a comment with the commenter's name and avatar
// snapshotted.
func (s *postService) AddComment(ctx context.Context, callerID, postID uuid.UUID, text string) ([]model.Comment, error) {
	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:    post.ID,
		UserID:    user.ID,
		Text:      text,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(postID))
	return s.postRepo.ListComments(ctx, post.ID)
}

// RemoveComment deletes a comment by its exact id. Only the comment's author
// may remove it.
func (s *postService) RemoveComment(ctx context.Context, callerID, postID, commentID uuid.UUID) ([]model.Comment, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.postRepo.FindComment(ctx, post.ID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment.UserID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.postRepo.RemoveComment(ctx, post.ID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("remove comment: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(postID))
	return s.postRepo.ListComments(ctx, post.ID)
}

func (s *postService) loadPost(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}
