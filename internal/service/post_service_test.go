package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "devconnect/internal/errors"
	"devconnect/internal/model"
)

func TestPostService_CreateSnapshotsAuthor(t *testing.T) {
	user := &model.User{
		ID:        uuid.New(),
		Name:      "Test User",
		AvatarURL: "https://www.gravatar.com/avatar/abc?s=200&r=pg&d=mm",
	}

	mockUserRepo := new(MockUserRepository)
	mockPostRepo := new(MockPostRepository)
	mockUserRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mockPostRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)

	svc := NewPostService(mockPostRepo, mockUserRepo, nil)
	post, err := svc.Create(context.Background(), user.ID, "hello world")

	assert.NoError(t, err)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, user.Name, post.Name)
	assert.Equal(t, user.AvatarURL, post.AvatarURL)
	assert.Equal(t, user.ID, post.UserID)
	mockUserRepo.AssertExpectations(t)
	mockPostRepo.AssertExpectations(t)
}

func TestPostService_DeleteRequiresAuthor(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	post := &model.Post{ID: uuid.New(), UserID: author, Text: "mine"}

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	err := svc.Delete(context.Background(), stranger, post.ID)

	// The post must survive a non-author delete attempt.
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	mockPostRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostService_DeleteByAuthor(t *testing.T) {
	author := uuid.New()
	post := &model.Post{ID: uuid.New(), UserID: author}

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	mockPostRepo.On("Delete", mock.Anything, post.ID).Return(nil)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	err := svc.Delete(context.Background(), author, post.ID)

	assert.NoError(t, err)
	mockPostRepo.AssertExpectations(t)
}

func TestPostService_LikeTwiceConflicts(t *testing.T) {
	caller := uuid.New()
	post := &model.Post{ID: uuid.New(), UserID: uuid.New()}

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	mockPostRepo.On("HasLike", mock.Anything, post.ID, caller).Return(true, nil)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	likes, err := svc.Like(context.Background(), caller, post.ID)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyLiked)
	assert.Nil(t, likes)
	mockPostRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything)
}

func TestPostService_Like(t *testing.T) {
	caller := uuid.New()
	post := &model.Post{ID: uuid.New(), UserID: uuid.New()}

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	mockPostRepo.On("HasLike", mock.Anything, post.ID, caller).Return(false, nil)
	mockPostRepo.On("AddLike", mock.Anything, mock.AnythingOfType("*model.Like")).Run(func(args mock.Arguments) {
		like := args.Get(1).(*model.Like)
		assert.Equal(t, post.ID, like.PostID)
		assert.Equal(t, caller, like.UserID)
	}).Return(nil)
	mockPostRepo.On("ListLikes", mock.Anything, post.ID).Return([]model.Like{{PostID: post.ID, UserID: caller}}, nil)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	likes, err := svc.Like(context.Background(), caller, post.ID)

	assert.NoError(t, err)
	assert.Len(t, likes, 1)
	mockPostRepo.AssertExpectations(t)
}

func TestPostService_UnlikeWithoutLike(t *testing.T) {
	caller := uuid.New()
	post := &model.Post{ID: uuid.New(), UserID: uuid.New()}

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	mockPostRepo.On("RemoveLike", mock.Anything, post.ID, caller).Return(gorm.ErrRecordNotFound)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	_, err := svc.Unlike(context.Background(), caller, post.ID)

	assert.ErrorIs(t, err, apperrors.ErrNotLiked)
	mockPostRepo.AssertExpectations(t)
}

func TestPostService_GetMissingPost(t *testing.T) {
	postID := uuid.New()

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	_, err := svc.Get(context.Background(), postID)

	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestPostService_RemoveCommentRequiresCommentAuthor(t *testing.T) {
	commenter := uuid.New()
	stranger := uuid.New()
	post := &model.Post{ID: uuid.New(), UserID: uuid.New()}
	comment := &model.Comment{ID: uuid.New(), PostID: post.ID, UserID: commenter, Text: "nice"}

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	mockPostRepo.On("FindComment", mock.Anything, post.ID, comment.ID).Return(comment, nil)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	_, err := svc.RemoveComment(context.Background(), stranger, post.ID, comment.ID)

	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	mockPostRepo.AssertNotCalled(t, "RemoveComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostService_RemoveAbsentComment(t *testing.T) {
	caller := uuid.New()
	post := &model.Post{ID: uuid.New(), UserID: caller}
	commentID := uuid.New()

	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	mockPostRepo.On("FindComment", mock.Anything, post.ID, commentID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewPostService(mockPostRepo, new(MockUserRepository), nil)
	_, err := svc.RemoveComment(context.Background(), caller, post.ID, commentID)

	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
	mockPostRepo.AssertExpectations(t)
}

func TestPostService_AddComment(t *testing.T) {
	user := &model.User{ID: uuid.New(), Name: "Commenter", AvatarURL: "https://example.com/a.png"}
	post := &model.Post{ID: uuid.New(), UserID: uuid.New()}

	mockUserRepo := new(MockUserRepository)
	mockPostRepo := new(MockPostRepository)
	mockUserRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mockPostRepo.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	mockPostRepo.On("AddComment", mock.Anything, mock.AnythingOfType("*model.Comment")).Run(func(args mock.Arguments) {
		comment := args.Get(1).(*model.Comment)
		assert.Equal(t, post.ID, comment.PostID)
		assert.Equal(t, user.ID, comment.UserID)
		assert.Equal(t, user.Name, comment.Name)
	}).Return(nil)
	mockPostRepo.On("ListComments", mock.Anything, post.ID).Return([]model.Comment{{PostID: post.ID, UserID: user.ID, Text: "nice"}}, nil)

	svc := NewPostService(mockPostRepo, mockUserRepo, nil)
	comments, err := svc.AddComment(context.Background(), user.ID, post.ID, "nice")

	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	mockUserRepo.AssertExpectations(t)
	mockPostRepo.AssertExpectations(t)
}
