package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "devconnect/internal/errors"
	"devconnect/internal/model"
)

func newProfileService(profileRepo *MockProfileRepository, userRepo *MockUserRepository, postRepo *MockPostRepository) ProfileService {
	return NewProfileService(profileRepo, userRepo, postRepo, nil, nil)
}

func TestProfileService_UpsertCreates(t *testing.T) {
	userID := uuid.New()
	created := &model.Profile{
		ID:     uuid.New(),
		UserID: userID,
		Status: "Developer",
		Skills: datatypes.NewJSONSlice([]string{"Go", "SQL"}),
	}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Run(func(args mock.Arguments) {
		profile := args.Get(1).(*model.Profile)
		assert.Equal(t, userID, profile.UserID)
		assert.Equal(t, "Developer", profile.Status)
		assert.Equal(t, []string{"Go", "SQL"}, []string(profile.Skills))
	}).Return(nil).Once()
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(created, nil).Once()

	svc := newProfileService(mockRepo, new(MockUserRepository), new(MockPostRepository))
	profile, err := svc.Upsert(context.Background(), userID, ProfileInput{
		Status: "Developer",
		Skills: " Go , SQL ,",
	})

	assert.NoError(t, err)
	assert.Equal(t, created, profile)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpsertMerges(t *testing.T) {
	userID := uuid.New()
	existing := &model.Profile{
		ID:       uuid.New(),
		UserID:   userID,
		Company:  "Old Corp",
		Location: "Berlin",
		Status:   "Developer",
		Skills:   datatypes.NewJSONSlice([]string{"Go"}),
		Social:   model.SocialLinks{Twitter: "https://twitter.com/old"},
	}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(existing, nil)
	mockRepo.On("Save", mock.Anything, existing).Return(nil).Once()

	svc := newProfileService(mockRepo, new(MockUserRepository), new(MockPostRepository))
	_, err := svc.Upsert(context.Background(), userID, ProfileInput{
		Company: "New Corp",
		Status:  "Senior Developer",
		Social:  model.SocialLinks{Youtube: "https://youtube.com/c/new"},
	})

	assert.NoError(t, err)
	// Provided scalars overwrite, omitted scalars keep prior values.
	assert.Equal(t, "New Corp", existing.Company)
	assert.Equal(t, "Senior Developer", existing.Status)
	assert.Equal(t, "Berlin", existing.Location)
	assert.Equal(t, []string{"Go"}, []string(existing.Skills))
	// The social group is applied as one unit.
	assert.Equal(t, "https://youtube.com/c/new", existing.Social.Youtube)
	assert.Empty(t, existing.Social.Twitter)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_AddExperience(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()
	bare := &model.Profile{ID: profileID, UserID: userID}

	newEntry := model.Experience{
		ID:        uuid.New(),
		ProfileID: profileID,
		Title:     "Engineer",
		Company:   "Acme",
		From:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	older := model.Experience{
		ID:        uuid.New(),
		ProfileID: profileID,
		Title:     "Junior Engineer",
	}
	withEntry := &model.Profile{
		ID:         profileID,
		UserID:     userID,
		Experience: []model.Experience{newEntry, older},
	}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(bare, nil).Once()
	mockRepo.On("AddExperience", mock.Anything, mock.AnythingOfType("*model.Experience")).Run(func(args mock.Arguments) {
		entry := args.Get(1).(*model.Experience)
		assert.Equal(t, profileID, entry.ProfileID)
		assert.Equal(t, "Engineer", entry.Title)
	}).Return(nil).Once()
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(withEntry, nil).Once()

	svc := newProfileService(mockRepo, new(MockUserRepository), new(MockPostRepository))
	profile, err := svc.AddExperience(context.Background(), userID, ExperienceInput{
		Title:   "Engineer",
		Company: "Acme",
		From:    newEntry.From,
	})

	assert.NoError(t, err)
	assert.Len(t, profile.Experience, 2)
	assert.Equal(t, newEntry.ID, profile.Experience[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_AddExperienceWithoutProfile(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := newProfileService(mockRepo, new(MockUserRepository), new(MockPostRepository))
	_, err := svc.AddExperience(context.Background(), userID, ExperienceInput{Title: "Engineer"})

	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	mockRepo.AssertNotCalled(t, "AddExperience", mock.Anything, mock.Anything)
}

func TestProfileService_RemoveExperienceAbsentEntry(t *testing.T) {
	userID := uuid.New()
	entryID := uuid.New()
	profile := &model.Profile{ID: uuid.New(), UserID: userID}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(profile, nil)
	mockRepo.On("RemoveExperience", mock.Anything, profile.ID, entryID).Return(gorm.ErrRecordNotFound)

	svc := newProfileService(mockRepo, new(MockUserRepository), new(MockPostRepository))
	_, err := svc.RemoveExperience(context.Background(), userID, entryID)

	// An absent id is a clean not-found, never the removal of another entry.
	assert.ErrorIs(t, err, apperrors.ErrExperienceNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_RemoveEducation(t *testing.T) {
	userID := uuid.New()
	entryID := uuid.New()
	profile := &model.Profile{ID: uuid.New(), UserID: userID}

	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, userID).Return(profile, nil)
	mockRepo.On("RemoveEducation", mock.Anything, profile.ID, entryID).Return(nil)

	svc := newProfileService(mockRepo, new(MockUserRepository), new(MockPostRepository))
	got, err := svc.RemoveEducation(context.Background(), userID, entryID)

	assert.NoError(t, err)
	assert.Equal(t, profile, got)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	userID := uuid.New()

	mockProfileRepo := new(MockProfileRepository)
	mockUserRepo := new(MockUserRepository)
	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil)
	mockProfileRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil)
	mockUserRepo.On("Delete", mock.Anything, userID).Return(nil)

	svc := newProfileService(mockProfileRepo, mockUserRepo, mockPostRepo)
	err := svc.DeleteAccount(context.Background(), userID)

	assert.NoError(t, err)
	mockPostRepo.AssertExpectations(t)
	mockProfileRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "Go,SQL,Redis", []string{"Go", "SQL", "Redis"}},
		{"whitespace and empties", "  Go , , SQL ,", []string{"Go", "SQL"}},
		{"single", "Go", []string{"Go"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSkills(tt.input))
		})
	}
}
