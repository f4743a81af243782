package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// ProfileRepository defines profile persistence operations. Embedded entry
// mutations are single-statement inserts and deletes keyed by entry id, so
// concurrent list edits never overwrite each other.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Save(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	FindAll(ctx context.Context) ([]model.Profile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, entry *model.Experience) error
	RemoveExperience(ctx context.Context, profileID, entryID uuid.UUID) error
	AddEducation(ctx context.Context, entry *model.Education) error
	RemoveEducation(ctx context.Context, profileID, entryID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// mostRecentFirst orders embedded entries newest first, matching the
// head-insertion semantics of the feed.
func mostRecentFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, id DESC")
}

// ownerFields restricts the preloaded owner to its public fields.
func ownerFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar_url")
}

// Create creates a new profile.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Save persists scalar field changes of an existing profile.
func (r *profileRepository) Save(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Omit("Experience", "Education", "User").Save(profile).Error
}

// FindByUserID finds a profile by its owning user id, with owner and entries.
func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Preload("User", ownerFields).
		Preload("Experience", mostRecentFirst).
		Preload("Education", mostRecentFirst).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindAll lists all profiles with their owners and entries.
func (r *profileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Preload("User", ownerFields).
		Preload("Experience", mostRecentFirst).
		Preload("Education", mostRecentFirst).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteByUserID removes a user's profile if one exists.
func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Profile{}).Error
}

// AddExperience inserts a single experience entry.
func (r *profileRepository) AddExperience(ctx context.Context, entry *model.Experience) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// RemoveExperience deletes exactly the entry with the given id within the
// profile. Returns gorm.ErrRecordNotFound when no such entry exists, leaving
// the list untouched.
func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, entryID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&model.Experience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddEducation inserts a single education entry.
func (r *profileRepository) AddEducation(ctx context.Context, entry *model.Education) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// RemoveEducation deletes exactly the entry with the given id within the
// profile, with the same not-found contract as RemoveExperience.
func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, entryID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&model.Education{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
