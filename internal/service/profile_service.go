package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"devconnect/internal/cache"
	apperrors "devconnect/internal/errors"
	"devconnect/internal/github"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileInput carries the fields of a profile upsert. Empty scalars leave
// stored values untouched; the social group is applied as one unit; skills
// is a comma separated list.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Status         string
	Bio            string
	GithubUsername string
	Skills         string
	Social         model.SocialLinks
}

// ExperienceInput carries the fields of a new experience entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput carries the fields of a new education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileService handles profile operations, including the embedded
// experience and education lists and account deletion.
type ProfileService interface {
	Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, userID uuid.UUID, in ExperienceInput) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error)
	AddEducation(ctx context.Context, userID uuid.UUID, in EducationInput) (*model.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error)
	GithubRepos(ctx context.Context, username string) (json.RawMessage, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	cache       *cache.Client
	github      *github.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	cacheClient *cache.Client,
	githubClient *github.Client,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		cache:       cacheClient,
		github:      githubClient,
	}
}

func (s *profileService) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:user:%s", userID)
}

// Upsert creates the caller's profile if absent, otherwise merges the given
// fields into the existing one. Non-empty scalars overwrite, omitted scalars
// keep prior values, the social group replaces the stored group wholesale.
func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*model.Profile, error) {
	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if existing == nil {
		profile := &model.Profile{
			UserID:         userID,
			Company:        in.Company,
			Website:        in.Website,
			Location:       in.Location,
			Status:         in.Status,
			Bio:            in.Bio,
			GithubUsername: in.GithubUsername,
			Skills:         datatypes.NewJSONSlice(normalizeSkills(in.Skills)),
			Social:         in.Social,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		return s.refresh(ctx, userID)
	}

	if in.Company != "" {
		existing.Company = in.Company
	}
	if in.Website != "" {
		existing.Website = in.Website
	}
	if in.Location != "" {
		existing.Location = in.Location
	}
	if in.Status != "" {
		existing.Status = in.Status
	}
	if in.Bio != "" {
		existing.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		existing.GithubUsername = in.GithubUsername
	}
	if in.Skills != "" {
		existing.Skills = datatypes.NewJSONSlice(normalizeSkills(in.Skills))
	}
	existing.Social = in.Social

	if err := s.profileRepo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.refresh(ctx, userID)
}

// GetByUserID retrieves a profile by its owning user id, read through the cache.
func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, profileCacheTTL)
	}
	return profile, nil
}

// List returns all profiles with their owners.
func (s *profileService) List(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// DeleteAccount removes the caller's posts, profile and user record.
func (s *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}

// AddExperience prepends a new experience entry to the caller's profile.
func (s *profileService) AddExperience(ctx context.Context, userID uuid.UUID, in ExperienceInput) (*model.Profile, error) {
	profile, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &model.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, entry); err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}
	return s.refresh(ctx, userID)
}

// RemoveExperience deletes an experience entry by its exact id. An id not
// present in the list is a not-found, never the removal of another entry.
func (s *profileService) RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error) {
	profile, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("remove experience: %w", err)
	}
	return s.refresh(ctx, userID)
}

// AddEducation prepends a new education entry to the caller's profile.
func (s *profileService) AddEducation(ctx context.Context, userID uuid.UUID, in EducationInput) (*model.Profile, error) {
	profile, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &model.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, entry); err != nil {
		return nil, fmt.Errorf("add education: %w", err)
	}
	return s.refresh(ctx, userID)
}

// RemoveEducation deletes an education entry by its exact id, with the same
// not-found contract as RemoveExperience.
func (s *profileService) RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*model.Profile, error) {
	profile, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEducationNotFound
		}
		return nil, fmt.Errorf("remove education: %w", err)
	}
	return s.refresh(ctx, userID)
}

// GithubRepos proxies the upstream repository listing for a username.
func (s *profileService) GithubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	return s.github.ListRepos(ctx, username)
}

// ownProfile loads the caller's profile, translating absence to the domain
// not-found error.
func (s *profileService) ownProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

// refresh invalidates the cache and reloads the profile so responses carry
// the updated entry lists.
func (s *profileService) refresh(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return profile, nil
}

// normalizeSkills splits a comma separated skills string into a trimmed
// ordered list, dropping empty items.
func normalizeSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
