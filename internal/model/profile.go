package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialLinks groups a profile's social network URLs. The group is written
// as one unit on upsert.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty" gorm:"size:255"`
	Twitter   string `json:"twitter,omitempty" gorm:"size:255"`
	Facebook  string `json:"facebook,omitempty" gorm:"size:255"`
	Linkedin  string `json:"linkedin,omitempty" gorm:"size:255"`
	Instagram string `json:"instagram,omitempty" gorm:"size:255"`
}

// Profile holds a user's public developer profile. At most one exists per
// user, enforced by the unique index on UserID.
type Profile struct {
	ID             uuid.UUID                   `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID                   `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	Company        string                      `json:"company,omitempty" gorm:"size:255"`
	Website        string                      `json:"website,omitempty" gorm:"size:255"`
	Location       string                      `json:"location,omitempty" gorm:"size:255"`
	Status         string                      `json:"status" gorm:"size:255;not null"`
	Bio            string                      `json:"bio,omitempty" gorm:"type:text"`
	GithubUsername string                      `json:"github_username,omitempty" gorm:"size:255"`
	Skills         datatypes.JSONSlice[string] `json:"skills"`
	Social         SocialLinks                 `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	DeletedAt      gorm.DeletedAt              `json:"-" gorm:"index"`

	// Relations
	User       *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Experience []Experience `json:"experience" gorm:"foreignKey:ProfileID"`
	Education  []Education  `json:"education" gorm:"foreignKey:ProfileID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Experience is a work history entry embedded in a profile.
type Experience struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID   uuid.UUID  `json:"-" gorm:"type:char(36);not null;index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Company     string     `json:"company" gorm:"size:255;not null"`
	Location    string     `json:"location,omitempty" gorm:"size:255"`
	From        time.Time  `json:"from" gorm:"not null"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current" gorm:"default:false"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Education is a schooling entry embedded in a profile.
type Education struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID    uuid.UUID  `json:"-" gorm:"type:char(36);not null;index"`
	School       string     `json:"school" gorm:"size:255;not null"`
	Degree       string     `json:"degree" gorm:"size:255;not null"`
	FieldOfStudy string     `json:"field_of_study" gorm:"size:255;not null"`
	From         time.Time  `json:"from" gorm:"not null"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current" gorm:"default:false"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
