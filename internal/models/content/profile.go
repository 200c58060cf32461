package content

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/gorm"
)

// ProfileID is the fixed identifier of the single profile row. A well-known id
// replaces the check-then-act "is this the singleton" race.
var ProfileID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type Profile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Title         string    `gorm:"size:200" json:"title" validate:"omitempty,max=200"`
	Bio           string    `gorm:"type:text" json:"bio"`
	AvatarURL     *string   `gorm:"column:avatar_url;size:500" json:"avatar_url" validate:"omitempty,url,max=500"`
	ResumeURL     *string   `gorm:"column:resume_url;size:500" json:"resume_url" validate:"omitempty,url,max=500"`
	HiddenMessage string    `gorm:"column:hidden_message;size:500" json:"hidden_message"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	SocialLinks []SocialLink `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"social_links"`
}

type SocialLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"profile_id"`
	Platform  string    `gorm:"size:50;not null" json:"platform" validate:"required,max=50"`
	URL       string    `gorm:"size:500;not null" json:"url" validate:"required,url,max=500"`
	Icon      string    `gorm:"size:16" json:"icon"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type SocialLinkView struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

type ProfileView struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Title         string           `json:"title"`
	Bio           string           `json:"bio"`
	AvatarURL     *string          `json:"avatarUrl"`
	ResumeURL     *string          `json:"resumeUrl"`
	HiddenMessage string           `json:"hiddenMessage"`
	SocialLinks   []SocialLinkView `json:"socialLinks"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func NewProfileView(p *Profile) ProfileView {
	links := make([]SocialLinkView, 0, len(p.SocialLinks))
	for i := range p.SocialLinks {
		l := &p.SocialLinks[i]
		links = append(links, SocialLinkView{
			ID:       l.ID.String(),
			Platform: l.Platform,
			URL:      l.URL,
			Icon:     l.Icon,
		})
	}
	return ProfileView{
		ID:            p.ID.String(),
		Name:          p.Name,
		Title:         p.Title,
		Bio:           p.Bio,
		AvatarURL:     p.AvatarURL,
		ResumeURL:     p.ResumeURL,
		HiddenMessage: p.HiddenMessage,
		SocialLinks:   links,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// GetProfile fetches the singleton profile with its social links.
func GetProfile(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB) (*Profile, error) {
	if cached, err := rclient.Get(ctx, "profile").Result(); err == nil {
		var profile Profile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
	}

	var profile Profile
	if err := db.WithContext(ctx).Preload("SocialLinks").Where("id = ?", ProfileID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Profile not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch profile")
	}

	data, _ := json.Marshal(&profile)
	rclient.Set(ctx, "profile", data, 10*time.Minute)
	return &profile, nil
}

// UpsertProfile creates or updates the singleton row and, when links is
// non-nil, replaces the social link set in the same transaction.
func UpsertProfile(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, profile *Profile, links []SocialLink) (*Profile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: name")
	}
	profile.ID = ProfileID

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Profile
		err := tx.Where("id = ?", ProfileID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Omit("SocialLinks").Create(profile).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create profile")
			}
		case err != nil:
			return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch profile")
		default:
			profile.CreatedAt = existing.CreatedAt
			if err := tx.Omit("SocialLinks").Save(profile).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update profile")
			}
		}

		if links != nil {
			if err := tx.Where("profile_id = ?", ProfileID).Delete(&SocialLink{}).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to replace social links")
			}
			for i := range links {
				links[i].ProfileID = ProfileID
				if links[i].ID == uuid.Nil {
					links[i].ID = uuid.New()
				}
			}
			if len(links) > 0 {
				if err := tx.Create(&links).Error; err != nil {
					return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to replace social links")
				}
			}
			profile.SocialLinks = links
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if links == nil {
		// keep previously stored links in the returned view
		var stored []SocialLink
		db.WithContext(ctx).Where("profile_id = ?", ProfileID).Find(&stored)
		profile.SocialLinks = stored
	}

	data, _ := json.Marshal(profile)
	rclient.Set(ctx, "profile", data, 10*time.Minute)
	return profile, nil
}
