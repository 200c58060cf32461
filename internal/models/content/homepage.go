package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/gorm"
)

// Fixed identifiers of the homepage singletons.
var (
	HomepageContentID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	HomepageStatsID   = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

type HomepageContent struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HeroHeadline         string    `gorm:"size:300" json:"hero_headline"`
	HeroHighlightWord    string    `gorm:"size:50" json:"hero_highlight_word"`
	HeroIntro            string    `gorm:"type:text" json:"hero_intro"`
	HeroPrimaryCTAText   string    `gorm:"column:hero_primary_cta_text;size:100" json:"hero_primary_cta_text"`
	HeroPrimaryCTAURL    string    `gorm:"column:hero_primary_cta_url;size:500" json:"hero_primary_cta_url"`
	HeroSecondaryCTAText string    `gorm:"column:hero_secondary_cta_text;size:100" json:"hero_secondary_cta_text"`
	HeroSecondaryCTAURL  string    `gorm:"column:hero_secondary_cta_url;size:500" json:"hero_secondary_cta_url"`
	HeroScrollText       string    `gorm:"size:100" json:"hero_scroll_text"`

	WhyBuildHeadline string `gorm:"size:300" json:"why_build_headline"`
	WhyBuildIntro    string `gorm:"type:text" json:"why_build_intro"`
	WhyBuildQuote    string `gorm:"type:text" json:"why_build_quote"`

	ContactEmail       string `gorm:"size:200" json:"contact_email" validate:"omitempty,email,max=200"`
	ContactPhone       string `gorm:"size:50" json:"contact_phone"`
	ContactLocation    string `gorm:"size:200" json:"contact_location"`
	ContactGithubURL   string `gorm:"column:contact_github_url;size:500" json:"contact_github_url" validate:"omitempty,url,max=500"`
	ContactLinkedinURL string `gorm:"column:contact_linkedin_url;size:500" json:"contact_linkedin_url" validate:"omitempty,url,max=500"`
	ContactTwitterURL  string `gorm:"column:contact_twitter_url;size:500" json:"contact_twitter_url" validate:"omitempty,url,max=500"`

	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type HomepageBuildingPrinciple struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description string    `gorm:"size:500" json:"description" validate:"omitempty,max=500"`
	IconName    string    `gorm:"column:icon_name;size:50" json:"icon_name"`
	SortOrder   int       `gorm:"column:sort_order;default:0;index" json:"sort_order"`
	IsActive    bool      `gorm:"column:is_active;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type HomepageStats struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectCount    int64     `gorm:"column:project_count;default:0" json:"project_count"`
	MVPCount        int64     `gorm:"column:mvp_count;default:0" json:"mvp_count"`
	LiveCount       int64     `gorm:"column:live_count;default:0" json:"live_count"`
	CustomStatsText *string   `gorm:"column:custom_stats_text;size:300" json:"custom_stats_text"`
	UseCustomText   bool      `gorm:"column:use_custom_text;default:false" json:"use_custom_text"`
	LastUpdated     time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

// FormatStatsString renders the human-readable project stats line.
func FormatStatsString(total, mvp, live int64) string {
	return fmt.Sprintf("%d Projects • %d MVPs • %d Live Products", total, mvp, live)
}

// GetHomepageContent fetches the singleton content row. A missing row is a
// not-found, which callers may map to an empty object for public reads.
func GetHomepageContent(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB) (*HomepageContent, error) {
	if cached, err := rclient.Get(ctx, "homepage:content").Result(); err == nil {
		var content HomepageContent
		if err := json.Unmarshal([]byte(cached), &content); err == nil {
			return &content, nil
		}
	}

	var content HomepageContent
	if err := db.WithContext(ctx).Where("id = ?", HomepageContentID).First(&content).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Homepage content not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch homepage content")
	}

	data, _ := json.Marshal(&content)
	rclient.Set(ctx, "homepage:content", data, 10*time.Minute)
	return &content, nil
}

// UpsertHomepageContent creates or updates the singleton row in one transaction.
func UpsertHomepageContent(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, content *HomepageContent) (*HomepageContent, error) {
	content.ID = HomepageContentID
	content.IsActive = true

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing HomepageContent
		err := tx.Where("id = ?", HomepageContentID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(content).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create homepage content")
			}
		case err != nil:
			return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch homepage content")
		default:
			content.CreatedAt = existing.CreatedAt
			if err := tx.Save(content).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update homepage content")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	data, _ := json.Marshal(content)
	rclient.Set(ctx, "homepage:content", data, 10*time.Minute)
	return content, nil
}

// PrincipleOption configures a HomepageBuildingPrinciple during create or update.
type PrincipleOption func(*HomepageBuildingPrinciple)

func WithPrincipleTitle(title string) PrincipleOption {
	return func(p *HomepageBuildingPrinciple) { p.Title = strings.TrimSpace(title) }
}

func WithPrincipleDescription(description string) PrincipleOption {
	return func(p *HomepageBuildingPrinciple) { p.Description = description }
}

func WithPrincipleIconName(iconName string) PrincipleOption {
	return func(p *HomepageBuildingPrinciple) { p.IconName = iconName }
}

func WithPrincipleSortOrder(sortOrder int) PrincipleOption {
	return func(p *HomepageBuildingPrinciple) { p.SortOrder = sortOrder }
}

func WithPrincipleActive(active bool) PrincipleOption {
	return func(p *HomepageBuildingPrinciple) { p.IsActive = active }
}

// CreatePrinciple validates and inserts one row.
func CreatePrinciple(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, principle *HomepageBuildingPrinciple) error {
	principle.Title = strings.TrimSpace(principle.Title)
	if principle.Title == "" {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title")
	}
	if principle.ID == uuid.Nil {
		principle.ID = uuid.New()
	}
	if err := db.WithContext(ctx).Create(principle).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create building principle")
	}
	return nil
}

// ListPrinciples retrieves principles ordered by sort_order; activeOnly hides
// deactivated rows for the public view.
func ListPrinciples(ctx context.Context, db *gorm.DB, activeOnly bool) ([]HomepageBuildingPrinciple, error) {
	query := db.WithContext(ctx).Order("sort_order asc, created_at asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var principles []HomepageBuildingPrinciple
	if err := query.Find(&principles).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch building principles")
	}
	return principles, nil
}

// UpdatePrinciple applies the provided options and saves.
func UpdatePrinciple(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, opts ...PrincipleOption) (*HomepageBuildingPrinciple, error) {
	var principle HomepageBuildingPrinciple
	if err := db.WithContext(ctx).Where("id = ?", id).First(&principle).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Building principle not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch building principle")
	}

	for _, opt := range opts {
		opt(&principle)
	}
	if principle.Title == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title")
	}

	if err := db.WithContext(ctx).Save(&principle).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update building principle")
	}
	return &principle, nil
}

// DeletePrinciple removes a row. Deleting an absent id is a benign no-op.
func DeletePrinciple(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	if err := db.WithContext(ctx).Delete(&HomepageBuildingPrinciple{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete building principle")
	}
	return nil
}

// ResolveHomepageStats returns the display stats string. A stored custom
// override wins outright; otherwise counts are recomputed from projects and
// written back to the stats row.
func ResolveHomepageStats(ctx context.Context, db *gorm.DB) (string, bool, *HomepageStats, error) {
	var stats HomepageStats
	err := db.WithContext(ctx).Where("id = ?", HomepageStatsID).First(&stats).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", false, nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch homepage stats")
	}
	haveRow := err == nil

	if haveRow && stats.UseCustomText && stats.CustomStatsText != nil && *stats.CustomStatsText != "" {
		return *stats.CustomStatsText, true, &stats, nil
	}

	total, mvp, live, err := CountProjectsByStatus(ctx, db)
	if err != nil {
		return "", false, nil, err
	}

	if haveRow {
		stats.ProjectCount = total
		stats.MVPCount = mvp
		stats.LiveCount = live
		if err := db.WithContext(ctx).Save(&stats).Error; err != nil {
			return "", false, nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to refresh homepage stats")
		}
	} else {
		stats = HomepageStats{ID: HomepageStatsID, ProjectCount: total, MVPCount: mvp, LiveCount: live}
	}

	return FormatStatsString(total, mvp, live), false, &stats, nil
}

// UpsertHomepageStats creates or updates the singleton stats row in one transaction.
func UpsertHomepageStats(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, stats *HomepageStats) (*HomepageStats, error) {
	stats.ID = HomepageStatsID

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing HomepageStats
		err := tx.Where("id = ?", HomepageStatsID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(stats).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create homepage stats")
			}
		case err != nil:
			return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch homepage stats")
		default:
			if err := tx.Save(stats).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update homepage stats")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
