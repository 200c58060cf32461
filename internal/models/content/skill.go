package content

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/gorm"
)

// Skill categories are open free text, deduplicated for display rather than
// constrained to an enum.
type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Category    string    `gorm:"size:100;not null;index:idx_skill_category" json:"category" validate:"required,max=100"`
	Icon        string    `gorm:"size:16" json:"icon"`
	Proficiency int       `gorm:"default:3" json:"proficiency" validate:"proficiency"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type SkillView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Proficiency int    `json:"proficiency"`
}

func NewSkillView(s *Skill) SkillView {
	return SkillView{
		ID:          s.ID.String(),
		Name:        s.Name,
		Category:    s.Category,
		Icon:        s.Icon,
		Proficiency: s.Proficiency,
	}
}

func NewSkillViews(skills []Skill) []SkillView {
	views := make([]SkillView, 0, len(skills))
	for i := range skills {
		views = append(views, NewSkillView(&skills[i]))
	}
	return views
}

// SkillGroup is one category bucket with its skills in stored order and the
// first-seen icon kept for display.
type SkillGroup struct {
	Category string      `json:"category"`
	Icon     string      `json:"icon"`
	Skills   []SkillView `json:"skills"`
}

// GroupSkillsByCategory buckets a flat skill list by category, preserving the
// input order inside each bucket and the category first-seen order overall.
func GroupSkillsByCategory(skills []Skill) []SkillGroup {
	index := make(map[string]int)
	groups := make([]SkillGroup, 0)
	for i := range skills {
		s := &skills[i]
		at, ok := index[s.Category]
		if !ok {
			at = len(groups)
			index[s.Category] = at
			groups = append(groups, SkillGroup{Category: s.Category, Icon: s.Icon})
		}
		groups[at].Skills = append(groups[at].Skills, NewSkillView(s))
	}
	return groups
}

// DistinctCategories returns the deduplicated category list in first-seen
// order, for populating selection widgets.
func DistinctCategories(skills []Skill) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for i := range skills {
		if !seen[skills[i].Category] {
			seen[skills[i].Category] = true
			categories = append(categories, skills[i].Category)
		}
	}
	return categories
}

// SkillOption configures a Skill during create or update.
type SkillOption func(*Skill)

func WithSkillName(name string) SkillOption {
	return func(s *Skill) { s.Name = strings.TrimSpace(name) }
}

func WithSkillCategory(category string) SkillOption {
	return func(s *Skill) { s.Category = strings.TrimSpace(category) }
}

func WithSkillIcon(icon string) SkillOption {
	return func(s *Skill) { s.Icon = icon }
}

func WithSkillProficiency(proficiency int) SkillOption {
	return func(s *Skill) { s.Proficiency = proficiency }
}

// CreateSkill validates and inserts one row.
func CreateSkill(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, skill *Skill) error {
	skill.Name = strings.TrimSpace(skill.Name)
	skill.Category = strings.TrimSpace(skill.Category)
	if skill.Name == "" || skill.Category == "" {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: name, category")
	}
	if skill.Proficiency == 0 {
		skill.Proficiency = 3
	}
	if skill.Proficiency < 1 || skill.Proficiency > 5 {
		return utils.NewError(utils.ErrBadRequest.Code, "Proficiency must be between 1 and 5")
	}
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}

	if err := db.WithContext(ctx).Create(skill).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create skill")
	}
	rclient.Del(ctx, "skills:all")
	return nil
}

// ListSkills retrieves all skills ordered by category asc, then insertion order.
func ListSkills(ctx context.Context, db *gorm.DB) ([]Skill, error) {
	var skills []Skill
	if err := db.WithContext(ctx).Order("category asc, created_at asc").Find(&skills).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch skills")
	}
	return skills, nil
}

// UpdateSkill applies the provided options and saves.
func UpdateSkill(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, opts ...SkillOption) (*Skill, error) {
	var skill Skill
	if err := db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Skill not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch skill")
	}

	for _, opt := range opts {
		opt(&skill)
	}
	if skill.Name == "" || skill.Category == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: name, category")
	}
	if skill.Proficiency < 1 || skill.Proficiency > 5 {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Proficiency must be between 1 and 5")
	}

	if err := db.WithContext(ctx).Save(&skill).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update skill")
	}
	rclient.Del(ctx, "skills:all")
	return &skill, nil
}

// DeleteSkill removes a row. Deleting an absent id is a benign no-op.
func DeleteSkill(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	if err := db.WithContext(ctx).Delete(&Skill{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete skill")
	}
	rclient.Del(ctx, "skills:all")
	return nil
}
