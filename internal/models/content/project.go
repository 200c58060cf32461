package content

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project statuses. Free labels with no transition rules; any update may set any value.
const (
	StatusConcept = "concept"
	StatusInDev   = "in-dev"
	StatusMVP     = "mvp"
	StatusLive    = "live"
	StatusFailed  = "failed"
)

var ProjectStatuses = []string{StatusConcept, StatusInDev, StatusMVP, StatusLive, StatusFailed}

// richText is the allow-list policy applied to author-supplied rich text before
// it is stored. The original content is never rendered unescaped downstream.
var richText = bluemonday.UGCPolicy()

type ProjectFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProjectTestimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type Project struct {
	ID              uuid.UUID                               `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string                                  `gorm:"size:200;not null;index:idx_project_title" json:"title" validate:"required,max=200"`
	Emoji           string                                  `gorm:"size:16;not null" json:"emoji" validate:"required,max=16"`
	Tagline         string                                  `gorm:"size:300" json:"tagline" validate:"omitempty,max=300"`
	Description     string                                  `gorm:"type:text" json:"description"`
	FullDescription string                                  `gorm:"column:full_description;type:text" json:"full_description"`
	Status          string                                  `gorm:"type:varchar(20);default:'concept';index" json:"status" validate:"required,oneof=concept in-dev mvp live failed"`
	Tags            datatypes.JSONSlice[string]             `gorm:"type:jsonb" json:"tags"`
	TechStack       datatypes.JSONSlice[string]             `gorm:"column:tech_stack;type:jsonb" json:"tech_stack"`
	Featured        bool                                    `gorm:"default:false;index" json:"featured"`
	DemoURL         *string                                 `gorm:"column:demo_url;size:500" json:"demo_url" validate:"omitempty,url,max=500"`
	Images          datatypes.JSONSlice[string]             `gorm:"type:jsonb" json:"images"`
	Features        datatypes.JSONSlice[ProjectFeature]     `gorm:"type:jsonb" json:"features"`
	Testimonials    datatypes.JSONSlice[ProjectTestimonial] `gorm:"type:jsonb" json:"testimonials"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProjectView is the client-facing shape of a stored project row: renamed
// fields are mapped explicitly and every array defaults to empty, never null.
type ProjectView struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Emoji           string               `json:"emoji"`
	Tagline         string               `json:"tagline"`
	Description     string               `json:"description"`
	FullDescription string               `json:"fullDescription"`
	Status          string               `json:"status"`
	Tags            []string             `json:"tags"`
	TechStack       []string             `json:"techStack"`
	Featured        bool                 `json:"featured"`
	DemoURL         *string              `json:"demoUrl"`
	Images          []string             `json:"images"`
	Features        []ProjectFeature     `json:"features"`
	Testimonials    []ProjectTestimonial `json:"testimonials"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// NewProjectView shapes a stored row into its view model. Pure and total:
// nil optional columns come out as zero values or empty sequences.
func NewProjectView(p *Project) ProjectView {
	return ProjectView{
		ID:              p.ID.String(),
		Title:           p.Title,
		Emoji:           p.Emoji,
		Tagline:         p.Tagline,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		Status:          p.Status,
		Tags:            orEmpty(p.Tags),
		TechStack:       orEmpty(p.TechStack),
		Featured:        p.Featured,
		DemoURL:         p.DemoURL,
		Images:          orEmpty(p.Images),
		Features:        orEmpty(p.Features),
		Testimonials:    orEmpty(p.Testimonials),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewProjectViews shapes a whole result set.
func NewProjectViews(projects []Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for i := range projects {
		views = append(views, NewProjectView(&projects[i]))
	}
	return views
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ProjectOption configures a Project during create or update.
type ProjectOption func(*Project)

func WithProjectTitle(title string) ProjectOption {
	return func(p *Project) { p.Title = strings.TrimSpace(title) }
}

func WithProjectEmoji(emoji string) ProjectOption {
	return func(p *Project) { p.Emoji = strings.TrimSpace(emoji) }
}

func WithProjectTagline(tagline string) ProjectOption {
	return func(p *Project) { p.Tagline = tagline }
}

func WithProjectDescription(description string) ProjectOption {
	return func(p *Project) { p.Description = description }
}

func WithProjectFullDescription(full string) ProjectOption {
	return func(p *Project) { p.FullDescription = richText.Sanitize(full) }
}

func WithProjectStatus(status string) ProjectOption {
	return func(p *Project) { p.Status = status }
}

func WithProjectTags(tags []string) ProjectOption {
	return func(p *Project) { p.Tags = datatypes.NewJSONSlice(tags) }
}

func WithProjectTechStack(stack []string) ProjectOption {
	return func(p *Project) { p.TechStack = datatypes.NewJSONSlice(stack) }
}

func WithProjectFeatured(featured bool) ProjectOption {
	return func(p *Project) { p.Featured = featured }
}

func WithProjectDemoURL(url *string) ProjectOption {
	return func(p *Project) { p.DemoURL = url }
}

func WithProjectImages(images []string) ProjectOption {
	return func(p *Project) { p.Images = datatypes.NewJSONSlice(images) }
}

func WithProjectFeatures(features []ProjectFeature) ProjectOption {
	return func(p *Project) { p.Features = datatypes.NewJSONSlice(features) }
}

func WithProjectTestimonials(testimonials []ProjectTestimonial) ProjectOption {
	return func(p *Project) { p.Testimonials = datatypes.NewJSONSlice(testimonials) }
}

// CreateProject validates required fields, fills defaults and inserts one row.
func CreateProject(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, project *Project) error {
	project.Title = strings.TrimSpace(project.Title)
	project.Emoji = strings.TrimSpace(project.Emoji)
	if project.Title == "" || project.Emoji == "" {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title, emoji")
	}

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Status == "" {
		project.Status = StatusConcept
	}
	if !utils.Contains(ProjectStatuses, project.Status) {
		return utils.NewError(utils.ErrBadRequest.Code, "Invalid project status: "+project.Status)
	}
	if project.Tags == nil {
		project.Tags = datatypes.NewJSONSlice([]string{})
	}
	if project.TechStack == nil {
		project.TechStack = datatypes.NewJSONSlice([]string{})
	}
	if project.Images == nil {
		project.Images = datatypes.NewJSONSlice([]string{})
	}
	if project.Features == nil {
		project.Features = datatypes.NewJSONSlice([]ProjectFeature{})
	}
	if project.Testimonials == nil {
		project.Testimonials = datatypes.NewJSONSlice([]ProjectTestimonial{})
	}
	project.FullDescription = richText.Sanitize(project.FullDescription)

	if err := db.WithContext(ctx).Create(project).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create project")
	}

	cacheProject(ctx, rclient, project)
	return nil
}

// GetProjectBy retrieves a single project by condition.
func GetProjectBy(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, condition string, args []interface{}) (*Project, error) {
	var project Project
	if err := db.WithContext(ctx).Where(condition, args...).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Project not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch project")
	}
	return &project, nil
}

// GetProject retrieves a project by id, via cache when warm.
func GetProject(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) (*Project, error) {
	if cached, err := rclient.Get(ctx, "project:"+id.String()).Result(); err == nil {
		var project Project
		if err := json.Unmarshal([]byte(cached), &project); err == nil {
			return &project, nil
		}
	}

	project, err := GetProjectBy(ctx, rclient, db, "id = ?", []interface{}{id})
	if err != nil {
		return nil, err
	}
	cacheProject(ctx, rclient, project)
	return project, nil
}

// ListProjects retrieves projects with optional condition, ordering and offset
// pagination. page<=0 disables pagination. The returned count reflects the
// filtered set, not the page.
func ListProjects(ctx context.Context, db *gorm.DB, condition string, args []interface{}, order string, page, limit int) ([]Project, int64, error) {
	if order == "" {
		order = "featured desc, created_at desc"
	}

	base := db.WithContext(ctx).Model(&Project{})
	if condition != "" {
		base = base.Where(condition, args...)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to count projects")
	}

	query := base.Order(order)
	if page > 0 && limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var projects []Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, 0, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch projects")
	}
	return projects, total, nil
}

// UpdateProject loads the row, applies only the provided options and saves.
// Fields not covered by an option are left unmodified in storage.
func UpdateProject(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, opts ...ProjectOption) (*Project, error) {
	project, err := GetProjectBy(ctx, rclient, db, "id = ?", []interface{}{id})
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(project)
	}
	if project.Title == "" || project.Emoji == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title, emoji")
	}
	if !utils.Contains(ProjectStatuses, project.Status) {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Invalid project status: "+project.Status)
	}

	if err := db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update project")
	}

	cacheProject(ctx, rclient, project)
	return project, nil
}

// DeleteProject removes a project row. Deleting an absent id is a benign no-op.
func DeleteProject(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	if err := db.WithContext(ctx).Delete(&Project{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete project")
	}
	rclient.Del(ctx, "project:"+id.String())
	return nil
}

// CountProjectsByStatus scans all projects and tallies total/mvp/live.
func CountProjectsByStatus(ctx context.Context, db *gorm.DB) (total, mvp, live int64, err error) {
	var statuses []string
	if err = db.WithContext(ctx).Model(&Project{}).Pluck("status", &statuses).Error; err != nil {
		err = utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to count projects")
		return
	}
	total = int64(len(statuses))
	for _, s := range statuses {
		switch s {
		case StatusMVP:
			mvp++
		case StatusLive:
			live++
		}
	}
	return
}

func cacheProject(ctx context.Context, rclient *storage.RedisClient, project *Project) {
	data, _ := json.Marshal(project)
	rclient.Set(ctx, "project:"+project.ID.String(), data, 10*time.Minute)
}
