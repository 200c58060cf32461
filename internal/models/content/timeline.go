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

// Timeline item types.
const (
	TimelineEducation   = "education"
	TimelineProject     = "project"
	TimelineWork        = "work"
	TimelineAchievement = "achievement"
)

var TimelineTypes = []string{TimelineEducation, TimelineProject, TimelineWork, TimelineAchievement}

type TimelineItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date        time.Time `gorm:"not null;index:idx_timeline_date" json:"date" validate:"required"`
	Month       string    `gorm:"size:12" json:"month"`
	Year        string    `gorm:"size:4" json:"year"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description string    `gorm:"size:500" json:"description" validate:"omitempty,max=500"`
	Details     string    `gorm:"type:text" json:"details"`
	Icon        string    `gorm:"size:16" json:"icon"`
	Type        string    `gorm:"type:varchar(20);default:'project';index" json:"type" validate:"required,oneof=education project work achievement"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TimelineItemView mirrors the stored row; month/year are always consistent
// with date because they are recomputed on every save.
type TimelineItemView struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Month       string    `json:"month"`
	Year        string    `json:"year"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Details     string    `json:"details"`
	Icon        string    `json:"icon"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewTimelineItemView(t *TimelineItem) TimelineItemView {
	return TimelineItemView{
		ID:          t.ID.String(),
		Date:        t.Date,
		Month:       t.Month,
		Year:        t.Year,
		Title:       t.Title,
		Description: t.Description,
		Details:     t.Details,
		Icon:        t.Icon,
		Type:        t.Type,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTimelineItemViews(items []TimelineItem) []TimelineItemView {
	views := make([]TimelineItemView, 0, len(items))
	for i := range items {
		views = append(views, NewTimelineItemView(&items[i]))
	}
	return views
}

// TimelineOption configures a TimelineItem during create or update.
type TimelineOption func(*TimelineItem)

func WithTimelineDate(date time.Time) TimelineOption {
	return func(t *TimelineItem) { t.Date = date }
}

func WithTimelineTitle(title string) TimelineOption {
	return func(t *TimelineItem) { t.Title = strings.TrimSpace(title) }
}

func WithTimelineDescription(description string) TimelineOption {
	return func(t *TimelineItem) { t.Description = description }
}

func WithTimelineDetails(details string) TimelineOption {
	return func(t *TimelineItem) { t.Details = details }
}

func WithTimelineIcon(icon string) TimelineOption {
	return func(t *TimelineItem) { t.Icon = icon }
}

func WithTimelineType(itemType string) TimelineOption {
	return func(t *TimelineItem) { t.Type = itemType }
}

// DeriveMonthYear recomputes the display month/year from the item date.
func (t *TimelineItem) DeriveMonthYear() {
	t.Month = t.Date.Month().String()
	t.Year = t.Date.Format("2006")
}

// CreateTimelineItem validates and inserts one row, deriving month/year.
func CreateTimelineItem(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, item *TimelineItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" || item.Date.IsZero() {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title, date")
	}
	if item.Type == "" {
		item.Type = TimelineProject
	}
	if !utils.Contains(TimelineTypes, item.Type) {
		return utils.NewError(utils.ErrBadRequest.Code, "Invalid timeline item type: "+item.Type)
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.DeriveMonthYear()

	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create timeline item")
	}
	rclient.Del(ctx, "timeline:all")
	return nil
}

// ListTimelineItems retrieves all items ordered by date descending.
func ListTimelineItems(ctx context.Context, db *gorm.DB) ([]TimelineItem, error) {
	var items []TimelineItem
	if err := db.WithContext(ctx).Order("date desc").Find(&items).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch timeline items")
	}
	return items, nil
}

// UpdateTimelineItem applies the provided options and saves, recomputing
// month/year from the (possibly unchanged) date.
func UpdateTimelineItem(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, opts ...TimelineOption) (*TimelineItem, error) {
	var item TimelineItem
	if err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Timeline item not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch timeline item")
	}

	for _, opt := range opts {
		opt(&item)
	}
	if item.Title == "" || item.Date.IsZero() {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title, date")
	}
	if !utils.Contains(TimelineTypes, item.Type) {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Invalid timeline item type: "+item.Type)
	}
	item.DeriveMonthYear()

	if err := db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update timeline item")
	}
	rclient.Del(ctx, "timeline:all")
	return &item, nil
}

// DeleteTimelineItem removes a row. Deleting an absent id is a benign no-op.
func DeleteTimelineItem(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	if err := db.WithContext(ctx).Delete(&TimelineItem{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete timeline item")
	}
	rclient.Del(ctx, "timeline:all")
	return nil
}
