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

// CalendarSettingsID is the fixed identifier of the singleton calendar row.
var CalendarSettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000004")

// Color themes for looking-for cards.
const (
	ThemeNeonCyan   = "neon-cyan"
	ThemeNeonViolet = "neon-violet"
	ThemeNeonLime   = "neon-lime"
)

var ColorThemes = []string{ThemeNeonCyan, ThemeNeonViolet, ThemeNeonLime}

// Inquiry types and statuses.
const (
	InquiryDeveloper = "developer"
	InquiryInvestor  = "investor"

	InquiryStatusNew       = "new"
	InquiryStatusReviewed  = "reviewed"
	InquiryStatusContacted = "contacted"
	InquiryStatusArchived  = "archived"
)

var (
	InquiryTypes    = []string{InquiryDeveloper, InquiryInvestor}
	InquiryStatuses = []string{InquiryStatusNew, InquiryStatusReviewed, InquiryStatusContacted, InquiryStatusArchived}
)

type CollaborateLookingFor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description string    `gorm:"size:500" json:"description" validate:"omitempty,max=500"`
	ColorTheme  string    `gorm:"column:color_theme;type:varchar(20);default:'neon-cyan'" json:"color_theme" validate:"required,oneof=neon-cyan neon-violet neon-lime"`
	SortOrder   int       `gorm:"column:sort_order;default:0;index" json:"sort_order"`
	IsActive    bool      `gorm:"column:is_active;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CollaborateTestimonial struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Quote          string    `gorm:"type:text;not null" json:"quote" validate:"required"`
	AuthorName     string    `gorm:"column:author_name;size:100;not null" json:"author_name" validate:"required,max=100"`
	AuthorTitle    *string   `gorm:"column:author_title;size:100" json:"author_title"`
	AuthorCompany  *string   `gorm:"column:author_company;size:100" json:"author_company"`
	AuthorImageURL *string   `gorm:"column:author_image_url;size:500" json:"author_image_url" validate:"omitempty,url,max=500"`
	IsFeatured     bool      `gorm:"column:is_featured;default:false;index" json:"is_featured"`
	SortOrder      int       `gorm:"column:sort_order;default:0;index" json:"sort_order"`
	IsActive       bool      `gorm:"column:is_active;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CollaborateCalendarSettings struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CalendlyURL     string    `gorm:"column:calendly_url;size:500;not null" json:"calendly_url" validate:"required,url,max=500"`
	MeetingDuration int       `gorm:"column:meeting_duration;default:15" json:"meeting_duration"`
	Description     *string   `gorm:"size:500" json:"description"`
	IsActive        bool      `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CollaborateInquiry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InquiryType    string    `gorm:"column:inquiry_type;type:varchar(20);not null;index" json:"inquiry_type" validate:"required,oneof=developer investor"`
	Name           string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email          string    `gorm:"size:200;not null" json:"email" validate:"required,email,max=200"`
	Company        *string   `gorm:"size:200" json:"company"`
	AreaOfInterest *string   `gorm:"column:area_of_interest;size:200" json:"area_of_interest"`
	Message        string    `gorm:"type:text;not null" json:"message" validate:"required"`
	Status         string    `gorm:"type:varchar(20);default:'new';index" json:"status" validate:"required,oneof=new reviewed contacted archived"`
	Notes          *string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// --- Looking for ---

type LookingForOption func(*CollaborateLookingFor)

func WithLookingForTitle(title string) LookingForOption {
	return func(l *CollaborateLookingFor) { l.Title = strings.TrimSpace(title) }
}

func WithLookingForDescription(description string) LookingForOption {
	return func(l *CollaborateLookingFor) { l.Description = description }
}

func WithLookingForColorTheme(theme string) LookingForOption {
	return func(l *CollaborateLookingFor) { l.ColorTheme = theme }
}

func WithLookingForSortOrder(sortOrder int) LookingForOption {
	return func(l *CollaborateLookingFor) { l.SortOrder = sortOrder }
}

func WithLookingForActive(active bool) LookingForOption {
	return func(l *CollaborateLookingFor) { l.IsActive = active }
}

func CreateLookingFor(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, item *CollaborateLookingFor) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title")
	}
	if item.ColorTheme == "" {
		item.ColorTheme = ThemeNeonCyan
	}
	if !utils.Contains(ColorThemes, item.ColorTheme) {
		return utils.NewError(utils.ErrBadRequest.Code, "Invalid color theme: "+item.ColorTheme)
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create looking-for item")
	}
	return nil
}

func ListLookingFor(ctx context.Context, db *gorm.DB, activeOnly bool) ([]CollaborateLookingFor, error) {
	query := db.WithContext(ctx).Order("sort_order asc, created_at asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var items []CollaborateLookingFor
	if err := query.Find(&items).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch looking-for items")
	}
	return items, nil
}

func UpdateLookingFor(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, opts ...LookingForOption) (*CollaborateLookingFor, error) {
	var item CollaborateLookingFor
	if err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Looking-for item not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch looking-for item")
	}

	for _, opt := range opts {
		opt(&item)
	}
	if item.Title == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title")
	}
	if !utils.Contains(ColorThemes, item.ColorTheme) {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Invalid color theme: "+item.ColorTheme)
	}

	if err := db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update looking-for item")
	}
	return &item, nil
}

func DeleteLookingFor(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	if err := db.WithContext(ctx).Delete(&CollaborateLookingFor{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete looking-for item")
	}
	return nil
}

// --- Testimonials ---

type TestimonialOption func(*CollaborateTestimonial)

func WithTestimonialQuote(quote string) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.Quote = strings.TrimSpace(quote) }
}

func WithTestimonialAuthorName(name string) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.AuthorName = strings.TrimSpace(name) }
}

func WithTestimonialAuthorTitle(title *string) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.AuthorTitle = title }
}

func WithTestimonialAuthorCompany(company *string) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.AuthorCompany = company }
}

func WithTestimonialAuthorImageURL(url *string) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.AuthorImageURL = url }
}

func WithTestimonialFeatured(featured bool) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.IsFeatured = featured }
}

func WithTestimonialSortOrder(sortOrder int) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.SortOrder = sortOrder }
}

func WithTestimonialActive(active bool) TestimonialOption {
	return func(t *CollaborateTestimonial) { t.IsActive = active }
}

func CreateTestimonial(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, testimonial *CollaborateTestimonial) error {
	testimonial.Quote = strings.TrimSpace(testimonial.Quote)
	testimonial.AuthorName = strings.TrimSpace(testimonial.AuthorName)
	if testimonial.Quote == "" || testimonial.AuthorName == "" {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: quote, author_name")
	}
	if testimonial.ID == uuid.Nil {
		testimonial.ID = uuid.New()
	}
	if err := db.WithContext(ctx).Create(testimonial).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create testimonial")
	}
	return nil
}

// ListTestimonials orders featured first, then by manual sort order.
func ListTestimonials(ctx context.Context, db *gorm.DB, activeOnly bool) ([]CollaborateTestimonial, error) {
	query := db.WithContext(ctx).Order("is_featured desc, sort_order asc, created_at asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var testimonials []CollaborateTestimonial
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch testimonials")
	}
	return testimonials, nil
}

func UpdateTestimonial(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, opts ...TestimonialOption) (*CollaborateTestimonial, error) {
	var testimonial CollaborateTestimonial
	if err := db.WithContext(ctx).Where("id = ?", id).First(&testimonial).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Testimonial not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch testimonial")
	}

	for _, opt := range opts {
		opt(&testimonial)
	}
	if testimonial.Quote == "" || testimonial.AuthorName == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: quote, author_name")
	}

	if err := db.WithContext(ctx).Save(&testimonial).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update testimonial")
	}
	return &testimonial, nil
}

func DeleteTestimonial(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	if err := db.WithContext(ctx).Delete(&CollaborateTestimonial{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete testimonial")
	}
	return nil
}

// --- Calendar settings ---

// GetCalendarSettings fetches the singleton calendar row.
func GetCalendarSettings(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB) (*CollaborateCalendarSettings, error) {
	if cached, err := rclient.Get(ctx, "collaborate:calendar").Result(); err == nil {
		var settings CollaborateCalendarSettings
		if err := json.Unmarshal([]byte(cached), &settings); err == nil {
			return &settings, nil
		}
	}

	var settings CollaborateCalendarSettings
	if err := db.WithContext(ctx).Where("id = ?", CalendarSettingsID).First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Calendar settings not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch calendar settings")
	}

	data, _ := json.Marshal(&settings)
	rclient.Set(ctx, "collaborate:calendar", data, 10*time.Minute)
	return &settings, nil
}

// UpsertCalendarSettings creates or updates the singleton row in one
// transaction. The fixed id makes a deactivate-then-insert swap unnecessary.
func UpsertCalendarSettings(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, settings *CollaborateCalendarSettings) (*CollaborateCalendarSettings, error) {
	if strings.TrimSpace(settings.CalendlyURL) == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: calendly_url")
	}
	settings.ID = CalendarSettingsID
	settings.IsActive = true
	if settings.MeetingDuration <= 0 {
		settings.MeetingDuration = 15
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing CollaborateCalendarSettings
		err := tx.Where("id = ?", CalendarSettingsID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(settings).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create calendar settings")
			}
		case err != nil:
			return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch calendar settings")
		default:
			settings.CreatedAt = existing.CreatedAt
			if err := tx.Save(settings).Error; err != nil {
				return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update calendar settings")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	data, _ := json.Marshal(settings)
	rclient.Set(ctx, "collaborate:calendar", data, 10*time.Minute)
	return settings, nil
}

// --- Inquiries ---

// CreateInquiry validates the public submission and inserts one row with
// status "new".
func CreateInquiry(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, inquiry *CollaborateInquiry) error {
	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.ToLower(strings.TrimSpace(inquiry.Email))
	inquiry.Message = strings.TrimSpace(inquiry.Message)
	if inquiry.InquiryType == "" || inquiry.Name == "" || inquiry.Email == "" || inquiry.Message == "" {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: inquiry_type, name, email, message")
	}
	if !utils.Contains(InquiryTypes, inquiry.InquiryType) {
		return utils.NewError(utils.ErrBadRequest.Code, "Invalid inquiry type: "+inquiry.InquiryType)
	}
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	inquiry.Status = InquiryStatusNew
	inquiry.Notes = nil

	if err := db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create inquiry")
	}
	return nil
}

// ListInquiries retrieves inquiries newest first with optional status/type
// filters and offset pagination.
func ListInquiries(ctx context.Context, db *gorm.DB, status, inquiryType string, page, limit int) ([]CollaborateInquiry, int64, error) {
	base := db.WithContext(ctx).Model(&CollaborateInquiry{})
	if status != "" {
		base = base.Where("status = ?", status)
	}
	if inquiryType != "" {
		base = base.Where("inquiry_type = ?", inquiryType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to count inquiries")
	}

	query := base.Order("created_at desc")
	if page > 0 && limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var inquiries []CollaborateInquiry
	if err := query.Find(&inquiries).Error; err != nil {
		return nil, 0, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch inquiries")
	}
	return inquiries, total, nil
}

// UpdateInquiry mutates status and notes only; the submission itself is
// immutable once received.
func UpdateInquiry(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, status *string, notes *string) (*CollaborateInquiry, error) {
	var inquiry CollaborateInquiry
	if err := db.WithContext(ctx).Where("id = ?", id).First(&inquiry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Inquiry not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch inquiry")
	}

	if status != nil {
		if !utils.Contains(InquiryStatuses, *status) {
			return nil, utils.NewError(utils.ErrBadRequest.Code, "Invalid inquiry status: "+*status)
		}
		inquiry.Status = *status
	}
	if notes != nil {
		inquiry.Notes = notes
	}

	if err := db.WithContext(ctx).Save(&inquiry).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update inquiry")
	}
	return &inquiry, nil
}

// DeleteInquiry removes a row. Deleting an absent id is a benign no-op.
func DeleteInquiry(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	if err := db.WithContext(ctx).Delete(&CollaborateInquiry{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete inquiry")
	}
	return nil
}
