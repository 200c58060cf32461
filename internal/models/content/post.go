package content

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"size:200;not null;index:idx_post_title" json:"title" validate:"required,max=200"`
	Slug        string                      `gorm:"size:220;not null;uniqueIndex:idx_post_slug" json:"slug" validate:"required,max=220,slug"`
	Excerpt     string                      `gorm:"size:500" json:"excerpt" validate:"omitempty,max=500"`
	Content     string                      `gorm:"type:text" json:"content"`
	CoverImage  string                      `gorm:"column:cover_image;size:500" json:"cover_image" validate:"omitempty,max=500"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	IsPublished bool                        `gorm:"column:is_published;default:false;index" json:"is_published"`
	PublishDate *time.Time                  `gorm:"column:publish_date;index:idx_post_publish_date" json:"publish_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BlogPostView is the client-facing shape of a stored post row. readTime is a
// derived display value, not a stored column.
type BlogPostView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"coverImage"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	PublishDate *time.Time `json:"publishDate"`
	ReadTime    int        `json:"readTime"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewBlogPostView(p *BlogPost) BlogPostView {
	return BlogPostView{
		ID:          p.ID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		CoverImage:  p.CoverImage,
		Tags:        orEmpty(p.Tags),
		IsPublished: p.IsPublished,
		PublishDate: p.PublishDate,
		ReadTime:    utils.ReadTime(p.Content),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewBlogPostViews(posts []BlogPost) []BlogPostView {
	views := make([]BlogPostView, 0, len(posts))
	for i := range posts {
		views = append(views, NewBlogPostView(&posts[i]))
	}
	return views
}

// BlogPostOption configures a BlogPost during create or update.
type BlogPostOption func(*BlogPost)

// WithPostTitle sets a new title. While the current slug still matches the slug
// derived from the current title, the slug follows the title; once an author
// has diverged the slug manually it is left alone.
func WithPostTitle(title string) BlogPostOption {
	return func(p *BlogPost) {
		trimmed := strings.TrimSpace(title)
		if p.Slug == "" || p.Slug == utils.Slugify(p.Title) {
			p.Slug = utils.Slugify(trimmed)
		}
		p.Title = trimmed
	}
}

func WithPostSlug(slug string) BlogPostOption {
	return func(p *BlogPost) { p.Slug = utils.Slugify(slug) }
}

func WithPostExcerpt(excerpt string) BlogPostOption {
	return func(p *BlogPost) { p.Excerpt = excerpt }
}

func WithPostContent(content string) BlogPostOption {
	return func(p *BlogPost) { p.Content = richText.Sanitize(content) }
}

func WithPostCoverImage(coverImage string) BlogPostOption {
	return func(p *BlogPost) { p.CoverImage = coverImage }
}

func WithPostTags(tags []string) BlogPostOption {
	return func(p *BlogPost) { p.Tags = datatypes.NewJSONSlice(tags) }
}

// WithPostPublished toggles publication. The publish date is set the first time
// a post becomes published and never overwritten after that.
func WithPostPublished(published bool) BlogPostOption {
	return func(p *BlogPost) {
		p.IsPublished = published
		if published && p.PublishDate == nil {
			now := time.Now()
			p.PublishDate = &now
		}
	}
}

// CreateBlogPost validates, derives the slug when absent and inserts one row.
func CreateBlogPost(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, post *BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title")
	}
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	} else {
		post.Slug = utils.Slugify(post.Slug)
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.Tags == nil {
		post.Tags = datatypes.NewJSONSlice([]string{})
	}
	post.Content = richText.Sanitize(post.Content)
	if post.IsPublished && post.PublishDate == nil {
		now := time.Now()
		post.PublishDate = &now
	}

	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to create blog post")
	}

	cachePost(ctx, rclient, post)
	return nil
}

// GetBlogPostBy retrieves a single post by condition.
func GetBlogPostBy(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, condition string, args []interface{}) (*BlogPost, error) {
	var post BlogPost
	if err := db.WithContext(ctx).Where(condition, args...).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewError(utils.ErrNotFound.Code, "Blog post not found")
		}
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch blog post")
	}
	return &post, nil
}

// GetBlogPostBySlug retrieves a published post by slug, via cache when warm.
func GetBlogPostBySlug(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, slug string) (*BlogPost, error) {
	if cached, err := rclient.Get(ctx, "post:slug:"+slug).Result(); err == nil {
		var post BlogPost
		if err := json.Unmarshal([]byte(cached), &post); err == nil && post.IsPublished {
			return &post, nil
		}
	}

	post, err := GetBlogPostBy(ctx, rclient, db, "slug = ? AND is_published = ?", []interface{}{slug, true})
	if err != nil {
		return nil, err
	}
	cachePost(ctx, rclient, post)
	return post, nil
}

// ListBlogPosts retrieves posts ordered by publish date descending, with an
// optional tag filter and offset pagination. publishedOnly hides drafts.
func ListBlogPosts(ctx context.Context, db *gorm.DB, tag string, publishedOnly bool, page, limit int) ([]BlogPost, int64, error) {
	base := db.WithContext(ctx).Model(&BlogPost{})
	if publishedOnly {
		base = base.Where("is_published = ?", true)
	}
	if tag != "" {
		tagJSON, _ := json.Marshal([]string{tag})
		base = base.Where("tags @> ?", string(tagJSON))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to count blog posts")
	}

	query := base.Order("publish_date desc NULLS LAST, created_at desc")
	if page > 0 && limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var posts []BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to fetch blog posts")
	}
	return posts, total, nil
}

// UpdateBlogPost loads the row, applies only the provided options and saves.
func UpdateBlogPost(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID, opts ...BlogPostOption) (*BlogPost, error) {
	post, err := GetBlogPostBy(ctx, rclient, db, "id = ?", []interface{}{id})
	if err != nil {
		return nil, err
	}

	oldSlug := post.Slug
	wasPublished := post.IsPublished
	for _, opt := range opts {
		opt(post)
	}
	if post.Title == "" {
		return nil, utils.NewError(utils.ErrBadRequest.Code, "Required fields missing: title")
	}
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}

	if err := db.WithContext(ctx).Save(post).Error; err != nil {
		return nil, utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to update blog post")
	}

	if keys := staleSlugKeys(oldSlug, wasPublished, post); len(keys) > 0 {
		rclient.Del(ctx, keys...)
	}
	cachePost(ctx, rclient, post)
	return post, nil
}

// staleSlugKeys lists the slug cache entries an update invalidated: the old
// slug when it changed, and the current slug when the post left publication.
// Without the latter an unpublished post would stay publicly readable by slug
// until the cache entry expired.
func staleSlugKeys(oldSlug string, wasPublished bool, post *BlogPost) []string {
	var keys []string
	if oldSlug != post.Slug {
		keys = append(keys, "post:slug:"+oldSlug)
	}
	if wasPublished && !post.IsPublished {
		keys = append(keys, "post:slug:"+post.Slug)
	}
	return keys
}

// DeleteBlogPost removes a post row. Deleting an absent id is a benign no-op.
func DeleteBlogPost(ctx context.Context, rclient *storage.RedisClient, db *gorm.DB, id uuid.UUID) error {
	post, err := GetBlogPostBy(ctx, rclient, db, "id = ?", []interface{}{id})
	if err != nil {
		if appErr, ok := err.(*utils.CustomError); ok && appErr.Code == utils.ErrNotFound.Code {
			return nil
		}
		return err
	}

	if err := db.WithContext(ctx).Delete(&BlogPost{}, "id = ?", id).Error; err != nil {
		return utils.WrapError(err, utils.ErrInternalServerError.Code, "Failed to delete blog post")
	}
	rclient.Del(ctx, "post:"+id.String(), "post:slug:"+post.Slug)
	return nil
}

func cachePost(ctx context.Context, rclient *storage.RedisClient, post *BlogPost) {
	data, _ := json.Marshal(post)
	rclient.Set(ctx, "post:"+post.ID.String(), data, 10*time.Minute)
	if post.IsPublished {
		rclient.Set(ctx, "post:slug:"+post.Slug, data, 10*time.Minute)
	}
}
