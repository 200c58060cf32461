package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sashreekm/devfolio/internal/auth"
	content "github.com/sashreekm/devfolio/internal/models/content"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/datatypes"
)

// BlogPostInput is the partial view model accepted on create and update.
type BlogPostInput struct {
	Title      *string  `json:"title" validate:"omitempty,max=200"`
	Slug       *string  `json:"slug" validate:"omitempty,max=220,slug"`
	Excerpt    *string  `json:"excerpt" validate:"omitempty,max=500"`
	Content    *string  `json:"content"`
	CoverImage *string  `json:"coverImage" validate:"omitempty,max=500"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
}

// ListBlogPosts returns posts newest-publish first, wrapped in the pagination
// envelope. Visitors only see published posts; an authenticated admin can
// request drafts too with ?admin=true. A ?slug= query resolves a single
// published post instead.
func ListBlogPosts(c *fiber.Ctx) error {
	if slug := c.Query("slug"); slug != "" {
		post, err := content.GetBlogPostBySlug(c.Context(), Redis, DB, slug)
		if err != nil {
			return utils.HandleError(c, err)
		}
		return c.JSON(content.NewBlogPostView(post))
	}

	publishedOnly := true
	if c.Query("admin") == "true" && auth.HasAdminSession(c, AuthOpts) {
		publishedOnly = false
	}
	page, limit := utils.ParsePagination(c, 10)

	posts, total, err := content.ListBlogPosts(c.Context(), DB, c.Query("tag"), publishedOnly, page, limit)
	if err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to list blog posts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch posts",
		})
	}

	return c.JSON(fiber.Map{
		"posts":      content.NewBlogPostViews(posts),
		"totalCount": total,
		"page":       page,
		"limit":      limit,
	})
}

// GetBlogPost returns a single post by id, drafts included for admins only.
func GetBlogPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	post, err := content.GetBlogPostBy(c.Context(), Redis, DB, "id = ?", []interface{}{id})
	if err != nil {
		return utils.HandleError(c, err)
	}
	if !post.IsPublished && !auth.HasAdminSession(c, AuthOpts) {
		return utils.HandleError(c, utils.NewError(utils.ErrNotFound.Code, "Post not found"))
	}
	return c.JSON(content.NewBlogPostView(post))
}

// CreateBlogPost inserts a new post. The slug is derived from the title unless
// one is supplied.
func CreateBlogPost(c *fiber.Ctx) error {
	in := new(BlogPostInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}
	if in.Title == nil || *in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	post := &content.BlogPost{Title: *in.Title}
	if in.Slug != nil {
		post.Slug = *in.Slug
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.CoverImage != nil {
		post.CoverImage = *in.CoverImage
	}
	if in.Tags != nil {
		post.Tags = datatypes.NewJSONSlice(in.Tags)
	}
	if in.Published != nil {
		post.IsPublished = *in.Published
	}

	if err := content.CreateBlogPost(c.Context(), Redis, DB, post); err != nil {
		return utils.HandleError(c, err)
	}

	Logger.Info(c.Context()).WithMeta(utils.Map{"post_id": post.ID.String(), "slug": post.Slug}).Logs("Blog post created")
	return c.Status(fiber.StatusCreated).JSON(content.NewBlogPostView(post))
}

// UpdateBlogPost applies a partial update. Publishing for the first time stamps
// the publish date; republishing keeps the original date.
func UpdateBlogPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	in := new(BlogPostInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	var opts []content.BlogPostOption
	if in.Title != nil {
		opts = append(opts, content.WithPostTitle(*in.Title))
	}
	if in.Slug != nil {
		opts = append(opts, content.WithPostSlug(*in.Slug))
	}
	if in.Excerpt != nil {
		opts = append(opts, content.WithPostExcerpt(*in.Excerpt))
	}
	if in.Content != nil {
		opts = append(opts, content.WithPostContent(*in.Content))
	}
	if in.CoverImage != nil {
		opts = append(opts, content.WithPostCoverImage(*in.CoverImage))
	}
	if in.Tags != nil {
		opts = append(opts, content.WithPostTags(in.Tags))
	}
	if in.Published != nil {
		opts = append(opts, content.WithPostPublished(*in.Published))
	}

	post, err := content.UpdateBlogPost(c.Context(), Redis, DB, id, opts...)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(content.NewBlogPostView(post))
}

// DeleteBlogPost removes a post; deleting an absent id still succeeds.
func DeleteBlogPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post id"})
	}

	if err := content.DeleteBlogPost(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}
