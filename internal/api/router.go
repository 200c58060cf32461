package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	v1 "github.com/sashreekm/devfolio/internal/api/v1"
	"github.com/sashreekm/devfolio/internal/auth"
	"github.com/sashreekm/devfolio/internal/config"
	"github.com/sashreekm/devfolio/pkg/logger"
	storage "github.com/sashreekm/devfolio/pkg/redis"
	"gorm.io/gorm"
)

// NewRoutes installs the middleware stack and the full API surface.
func NewRoutes(ctx context.Context, app *fiber.App, cfg *config.Config, db *gorm.DB, log *logger.Logger, rclient *storage.RedisClient) {
	app.Use(
		logger.SetupLogger(log),
		recover.New(),
		cors.New(
			cors.Config{
				AllowOrigins:     cfg.CORSOrigins,
				AllowCredentials: true,
				AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			},
		),
		compress.New(
			compress.Config{
				Level: compress.LevelBestCompression,
			},
		),
		limiter.New(
			limiter.Config{
				Expiration: 1 * time.Minute,
				Max:        120,
				KeyGenerator: func(c *fiber.Ctx) string {
					return c.IP()
				},
			},
		),
	)
	app.Use(log.Middleware())

	v1.Setup(db, rclient, log, cfg)
	admin := auth.RequireAdmin(v1.AuthOpts)

	api := app.Group("/api/v1")

	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Expiration: 1 * time.Minute,
		Max:        5,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), v1.Login)
	authGroup.Post("/refresh", v1.Refresh)
	authGroup.Post("/logout", v1.Logout)

	projects := api.Group("/projects")
	projects.Get("/", v1.ListProjects)
	projects.Get("/stats", v1.ProjectStats)
	projects.Get("/:id", v1.GetProject)
	projects.Post("/", admin, v1.CreateProject)
	projects.Patch("/:id", admin, v1.UpdateProject)
	projects.Delete("/:id", admin, v1.DeleteProject)

	blog := api.Group("/blog")
	blog.Get("/", v1.ListBlogPosts)
	blog.Get("/:id", v1.GetBlogPost)
	blog.Post("/", admin, v1.CreateBlogPost)
	blog.Patch("/:id", admin, v1.UpdateBlogPost)
	blog.Delete("/:id", admin, v1.DeleteBlogPost)

	about := api.Group("/about")
	about.Get("/timeline", v1.ListTimeline)
	about.Post("/timeline", admin, v1.CreateTimelineItem)
	about.Patch("/timeline/:id", admin, v1.UpdateTimelineItem)
	about.Delete("/timeline/:id", admin, v1.DeleteTimelineItem)
	about.Get("/skills", v1.ListSkills)
	about.Get("/skills/categories", v1.ListSkillCategories)
	about.Post("/skills", admin, v1.CreateSkill)
	about.Patch("/skills/:id", admin, v1.UpdateSkill)
	about.Delete("/skills/:id", admin, v1.DeleteSkill)
	about.Get("/profile", v1.GetProfile)
	about.Put("/profile", admin, v1.UpsertProfile)

	homepage := api.Group("/homepage")
	homepage.Get("/content", v1.GetHomepageContent)
	homepage.Put("/content", admin, v1.UpsertHomepageContent)
	homepage.Get("/stats", v1.GetHomepageStats)
	homepage.Put("/stats", admin, v1.UpsertHomepageStats)
	homepage.Get("/principles", v1.ListPrinciples)
	homepage.Post("/principles", admin, v1.CreatePrinciple)
	homepage.Patch("/principles/:id", admin, v1.UpdatePrinciple)
	homepage.Delete("/principles/:id", admin, v1.DeletePrinciple)

	collaborate := api.Group("/collaborate")
	collaborate.Get("/", v1.GetCollaboratePage)
	collaborate.Post("/", limiter.New(limiter.Config{
		Expiration: 1 * time.Minute,
		Max:        5,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), v1.CreateInquiry)
	collaborate.Get("/looking-for", v1.ListLookingFor)
	collaborate.Post("/looking-for", admin, v1.CreateLookingFor)
	collaborate.Patch("/looking-for/:id", admin, v1.UpdateLookingFor)
	collaborate.Delete("/looking-for/:id", admin, v1.DeleteLookingFor)
	collaborate.Get("/testimonials", v1.ListTestimonials)
	collaborate.Post("/testimonials", admin, v1.CreateTestimonial)
	collaborate.Patch("/testimonials/:id", admin, v1.UpdateTestimonial)
	collaborate.Delete("/testimonials/:id", admin, v1.DeleteTestimonial)
	collaborate.Get("/calendar", v1.GetCalendarSettings)
	collaborate.Put("/calendar", admin, v1.UpsertCalendarSettings)
	collaborate.Get("/inquiries", admin, v1.ListInquiries)
	collaborate.Patch("/inquiries/:id", admin, v1.UpdateInquiry)
	collaborate.Delete("/inquiries/:id", admin, v1.DeleteInquiry)
}
