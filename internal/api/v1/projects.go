package v1

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	content "github.com/sashreekm/devfolio/internal/models/content"
	"github.com/sashreekm/devfolio/pkg/utils"
	"gorm.io/datatypes"
)

// ProjectInput is the partial view model accepted on create and update.
// Pointer fields distinguish "omitted" from "set to zero" for partial writes.
type ProjectInput struct {
	ID              *string                      `json:"id"`
	Title           *string                      `json:"title"`
	Emoji           *string                      `json:"emoji"`
	Tagline         *string                      `json:"tagline"`
	Description     *string                      `json:"description"`
	FullDescription *string                      `json:"fullDescription"`
	Status          *string                      `json:"status" validate:"omitempty,oneof=concept in-dev mvp live failed"`
	Tags            []string                     `json:"tags"`
	TechStack       []string                     `json:"techStack"`
	Featured        *bool                        `json:"featured"`
	DemoURL         *string                      `json:"demoUrl" validate:"omitempty,url"`
	Images          []string                     `json:"images"`
	Features        []content.ProjectFeature     `json:"features"`
	Testimonials    []content.ProjectTestimonial `json:"testimonials"`
}

// ListProjects returns all projects, featured first then newest. Optional
// filters: status, tag (contains), featured. With page/limit present the
// response switches to the pagination envelope.
func ListProjects(c *fiber.Ctx) error {
	cond, args := "", []interface{}{}
	and := func(clause string, vals ...interface{}) {
		if cond != "" {
			cond += " AND "
		}
		cond += clause
		args = append(args, vals...)
	}

	if status := c.Query("status"); status != "" {
		and("status = ?", status)
	}
	if tag := c.Query("tag"); tag != "" {
		tagJSON, _ := json.Marshal([]string{tag})
		and("tags @> ?", string(tagJSON))
	}
	if featured := c.Query("featured"); featured != "" {
		and("featured = ?", featured == "true")
	}

	paginated := c.Query("page") != "" || c.Query("limit") != ""
	page, limit := 0, 0
	if paginated {
		page, limit = utils.ParsePagination(c, 20)
	}

	projects, total, err := content.ListProjects(c.Context(), DB, cond, args, "", page, limit)
	if err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to list projects")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch projects",
		})
	}

	views := content.NewProjectViews(projects)
	if paginated {
		return c.JSON(fiber.Map{
			"items":      views,
			"totalCount": total,
			"page":       page,
			"limit":      limit,
		})
	}
	return c.JSON(views)
}

// ProjectStats aggregates project counts by status into a display string.
func ProjectStats(c *fiber.Ctx) error {
	total, mvp, live, err := content.CountProjectsByStatus(c.Context(), DB)
	if err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to compute project stats")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch project stats",
		})
	}
	return c.JSON(fiber.Map{
		"statsString": content.FormatStatsString(total, mvp, live),
		"stats": fiber.Map{
			"total": total,
			"mvp":   mvp,
			"live":  live,
		},
	})
}

// GetProject returns a single shaped project or a distinct not-found.
func GetProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	project, err := content.GetProject(c.Context(), Redis, DB, id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(content.NewProjectView(project))
}

// CreateProject inserts a new project. Title and emoji are required; all other
// fields default.
func CreateProject(c *fiber.Ctx) error {
	in := new(ProjectInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		Logger.Warn(c.Context()).WithFields("error", err).Logs(fmt.Sprintf("Failed to parse project body: %v", err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}
	if in.Title == nil || in.Emoji == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and emoji are required"})
	}

	project := &content.Project{
		Title: *in.Title,
		Emoji: *in.Emoji,
	}
	if in.ID != nil {
		id, err := uuid.Parse(*in.ID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
		}
		project.ID = id
	}
	if in.Tagline != nil {
		project.Tagline = *in.Tagline
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.FullDescription != nil {
		project.FullDescription = *in.FullDescription
	}
	if in.Status != nil {
		project.Status = *in.Status
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}
	project.DemoURL = in.DemoURL
	if in.Tags != nil {
		project.Tags = datatypes.NewJSONSlice(in.Tags)
	}
	if in.TechStack != nil {
		project.TechStack = datatypes.NewJSONSlice(in.TechStack)
	}
	if in.Images != nil {
		project.Images = datatypes.NewJSONSlice(in.Images)
	}
	if in.Features != nil {
		project.Features = datatypes.NewJSONSlice(in.Features)
	}
	if in.Testimonials != nil {
		project.Testimonials = datatypes.NewJSONSlice(in.Testimonials)
	}

	if err := content.CreateProject(c.Context(), Redis, DB, project); err != nil {
		return utils.HandleError(c, err)
	}

	Logger.Info(c.Context()).WithMeta(utils.Map{"project_id": project.ID.String()}).Logs("Project created")
	return c.Status(fiber.StatusCreated).JSON(content.NewProjectView(project))
}

// UpdateProject applies a partial update; omitted fields stay untouched.
func UpdateProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	in := new(ProjectInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	var opts []content.ProjectOption
	if in.Title != nil {
		opts = append(opts, content.WithProjectTitle(*in.Title))
	}
	if in.Emoji != nil {
		opts = append(opts, content.WithProjectEmoji(*in.Emoji))
	}
	if in.Tagline != nil {
		opts = append(opts, content.WithProjectTagline(*in.Tagline))
	}
	if in.Description != nil {
		opts = append(opts, content.WithProjectDescription(*in.Description))
	}
	if in.FullDescription != nil {
		opts = append(opts, content.WithProjectFullDescription(*in.FullDescription))
	}
	if in.Status != nil {
		opts = append(opts, content.WithProjectStatus(*in.Status))
	}
	if in.Tags != nil {
		opts = append(opts, content.WithProjectTags(in.Tags))
	}
	if in.TechStack != nil {
		opts = append(opts, content.WithProjectTechStack(in.TechStack))
	}
	if in.Featured != nil {
		opts = append(opts, content.WithProjectFeatured(*in.Featured))
	}
	if in.DemoURL != nil {
		opts = append(opts, content.WithProjectDemoURL(in.DemoURL))
	}
	if in.Images != nil {
		opts = append(opts, content.WithProjectImages(in.Images))
	}
	if in.Features != nil {
		opts = append(opts, content.WithProjectFeatures(in.Features))
	}
	if in.Testimonials != nil {
		opts = append(opts, content.WithProjectTestimonials(in.Testimonials))
	}

	project, err := content.UpdateProject(c.Context(), Redis, DB, id, opts...)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(content.NewProjectView(project))
}

// DeleteProject removes a project; deleting an absent id still succeeds.
func DeleteProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	if err := content.DeleteProject(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}
