package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	content "github.com/sashreekm/devfolio/internal/models/content"
	"github.com/sashreekm/devfolio/pkg/utils"
)

type TimelineItemInput struct {
	Date        *time.Time `json:"date"`
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Details     *string    `json:"details"`
	Icon        *string    `json:"icon" validate:"omitempty,max=16"`
	Type        *string    `json:"type" validate:"omitempty,oneof=education project work achievement"`
}

type SkillInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Icon        *string `json:"icon" validate:"omitempty,max=16"`
	Proficiency *int    `json:"proficiency" validate:"omitempty,min=1,max=5"`
}

type SocialLinkInput struct {
	Platform string `json:"platform" validate:"required,max=50"`
	URL      string `json:"url" validate:"required,url,max=500"`
	Icon     string `json:"icon" validate:"omitempty,max=16"`
}

// ProfileInput replaces the singleton profile wholesale on PUT. A nil
// socialLinks keeps the stored set; an empty array clears it.
type ProfileInput struct {
	Name          string            `json:"name" validate:"required,max=100"`
	Title         string            `json:"title" validate:"omitempty,max=200"`
	Bio           string            `json:"bio"`
	AvatarURL     *string           `json:"avatarUrl" validate:"omitempty,url,max=500"`
	ResumeURL     *string           `json:"resumeUrl" validate:"omitempty,url,max=500"`
	HiddenMessage string            `json:"hiddenMessage" validate:"omitempty,max=500"`
	SocialLinks   []SocialLinkInput `json:"socialLinks" validate:"omitempty,dive"`
}

// ListTimeline returns all timeline items, newest date first.
func ListTimeline(c *fiber.Ctx) error {
	items, err := content.ListTimelineItems(c.Context(), DB)
	if err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to list timeline")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch timeline"})
	}
	return c.JSON(content.NewTimelineItemViews(items))
}

// CreateTimelineItem inserts a timeline item; month and year derive from date.
func CreateTimelineItem(c *fiber.Ctx) error {
	in := new(TimelineItemInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}
	if in.Date == nil || in.Title == nil || *in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date and title are required"})
	}

	item := &content.TimelineItem{
		Date:  *in.Date,
		Title: *in.Title,
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Details != nil {
		item.Details = *in.Details
	}
	if in.Icon != nil {
		item.Icon = *in.Icon
	}
	if in.Type != nil {
		item.Type = *in.Type
	}

	if err := content.CreateTimelineItem(c.Context(), Redis, DB, item); err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(content.NewTimelineItemView(item))
}

// UpdateTimelineItem applies a partial update; a new date recomputes month/year.
func UpdateTimelineItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timeline id"})
	}

	in := new(TimelineItemInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	var opts []content.TimelineOption
	if in.Date != nil {
		opts = append(opts, content.WithTimelineDate(*in.Date))
	}
	if in.Title != nil {
		opts = append(opts, content.WithTimelineTitle(*in.Title))
	}
	if in.Description != nil {
		opts = append(opts, content.WithTimelineDescription(*in.Description))
	}
	if in.Details != nil {
		opts = append(opts, content.WithTimelineDetails(*in.Details))
	}
	if in.Icon != nil {
		opts = append(opts, content.WithTimelineIcon(*in.Icon))
	}
	if in.Type != nil {
		opts = append(opts, content.WithTimelineType(*in.Type))
	}

	item, err := content.UpdateTimelineItem(c.Context(), Redis, DB, id, opts...)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(content.NewTimelineItemView(item))
}

// DeleteTimelineItem removes a timeline item; absent ids still succeed.
func DeleteTimelineItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timeline id"})
	}
	if err := content.DeleteTimelineItem(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}

// ListSkills returns skills ordered by category then insertion. With
// ?grouped=true the response is category buckets instead of a flat list.
func ListSkills(c *fiber.Ctx) error {
	skills, err := content.ListSkills(c.Context(), DB)
	if err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to list skills")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch skills"})
	}
	if c.Query("grouped") == "true" {
		return c.JSON(content.GroupSkillsByCategory(skills))
	}
	return c.JSON(content.NewSkillViews(skills))
}

// ListSkillCategories returns the distinct category names in first-seen order.
func ListSkillCategories(c *fiber.Ctx) error {
	skills, err := content.ListSkills(c.Context(), DB)
	if err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to list skill categories")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(content.DistinctCategories(skills))
}

// CreateSkill inserts a skill; proficiency defaults to 3.
func CreateSkill(c *fiber.Ctx) error {
	in := new(SkillInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}
	if in.Name == nil || *in.Name == "" || in.Category == nil || *in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and category are required"})
	}

	skill := &content.Skill{
		Name:     *in.Name,
		Category: *in.Category,
	}
	if in.Icon != nil {
		skill.Icon = *in.Icon
	}
	if in.Proficiency != nil {
		skill.Proficiency = *in.Proficiency
	}

	if err := content.CreateSkill(c.Context(), Redis, DB, skill); err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(content.NewSkillView(skill))
}

// UpdateSkill applies a partial update.
func UpdateSkill(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid skill id"})
	}

	in := new(SkillInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	var opts []content.SkillOption
	if in.Name != nil {
		opts = append(opts, content.WithSkillName(*in.Name))
	}
	if in.Category != nil {
		opts = append(opts, content.WithSkillCategory(*in.Category))
	}
	if in.Icon != nil {
		opts = append(opts, content.WithSkillIcon(*in.Icon))
	}
	if in.Proficiency != nil {
		opts = append(opts, content.WithSkillProficiency(*in.Proficiency))
	}

	skill, err := content.UpdateSkill(c.Context(), Redis, DB, id, opts...)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(content.NewSkillView(skill))
}

// DeleteSkill removes a skill; absent ids still succeed.
func DeleteSkill(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid skill id"})
	}
	if err := content.DeleteSkill(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}

// GetProfile returns the singleton profile with its social links.
func GetProfile(c *fiber.Ctx) error {
	profile, err := content.GetProfile(c.Context(), Redis, DB)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(content.NewProfileView(profile))
}

// UpsertProfile writes the singleton profile. The row is created on first use
// and replaced in place afterwards.
func UpsertProfile(c *fiber.Ctx) error {
	in := new(ProfileInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	profile := &content.Profile{
		Name:          in.Name,
		Title:         in.Title,
		Bio:           in.Bio,
		AvatarURL:     in.AvatarURL,
		ResumeURL:     in.ResumeURL,
		HiddenMessage: in.HiddenMessage,
	}
	var links []content.SocialLink
	if in.SocialLinks != nil {
		links = make([]content.SocialLink, 0, len(in.SocialLinks))
		for _, l := range in.SocialLinks {
			links = append(links, content.SocialLink{
				Platform: l.Platform,
				URL:      l.URL,
				Icon:     l.Icon,
			})
		}
	}

	saved, err := content.UpsertProfile(c.Context(), Redis, DB, profile, links)
	if err != nil {
		return utils.HandleError(c, err)
	}

	Logger.Info(c.Context()).Logs("Profile updated")
	return c.JSON(content.NewProfileView(saved))
}
