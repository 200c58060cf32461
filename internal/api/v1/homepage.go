package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sashreekm/devfolio/internal/auth"
	content "github.com/sashreekm/devfolio/internal/models/content"
	"github.com/sashreekm/devfolio/pkg/utils"
)

// HomepageContentInput replaces the singleton content row on PUT.
type HomepageContentInput struct {
	HeroHeadline         string `json:"hero_headline"`
	HeroHighlightWord    string `json:"hero_highlight_word" validate:"omitempty,max=50"`
	HeroIntro            string `json:"hero_intro"`
	HeroPrimaryCTAText   string `json:"hero_primary_cta_text" validate:"omitempty,max=100"`
	HeroPrimaryCTAURL    string `json:"hero_primary_cta_url" validate:"omitempty,max=500"`
	HeroSecondaryCTAText string `json:"hero_secondary_cta_text" validate:"omitempty,max=100"`
	HeroSecondaryCTAURL  string `json:"hero_secondary_cta_url" validate:"omitempty,max=500"`
	HeroScrollText       string `json:"hero_scroll_text" validate:"omitempty,max=100"`

	WhyBuildHeadline string `json:"why_build_headline"`
	WhyBuildIntro    string `json:"why_build_intro"`
	WhyBuildQuote    string `json:"why_build_quote"`

	ContactEmail       string `json:"contact_email" validate:"omitempty,email,max=200"`
	ContactPhone       string `json:"contact_phone" validate:"omitempty,max=50"`
	ContactLocation    string `json:"contact_location" validate:"omitempty,max=200"`
	ContactGithubURL   string `json:"contact_github_url" validate:"omitempty,url,max=500"`
	ContactLinkedinURL string `json:"contact_linkedin_url" validate:"omitempty,url,max=500"`
	ContactTwitterURL  string `json:"contact_twitter_url" validate:"omitempty,url,max=500"`
}

type PrincipleInput struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IconName    *string `json:"icon_name" validate:"omitempty,max=50"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// HomepageStatsInput writes the singleton stats row.
type HomepageStatsInput struct {
	CustomStatsText *string `json:"custom_stats_text" validate:"omitempty,max=300"`
	UseCustomText   *bool   `json:"use_custom_text"`
}

// GetHomepageContent returns the hero/why-build/contact copy. A site that has
// never been configured gets an empty object rather than a 404.
func GetHomepageContent(c *fiber.Ctx) error {
	hc, err := content.GetHomepageContent(c.Context(), Redis, DB)
	if err != nil {
		var appErr *utils.CustomError
		if utils.As(err, &appErr) && appErr.Code == fiber.StatusNotFound {
			return c.JSON(fiber.Map{})
		}
		return utils.HandleError(c, err)
	}
	return c.JSON(hc)
}

// UpsertHomepageContent replaces the singleton homepage copy.
func UpsertHomepageContent(c *fiber.Ctx) error {
	in := new(HomepageContentInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	hc := &content.HomepageContent{
		HeroHeadline:         in.HeroHeadline,
		HeroHighlightWord:    in.HeroHighlightWord,
		HeroIntro:            in.HeroIntro,
		HeroPrimaryCTAText:   in.HeroPrimaryCTAText,
		HeroPrimaryCTAURL:    in.HeroPrimaryCTAURL,
		HeroSecondaryCTAText: in.HeroSecondaryCTAText,
		HeroSecondaryCTAURL:  in.HeroSecondaryCTAURL,
		HeroScrollText:       in.HeroScrollText,
		WhyBuildHeadline:     in.WhyBuildHeadline,
		WhyBuildIntro:        in.WhyBuildIntro,
		WhyBuildQuote:        in.WhyBuildQuote,
		ContactEmail:         in.ContactEmail,
		ContactPhone:         in.ContactPhone,
		ContactLocation:      in.ContactLocation,
		ContactGithubURL:     in.ContactGithubURL,
		ContactLinkedinURL:   in.ContactLinkedinURL,
		ContactTwitterURL:    in.ContactTwitterURL,
	}

	saved, err := content.UpsertHomepageContent(c.Context(), Redis, DB, hc)
	if err != nil {
		return utils.HandleError(c, err)
	}
	Logger.Info(c.Context()).Logs("Homepage content updated")
	return c.JSON(saved)
}

// GetHomepageStats returns the display stats string. Custom text wins when
// enabled; otherwise counts are recomputed from live project rows.
func GetHomepageStats(c *fiber.Ctx) error {
	statsString, isCustom, stats, err := content.ResolveHomepageStats(c.Context(), DB)
	if err != nil {
		return utils.HandleError(c, err)
	}
	body := fiber.Map{
		"statsString": statsString,
		"isCustom":    isCustom,
	}
	if stats != nil {
		body["stats"] = fiber.Map{
			"total": stats.ProjectCount,
			"mvp":   stats.MVPCount,
			"live":  stats.LiveCount,
		}
	}
	return c.JSON(body)
}

// UpsertHomepageStats writes the custom text override on the stats singleton.
// Counts always come from project rows, so they are not writable here.
func UpsertHomepageStats(c *fiber.Ctx) error {
	in := new(HomepageStatsInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	total, mvp, live, err := content.CountProjectsByStatus(c.Context(), DB)
	if err != nil {
		return utils.HandleError(c, err)
	}

	stats := &content.HomepageStats{
		ProjectCount:    total,
		MVPCount:        mvp,
		LiveCount:       live,
		CustomStatsText: in.CustomStatsText,
	}
	if in.UseCustomText != nil {
		stats.UseCustomText = *in.UseCustomText
	}
	if stats.UseCustomText && (stats.CustomStatsText == nil || *stats.CustomStatsText == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "custom_stats_text is required when use_custom_text is set"})
	}

	saved, err := content.UpsertHomepageStats(c.Context(), Redis, DB, stats)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(saved)
}

// ListPrinciples returns building principles in sort order. Visitors see only
// active rows; an authenticated admin can request everything with ?admin=true.
func ListPrinciples(c *fiber.Ctx) error {
	activeOnly := true
	if c.Query("admin") == "true" && auth.HasAdminSession(c, AuthOpts) {
		activeOnly = false
	}
	principles, err := content.ListPrinciples(c.Context(), DB, activeOnly)
	if err != nil {
		Logger.Error(c.Context()).WithMeta(utils.Map{"error": err.Error()}).Logs("Failed to list principles")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch principles"})
	}
	return c.JSON(principles)
}

// CreatePrinciple inserts a building principle.
func CreatePrinciple(c *fiber.Ctx) error {
	in := new(PrincipleInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}
	if in.Title == nil || *in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	principle := &content.HomepageBuildingPrinciple{
		Title:    *in.Title,
		IsActive: true,
	}
	if in.Description != nil {
		principle.Description = *in.Description
	}
	if in.IconName != nil {
		principle.IconName = *in.IconName
	}
	if in.SortOrder != nil {
		principle.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		principle.IsActive = *in.IsActive
	}

	if err := content.CreatePrinciple(c.Context(), Redis, DB, principle); err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(principle)
}

// UpdatePrinciple applies a partial update.
func UpdatePrinciple(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid principle id"})
	}

	in := new(PrincipleInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	var opts []content.PrincipleOption
	if in.Title != nil {
		opts = append(opts, content.WithPrincipleTitle(*in.Title))
	}
	if in.Description != nil {
		opts = append(opts, content.WithPrincipleDescription(*in.Description))
	}
	if in.IconName != nil {
		opts = append(opts, content.WithPrincipleIconName(*in.IconName))
	}
	if in.SortOrder != nil {
		opts = append(opts, content.WithPrincipleSortOrder(*in.SortOrder))
	}
	if in.IsActive != nil {
		opts = append(opts, content.WithPrincipleActive(*in.IsActive))
	}

	principle, err := content.UpdatePrinciple(c.Context(), Redis, DB, id, opts...)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(principle)
}

// DeletePrinciple removes a principle; absent ids still succeed.
func DeletePrinciple(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid principle id"})
	}
	if err := content.DeletePrinciple(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}
