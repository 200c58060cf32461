package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sashreekm/devfolio/internal/auth"
	content "github.com/sashreekm/devfolio/internal/models/content"
	"github.com/sashreekm/devfolio/pkg/utils"
)

type LookingForInput struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ColorTheme  *string `json:"color_theme" validate:"omitempty,oneof=neon-cyan neon-violet neon-lime"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type TestimonialInput struct {
	Quote          *string `json:"quote"`
	AuthorName     *string `json:"author_name" validate:"omitempty,max=100"`
	AuthorTitle    *string `json:"author_title" validate:"omitempty,max=100"`
	AuthorCompany  *string `json:"author_company" validate:"omitempty,max=100"`
	AuthorImageURL *string `json:"author_image_url" validate:"omitempty,url,max=500"`
	IsFeatured     *bool   `json:"is_featured"`
	SortOrder      *int    `json:"sort_order"`
	IsActive       *bool   `json:"is_active"`
}

type CalendarSettingsInput struct {
	CalendlyURL     string  `json:"calendly_url" validate:"required,url,max=500"`
	MeetingDuration int     `json:"meeting_duration" validate:"omitempty,min=5,max=240"`
	Description     *string `json:"description" validate:"omitempty,max=500"`
}

// InquiryInput is the public collaborate form payload.
type InquiryInput struct {
	InquiryType    string  `json:"inquiry_type" validate:"required,oneof=developer investor"`
	Name           string  `json:"name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email,max=200"`
	Company        *string `json:"company" validate:"omitempty,max=200"`
	AreaOfInterest *string `json:"area_of_interest" validate:"omitempty,max=200"`
	Message        string  `json:"message" validate:"required"`
}

type InquiryUpdateInput struct {
	Status *string `json:"status" validate:"omitempty,oneof=new reviewed contacted archived"`
	Notes  *string `json:"notes"`
}

// collaboratePageBody assembles the aggregate payload. A site without saved
// calendar settings serves null there rather than failing the whole page.
func collaboratePageBody(lookingFor []content.CollaborateLookingFor, testimonials []content.CollaborateTestimonial, settings *content.CollaborateCalendarSettings) fiber.Map {
	body := fiber.Map{
		"lookingFor":       lookingFor,
		"testimonials":     testimonials,
		"calendarSettings": nil,
	}
	if settings != nil {
		body["calendarSettings"] = settings
	}
	return body
}

// GetCollaboratePage aggregates everything the collaborate page renders in one
// round trip: looking-for cards, testimonials, and calendar settings.
func GetCollaboratePage(c *fiber.Ctx) error {
	lookingFor, err := content.ListLookingFor(c.Context(), DB, true)
	if err != nil {
		return utils.HandleError(c, err)
	}
	testimonials, err := content.ListTestimonials(c.Context(), DB, true)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var settings *content.CollaborateCalendarSettings
	if s, err := content.GetCalendarSettings(c.Context(), Redis, DB); err == nil {
		settings = s
	} else {
		var appErr *utils.CustomError
		if !utils.As(err, &appErr) || appErr.Code != fiber.StatusNotFound {
			return utils.HandleError(c, err)
		}
	}
	return c.JSON(collaboratePageBody(lookingFor, testimonials, settings))
}

// --- Looking for ---

// ListLookingFor returns the looking-for cards in sort order. Admins can see
// inactive cards with ?admin=true.
func ListLookingFor(c *fiber.Ctx) error {
	activeOnly := true
	if c.Query("admin") == "true" && auth.HasAdminSession(c, AuthOpts) {
		activeOnly = false
	}
	items, err := content.ListLookingFor(c.Context(), DB, activeOnly)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(items)
}

func CreateLookingFor(c *fiber.Ctx) error {
	in := new(LookingForInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}
	if in.Title == nil || *in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	item := &content.CollaborateLookingFor{
		Title:    *in.Title,
		IsActive: true,
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.ColorTheme != nil {
		item.ColorTheme = *in.ColorTheme
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}

	if err := content.CreateLookingFor(c.Context(), Redis, DB, item); err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateLookingFor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	in := new(LookingForInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	var opts []content.LookingForOption
	if in.Title != nil {
		opts = append(opts, content.WithLookingForTitle(*in.Title))
	}
	if in.Description != nil {
		opts = append(opts, content.WithLookingForDescription(*in.Description))
	}
	if in.ColorTheme != nil {
		opts = append(opts, content.WithLookingForColorTheme(*in.ColorTheme))
	}
	if in.SortOrder != nil {
		opts = append(opts, content.WithLookingForSortOrder(*in.SortOrder))
	}
	if in.IsActive != nil {
		opts = append(opts, content.WithLookingForActive(*in.IsActive))
	}

	item, err := content.UpdateLookingFor(c.Context(), Redis, DB, id, opts...)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(item)
}

func DeleteLookingFor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	if err := content.DeleteLookingFor(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}

// --- Testimonials ---

// ListTestimonials returns testimonials, featured first. Admins can see
// inactive ones with ?admin=true.
func ListTestimonials(c *fiber.Ctx) error {
	activeOnly := true
	if c.Query("admin") == "true" && auth.HasAdminSession(c, AuthOpts) {
		activeOnly = false
	}
	items, err := content.ListTestimonials(c.Context(), DB, activeOnly)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(items)
}

func CreateTestimonial(c *fiber.Ctx) error {
	in := new(TestimonialInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}
	if in.Quote == nil || *in.Quote == "" || in.AuthorName == nil || *in.AuthorName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quote and author_name are required"})
	}

	testimonial := &content.CollaborateTestimonial{
		Quote:          *in.Quote,
		AuthorName:     *in.AuthorName,
		AuthorTitle:    in.AuthorTitle,
		AuthorCompany:  in.AuthorCompany,
		AuthorImageURL: in.AuthorImageURL,
		IsActive:       true,
	}
	if in.IsFeatured != nil {
		testimonial.IsFeatured = *in.IsFeatured
	}
	if in.SortOrder != nil {
		testimonial.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		testimonial.IsActive = *in.IsActive
	}

	if err := content.CreateTestimonial(c.Context(), Redis, DB, testimonial); err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func UpdateTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	in := new(TestimonialInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	var opts []content.TestimonialOption
	if in.Quote != nil {
		opts = append(opts, content.WithTestimonialQuote(*in.Quote))
	}
	if in.AuthorName != nil {
		opts = append(opts, content.WithTestimonialAuthorName(*in.AuthorName))
	}
	if in.AuthorTitle != nil {
		opts = append(opts, content.WithTestimonialAuthorTitle(in.AuthorTitle))
	}
	if in.AuthorCompany != nil {
		opts = append(opts, content.WithTestimonialAuthorCompany(in.AuthorCompany))
	}
	if in.AuthorImageURL != nil {
		opts = append(opts, content.WithTestimonialAuthorImageURL(in.AuthorImageURL))
	}
	if in.IsFeatured != nil {
		opts = append(opts, content.WithTestimonialFeatured(*in.IsFeatured))
	}
	if in.SortOrder != nil {
		opts = append(opts, content.WithTestimonialSortOrder(*in.SortOrder))
	}
	if in.IsActive != nil {
		opts = append(opts, content.WithTestimonialActive(*in.IsActive))
	}

	testimonial, err := content.UpdateTestimonial(c.Context(), Redis, DB, id, opts...)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(testimonial)
}

func DeleteTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	if err := content.DeleteTestimonial(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}

// --- Calendar settings ---

// GetCalendarSettings returns the singleton booking configuration, or an empty
// object when none has been saved.
func GetCalendarSettings(c *fiber.Ctx) error {
	settings, err := content.GetCalendarSettings(c.Context(), Redis, DB)
	if err != nil {
		var appErr *utils.CustomError
		if utils.As(err, &appErr) && appErr.Code == fiber.StatusNotFound {
			return c.JSON(fiber.Map{})
		}
		return utils.HandleError(c, err)
	}
	return c.JSON(settings)
}

// UpsertCalendarSettings writes the singleton booking configuration.
func UpsertCalendarSettings(c *fiber.Ctx) error {
	in := new(CalendarSettingsInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	settings := &content.CollaborateCalendarSettings{
		CalendlyURL:     in.CalendlyURL,
		MeetingDuration: in.MeetingDuration,
		Description:     in.Description,
		IsActive:        true,
	}
	saved, err := content.UpsertCalendarSettings(c.Context(), Redis, DB, settings)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(saved)
}

// --- Inquiries ---

// CreateInquiry accepts the public collaborate form. The row always starts in
// status "new" regardless of what the client sends.
func CreateInquiry(c *fiber.Ctx) error {
	in := new(InquiryInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	inquiry := &content.CollaborateInquiry{
		InquiryType:    in.InquiryType,
		Name:           in.Name,
		Email:          in.Email,
		Company:        in.Company,
		AreaOfInterest: in.AreaOfInterest,
		Message:        in.Message,
	}
	if err := content.CreateInquiry(c.Context(), Redis, DB, inquiry); err != nil {
		return utils.HandleError(c, err)
	}

	Logger.Info(c.Context()).WithMeta(utils.Map{
		"inquiry_id":   inquiry.ID.String(),
		"inquiry_type": inquiry.InquiryType,
	}).Logs("Collaborate inquiry received")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": inquiry.ID.String()})
}

// ListInquiries returns inquiries newest first in the pagination envelope.
// Optional filters: status, type.
func ListInquiries(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c, 20)
	inquiries, total, err := content.ListInquiries(c.Context(), DB, c.Query("status"), c.Query("type"), page, limit)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(fiber.Map{
		"items":      inquiries,
		"totalCount": total,
		"page":       page,
		"limit":      limit,
	})
}

// UpdateInquiry moves an inquiry through its review workflow.
func UpdateInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid inquiry id"})
	}

	in := new(InquiryUpdateInput)
	if err := utils.StrictBodyParser(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := Validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "details": err})
	}

	inquiry, err := content.UpdateInquiry(c.Context(), Redis, DB, id, in.Status, in.Notes)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(inquiry)
}

// DeleteInquiry removes an inquiry; absent ids still succeed.
func DeleteInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid inquiry id"})
	}
	if err := content.DeleteInquiry(c.Context(), Redis, DB, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SendSuccess(c, nil)
}
