package utils

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

type Map map[string]string

// ReadingSpeedWPM is the fixed speed used for read-time estimates.
const ReadingSpeedWPM = 200

// StrictBodyParser parses the request body strictly and returns an error if the body contains unknown fields.
func StrictBodyParser(c *fiber.Ctx, out interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.DisallowUnknownFields() // Reject unknown fields
	if err := decoder.Decode(out); err != nil {
		return err
	}
	return nil
}

// Contains checks if a string exists in a slice of strings.
func Contains(arr []string, str string) bool {
	for _, a := range arr {
		if a == str {
			return true
		}
	}
	return false
}

// Slugify normalizes free text into a URL slug: lowercase, trimmed, runs of
// whitespace/underscores/hyphens collapsed to one hyphen, no edge hyphens.
// Applying it to an already slugged string is a no-op.
func Slugify(text string) string {
	return slug.Make(strings.TrimSpace(text))
}

// ReadTime estimates reading minutes for a body of text. Never below one minute.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + ReadingSpeedWPM - 1) / ReadingSpeedWPM
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// ParsePagination reads page/limit query params with defaults and clamps limit to [1,100].
func ParsePagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultLimit)
	return page, ClampLimit(limit)
}

// ClampLimit bounds a page size to [1,100].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 100 {
		return 100
	}
	return limit
}
