// Package models aggregates the persisted entity set for migration.
package models

import (
	content "github.com/sashreekm/devfolio/internal/models/content"
)

// All returns every persisted entity, in migration order.
func All() []interface{} {
	return []interface{}{
		&content.Project{},
		&content.BlogPost{},
		&content.TimelineItem{},
		&content.Skill{},
		&content.Profile{},
		&content.SocialLink{},
		&content.HomepageContent{},
		&content.HomepageBuildingPrinciple{},
		&content.HomepageStats{},
		&content.CollaborateLookingFor{},
		&content.CollaborateTestimonial{},
		&content.CollaborateCalendarSettings{},
		&content.CollaborateInquiry{},
	}
}
