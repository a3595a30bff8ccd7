// Package handlers serves the HTML query pages. This is the presentation
// boundary; all lookup semantics live in internal/query.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"medref/internal/config"
)

// MergeBranding adds site branding to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}
