package handler

import (
	"go-portfolio-api/internal/content"

	"github.com/gofiber/fiber/v2"
)

// PortfolioHandler serves the read-only portfolio payload
type PortfolioHandler struct {
	portfolio *content.Portfolio
}

func NewPortfolioHandler(p *content.Portfolio) *PortfolioHandler {
	return &PortfolioHandler{portfolio: p}
}

// GET /api/portfolio
func (h *PortfolioHandler) GetPortfolio(c *fiber.Ctx) error {
	return c.JSON(h.portfolio)
}

// GET /api/hero
func (h *PortfolioHandler) GetHero(c *fiber.Ctx) error {
	return c.JSON(h.portfolio.Hero())
}

// GET /api/projects
func (h *PortfolioHandler) GetProjects(c *fiber.Ctx) error {
	return c.JSON(h.portfolio.Projects)
}

// GET /api/hobbies
func (h *PortfolioHandler) GetHobbies(c *fiber.Ctx) error {
	return c.JSON(h.portfolio.Hobbies)
}
