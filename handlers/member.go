package handlers

import (
	"strconv"
	"time"

	"club-management-system/models"
	"club-management-system/services"

	"github.com/gofiber/fiber/v2"
)

type MemberHandler struct {
	Registry *services.MemberRegistry
}

func SetupMemberRoutes(app *fiber.App, registry *services.MemberRegistry) {
	h := &MemberHandler{Registry: registry}

	app.Post("/members", h.Create)
	app.Get("/members", h.GetAll)
	app.Get("/members/active", h.GetActive)
	app.Get("/members/by-tournament-date", h.GetByTournamentDate)
	app.Get("/members/search/name/:name", h.SearchByName)
	app.Get("/members/search/phone/:phone", h.SearchByPhone)
	app.Get("/members/search/status/:status", h.SearchByStatus)
	app.Get("/members/search/min-tournaments/:count", h.SearchByMinTournaments)
	app.Get("/members/:id", h.GetByID)
	app.Put("/members/:id", h.Update)
	app.Delete("/members/:id", h.Delete)
	app.Patch("/members/:id/status", h.UpdateStatus)
}

type memberRequest struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	StartDate      string `json:"start_date"` // YYYY-MM-DD, defaults to today on create
	DurationMonths int    `json:"duration_months"`
}

func (r *memberRequest) toModel(defaultToday bool) (*models.Member, error) {
	m := &models.Member{
		Name:           r.Name,
		Address:        r.Address,
		Email:          r.Email,
		Phone:          r.Phone,
		DurationMonths: r.DurationMonths,
	}
	if r.StartDate == "" {
		if defaultToday {
			m.StartDate = time.Now().Truncate(24 * time.Hour)
		}
		return m, nil
	}
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	m.StartDate = startDate
	return m, nil
}

func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	m, err := req.toModel(true)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid start_date (use YYYY-MM-DD)"})
	}
	created, err := h.Registry.Create(c.Context(), m)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(201).JSON(created)
}

func (h *MemberHandler) GetAll(c *fiber.Ctx) error {
	members, err := h.Registry.List(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid member id"})
	}
	m, err := h.Registry.Get(c.Context(), id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(m)
}

func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid member id"})
	}
	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	m, err := req.toModel(false)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid start_date (use YYYY-MM-DD)"})
	}
	updated, err := h.Registry.Update(c.Context(), id, m)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(updated)
}

func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid member id"})
	}
	if err := h.Registry.Delete(c.Context(), id); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(204)
}

func (h *MemberHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid member id"})
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := h.Registry.SetStatus(c.Context(), id, models.MembershipStatus(req.Status)); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(200)
}

func (h *MemberHandler) GetActive(c *fiber.Ctx) error {
	members, err := h.Registry.ListActive(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) GetByTournamentDate(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid date (use YYYY-MM-DD)"})
	}
	members, err := h.Registry.ListByTournamentStartDate(c.Context(), date)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) SearchByName(c *fiber.Ctx) error {
	members, err := h.Registry.SearchByName(c.Context(), c.Params("name"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) SearchByPhone(c *fiber.Ctx) error {
	members, err := h.Registry.SearchByPhone(c.Context(), c.Params("phone"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) SearchByStatus(c *fiber.Ctx) error {
	status := models.MembershipStatus(c.Params("status"))
	if !models.ValidMembershipStatus(status) {
		return c.Status(400).JSON(fiber.Map{"error": "unknown membership status"})
	}
	members, err := h.Registry.ListByStatus(c.Context(), status)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) SearchByMinTournaments(c *fiber.Ctx) error {
	count, err := strconv.Atoi(c.Params("count"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "count must be an integer"})
	}
	members, err := h.Registry.ListByMinTournaments(c.Context(), count)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(members)
}
