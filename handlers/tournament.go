package handlers

import (
	"strconv"

	"club-management-system/models"
	"club-management-system/services"

	"github.com/gofiber/fiber/v2"
)

type TournamentHandler struct {
	Registry *services.TournamentRegistry
	Engine   *services.RegistrationEngine
}

func SetupTournamentRoutes(app *fiber.App, registry *services.TournamentRegistry, engine *services.RegistrationEngine) {
	h := &TournamentHandler{Registry: registry, Engine: engine}

	app.Post("/tournaments", h.Create)
	app.Get("/tournaments", h.GetAll)
	app.Get("/tournaments/current", h.GetCurrent)
	app.Get("/tournaments/available", h.GetAvailable)
	app.Get("/tournaments/revenue/total", h.GetTotalRevenue)
	app.Get("/tournaments/search/location/:location", h.SearchByLocation)
	app.Get("/tournaments/search/date-range", h.SearchByDateRange)
	app.Get("/tournaments/search/status/:status", h.SearchByStatus)
	app.Get("/tournaments/search/max-fee/:fee", h.SearchByMaxFee)
	app.Get("/tournaments/search/min-prize/:prize", h.SearchByMinPrize)
	app.Get("/tournaments/search/min-participants/:count", h.SearchByMinParticipants)
	app.Get("/tournaments/:id", h.GetByID)
	app.Put("/tournaments/:id", h.Update)
	app.Delete("/tournaments/:id", h.Delete)
	app.Patch("/tournaments/:id/status", h.UpdateStatus)
	app.Get("/tournaments/:id/revenue", h.GetRevenue)
	app.Post("/tournaments/:tournament_id/members/:member_id", h.AddMember)
	app.Delete("/tournaments/:tournament_id/members/:member_id", h.RemoveMember)
}

type tournamentRequest struct {
	Location            string  `json:"location"`
	StartDate           string  `json:"start_date"` // YYYY-MM-DD
	EndDate             string  `json:"end_date"`
	EntryFee            float64 `json:"entry_fee"`
	CashPrizeAmount     float64 `json:"cash_prize_amount"`
	MinimumParticipants int     `json:"minimum_participants"`
	MaximumParticipants int     `json:"maximum_participants"`
}

func (r *tournamentRequest) toModel() (*models.Tournament, error) {
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.Tournament{
		Location:            r.Location,
		StartDate:           startDate,
		EndDate:             endDate,
		EntryFee:            r.EntryFee,
		CashPrizeAmount:     r.CashPrizeAmount,
		MinimumParticipants: r.MinimumParticipants,
		MaximumParticipants: r.MaximumParticipants,
	}, nil
}

func (h *TournamentHandler) Create(c *fiber.Ctx) error {
	var req tournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	t, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid date (use YYYY-MM-DD)"})
	}
	created, err := h.Registry.Create(c.Context(), t)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(201).JSON(created)
}

func (h *TournamentHandler) GetAll(c *fiber.Ctx) error {
	tournaments, err := h.Registry.List(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
	}
	t, err := h.Registry.Get(c.Context(), id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(t)
}

func (h *TournamentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
	}
	var req tournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	t, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid date (use YYYY-MM-DD)"})
	}
	updated, err := h.Registry.Update(c.Context(), id, t)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(updated)
}

func (h *TournamentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
	}
	if err := h.Registry.Delete(c.Context(), id); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(204)
}

func (h *TournamentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if err := h.Engine.TransitionStatus(c.Context(), id, models.TournamentStatus(req.Status)); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(200)
}

func (h *TournamentHandler) AddMember(c *fiber.Ctx) error {
	tournamentID, err := parseID(c, "tournament_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
	}
	memberID, err := parseID(c, "member_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid member id"})
	}
	t, err := h.Engine.AddParticipant(c.Context(), tournamentID, memberID)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(t)
}

func (h *TournamentHandler) RemoveMember(c *fiber.Ctx) error {
	tournamentID, err := parseID(c, "tournament_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
	}
	memberID, err := parseID(c, "member_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid member id"})
	}
	t, err := h.Engine.RemoveParticipant(c.Context(), tournamentID, memberID)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(t)
}

func (h *TournamentHandler) SearchByLocation(c *fiber.Ctx) error {
	tournaments, err := h.Registry.SearchByLocation(c.Context(), c.Params("location"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) SearchByDateRange(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("startDate"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid startDate (use YYYY-MM-DD)"})
	}
	to, err := parseDate(c.Query("endDate"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid endDate (use YYYY-MM-DD)"})
	}
	tournaments, err := h.Registry.ListByDateRange(c.Context(), from, to)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) SearchByStatus(c *fiber.Ctx) error {
	status := models.TournamentStatus(c.Params("status"))
	if !models.ValidTournamentStatus(status) {
		return c.Status(400).JSON(fiber.Map{"error": "unknown tournament status"})
	}
	tournaments, err := h.Registry.ListByStatus(c.Context(), status)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) SearchByMaxFee(c *fiber.Ctx) error {
	fee, err := strconv.ParseFloat(c.Params("fee"), 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "fee must be a number"})
	}
	tournaments, err := h.Registry.ListByMaxEntryFee(c.Context(), fee)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) SearchByMinPrize(c *fiber.Ctx) error {
	prize, err := strconv.ParseFloat(c.Params("prize"), 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "prize must be a number"})
	}
	tournaments, err := h.Registry.ListByMinPrize(c.Context(), prize)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) SearchByMinParticipants(c *fiber.Ctx) error {
	count, err := strconv.Atoi(c.Params("count"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "count must be an integer"})
	}
	tournaments, err := h.Registry.ListWithAtLeast(c.Context(), count)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) GetCurrent(c *fiber.Ctx) error {
	tournaments, err := h.Registry.ListCurrent(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) GetAvailable(c *fiber.Ctx) error {
	tournaments, err := h.Registry.ListAvailable(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(tournaments)
}

func (h *TournamentHandler) GetRevenue(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
	}
	revenue, err := h.Registry.Revenue(c.Context(), id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"tournament_id": id, "revenue": revenue})
}

func (h *TournamentHandler) GetTotalRevenue(c *fiber.Ctx) error {
	total, err := h.Registry.TotalRevenue(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"total_revenue": total})
}
