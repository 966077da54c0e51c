package translations

import (
	"errors"

	"intl-sheets/core/catalog"
	"intl-sheets/core/logger"
	"intl-sheets/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for translation syncs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the translations routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/translations")
	group.Get("/plan", h.HandlePlan)
	group.Post("/sync", h.HandleSync)
}

// HandlePlan computes the reconciliation without writing.
// @Summary Plan Sync
// @Description Loads the catalog, reads every language tab and returns the rows a sync would write.
// @Tags translations
// @Produce json
// @Success 200 {object} reconcile.Plan "Plan"
// @Failure 422 {object} map[string]string "Invalid Catalog"
// @Failure 502 {object} map[string]string "Spreadsheet Error"
// @Router /translations/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Planning translation sync")

	plan, err := h.service.Plan(c.Context())
	if err != nil {
		l.Error("Plan failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(plan)
}

// HandleSync runs a sync.
// @Summary Run Sync
// @Description Synchronizes the catalog with the spreadsheet. Returns 207 when some ranges failed to update.
// @Tags translations
// @Produce json
// @Param dry_run query boolean false "Plan only, do not write"
// @Success 200 {object} Report "Sync Report"
// @Success 207 {object} Report "Partial Sync Report"
// @Failure 422 {object} map[string]string "Invalid Catalog"
// @Failure 502 {object} map[string]string "Spreadsheet Error"
// @Router /translations/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.Query("dry_run") == "true"
	l.Info("Triggering translation sync", zap.Bool("dry_run", dryRun))

	report, err := h.service.Sync(c.Context(), Options{DryRun: dryRun})
	if err != nil {
		l.Error("Sync failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if failed := report.Failed(); len(failed) > 0 {
		l.Warn("Sync partially failed", zap.Int("failed", len(failed)))
		return c.Status(fiber.StatusMultiStatus).JSON(report)
	}

	return c.JSON(report)
}

// statusFor maps a fatal sync error to an HTTP status.
func statusFor(err error) int {
	var perr *catalog.ParseError
	var rerr *RemoteError
	switch {
	case errors.As(err, &perr), errors.Is(err, reconcile.ErrDuplicateID):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &rerr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
