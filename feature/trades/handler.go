package trades

import (
	"errors"

	"trade-ledger/core/ledger"
	"trade-ledger/core/logger"
	"trade-ledger/core/utils"
	"trade-ledger/feature/trades/extract"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for trades.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ItemsRequest carries a batch of item records.
type ItemsRequest struct {
	Items []ledger.ItemRecord `json:"items"`
}

// RowsRequest carries exported trade rows and the senders to accept.
type RowsRequest struct {
	Rows    []extract.TradeRow `json:"rows"`
	Senders []string           `json:"senders"`
	// FailedCheckOnly defaults to true when omitted.
	FailedCheckOnly *bool `json:"failed_check_only,omitempty"`
}

// ReturnedRequest carries the items handed back by a receiver.
type ReturnedRequest struct {
	Returned []ledger.ItemRecord `json:"returned"`
}

// CompareRequest carries both sides of a reconciliation.
type CompareRequest struct {
	Required []ledger.ItemRecord `json:"required"`
	Returned []ledger.ItemRecord `json:"returned"`
}

// RegisterRoutes registers the trades routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/trades")
	group.Get("/", h.HandleGetLedger)
	group.Delete("/", h.HandleReset)
	group.Post("/compare", h.HandleCompare)
	group.Get("/:receiver/items", h.HandleGetItems)
	group.Post("/:receiver/items", h.HandleRecordItems)
	group.Post("/:receiver/rows", h.HandleRecordRows)
	group.Post("/:receiver/compare", h.HandleCompareStored)
}

// HandleGetLedger returns the whole ledger.
// @Summary Get Ledger
// @Description Get every receiver and their accumulated items.
// @Tags trades
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} ledger.Entry "Ledger"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /trades [get]
func (h *Handler) HandleGetLedger(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	entries, err := h.service.Ledger(c.Context())
	if err != nil {
		return h.fail(c, l, "Failed to load ledger", err)
	}
	return c.JSON(entries)
}

// HandleGetItems returns the items stored for a receiver.
// @Summary Get Receiver Items
// @Description Get the accumulated items for a receiver.
// @Tags trades
// @Security ApiKeyAuth
// @Produce json
// @Param receiver path string true "Receiver key"
// @Success 200 {array} ledger.ItemRecord "Items"
// @Failure 404 {object} map[string]string "Unknown receiver"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /trades/{receiver}/items [get]
func (h *Handler) HandleGetItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.Items(c.Context(), receiverParam(c))
	if err != nil {
		return h.fail(c, l, "Failed to get items", err)
	}
	return c.JSON(items)
}

// HandleRecordItems merges item records into a receiver's entry.
// @Summary Record Items
// @Description Merge an observed batch of items into the receiver's ledger entry.
// @Tags trades
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param receiver path string true "Receiver key"
// @Param request body ItemsRequest true "Items"
// @Success 200 {object} RecordReport "Record report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /trades/{receiver}/items [post]
func (h *Handler) HandleRecordItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, err := h.service.Record(c.Context(), receiverParam(c), req.Items)
	return h.recorded(c, l, report, err)
}

// HandleRecordRows records the items of exported trade rows.
// @Summary Record Trade Rows
// @Description Select rows sent to the receiver by the given senders and record their items.
// @Tags trades
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param receiver path string true "Receiver key"
// @Param failed_check_only query bool false "Only rows with a failed check, overrides the body field (default true)"
// @Param request body RowsRequest true "Rows"
// @Success 200 {object} RecordReport "Record report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /trades/{receiver}/rows [post]
func (h *Handler) HandleRecordRows(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req RowsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	opts := extract.Options{
		Receiver:        receiverParam(c),
		Senders:         extract.OneOf(req.Senders...),
		FailedCheckOnly: true,
	}
	if req.FailedCheckOnly != nil {
		opts.FailedCheckOnly = *req.FailedCheckOnly
	}
	if q := c.Query("failed_check_only"); q != "" {
		opts.FailedCheckOnly = utils.ToBool(q)
	}

	report, err := h.service.RecordRows(c.Context(), req.Rows, opts)
	return h.recorded(c, l, report, err)
}

// HandleCompare reconciles two explicit item lists.
// @Summary Compare Items
// @Description Compare required items against returned items.
// @Tags trades
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Required and returned items"
// @Success 200 {object} ledger.Result "Result"
// @Failure 422 {object} map[string]string "Empty input"
// @Router /trades/compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Compare(c.Context(), req.Required, req.Returned)
	if err != nil {
		return h.fail(c, l, "Comparison failed", err)
	}
	return c.JSON(result)
}

// HandleCompareStored reconciles returned items against the receiver's stored items.
// @Summary Compare Stored Items
// @Description Compare returned items against the items stored for the receiver.
// @Tags trades
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param receiver path string true "Receiver key"
// @Param request body ReturnedRequest true "Returned items"
// @Success 200 {object} ledger.Result "Result"
// @Failure 404 {object} map[string]string "Unknown receiver"
// @Failure 422 {object} map[string]string "Empty input"
// @Router /trades/{receiver}/compare [post]
func (h *Handler) HandleCompareStored(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ReturnedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.CompareStored(c.Context(), receiverParam(c), req.Returned)
	if err != nil {
		return h.fail(c, l, "Comparison failed", err)
	}
	return c.JSON(result)
}

// HandleReset discards the whole ledger.
// @Summary Reset Ledger
// @Description Discard every stored receiver and item.
// @Tags trades
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /trades [delete]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Reset(c.Context()); err != nil {
		return h.fail(c, l, "Failed to reset ledger", err)
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}

// receiverParam copies the receiver path parameter out of the request buffer,
// which fiber reuses once the handler returns.
func receiverParam(c *fiber.Ctx) string {
	return fiberutils.CopyString(c.Params("receiver"))
}

func (h *Handler) recorded(c *fiber.Ctx, l *zap.Logger, report *RecordReport, err error) error {
	if errors.Is(err, ledger.ErrNothingToRecord) {
		return c.JSON(fiber.Map{
			"status": "nothing_recorded",
			"report": report,
		})
	}
	if err != nil {
		return h.fail(c, l, "Failed to record trades", err)
	}
	return c.JSON(fiber.Map{
		"status": "recorded",
		"report": report,
	})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingReceiver):
		return fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrNoSuchRecipient):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrEmptyInput):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
