package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"medref/internal/config"
	"medref/internal/metrics"
	"medref/internal/models"
	"medref/internal/query"
)

// queryOption feeds the query-type selector in the form template.
type queryOption struct {
	Value string
	Label string
}

// QueryHandler renders the query form and results pages.
type QueryHandler struct {
	svc *query.Service
	cfg *config.Config
}

// NewQueryHandler creates a new HTML query handler.
func NewQueryHandler(svc *query.Service, cfg *config.Config) *QueryHandler {
	return &QueryHandler{svc: svc, cfg: cfg}
}

func queryOptions() []queryOption {
	types := query.Types()
	options := make([]queryOption, 0, len(types))
	for _, t := range types {
		options = append(options, queryOption{Value: t.String(), Label: t.Label()})
	}
	return options
}

// Index renders the query form.
func (h *QueryHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title":   "Health Information Query",
		"Options": queryOptions(),
	}, h.cfg))
}

// Query dispatches a form submission to the matching lookup and renders
// the result. Not-found and dataset-not-loaded render distinct messages.
func (h *QueryHandler) Query(c fiber.Ctx) error {
	typeName := c.Query("type")
	input := c.Query("q")

	typ, ok := query.ParseType(typeName)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown query type '"+typeName+"'")
	}

	result, err := query.Dispatch(h.svc, typ, input)
	if err != nil {
		return h.renderFailure(c, typ, input, err)
	}

	metrics.RecordQuery(typ.String(), models.OutcomeFound)
	data := fiber.Map{
		"Title":   typ.Label(),
		"Label":   typ.Label(),
		"Input":   input,
		"Options": queryOptions(),
	}
	switch result.Kind {
	case query.KindText:
		data["Text"] = result.Text
	case query.KindList:
		data["Items"] = result.Items
	case query.KindMatches:
		data["Matches"] = result.Matches
	}
	return c.Render("results", MergeBranding(data, h.cfg))
}

func (h *QueryHandler) renderFailure(c fiber.Ctx, typ query.Type, input string, err error) error {
	var status int
	var message string
	switch {
	case errors.Is(err, query.ErrTableNotLoaded):
		metrics.RecordQuery(typ.String(), models.OutcomeNotLoaded)
		status = fiber.StatusServiceUnavailable
		message = "The dataset backing this query is not loaded."
	case errors.Is(err, query.ErrNotFound):
		metrics.RecordQuery(typ.String(), models.OutcomeNotFound)
		status = fiber.StatusNotFound
		message = "No matching records found for '" + input + "'."
	default:
		status = fiber.StatusInternalServerError
		message = "The query could not be completed."
	}

	return c.Status(status).Render("results", MergeBranding(fiber.Map{
		"Title":   typ.Label(),
		"Label":   typ.Label(),
		"Input":   input,
		"Message": message,
		"Options": queryOptions(),
	}, h.cfg))
}
