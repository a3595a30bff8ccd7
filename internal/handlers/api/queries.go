// Package api serves the JSON query endpoints.
package api

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"medref/internal/metrics"
	"medref/internal/models"
	"medref/internal/query"
	"medref/internal/validation"
)

// QueryHandler serves the per-query-type JSON endpoints.
type QueryHandler struct {
	svc *query.Service
}

// NewQueryHandler creates a new API query handler.
func NewQueryHandler(svc *query.Service) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// Description returns the description of the disease in the path.
func (h *QueryHandler) Description(c fiber.Ctx) error {
	name := pathName(c)
	description, err := h.svc.DescribeDisease(name)
	if err != nil {
		return queryError(c, query.TypeDescription, err)
	}
	metrics.RecordQuery(query.TypeDescription.String(), models.OutcomeFound)
	return jsonSuccess(c, models.DescriptionResponse{
		Disease:     validation.Normalize(name),
		Description: description,
	})
}

// Precautions returns the populated precaution slots for the disease.
func (h *QueryHandler) Precautions(c fiber.Ctx) error {
	name := pathName(c)
	precautions, err := h.svc.PrecautionsFor(name)
	if err != nil {
		return queryError(c, query.TypePrecautions, err)
	}
	metrics.RecordQuery(query.TypePrecautions.String(), models.OutcomeFound)
	return jsonSuccess(c, models.PrecautionsResponse{
		Disease:     validation.Normalize(name),
		Precautions: precautions,
	})
}

// Severity returns the severity weight of the symptom in the path.
func (h *QueryHandler) Severity(c fiber.Ctx) error {
	severity, err := h.svc.SeverityOf(pathName(c))
	if err != nil {
		return queryError(c, query.TypeSeverity, err)
	}
	metrics.RecordQuery(query.TypeSeverity.String(), models.OutcomeFound)
	return jsonSuccess(c, severity)
}

// Match ranks candidate diseases for the symptoms query parameter,
// a comma-separated free-text list.
func (h *QueryHandler) Match(c fiber.Ctx) error {
	raw := c.Query("symptoms")
	matches, err := h.svc.MatchSymptoms(raw)
	if err != nil {
		return queryError(c, query.TypeSymptoms, err)
	}
	metrics.RecordQuery(query.TypeSymptoms.String(), models.OutcomeFound)
	return jsonSuccess(c, models.MatchResponse{
		Symptoms: validation.ParseSymptoms(raw),
		Matches:  matches,
	})
}

// Causes returns Q&A corpus answers about the disease's causes.
func (h *QueryHandler) Causes(c fiber.Ctx) error {
	return h.topic(c, query.TypeCauses, h.svc.CausesOf)
}

// Diagnosis returns Q&A corpus answers about diagnosing the disease.
func (h *QueryHandler) Diagnosis(c fiber.Ctx) error {
	return h.topic(c, query.TypeDiagnosis, h.svc.DiagnosisOf)
}

// Research returns Q&A corpus answers about research on the disease.
func (h *QueryHandler) Research(c fiber.Ctx) error {
	return h.topic(c, query.TypeResearch, h.svc.ResearchOn)
}

func (h *QueryHandler) topic(c fiber.Ctx, typ query.Type, lookup func(string) ([]string, error)) error {
	name := pathName(c)
	answers, err := lookup(name)
	if err != nil {
		return queryError(c, typ, err)
	}
	metrics.RecordQuery(typ.String(), models.OutcomeFound)
	return jsonSuccess(c, models.AnswersResponse{
		Disease: validation.Normalize(name),
		Topic:   typ.String(),
		Answers: answers,
	})
}

// pathName extracts the :name path parameter, tolerating percent-encoding
// for disease names containing spaces.
func pathName(c fiber.Ctx) string {
	raw := c.Params("name")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

// queryError translates query sentinels to the API error contract.
// Dataset-not-loaded and not-found are deliberately distinct outcomes.
func queryError(c fiber.Ctx, typ query.Type, err error) error {
	switch {
	case errors.Is(err, query.ErrTableNotLoaded):
		metrics.RecordQuery(typ.String(), models.OutcomeNotLoaded)
		return jsonError(c, fiber.StatusServiceUnavailable, "dataset not loaded")
	case errors.Is(err, query.ErrNotFound):
		metrics.RecordQuery(typ.String(), models.OutcomeNotFound)
		return jsonError(c, fiber.StatusNotFound, "no matching records found")
	}
	return jsonError(c, fiber.StatusInternalServerError, "query failed")
}
