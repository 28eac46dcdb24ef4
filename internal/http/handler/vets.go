package handler

import (
	"github.com/gofiber/fiber/v2"

	"petparrk/internal/http/middleware"
	"petparrk/internal/service"
)

// ListVets returns the filtered directory.
// Query: neighborhood, ownership (All|Independent|Corporate), search, sort (price|az).
//
// @Summary List vets with filters
// @Tags vets
// @Router /vets [get]
func ListVets(svc service.VetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), service.VetFilter{
			Neighborhood: c.Query("neighborhood"),
			Ownership:    c.Query("ownership"),
			Search:       c.Query("search"),
			Sort:         c.Query("sort"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetVet returns the vet page for a slug. Signed-in callers also get "saved".
//
// @Summary Vet page by slug
// @Tags vets
// @Router /vets/{slug} [get]
func GetVet(svc service.VetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Get(c.UserContext(), c.Params("slug"), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

type submissionRequest struct {
	VetName       string     `json:"vet_name"`
	ServiceName   string     `json:"service_name"`
	PricePaid     flexString `json:"price_paid"`
	VisitDate     string     `json:"visit_date"`
	SubmitterNote string     `json:"submitter_note"`
}

// SubmitPrice stores an anonymous price report.
//
// @Summary Report a price paid
// @Tags vets
// @Router /price-submissions [post]
func SubmitPrice(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req submissionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sub, err := svc.Submit(c.UserContext(), service.SubmissionInput{
			VetName:       req.VetName,
			ServiceName:   req.ServiceName,
			PricePaid:     string(req.PricePaid),
			VisitDate:     req.VisitDate,
			SubmitterNote: req.SubmitterNote,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}

func savedState(c *fiber.Ctx, saved bool) error {
	return c.JSON(fiber.Map{"vet_id": c.Params("vetId"), "saved": saved})
}

// ListSavedVets returns the caller's favorites, most recent first.
//
// @Summary List saved vets
// @Tags saved-vets
// @Security BearerAuth
// @Router /saved-vets [get]
func ListSavedVets(svc service.SavedVetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items, "count": len(items)})
	}
}

// IsVetSaved reports whether the caller saved the vet.
//
// @Summary Saved state of a vet
// @Tags saved-vets
// @Security BearerAuth
// @Router /saved-vets/{vetId} [get]
func IsVetSaved(svc service.SavedVetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "vetId") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		saved, err := svc.IsSaved(c.UserContext(), middleware.UserID(c), c.Params("vetId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return savedState(c, saved)
	}
}

// SaveVet adds the vet to the caller's favorites. Saving twice is a no-op.
//
// @Summary Save a vet
// @Tags saved-vets
// @Security BearerAuth
// @Router /saved-vets/{vetId} [put]
func SaveVet(svc service.SavedVetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "vetId") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Save(c.UserContext(), middleware.UserID(c), c.Params("vetId")); err != nil {
			return writeServiceError(c, err)
		}
		return savedState(c, true)
	}
}

// UnsaveVet removes the vet from the caller's favorites.
//
// @Summary Remove a saved vet
// @Tags saved-vets
// @Security BearerAuth
// @Router /saved-vets/{vetId} [delete]
func UnsaveVet(svc service.SavedVetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "vetId") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Unsave(c.UserContext(), middleware.UserID(c), c.Params("vetId")); err != nil {
			return writeServiceError(c, err)
		}
		return savedState(c, false)
	}
}

// ToggleSavedVet flips the saved state and returns the new one.
//
// @Summary Toggle a saved vet
// @Tags saved-vets
// @Security BearerAuth
// @Router /saved-vets/{vetId}/toggle [post]
func ToggleSavedVet(svc service.SavedVetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "vetId") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		saved, err := svc.Toggle(c.UserContext(), middleware.UserID(c), c.Params("vetId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return savedState(c, saved)
	}
}
