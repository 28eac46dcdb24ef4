package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"petparrk/internal/auth"
	"petparrk/internal/http/middleware"
	"petparrk/internal/service"
)

// SitemapGenerator renders the public sitemap.
type SitemapGenerator interface {
	Generate(ctx context.Context) ([]byte, int, error)
}

// Services groups the dependencies exposed over HTTP.
type Services struct {
	Vets        service.VetService
	Submissions service.SubmissionService
	Saved       service.SavedVetService
	Profiles    service.ProfileService
	Pets        service.PetService
	Cards       service.CardService
	Accounts    service.AccountService
	Sitemap     SitemapGenerator
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate HTTP to service calls; rules live in the service package.
func RegisterRoutes(app *fiber.App, db *sql.DB, verifier auth.Verifier, s Services) {
	requireAuth := middleware.RequireAuth(verifier)
	optionalAuth := middleware.OptionalAuth(verifier)

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/sitemap.xml", Sitemap(s.Sitemap))

	// Directory
	app.Get("/vets", ListVets(s.Vets))
	app.Get("/vets/:slug", optionalAuth, GetVet(s.Vets))
	app.Post("/price-submissions", SubmitPrice(s.Submissions))

	// Favorites
	saved := app.Group("/saved-vets", requireAuth)
	saved.Get("/", ListSavedVets(s.Saved))
	saved.Get("/:vetId", IsVetSaved(s.Saved))
	saved.Put("/:vetId", SaveVet(s.Saved))
	saved.Delete("/:vetId", UnsaveVet(s.Saved))
	saved.Post("/:vetId/toggle", ToggleSavedVet(s.Saved))

	// Profile
	profile := app.Group("/profile", requireAuth)
	profile.Get("/", GetProfile(s.Profiles))
	profile.Put("/", UpdateProfile(s.Profiles))
	profile.Put("/avatar", UploadAvatar(s.Profiles))

	// Pets and emergency contacts
	pets := app.Group("/pets", requireAuth)
	pets.Get("/", ListPets(s.Pets))
	pets.Post("/", CreatePet(s.Pets))
	pets.Put("/:id", UpdatePet(s.Pets))
	pets.Delete("/:id", DeletePet(s.Pets))
	pets.Put("/:id/photo", UploadPetPhoto(s.Pets))
	pets.Get("/:id/contacts", ListContacts(s.Pets))
	pets.Post("/:id/contacts", AddContact(s.Pets))
	pets.Delete("/:id/contacts/:contactId", DeleteContact(s.Pets))

	// Public medical card
	app.Get("/cards/:petId", GetCard(s.Cards))

	// Account (delegated to the auth provider)
	account := app.Group("/account")
	account.Post("/signup", SignUp(s.Accounts))
	account.Post("/signin", SignIn(s.Accounts))
	account.Post("/recover", RecoverPassword(s.Accounts))
	account.Get("/oauth/:provider", OAuthURL(s.Accounts))
	account.Get("/me", requireAuth, Me())
	account.Post("/reset-password", requireAuth, ResetPassword(s.Accounts))
	account.Put("/password", requireAuth, ChangePassword(s.Accounts))
	account.Put("/email", requireAuth, ChangeEmail(s.Accounts))
	account.Post("/signout", requireAuth, SignOut(s.Accounts))
}

// RegisterMetrics exposes the gatherer's metrics at /metrics.
func RegisterMetrics(app *fiber.App, g prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}

// HealthCheck reports whether the database is reachable.
//
// @Summary Database health check
// @Tags system
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a dependency-free liveness check.
//
// @Summary Liveness probe
// @Tags system
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Sitemap serves the generated sitemap.xml.
//
// @Summary Sitemap of the public pages
// @Tags system
// @Router /sitemap.xml [get]
func Sitemap(gen SitemapGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, _, err := gen.Generate(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		return c.Send(body)
	}
}
