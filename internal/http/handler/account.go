package handler

import (
	"github.com/gofiber/fiber/v2"

	"petparrk/internal/http/middleware"
	"petparrk/internal/service"
)

type signUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type recoverRequest struct {
	Email      string `json:"email"`
	RedirectTo string `json:"redirect_to"`
}

type passwordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

func badBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
}

// SignUp registers an account with the auth provider.
//
// @Summary Sign up
// @Tags account
// @Router /account/signup [post]
func SignUp(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req signUpRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		err := svc.SignUp(c.UserContext(), service.SignUpInput{
			Email:    req.Email,
			Password: req.Password,
			Confirm:  req.ConfirmPassword,
			FullName: req.FullName,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Check your email to confirm your account."})
	}
}

// SignIn exchanges credentials for a provider session.
//
// @Summary Sign in with email and password
// @Tags account
// @Router /account/signin [post]
func SignIn(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		session, err := svc.SignIn(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(session)
	}
}

// RecoverPassword sends a password reset email.
//
// @Summary Send a password reset email
// @Tags account
// @Router /account/recover [post]
func RecoverPassword(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req recoverRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if err := svc.RecoverPassword(c.UserContext(), req.Email, req.RedirectTo); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Check your email for a password reset link."})
	}
}

// ResetPassword sets a new password using the recovery session token.
//
// @Summary Set a new password from a recovery session
// @Tags account
// @Security BearerAuth
// @Router /account/reset-password [post]
func ResetPassword(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req passwordRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if err := svc.ResetPassword(c.UserContext(), middleware.AccessToken(c), req.Password, req.ConfirmPassword); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ChangePassword updates the signed-in user's password.
//
// @Summary Change password
// @Tags account
// @Security BearerAuth
// @Router /account/password [put]
func ChangePassword(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req passwordRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if err := svc.ChangePassword(c.UserContext(), middleware.AccessToken(c), req.Password, req.ConfirmPassword); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ChangeEmail starts an email change; the provider confirms it by email.
//
// @Summary Change email
// @Tags account
// @Security BearerAuth
// @Router /account/email [put]
func ChangeEmail(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req emailRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if err := svc.ChangeEmail(c.UserContext(), middleware.AccessToken(c), req.Email); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Check your new email to confirm the change."})
	}
}

// OAuthURL returns the provider authorize URL. Query: redirect_to.
//
// @Summary OAuth authorize URL
// @Tags account
// @Router /account/oauth/{provider} [get]
func OAuthURL(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.OAuthURL(c.Params("provider"), c.Query("redirect_to"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// SignOut revokes the caller's session.
//
// @Summary Sign out
// @Tags account
// @Security BearerAuth
// @Router /account/signout [post]
func SignOut(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.SignOut(c.UserContext(), middleware.AccessToken(c)); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Me returns the user described by the access token.
//
// @Summary Current user
// @Tags account
// @Security BearerAuth
// @Router /account/me [get]
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(middleware.CurrentUser(c))
	}
}
