package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"petparrk/internal/format"
	"petparrk/internal/http/middleware"
	"petparrk/internal/imaging"
	"petparrk/internal/service"
)

type profileRequest struct {
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	IsPublic bool   `json:"is_public"`
}

// GetProfile returns the caller's profile, creating it on first access.
//
// @Summary Get or create own profile
// @Tags profile
// @Security BearerAuth
// @Router /profile [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetOrCreate(c.UserContext(), middleware.CurrentUser(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateProfile saves the editable profile fields.
//
// @Summary Update own profile
// @Tags profile
// @Security BearerAuth
// @Router /profile [put]
func UpdateProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req profileRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Update(c.UserContext(), middleware.UserID(c), service.ProfileInput{
			FullName: req.FullName,
			Bio:      req.Bio,
			IsPublic: req.IsPublic,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UploadAvatar replaces the caller's avatar (multipart/form-data, field name: avatar).
//
// @Summary Upload avatar
// @Tags profile
// @Security BearerAuth
// @Router /profile/avatar [put]
func UploadAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		img, closeFn, err := formImage(c, "avatar")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "avatar file is required")
		}
		defer closeFn()

		avatarURL, err := svc.UploadAvatar(c.UserContext(), middleware.UserID(c), img)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"avatar_url": avatarURL})
	}
}

type petRequest struct {
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Breed           string     `json:"breed"`
	Birthday        string     `json:"birthday"`
	WeightLbs       flexString `json:"weight_lbs"`
	Allergies       string     `json:"allergies"`
	Medications     string     `json:"medications"`
	MicrochipNumber string     `json:"microchip_number"`
	Notes           string     `json:"notes"`
	OwnerName       string     `json:"owner_name"`
	OwnerPhone      string     `json:"owner_phone"`
	OwnerEmail      string     `json:"owner_email"`
}

var errInvalidBody = errors.New("invalid request body")

// parsePetInput reads a pet from a JSON body or from multipart form fields.
func parsePetInput(c *fiber.Ctx) (service.PetInput, error) {
	var req petRequest
	if isMultipart(c) {
		req = petRequest{
			Name:            c.FormValue("name"),
			Species:         c.FormValue("species"),
			Breed:           c.FormValue("breed"),
			Birthday:        c.FormValue("birthday"),
			WeightLbs:       flexString(c.FormValue("weight_lbs")),
			Allergies:       c.FormValue("allergies"),
			Medications:     c.FormValue("medications"),
			MicrochipNumber: c.FormValue("microchip_number"),
			Notes:           c.FormValue("notes"),
			OwnerName:       c.FormValue("owner_name"),
			OwnerPhone:      c.FormValue("owner_phone"),
			OwnerEmail:      c.FormValue("owner_email"),
		}
	} else if err := c.BodyParser(&req); err != nil {
		return service.PetInput{}, errInvalidBody
	}

	in := service.PetInput{
		Name:            req.Name,
		Species:         req.Species,
		Breed:           req.Breed,
		Birthday:        req.Birthday,
		Allergies:       req.Allergies,
		Medications:     req.Medications,
		MicrochipNumber: req.MicrochipNumber,
		Notes:           req.Notes,
		OwnerName:       req.OwnerName,
		OwnerPhone:      req.OwnerPhone,
		OwnerEmail:      req.OwnerEmail,
	}
	if w := strings.TrimSpace(string(req.WeightLbs)); w != "" {
		v, ok := format.Decimal(w)
		if !ok {
			return service.PetInput{}, &service.ValidationError{Message: "Weight must be a positive number."}
		}
		in.WeightLbs = &v
	}
	return in, nil
}

func writePetInputError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errInvalidBody) {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	return writeServiceError(c, err)
}

// ListPets returns the caller's pets in creation order.
//
// @Summary List own pets
// @Tags pets
// @Security BearerAuth
// @Router /pets [get]
func ListPets(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pets, err := svc.List(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": pets, "count": len(pets)})
	}
}

// CreatePet adds a pet. Multipart requests may carry a "photo" file.
//
// @Summary Create a pet
// @Tags pets
// @Security BearerAuth
// @Router /pets [post]
func CreatePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parsePetInput(c)
		if err != nil {
			return writePetInputError(c, err)
		}

		var photo *imaging.Image
		if form, err := c.MultipartForm(); err == nil && len(form.File["photo"]) > 0 {
			img, closeFn, err := formImage(c, "photo")
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer closeFn()
			photo = &img
		}

		pet, err := svc.Create(c.UserContext(), middleware.UserID(c), in, photo)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(pet)
	}
}

// UpdatePet overwrites the editable fields of one of the caller's pets.
//
// @Summary Update a pet
// @Tags pets
// @Security BearerAuth
// @Router /pets/{id} [put]
func UpdatePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "id") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		in, err := parsePetInput(c)
		if err != nil {
			return writePetInputError(c, err)
		}
		pet, err := svc.Update(c.UserContext(), middleware.UserID(c), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pet)
	}
}

// DeletePet removes one of the caller's pets and its contacts.
//
// @Summary Delete a pet
// @Tags pets
// @Security BearerAuth
// @Router /pets/{id} [delete]
func DeletePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "id") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadPetPhoto replaces a pet photo (multipart/form-data, field name: photo).
//
// @Summary Upload pet photo
// @Tags pets
// @Security BearerAuth
// @Router /pets/{id}/photo [put]
func UploadPetPhoto(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "id") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		img, closeFn, err := formImage(c, "photo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "photo file is required")
		}
		defer closeFn()

		photoURL, err := svc.UploadPhoto(c.UserContext(), middleware.UserID(c), c.Params("id"), img)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"photo_url": photoURL})
	}
}

type contactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// ListContacts returns the emergency contacts of one of the caller's pets.
//
// @Summary List emergency contacts
// @Tags pets
// @Security BearerAuth
// @Router /pets/{id}/contacts [get]
func ListContacts(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "id") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		contacts, err := svc.ListContacts(c.UserContext(), middleware.UserID(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": contacts, "count": len(contacts)})
	}
}

// AddContact adds an emergency contact to one of the caller's pets.
//
// @Summary Add an emergency contact
// @Tags pets
// @Security BearerAuth
// @Router /pets/{id}/contacts [post]
func AddContact(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "id") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req contactRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		contact, err := svc.AddContact(c.UserContext(), middleware.UserID(c), c.Params("id"), service.ContactInput{
			Name:         req.Name,
			Phone:        req.Phone,
			Relationship: req.Relationship,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(contact)
	}
}

// DeleteContact removes an emergency contact.
//
// @Summary Delete an emergency contact
// @Tags pets
// @Security BearerAuth
// @Router /pets/{id}/contacts/{contactId} [delete]
func DeleteContact(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validID(c, "id") || !validID(c, "contactId") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		err := svc.DeleteContact(c.UserContext(), middleware.UserID(c), c.Params("id"), c.Params("contactId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetCard returns the public medical card of a pet. No authentication.
//
// @Summary Public medical card
// @Tags cards
// @Router /cards/{petId} [get]
func GetCard(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		card, err := svc.Get(c.UserContext(), c.Params("petId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(card)
	}
}
