package pets

import (
	"errors"
	"fmt"
	"strings"
)

// PetType sugiere las especies más comunes; el servicio acepta texto libre.
// @Enum dog, cat, bird, rabbit, other
type PetType string

const (
	PetTypeDog    PetType = "dog"
	PetTypeCat    PetType = "cat"
	PetTypeBird   PetType = "bird"
	PetTypeRabbit PetType = "rabbit"
	PetTypeOther  PetType = "other"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

var ErrInvalidPayload = errors.New("invalid payload")

type Vaccination struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	NextDueDate string `json:"nextDueDate,omitempty"`
}

// Pet pertenece a un owner (User con userType pet_owner).
type Pet struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"ownerId"`
	Name          string        `json:"name"`
	PetType       PetType       `json:"petType"`
	Breed         string        `json:"breed,omitempty"`
	Gender        Sex           `json:"gender"`
	DateOfBirth   string        `json:"dateOfBirth,omitempty"`
	Weight        *float64      `json:"weight,omitempty"`
	MicrochipID   string        `json:"microchipId,omitempty"`
	Veterinarian  string        `json:"veterinarian,omitempty"`
	VetClinicName string        `json:"vetClinicName,omitempty"`
	Allergies     []string      `json:"allergies,omitempty"`
	Medications   []string      `json:"medications,omitempty"`
	Vaccinations  []Vaccination `json:"vaccinations,omitempty"`
	Photos        []string      `json:"photos,omitempty"`
	IsLost        bool          `json:"isLost"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
}

func (p Pet) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: pet id is required", ErrInvalidPayload)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: pet name is required", ErrInvalidPayload)
	}
	return nil
}

// PetInput: punteros para update parcial, nil = no tocar.
type PetInput struct {
	Name          *string       `json:"name,omitempty"`
	PetType       *PetType      `json:"petType,omitempty"`
	Breed         *string       `json:"breed,omitempty"`
	Gender        *Sex          `json:"gender,omitempty"`
	DateOfBirth   *string       `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Weight        *float64      `json:"weight,omitempty"`
	MicrochipID   *string       `json:"microchipId,omitempty"`
	Veterinarian  *string       `json:"veterinarian,omitempty"`
	VetClinicName *string       `json:"vetClinicName,omitempty"`
	Allergies     []string      `json:"allergies,omitempty"`
	Medications   []string      `json:"medications,omitempty"`
	Vaccinations  []Vaccination `json:"vaccinations,omitempty"`
}

func (in PetInput) ValidateCreate() error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return errors.New("Pet name is required")
	}
	if in.PetType == nil || strings.TrimSpace(string(*in.PetType)) == "" {
		return errors.New("Please select a pet type")
	}
	return nil
}

// LostReport es el cuerpo de POST /pets/:id/lost.
type LostReport struct {
	LastSeenLocation string `json:"lastSeenLocation,omitempty"`
	LastSeenAt       string `json:"lastSeenAt,omitempty"`
	ContactPhone     string `json:"contactPhone,omitempty"`
	Description      string `json:"description,omitempty"`
}
