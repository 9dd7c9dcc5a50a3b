package users

import (
	"errors"
	"fmt"
	"strings"
)

// UserType es la clasificación de la cuenta.
// @Enum individual, pet_owner, veteran, physician, insurance, legal
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypePetOwner   UserType = "pet_owner"
	UserTypeVeteran    UserType = "veteran"
	UserTypePhysician  UserType = "physician"
	UserTypeInsurance  UserType = "insurance"
	UserTypeLegal      UserType = "legal"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeIndividual, UserTypePetOwner, UserTypeVeteran,
		UserTypePhysician, UserTypeInsurance, UserTypeLegal:
		return true
	}
	return false
}

// UserStatus lo controla el servicio remoto.
type UserStatus string

const (
	UserStatusActive              UserStatus = "active"
	UserStatusInactive            UserStatus = "inactive"
	UserStatusSuspended           UserStatus = "suspended"
	UserStatusPendingVerification UserStatus = "pending_verification"
)

var ErrInvalidPayload = errors.New("invalid payload")

// User es la cuenta. id y email no cambian después de creada.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	UserType      UserType   `json:"userType"`
	Status        UserStatus `json:"status,omitempty"`
	EmailVerified bool       `json:"emailVerified"`
	PhoneNumber   string     `json:"phoneNumber,omitempty"`
	PhoneVerified bool       `json:"phoneVerified"`
	LastLoginAt   string     `json:"lastLoginAt,omitempty"`
	CreatedAt     string     `json:"createdAt,omitempty"`
	UpdatedAt     string     `json:"updatedAt,omitempty"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("%w: user.id is required", ErrInvalidPayload)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: user.email is required", ErrInvalidPayload)
	}
	if u.UserType != "" && !u.UserType.Valid() {
		return fmt.Errorf("%w: unknown userType %q", ErrInvalidPayload, u.UserType)
	}
	return nil
}

// Profile es 1:1 con User.
type Profile struct {
	ID                    string   `json:"id,omitempty"`
	UserID                string   `json:"userId,omitempty"`
	FirstName             string   `json:"firstName,omitempty"`
	LastName              string   `json:"lastName,omitempty"`
	DateOfBirth           string   `json:"dateOfBirth,omitempty"`
	Gender                string   `json:"gender,omitempty"`
	Height                *float64 `json:"height,omitempty"`
	Weight                *float64 `json:"weight,omitempty"`
	BloodType             string   `json:"bloodType,omitempty"`
	Allergies             []string `json:"allergies,omitempty"`
	ChronicConditions     []string `json:"chronicConditions,omitempty"`
	Medications           []string `json:"medications,omitempty"`
	EmergencyContactName  string   `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string   `json:"emergencyContactPhone,omitempty"`
	PrimaryCarePhysician  string   `json:"primaryCarePhysician,omitempty"`
	InsuranceProvider     string   `json:"insuranceProvider,omitempty"`
	ProfilePicture        string   `json:"profilePicture,omitempty"`
	Address               string   `json:"address,omitempty"`
	City                  string   `json:"city,omitempty"`
	State                 string   `json:"state,omitempty"`
	ZipCode               string   `json:"zipCode,omitempty"`
	Country               string   `json:"country,omitempty"`
}

// FullName para vistas.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SessionUser es el usuario cacheado en la sesión (user + profile opcional).
type SessionUser struct {
	User
	Profile *Profile `json:"profile,omitempty"`
}

func (s SessionUser) Validate() error {
	return s.User.Validate()
}

// Clone copia profunda (slices y punteros incluidos).
func (s SessionUser) Clone() SessionUser {
	out := s
	if s.Profile != nil {
		p := s.Profile.clone()
		out.Profile = &p
	}
	return out
}

// Clone copia profunda del perfil.
func (p Profile) Clone() Profile {
	return p.clone()
}

func (p Profile) clone() Profile {
	out := p
	out.Height = cloneFloat(p.Height)
	out.Weight = cloneFloat(p.Weight)
	out.Allergies = cloneStrings(p.Allergies)
	out.ChronicConditions = cloneStrings(p.ChronicConditions)
	out.Medications = cloneStrings(p.Medications)
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
