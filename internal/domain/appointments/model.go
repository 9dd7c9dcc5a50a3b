package appointments

import (
	"errors"
	"fmt"
	"strings"
)

// AppointmentType
// @Enum in_person, telemedicine, phone, home_visit
type AppointmentType string

const (
	TypeInPerson     AppointmentType = "in_person"
	TypeTelemedicine AppointmentType = "telemedicine"
	TypePhone        AppointmentType = "phone"
	TypeHomeVisit    AppointmentType = "home_visit"
)

func (t AppointmentType) Valid() bool {
	switch t {
	case TypeInPerson, TypeTelemedicine, TypePhone, TypeHomeVisit:
		return true
	}
	return false
}

// AppointmentStatus lo transiciona el servicio remoto (cancel es un PATCH, no un delete).
// @Enum scheduled, confirmed, in_progress, completed, cancelled, no_show, rescheduled
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusInProgress  AppointmentStatus = "in_progress"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusNoShow      AppointmentStatus = "no_show"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// Upcoming reporta si la cita sigue pendiente.
func (s AppointmentStatus) Upcoming() bool {
	return s == StatusScheduled || s == StatusConfirmed || s == StatusRescheduled
}

var ErrInvalidPayload = errors.New("invalid payload")

type Appointment struct {
	ID                string            `json:"id"`
	UserID            string            `json:"userId"`
	AppointmentType   AppointmentType   `json:"appointmentType"`
	Status            AppointmentStatus `json:"status"`
	ProviderName      string            `json:"providerName"`
	ProviderSpecialty string            `json:"providerSpecialty,omitempty"`
	FacilityName      string            `json:"facilityName,omitempty"`
	FacilityAddress   string            `json:"facilityAddress,omitempty"`
	AppointmentDate   string            `json:"appointmentDate"`
	Duration          int               `json:"duration"`
	Reason            string            `json:"reason,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	TelemedicineLink  string            `json:"telemedicineLink,omitempty"`
	ReminderSent      bool              `json:"reminderSent"`
	CreatedAt         string            `json:"createdAt,omitempty"`
	UpdatedAt         string            `json:"updatedAt,omitempty"`
}

func (a Appointment) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidPayload)
	}
	if !a.AppointmentType.Valid() {
		return fmt.Errorf("%w: unknown appointmentType %q", ErrInvalidPayload, a.AppointmentType)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidPayload, a.Status)
	}
	return nil
}

// AppointmentInput es el cuerpo parcial de create/update.
type AppointmentInput struct {
	AppointmentType   *AppointmentType `json:"appointmentType,omitempty"`
	ProviderName      *string          `json:"providerName,omitempty"`
	ProviderSpecialty *string          `json:"providerSpecialty,omitempty"`
	FacilityName      *string          `json:"facilityName,omitempty"`
	FacilityAddress   *string          `json:"facilityAddress,omitempty"`
	AppointmentDate   *string          `json:"appointmentDate,omitempty"`
	Duration          *int             `json:"duration,omitempty"`
	Reason            *string          `json:"reason,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

func (in AppointmentInput) ValidateCreate() error {
	if in.AppointmentType == nil || !in.AppointmentType.Valid() {
		return errors.New("Please select an appointment type")
	}
	if in.ProviderName == nil || strings.TrimSpace(*in.ProviderName) == "" {
		return errors.New("Provider name is required")
	}
	if in.AppointmentDate == nil || strings.TrimSpace(*in.AppointmentDate) == "" {
		return errors.New("Appointment date is required")
	}
	return nil
}
