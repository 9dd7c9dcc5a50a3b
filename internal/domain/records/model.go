package records

import (
	"errors"
	"fmt"
	"strings"
)

// RecordType define las clases de registro médico.
// @Enum visit, lab_result, imaging, prescription, procedure, hospitalization, vaccination, allergy, diagnosis, discharge_summary
type RecordType string

const (
	RecordTypeVisit            RecordType = "visit"
	RecordTypeLabResult        RecordType = "lab_result"
	RecordTypeImaging          RecordType = "imaging"
	RecordTypePrescription     RecordType = "prescription"
	RecordTypeProcedure        RecordType = "procedure"
	RecordTypeHospitalization  RecordType = "hospitalization"
	RecordTypeVaccination      RecordType = "vaccination"
	RecordTypeAllergy          RecordType = "allergy"
	RecordTypeDiagnosis        RecordType = "diagnosis"
	RecordTypeDischargeSummary RecordType = "discharge_summary"
)

func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeVisit, RecordTypeLabResult, RecordTypeImaging, RecordTypePrescription,
		RecordTypeProcedure, RecordTypeHospitalization, RecordTypeVaccination,
		RecordTypeAllergy, RecordTypeDiagnosis, RecordTypeDischargeSummary:
		return true
	}
	return false
}

var ErrInvalidPayload = errors.New("invalid payload")

// MedicalRecord pertenece a un único usuario; timestamps los mantiene el servicio remoto.
type MedicalRecord struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	RecordType  RecordType     `json:"recordType"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Date        string         `json:"date"`
	Provider    string         `json:"provider,omitempty"`
	Facility    string         `json:"facility,omitempty"`
	Diagnosis   []string       `json:"diagnosis,omitempty"`
	Medications []string       `json:"medications,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Attachments []string       `json:"attachments,omitempty"`
	IsCritical  bool           `json:"isCritical"`
	IsShared    bool           `json:"isShared"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
}

func (r MedicalRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: medical record id is required", ErrInvalidPayload)
	}
	if !r.RecordType.Valid() {
		return fmt.Errorf("%w: unknown recordType %q", ErrInvalidPayload, r.RecordType)
	}
	return nil
}

// MedicalRecordInput es el cuerpo parcial de create/update.
type MedicalRecordInput struct {
	RecordType  *RecordType    `json:"recordType,omitempty"`
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Provider    *string        `json:"provider,omitempty"`
	Facility    *string        `json:"facility,omitempty"`
	Diagnosis   []string       `json:"diagnosis,omitempty"`
	Medications []string       `json:"medications,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
	IsCritical  *bool          `json:"isCritical,omitempty"`
	IsShared    *bool          `json:"isShared,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ValidateCreate aplica los requeridos mínimos antes de llamar al servicio.
func (in MedicalRecordInput) ValidateCreate() error {
	if in.RecordType == nil || !in.RecordType.Valid() {
		return errors.New("Please select a record type")
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return errors.New("Title is required")
	}
	if in.Date == nil || strings.TrimSpace(*in.Date) == "" {
		return errors.New("Date is required")
	}
	return nil
}
