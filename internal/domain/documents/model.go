package documents

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DocumentType
// @Enum medical_form, lab_report, imaging_report, prescription, insurance_card, id_card, advance_directive, consent_form, discharge_summary, billing_statement, other
type DocumentType string

const (
	TypeMedicalForm      DocumentType = "medical_form"
	TypeLabReport        DocumentType = "lab_report"
	TypeImagingReport    DocumentType = "imaging_report"
	TypePrescription     DocumentType = "prescription"
	TypeInsuranceCard    DocumentType = "insurance_card"
	TypeIDCard           DocumentType = "id_card"
	TypeAdvanceDirective DocumentType = "advance_directive"
	TypeConsentForm      DocumentType = "consent_form"
	TypeDischargeSummary DocumentType = "discharge_summary"
	TypeBillingStatement DocumentType = "billing_statement"
	TypeOther            DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case TypeMedicalForm, TypeLabReport, TypeImagingReport, TypePrescription,
		TypeInsuranceCard, TypeIDCard, TypeAdvanceDirective, TypeConsentForm,
		TypeDischargeSummary, TypeBillingStatement, TypeOther:
		return true
	}
	return false
}

var ErrInvalidPayload = errors.New("invalid payload")

type Document struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	DocumentType  DocumentType `json:"documentType"`
	Status        string       `json:"status"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	FileName      string       `json:"fileName"`
	FileSize      int64        `json:"fileSize"`
	FileURL       string       `json:"fileUrl"`
	MimeType      string       `json:"mimeType"`
	UploadedAt    string       `json:"uploadedAt,omitempty"`
	SignedAt      string       `json:"signedAt,omitempty"`
	SignatureData string       `json:"signatureData,omitempty"`
	ExpiryDate    string       `json:"expiryDate,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	CreatedAt     string       `json:"createdAt,omitempty"`
	UpdatedAt     string       `json:"updatedAt,omitempty"`
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: document id is required", ErrInvalidPayload)
	}
	if !d.DocumentType.Valid() {
		return fmt.Errorf("%w: unknown documentType %q", ErrInvalidPayload, d.DocumentType)
	}
	return nil
}

// Signed reporta si el documento ya tiene firma.
func (d Document) Signed() bool {
	return d.SignedAt != ""
}

// UploadInput viaja como multipart/form-data.
type UploadInput struct {
	DocumentType DocumentType
	Title        string
	Description  string

	FileName    string
	ContentType string
	File        io.Reader
}

func (in UploadInput) Validate() error {
	if !in.DocumentType.Valid() {
		return errors.New("Please select a document type")
	}
	if in.File == nil || strings.TrimSpace(in.FileName) == "" {
		return errors.New("Please choose a file to upload")
	}
	return nil
}

// SignInput es el cuerpo de POST /documents/:id/sign.
type SignInput struct {
	SignatureData string `json:"signatureData"`
}
