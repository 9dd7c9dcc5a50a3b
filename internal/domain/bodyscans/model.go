package bodyscans

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPayload = errors.New("invalid payload")

// Position3D ubica la marca sobre el modelo del cuerpo.
type Position3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type BodyScan struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	BodyPart    string         `json:"bodyPart"`
	ScanType    string         `json:"scanType"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Date        string         `json:"date"`
	Position3D  *Position3D    `json:"position3D,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Images      []string       `json:"images,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
}

func (b BodyScan) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("%w: body scan id is required", ErrInvalidPayload)
	}
	return nil
}

type BodyScanInput struct {
	BodyPart    *string        `json:"bodyPart,omitempty"`
	ScanType    *string        `json:"scanType,omitempty"`
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Position3D  *Position3D    `json:"position3D,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
	IsActive    *bool          `json:"isActive,omitempty"`
}

func (in BodyScanInput) ValidateCreate() error {
	if in.BodyPart == nil || strings.TrimSpace(*in.BodyPart) == "" {
		return errors.New("Please select a body part")
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return errors.New("Title is required")
	}
	return nil
}

// GroupByBodyPart agrupa las marcas activas por zona para la vista 3D.
func GroupByBodyPart(scans []BodyScan) map[string][]BodyScan {
	out := make(map[string][]BodyScan)
	for _, s := range scans {
		if !s.IsActive {
			continue
		}
		out[s.BodyPart] = append(out[s.BodyPart], s)
	}
	return out
}
