package medtapapi

import (
	"context"
	"net/http"

	"medtap-client/internal/domain/appointments"
	"medtap-client/internal/domain/records"
	"medtap-client/internal/platform/httpclient"
)

const (
	medicalRecordsPath = "/medical-records"
	appointmentsPath   = "/appointments"
)

func (c *Client) ListMedicalRecords(ctx context.Context) ([]records.MedicalRecord, error) {
	var out []records.MedicalRecord
	if err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: medicalRecordsPath}, &out); err != nil {
		return nil, err
	}
	if err := checkAll(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMedicalRecord(ctx context.Context, id string) (records.MedicalRecord, error) {
	return getOne[records.MedicalRecord](ctx, c, medicalRecordsPath, id)
}

func (c *Client) CreateMedicalRecord(ctx context.Context, in records.MedicalRecordInput) (records.MedicalRecord, error) {
	return sendOne[records.MedicalRecord](ctx, c, http.MethodPost, medicalRecordsPath, in)
}

func (c *Client) UpdateMedicalRecord(ctx context.Context, id string, in records.MedicalRecordInput) (records.MedicalRecord, error) {
	p, err := itemPath(medicalRecordsPath, id)
	if err != nil {
		return records.MedicalRecord{}, err
	}
	return sendOne[records.MedicalRecord](ctx, c, http.MethodPut, p, in)
}

func (c *Client) DeleteMedicalRecord(ctx context.Context, id string) error {
	return c.deleteOne(ctx, medicalRecordsPath, id)
}

func (c *Client) ListAppointments(ctx context.Context) ([]appointments.Appointment, error) {
	var out []appointments.Appointment
	if err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: appointmentsPath}, &out); err != nil {
		return nil, err
	}
	if err := checkAll(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAppointment(ctx context.Context, id string) (appointments.Appointment, error) {
	return getOne[appointments.Appointment](ctx, c, appointmentsPath, id)
}

func (c *Client) CreateAppointment(ctx context.Context, in appointments.AppointmentInput) (appointments.Appointment, error) {
	return sendOne[appointments.Appointment](ctx, c, http.MethodPost, appointmentsPath, in)
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, in appointments.AppointmentInput) (appointments.Appointment, error) {
	p, err := itemPath(appointmentsPath, id)
	if err != nil {
		return appointments.Appointment{}, err
	}
	return sendOne[appointments.Appointment](ctx, c, http.MethodPut, p, in)
}

// CancelAppointment es un PATCH de estado; la cita sigue existiendo.
func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	p, err := itemPath(appointmentsPath, id)
	if err != nil {
		return err
	}
	return c.do(ctx, httpclient.Request{Method: http.MethodPatch, Path: p + "/cancel"}, nil)
}

// helpers genéricos para las entidades CRUD

func getOne[T validator](ctx context.Context, c *Client, collection, id string) (T, error) {
	var zero T
	p, err := itemPath(collection, id)
	if err != nil {
		return zero, err
	}
	var out T
	if err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: p}, &out); err != nil {
		return zero, err
	}
	if err := checkOne(out); err != nil {
		return zero, err
	}
	return out, nil
}

func sendOne[T validator](ctx context.Context, c *Client, method, path string, in any) (T, error) {
	var zero T
	var out T
	if err := c.do(ctx, httpclient.Request{Method: method, Path: path, JSON: in}, &out); err != nil {
		return zero, err
	}
	if err := checkOne(out); err != nil {
		return zero, err
	}
	return out, nil
}

func (c *Client) deleteOne(ctx context.Context, collection, id string) error {
	p, err := itemPath(collection, id)
	if err != nil {
		return err
	}
	return c.do(ctx, httpclient.Request{Method: http.MethodDelete, Path: p}, nil)
}
