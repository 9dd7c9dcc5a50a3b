package medtapapi

import (
	"context"
	"net/http"

	"medtap-client/internal/domain/pets"
	"medtap-client/internal/platform/httpclient"
)

const petsPath = "/pets"

func (c *Client) ListPets(ctx context.Context) ([]pets.Pet, error) {
	var out []pets.Pet
	if err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: petsPath}, &out); err != nil {
		return nil, err
	}
	if err := checkAll(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, id string) (pets.Pet, error) {
	return getOne[pets.Pet](ctx, c, petsPath, id)
}

func (c *Client) CreatePet(ctx context.Context, in pets.PetInput) (pets.Pet, error) {
	return sendOne[pets.Pet](ctx, c, http.MethodPost, petsPath, in)
}

func (c *Client) UpdatePet(ctx context.Context, id string, in pets.PetInput) (pets.Pet, error) {
	p, err := itemPath(petsPath, id)
	if err != nil {
		return pets.Pet{}, err
	}
	return sendOne[pets.Pet](ctx, c, http.MethodPut, p, in)
}

func (c *Client) DeletePet(ctx context.Context, id string) error {
	return c.deleteOne(ctx, petsPath, id)
}

func (c *Client) ReportLostPet(ctx context.Context, id string, report pets.LostReport) (pets.Pet, error) {
	p, err := itemPath(petsPath, id)
	if err != nil {
		return pets.Pet{}, err
	}
	return sendOne[pets.Pet](ctx, c, http.MethodPost, p+"/lost", report)
}
