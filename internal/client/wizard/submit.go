package wizard

import (
	"context"

	"github.com/addiskitchen/platform/internal/client/gateway"
)

// hallPayload mirrors the API's hall section
type hallPayload struct {
	Capacity int      `json:"capacity"`
	Images   []string `json:"images"`
}

// packagePayload mirrors the API's package create/update body
type packagePayload struct {
	Name           gateway.Text   `json:"name"`
	Description    gateway.Text   `json:"description"`
	BasePrice      float64        `json:"basePrice"`
	MinGuests      int            `json:"minGuests"`
	MaxGuests      int            `json:"maxGuests"`
	BannerImage    string         `json:"bannerImage"`
	IncludesHall   bool           `json:"includesHall"`
	Hall           *hallPayload   `json:"hall,omitempty"`
	FoodIDs        []string       `json:"foodIds"`
	DrinkIDs       []string       `json:"drinkIds"`
	Services       []gateway.Text `json:"services"`
	IsActive       bool           `json:"isActive"`
	IsCustom       bool           `json:"isCustom"`
	PerPerson      bool           `json:"perPerson"`
	PerPersonPrice float64        `json:"perPersonPrice"`
}

// buildPayload renders the form record as a wire body. The image kind
// decides each image value: existing images keep their URL so an edit
// never re-sends file content the client does not have; new uploads
// are encoded. An untouched banner in edit mode is sent empty and the
// server keeps what it has.
func buildPayload(form FormData) packagePayload {
	payload := packagePayload{
		Name:           form.Name,
		Description:    form.Description,
		BasePrice:      form.BasePrice,
		MinGuests:      form.MinGuests,
		MaxGuests:      form.MaxGuests,
		BannerImage:    form.Banner.PayloadValue(),
		IncludesHall:   form.IncludesHall,
		FoodIDs:        form.Foods,
		DrinkIDs:       form.Drinks,
		Services:       form.Services,
		IsActive:       form.IsActive,
		IsCustom:       form.IsCustom,
		PerPerson:      form.PerPerson,
		PerPersonPrice: form.PerPersonPrice,
	}
	if form.IncludesHall {
		hall := &hallPayload{Capacity: form.Hall.Capacity}
		for _, img := range form.Hall.Images {
			if v := img.PayloadValue(); v != "" {
				hall.Images = append(hall.Images, v)
			}
		}
		payload.Hall = hall
	}
	return payload
}

// Submit fires the network calls for the preview step. Create mode is a
// single POST carrying every section. Edit mode replays the sections
// through their own endpoints: base fields, then hall, items and
// services, matching how the wizard saved them step by step.
func (s *Session) Submit(ctx context.Context, gw *gateway.Gateway) (*gateway.Package, error) {
	payload := buildPayload(s.form)

	if s.editID == "" {
		return gw.Packages.Create(ctx, payload)
	}

	if _, err := gw.Packages.Update(ctx, s.editID, payload); err != nil {
		return nil, err
	}
	if _, err := gw.UpdatePackageHall(ctx, s.editID, map[string]interface{}{
		"includesHall": payload.IncludesHall,
		"hall":         payload.Hall,
	}); err != nil {
		return nil, err
	}
	if _, err := gw.UpdatePackageItems(ctx, s.editID, map[string]interface{}{
		"foodIds":  payload.FoodIDs,
		"drinkIds": payload.DrinkIDs,
	}); err != nil {
		return nil, err
	}
	pkg, err := gw.UpdatePackageServices(ctx, s.editID, map[string]interface{}{
		"services": payload.Services,
	})
	if err != nil {
		return nil, err
	}
	return pkg, nil
}
