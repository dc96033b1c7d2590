package wizard

import (
	"encoding/base64"

	"github.com/addiskitchen/platform/internal/client/gateway"
)

// ImageKind distinguishes the two origins of an image field
type ImageKind int

const (
	// ImageNone means no image is set
	ImageNone ImageKind = iota
	// ImageExisting is a server-side image known only by URL (edit mode)
	ImageExisting
	// ImageNew is a freshly selected upload held as bytes (create mode)
	ImageNew
)

// ImageRef is an image field value. Edit mode starts from URLs because
// the server never returns re-uploadable file content; create mode
// holds the raw bytes. Submission picks the payload from the kind, so
// no fake file content is ever synthesized.
type ImageRef struct {
	Kind ImageKind
	URL  string
	Name string
	Blob []byte
}

// ExistingImage wraps a server-side URL
func ExistingImage(url string) ImageRef {
	if url == "" {
		return ImageRef{}
	}
	return ImageRef{Kind: ImageExisting, URL: url}
}

// NewImage wraps freshly selected upload bytes
func NewImage(name string, blob []byte) ImageRef {
	return ImageRef{Kind: ImageNew, Name: name, Blob: blob}
}

// IsZero reports whether no image is set
func (r ImageRef) IsZero() bool {
	return r.Kind == ImageNone
}

// PayloadValue renders the wire value for a submit: existing images
// keep their URL, new ones are sent base64-encoded.
func (r ImageRef) PayloadValue() string {
	switch r.Kind {
	case ImageExisting:
		return r.URL
	case ImageNew:
		return base64.StdEncoding.EncodeToString(r.Blob)
	default:
		return ""
	}
}

// HallData is the optional venue section of the form
type HallData struct {
	Capacity int
	Images   []ImageRef
}

// FormData is the single aggregate record the wizard collects across
// all of its steps.
type FormData struct {
	Name           gateway.Text
	Description    gateway.Text
	BasePrice      float64
	MinGuests      int
	MaxGuests      int
	Banner         ImageRef
	IncludesHall   bool
	Hall           HallData
	Foods          []string
	Drinks         []string
	Services       []gateway.Text
	IsActive       bool
	IsCustom       bool
	PerPerson      bool
	PerPersonPrice float64
}

// Patch is a shallow partial update of FormData: nil fields are left
// untouched, set fields fully replace their target.
type Patch struct {
	Name           *gateway.Text
	Description    *gateway.Text
	BasePrice      *float64
	MinGuests      *int
	MaxGuests      *int
	Banner         *ImageRef
	IncludesHall   *bool
	Hall           *HallData
	Foods          *[]string
	Drinks         *[]string
	Services       *[]gateway.Text
	IsActive       *bool
	IsCustom       *bool
	PerPerson      *bool
	PerPersonPrice *float64
}

func (p Patch) apply(d *FormData) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.BasePrice != nil {
		d.BasePrice = *p.BasePrice
	}
	if p.MinGuests != nil {
		d.MinGuests = *p.MinGuests
	}
	if p.MaxGuests != nil {
		d.MaxGuests = *p.MaxGuests
	}
	if p.Banner != nil {
		d.Banner = *p.Banner
	}
	if p.IncludesHall != nil {
		d.IncludesHall = *p.IncludesHall
	}
	if p.Hall != nil {
		d.Hall = *p.Hall
	}
	if p.Foods != nil {
		d.Foods = *p.Foods
	}
	if p.Drinks != nil {
		d.Drinks = *p.Drinks
	}
	if p.Services != nil {
		d.Services = *p.Services
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
	if p.IsCustom != nil {
		d.IsCustom = *p.IsCustom
	}
	if p.PerPerson != nil {
		d.PerPerson = *p.PerPerson
	}
	if p.PerPersonPrice != nil {
		d.PerPersonPrice = *p.PerPersonPrice
	}
}

// Helper constructors for patch literals

// Bool returns a pointer to b
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i
func Int(i int) *int { return &i }
