package wizard

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addiskitchen/platform/internal/client/gateway"
)

func TestImageRef_PayloadValue(t *testing.T) {
	assert.Equal(t, "", ImageRef{}.PayloadValue())

	existing := ExistingImage("https://cdn.example.com/a.jpg")
	assert.Equal(t, "https://cdn.example.com/a.jpg", existing.PayloadValue())

	fresh := NewImage("a.jpg", []byte{0x01, 0x02})
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0x01, 0x02}), fresh.PayloadValue())
}

func TestExistingImage_EmptyURL(t *testing.T) {
	assert.True(t, ExistingImage("").IsZero())
}

func TestBuildPayload(t *testing.T) {
	form := FormData{
		Name:         gateway.Text{En: "Wedding", Am: "ጋብቻ"},
		BasePrice:    250,
		MinGuests:    50,
		MaxGuests:    300,
		Banner:       ExistingImage("https://cdn.example.com/banner.jpg"),
		IncludesHall: true,
		Hall: HallData{
			Capacity: 200,
			Images: []ImageRef{
				ExistingImage("https://cdn.example.com/hall.jpg"),
				NewImage("new.jpg", []byte("raw")),
				{}, // an empty slot contributes nothing
			},
		},
		Foods:    []string{"f1"},
		Drinks:   []string{"d1"},
		Services: []gateway.Text{{En: "Decoration", Am: "ማስዋብ"}},
		IsActive: true,
	}

	payload := buildPayload(form)

	assert.Equal(t, "https://cdn.example.com/banner.jpg", payload.BannerImage)
	require.NotNil(t, payload.Hall)
	assert.Equal(t, 200, payload.Hall.Capacity)
	require.Len(t, payload.Hall.Images, 2)
	assert.Equal(t, "https://cdn.example.com/hall.jpg", payload.Hall.Images[0])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("raw")), payload.Hall.Images[1])
}

func TestBuildPayload_NoHallWhenDeclined(t *testing.T) {
	form := FormData{
		Name:         gateway.Text{En: "Simple", Am: "ቀላል"},
		BasePrice:    100,
		IncludesHall: false,
		Hall:         HallData{Capacity: 50},
	}

	payload := buildPayload(form)
	assert.Nil(t, payload.Hall)
	assert.False(t, payload.IncludesHall)
}
