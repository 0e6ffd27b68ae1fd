package store

import (
	"testing"
	"time"

	"barbershop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeReservation(t *testing.T) {
	at := time.Date(2026, time.March, 4, 9, 30, 0, 0, time.Local)
	in := models.Reservation{
		ID:         "ignored",
		Username:   "jdoe",
		Client:     "Jane Doe",
		Service:    "Classic Cut",
		ProviderID: "fadi",
		Provider:   "Fadi Salameh",
		DateTime:   models.NewWallClock(at),
	}

	doc, err := Encode(in)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04T09:30:00", doc["dateTime"])
	assert.Equal(t, "Fadi Salameh", doc["barber"])
	assert.NotContains(t, doc, "ID")

	var out models.Reservation
	require.NoError(t, Decode(doc, &out))
	assert.True(t, at.Equal(out.DateTime.Time))
	out.DateTime, in.DateTime = models.WallClock{}, models.WallClock{}
	in.ID = ""
	assert.Equal(t, in, out)
}

func TestCloneIsDeep(t *testing.T) {
	src := Document{
		"items":        []interface{}{map[string]interface{}{"name": "Comb"}},
		"verification": map[string]interface{}{"verified": false},
	}
	dst := Clone(src)
	dst["items"].([]interface{})[0].(map[string]interface{})["name"] = "Brush"
	dst["verification"].(map[string]interface{})["verified"] = true

	assert.Equal(t, "Comb", src["items"].([]interface{})[0].(map[string]interface{})["name"])
	assert.Equal(t, false, src["verification"].(map[string]interface{})["verified"])
	assert.Nil(t, Clone(nil))
}

func TestMergeIsShallow(t *testing.T) {
	dst := Document{"verification": map[string]interface{}{"verified": true, "code": "123456"}}
	out := merge(dst, Document{"verification": map[string]interface{}{"adminApproved": true}})
	assert.Equal(t, map[string]interface{}{"adminApproved": true}, out["verification"])
}

func TestMergeDottedPath(t *testing.T) {
	dst := Document{"verification": map[string]interface{}{"verified": true, "code": "123456"}}
	out := merge(dst, Document{"verification.adminApproved": true, "profile.city": "Haifa"})
	assert.Equal(t, map[string]interface{}{"verified": true, "code": "123456", "adminApproved": true}, out["verification"])
	assert.Equal(t, map[string]interface{}{"city": "Haifa"}, out["profile"])
}
