package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate(" 2021-04-09 ")
	require.NoError(t, err)
	assert.Equal(t, "2021-04-09", d.String())

	_, err = ParseDate("04/09/2021")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Birthday *Date `json:"birthday"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"birthday":"2019-12-31"}`), &w))
	require.NotNil(t, w.Birthday)
	assert.Equal(t, 2019, w.Birthday.Year())

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthday":"2019-12-31"}`, string(out))

	out, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthday":null}`, string(out))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2020, 2, 29, 13, 0, 0, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "2020-02-29", d.String())

	require.NoError(t, d.Scan([]byte("2018-07-01")))
	assert.Equal(t, "2018-07-01", d.String())

	assert.Error(t, d.Scan(42))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2018-07-01", v)
}

func TestVet_FullAddress(t *testing.T) {
	v := Vet{Address: "123 Main St", City: "Oakland", State: "CA", ZipCode: "94610"}
	assert.Equal(t, "123 Main St, Oakland, CA 94610", v.FullAddress())
}
