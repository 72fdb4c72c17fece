package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type chainTickFixture struct {
	Symbol string  `json:"symbol"`
	Strike float64 `json:"strike"`
}

func TestParseTradierResponse(t *testing.T) {
	t.Run("list payload", func(t *testing.T) {
		payload := []byte(`{"options":{"option":[{"symbol":"KO260220P00060000","strike":60},{"symbol":"KO260220P00062500","strike":62.5}]}}`)

		ticks, err := ParseTradierResponse[chainTickFixture](payload)
		assert.NoError(t, err)
		assert.Len(t, ticks, 2)
		assert.Equal(t, 60.0, ticks[0].Strike)
		assert.Equal(t, 62.5, ticks[1].Strike)
	})

	t.Run("single object collapses to one-element slice", func(t *testing.T) {
		payload := []byte(`{"options":{"option":{"symbol":"KO260220P00060000","strike":60}}}`)

		ticks, err := ParseTradierResponse[chainTickFixture](payload)
		assert.NoError(t, err)
		assert.Len(t, ticks, 1)
		assert.Equal(t, "KO260220P00060000", ticks[0].Symbol)
	})

	t.Run("scalar list of dates", func(t *testing.T) {
		payload := []byte(`{"expirations":{"date":["2026-02-20","2026-03-20"]}}`)

		dates, err := ParseTradierResponse[string](payload)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2026-02-20", "2026-03-20"}, dates)
	})

	t.Run("single scalar date", func(t *testing.T) {
		payload := []byte(`{"expirations":{"date":"2026-02-20"}}`)

		dates, err := ParseTradierResponse[string](payload)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2026-02-20"}, dates)
	})

	t.Run("null data yields empty slice", func(t *testing.T) {
		payload := []byte(`{"expirations":null}`)

		dates, err := ParseTradierResponse[string](payload)
		assert.NoError(t, err)
		assert.Len(t, dates, 0)
	})

	t.Run("quoted null data yields empty slice", func(t *testing.T) {
		payload := []byte(`{"expirations":"null"}`)

		dates, err := ParseTradierResponse[string](payload)
		assert.NoError(t, err)
		assert.Len(t, dates, 0)
	})

	t.Run("nested null yields empty slice", func(t *testing.T) {
		payload := []byte(`{"expirations":{"date":null}}`)

		dates, err := ParseTradierResponse[string](payload)
		assert.NoError(t, err)
		assert.Len(t, dates, 0)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseTradierResponse[string]([]byte(`not json`))
		assert.Error(t, err)
	})

	t.Run("unexpected header shape", func(t *testing.T) {
		_, err := ParseTradierResponse[string]([]byte(`{"a":{},"b":{}}`))
		assert.Error(t, err)
	})
}
