package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEnvelopeShape(t *testing.T) {
	resp := ListEnvelope("parties", []string{"a", "b"}, 42, 2, 20)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.True(t, decoded.Success)
	assert.Contains(t, decoded.Data, "parties")
	assert.EqualValues(t, 42, decoded.Data["totalParties"])
	assert.EqualValues(t, 3, decoded.Data["totalPages"])
	assert.EqualValues(t, 2, decoded.Data["currentPage"])
	assert.EqualValues(t, 20, decoded.Data["pageSize"])
	assert.Equal(t, true, decoded.Data["hasPrev"])
	assert.Equal(t, true, decoded.Data["hasNext"])
}

func TestListEnvelopeLastPage(t *testing.T) {
	resp := ListEnvelope("sales", nil, 10, 1, 20)

	data := resp.Data.(map[string]any)
	assert.EqualValues(t, 1, data["totalPages"])
	assert.Equal(t, false, data["hasPrev"])
	assert.Equal(t, false, data["hasNext"])
	// nil items still serialize as an empty array, never null
	assert.NotNil(t, data["sales"])
}

func TestPageQueryNormalize(t *testing.T) {
	q := PageQuery{Page: -3, PageSize: 5000}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.PageSize)

	q = PageQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)
}

func TestPageQueryToFilterDates(t *testing.T) {
	q := PageQuery{Page: 2, PageSize: 10, DateFrom: "2025-01-01", DateTo: "2025-01-31"}
	f := q.ToFilter()

	require.NotNil(t, f.DateFrom)
	require.NotNil(t, f.DateTo)
	// DateTo is exclusive: the whole last day is included
	assert.Equal(t, "2025-02-01", f.DateTo.Format("2006-01-02"))
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, 10, f.Offset)
}
