package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/domain/inward"
	"ricemill/internal/domain/party"
)

func TestExtractDBColumnsWalksEmbedded(t *testing.T) {
	cols := ExtractDBColumns[party.Party]()

	// Embedded BaseEntity columns come through
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "is_active")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "created_at")
	// Catalog and Party columns
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "phone")
	assert.Contains(t, cols, "gst_number")
}

func TestExtractDBColumnsSkipsUntagged(t *testing.T) {
	type row struct {
		A      string `db:"a"`
		B      string `db:"-"`
		Hidden string
	}
	cols := ExtractDBColumns[row]()
	assert.Equal(t, []string{"a"}, cols)
}

func TestStructToMap(t *testing.T) {
	p := party.New("Ram Traders", party.TypeTrader)
	p.Phone = "9876500000"

	m := StructToMap(p)
	require.NotNil(t, m)

	assert.Equal(t, p.ID, m["id"])
	assert.Equal(t, "Ram Traders", m["name"])
	assert.Equal(t, "9876500000", m["phone"])
	assert.Equal(t, true, m["is_active"])
	assert.Equal(t, 1, m["version"])
}

func TestStructToMapDocument(t *testing.T) {
	r := inward.New(inward.KindPaddy)
	r.DoNumber = "DO-42"
	r.DhanMota = "12.5"

	m := StructToMap(r)
	require.NotNil(t, m)

	assert.Equal(t, "DO-42", m["do_number"])
	assert.Equal(t, "12.5", m["dhan_mota"])
	// Document base columns from the embedded struct
	assert.Contains(t, m, "number")
	assert.Contains(t, m, "date")
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("x"))
}
