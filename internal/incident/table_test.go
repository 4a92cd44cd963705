package incident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_CopiesInput(t *testing.T) {
	in := []Record{{Year: 1990, Country: "USA"}}
	tbl := NewTable(in)
	in[0].Country = "France"

	assert.Equal(t, "USA", tbl.At(0).Country)
}

func TestTable_AtReturnsCopy(t *testing.T) {
	lat := 10.0
	tbl := NewTable([]Record{{Year: 1990, Country: "USA", Latitude: &lat}})
	out := tbl.At(0)
	out.Country = "France"
	*out.Latitude = 99

	assert.Equal(t, "USA", tbl.At(0).Country)
	assert.InDelta(t, 10.0, *tbl.At(0).Latitude, 1e-9)
}

func TestTable_NilIsEmpty(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 0, tbl.ByCountry("USA").Len())
	assert.Equal(t, 0, tbl.Filter(func(Record) bool { return true }).Len())
}

func TestTable_EachStopsEarly(t *testing.T) {
	tbl := NewTable([]Record{{Year: 1}, {Year: 2}, {Year: 3}})
	var seen []int
	tbl.Each(func(_ int, r Record) bool {
		seen = append(seen, r.Year)
		return r.Year < 2
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestTable_ByCountry(t *testing.T) {
	tbl := NewTable([]Record{
		{Year: 1990, Country: "USA"},
		{Year: 1991, Country: "France"},
		{Year: 1992, Country: "USA"},
	})

	usa := tbl.ByCountry("USA")
	require.Equal(t, 2, usa.Len())
	assert.Equal(t, 1990, usa.At(0).Year)
	assert.Equal(t, 1992, usa.At(1).Year)
	assert.Equal(t, 3, tbl.Len(), "source table must be unchanged")
}

func TestTable_CoordinatesNotShared(t *testing.T) {
	lat := 10.0
	tbl := NewTable([]Record{{Year: 1990, Latitude: &lat}})
	lat = 99

	got := tbl.At(0)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 10.0, *got.Latitude, 1e-9)

	*got.Latitude = 50
	assert.InDelta(t, 10.0, *tbl.At(0).Latitude, 1e-9)
}
