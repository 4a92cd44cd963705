// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package incident

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtdash/gtdash/internal/testable"
)

const sampleCSV = `eventid,iyear,imonth,country_txt,region_txt,provstate,city,latitude,longitude,success
197000000001,1970,7,Dominican Republic,Central America & Caribbean,,Santo Domingo,18.456792,-69.951164,1
197000000002,1970,0,Mexico,North America,Federal,Mexico city,19.371887,-99.086624,1
197001000001,1970,1,Philippines,Southeast Asia,Tarlac,Unknown,15.478598,120.599741,1
197001000002,1970,1,Greece,Western Europe,Attica,Athens,,,0
`

func TestParse_Sample(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sampleCSV), "utf-8")
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Len())

	first := tbl.At(0)
	assert.Equal(t, "197000000001", first.EventID)
	assert.Equal(t, 1970, first.Year)
	assert.Equal(t, "Dominican Republic", first.Country)
	assert.Equal(t, "Central America & Caribbean", first.Region)
	assert.Empty(t, first.ProvState)
	assert.Equal(t, "Santo Domingo", first.City)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 18.456792, *first.Latitude, 1e-9)
	assert.True(t, first.Success)
	require.NotNil(t, first.Longitude)

	last := tbl.At(3)
	assert.Nil(t, last.Latitude)
	assert.Nil(t, last.Longitude)
	assert.False(t, last.Success)
	assert.Equal(t, 0, last.SuccessFlag())
}

func TestParse_OptionalColumnsAbsent(t *testing.T) {
	data := "iyear,country_txt,region_txt,provstate,latitude,longitude,success\n" +
		"1990,USA,North America,Texas,1.5,2.5,1\n"
	tbl, err := Parse(strings.NewReader(data), "")
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Empty(t, tbl.At(0).EventID)
	assert.Empty(t, tbl.At(0).City)
}

func TestParse_HeaderOnly(t *testing.T) {
	data := "iyear,country_txt,region_txt,provstate,latitude,longitude,success\n"
	tbl, err := Parse(strings.NewReader(data), "")
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestParse_Latin1(t *testing.T) {
	data := "iyear,country_txt,region_txt,provstate,city,latitude,longitude,success\n" +
		"1985,Colombia,South America,Cundinamarca,Bogot\xe1,4.6,-74.08,1\n"

	tbl, err := Parse(strings.NewReader(data), "latin-1")
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", tbl.At(0).City)
}

func TestParse_Windows1252Label(t *testing.T) {
	data := "iyear,country_txt,region_txt,provstate,latitude,longitude,success\n" +
		"1985,Colombia,South America,Bol\xedvar,,,1\n"

	tbl, err := Parse(strings.NewReader(data), "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "Bolívar", tbl.At(0).ProvState)
}

func TestParse_EncodingMismatch(t *testing.T) {
	data := "iyear,country_txt,region_txt,provstate,city,latitude,longitude,success\n" +
		"1985,Colombia,South America,Cundinamarca,Bogot\xe1,4.6,-74.08,1\n"

	_, err := Parse(strings.NewReader(data), "utf-8")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "invalid UTF-8")
	assert.Contains(t, err.Error(), `"city"`)
}

func TestParse_UnknownEncoding(t *testing.T) {
	_, err := Parse(strings.NewReader(sampleCSV), "klingon-8")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncoding))
}

func TestParse_Errors(t *testing.T) {
	header := "iyear,country_txt,region_txt,provstate,latitude,longitude,success\n"
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"empty file", "", "no header row"},
		{"missing columns", "iyear,country_txt\n1990,USA\n", "missing required columns: region_txt, provstate, latitude, longitude, success"},
		{"bad year", header + "nineteen,USA,North America,Texas,,,1\n", `line 2 column "iyear"`},
		{"bad success", header + "1990,USA,North America,Texas,,,yes\n", `column "success"`},
		{"bad latitude", header + "1990,USA,North America,Texas,north,,1\n", `column "latitude"`},
		{"bad longitude", header + "1990,USA,North America,Texas,1,west,1\n", `column "longitude"`},
		{"short row", header + "1990,USA\n", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data), "utf-8")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse), "want ErrParse, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseFlag(t *testing.T) {
	for _, s := range []string{"1", "1.0"} {
		v, err := parseFlag(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"0", "0.0"} {
		v, err := parseFlag(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := parseFlag("2")
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrorism.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	tbl, err := Load(path, DefaultEncoding)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), DefaultEncoding)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoad_ParseErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o600))

	_, err := Load(path, DefaultEncoding)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), path)
}

func TestCheckEncoding(t *testing.T) {
	for _, name := range []string{"", "latin-1", "LATIN1", "utf-8", "UTF8", "windows-1252", "iso-8859-15"} {
		assert.NoError(t, CheckEncoding(name), name)
	}
	assert.True(t, errors.Is(CheckEncoding("ebcdic-klingon"), ErrEncoding))
}

func TestLoad_ReadFailure(t *testing.T) {
	old := FS
	t.Cleanup(func() { FS = old })
	FS = &testable.MockFileSystem{
		OpenFn: func(string) (io.ReadCloser, error) {
			return &testable.FailingReader{
				Data: []byte("iyear,country_txt,region_txt,provstate,latitude,longitude,success\n1990,USA,North America,Texas,,,1\n"),
				Err:  errors.New("input/output error"),
			}, nil
		},
	}

	_, err := Load("gtd.csv", "utf-8")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "input/output error")
	assert.Contains(t, err.Error(), "gtd.csv")
}

func TestLoad_PermissionDenied(t *testing.T) {
	old := FS
	t.Cleanup(func() { FS = old })
	FS = &testable.MockFileSystem{
		OpenFn: func(name string) (io.ReadCloser, error) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
		},
	}

	_, err := Load("gtd.csv", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrPermission)
}
