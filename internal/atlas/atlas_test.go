package atlas

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.GreaterOrEqual(t, cat.Len(), 3)

	names := cat.Names()
	require.Len(t, names, cat.Len())
	require.True(t, sort.StringsAreSorted(names))

	fr, ok := cat.Lookup("France")
	require.True(t, ok)
	require.Equal(t, "FR", fr.Code)
	require.NotNil(t, fr.Geometry)
	// Centroid should land somewhere in metropolitan France.
	require.InDelta(t, 46.5, fr.Lat, 3)
	require.InDelta(t, 2.5, fr.Lng, 4)

	_, ok = cat.Lookup("Atlantis")
	require.False(t, ok)
}

func TestLoadSkipsUnusableFeatures(t *testing.T) {
	data := []byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"name":"Alpha","iso_a2":"aa"},
		 "geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}},
		{"type":"Feature","properties":{"name":"NoCode"},
		 "geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}},
		{"type":"Feature","properties":{"name":"Dependency","iso_a2":"dd","type":"Dependency"},
		 "geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}},
		{"type":"Feature","properties":{"name":"Alpha","iso_a2":"zz"},
		 "geometry":{"type":"Polygon","coordinates":[[[10,10],[12,10],[12,12],[10,12],[10,10]]]}},
		{"type":"Feature","properties":{"name":"Degenerate","iso_a2":"gg"},
		 "geometry":{"type":"Polygon","coordinates":[[[5,5],[5,5],[5,5],[5,5]]]}}
	]}`)

	cat, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	// The first Alpha wins; the duplicate with a different code is dropped.
	alpha := cat.At(0)
	require.Equal(t, "Alpha", alpha.Name)
	require.Equal(t, "AA", alpha.Code)
	require.InDelta(t, 1.0, alpha.Lat, 1e-9)
	require.InDelta(t, 1.0, alpha.Lng, 1e-9)
}

func TestLoadEmptyCollection(t *testing.T) {
	_, err := Load([]byte(`{"type":"FeatureCollection","features":[]}`))
	require.True(t, errors.Is(err, ErrNoCountries))
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	_, err := Load([]byte(`{"type":"FeatureCollection"`))
	require.Error(t, err)
}
