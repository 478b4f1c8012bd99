package catalog_test

import (
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/artemis/internal/catalog"
	"github.com/UnknownOlympus/artemis/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat := catalog.Default()

	require.NotEmpty(t, cat.Entries())
	require.NotEmpty(t, cat.Keywords())

	for _, entry := range cat.Entries() {
		assert.NotEmpty(t, entry.Name)
		assert.True(t, entry.Coordinates.Valid(), "entry %q has invalid coordinates", entry.Name)
	}

	assert.Contains(t, cat.Keywords(), "ocean")
	assert.Contains(t, cat.Keywords(), "pacific")
}

func TestLoad(t *testing.T) {
	defer filet.CleanUp(t)

	t.Run("valid catalog file", func(t *testing.T) {
		content := `
entries:
  - name: "Kyiv, Ukraine"
    coordinates:
      latitude: 50.45
      longitude: 30.52
  - name: "Lviv, Ukraine"
    coordinates:
      latitude: 49.84
      longitude: 24.03
keywords:
  - ocean
  - gulf
`
		file := filet.TmpFile(t, "", content)

		cat, err := catalog.Load(file.Name())

		require.NoError(t, err)
		require.Len(t, cat.Entries(), 2)
		assert.Equal(t, "Kyiv, Ukraine", cat.Entries()[0].Name)
		assert.InEpsilon(t, 50.45, cat.Entries()[0].Coordinates.Latitude, 0.0001)
		assert.Equal(t, []string{"ocean", "gulf"}, cat.Keywords())
	})

	t.Run("missing keywords fall back to defaults", func(t *testing.T) {
		content := `
entries:
  - name: "Odesa, Ukraine"
    coordinates:
      latitude: 46.48
      longitude: 30.72
`
		file := filet.TmpFile(t, "", content)

		cat, err := catalog.Load(file.Name())

		require.NoError(t, err)
		assert.Contains(t, cat.Keywords(), "atlantic")
	})

	t.Run("empty entries list", func(t *testing.T) {
		file := filet.TmpFile(t, "", `keywords: [ocean]`)

		cat, err := catalog.Load(file.Name())

		require.ErrorIs(t, err, catalog.ErrEmptyCatalog)
		require.Nil(t, cat)
	})

	t.Run("entry without a name", func(t *testing.T) {
		content := `
entries:
  - name: ""
    coordinates:
      latitude: 10
      longitude: 10
`
		file := filet.TmpFile(t, "", content)

		cat, err := catalog.Load(file.Name())

		require.ErrorIs(t, err, catalog.ErrEmptyEntryName)
		require.Nil(t, cat)
	})

	t.Run("entry with out-of-range coordinates", func(t *testing.T) {
		content := `
entries:
  - name: "Nowhere"
    coordinates:
      latitude: 123.4
      longitude: 10
`
		file := filet.TmpFile(t, "", content)

		cat, err := catalog.Load(file.Name())

		require.ErrorIs(t, err, catalog.ErrInvalidEntryCoords)
		require.Nil(t, cat)
	})

	t.Run("missing file", func(t *testing.T) {
		cat, err := catalog.Load("/nonexistent/catalog.yaml")

		require.Error(t, err)
		require.Nil(t, cat)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})
}

func TestRandom(t *testing.T) {
	cat := catalog.Default()
	total := float64(len(cat.Entries()))

	t.Run("picks the entry under the drawn index", func(t *testing.T) {
		src := mocks.NewSource(t)
		src.On("Uniform", 0.0, total).Return(4.7).Once()

		entry := cat.Random(src)

		assert.Equal(t, cat.Entries()[4], entry)
	})

	t.Run("clamps a maximal draw", func(t *testing.T) {
		src := mocks.NewSource(t)
		src.On("Uniform", 0.0, total).Return(total).Once()

		entry := cat.Random(src)

		assert.Equal(t, cat.Entries()[len(cat.Entries())-1], entry)
	})
}
