package locale_test

import (
	"testing"
	"testing/fstest"

	"github.com/fwojciec/diffdoc/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads embedded english table", func(t *testing.T) {
		t.Parallel()

		tbl, err := locale.Load(locale.Default(), "en")

		require.NoError(t, err)
		assert.Equal(t, "en", tbl.Language())
		assert.Equal(t, "Legend", tbl.Format("legend", nil))
	})

	t.Run("missing language fails with ErrLanguageMissing", func(t *testing.T) {
		t.Parallel()

		_, err := locale.Load(locale.Default(), "fr")

		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrLanguageMissing)
	})

	t.Run("loads from any fs.FS", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"pl.json": {Data: []byte(`{"legend":"Legenda"}`)},
		}

		tbl, err := locale.Load(fsys, "pl")

		require.NoError(t, err)
		assert.Equal(t, "Legenda", tbl.Format("legend", nil))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en.json": {Data: []byte(`not json`)},
		}

		_, err := locale.Load(fsys, "en")

		assert.Error(t, err)
	})
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	t.Run("is the set of files present", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en.json": {Data: []byte(`{}`)},
			"de.json": {Data: []byte(`{}`)},
			"pl.json": {Data: []byte(`{}`)},
		}

		assert.Equal(t, []string{"de", "en", "pl"}, locale.Languages(fsys))
	})

	t.Run("embedded defaults include en and de", func(t *testing.T) {
		t.Parallel()

		langs := locale.Languages(locale.Default())

		assert.Contains(t, langs, "en")
		assert.Contains(t, langs, "de")
	})
}

func TestTable_Format(t *testing.T) {
	t.Parallel()

	t.Run("substitutes named placeholders", func(t *testing.T) {
		t.Parallel()

		tbl, err := locale.Load(locale.Default(), "en")
		require.NoError(t, err)

		got := tbl.Format("file_heading", map[string]string{
			"file":   "main.go",
			"status": "modified",
		})

		assert.Equal(t, "File: main.go (modified)", got)
	})

	t.Run("panics on unknown message id", func(t *testing.T) {
		t.Parallel()

		tbl, err := locale.Load(locale.Default(), "en")
		require.NoError(t, err)

		assert.Panics(t, func() {
			tbl.Format("nonexistent_key", nil)
		})
	})

	t.Run("panics on missing placeholder value", func(t *testing.T) {
		t.Parallel()

		tbl, err := locale.Load(locale.Default(), "en")
		require.NoError(t, err)

		assert.Panics(t, func() {
			tbl.Format("file_heading", map[string]string{"file": "main.go"})
		})
	})
}
