package repository_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/UnknownOlympus/demeter/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const joesLine = "Joseph's LLC\tJoe's\t123 Main\tLA\t90041\tFull-service restaurants\t2020-01-01\t34.126813\t-118.211904\n"

func TestTSVWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := repository.NewTSVWriter(&buf)

	require.NoError(t, writer.Write(sampleBusinesses()[0]))
	require.NoError(t, writer.Write(models.Business{FormalName: "ACME", Latitude: "34.1000", Longitude: " -118.2000"}))
	require.NoError(t, writer.Flush())

	assert.Equal(t,
		"Joseph's LLC\tJoe's\t123 Main\tLA\t90041\tFull-service restaurants\t2020-01-01\t34.126813\t -118.211904\n"+
			"ACME\t\t\t\t\t\t\t34.1000\t -118.2000\n",
		buf.String(),
	)
}

func TestReadBusinesses(t *testing.T) {
	t.Run("reads records in order", func(t *testing.T) {
		input := joesLine + "ACME\t\t1 Elm\tLA\t90042\tBakeries\t2019-05-01\t34.1300\t -118.2100\n"

		businesses, err := repository.ReadBusinesses(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, businesses, 2)
		assert.Equal(t, "Joe's", businesses[0].DisplayName())
		assert.Equal(t, "ACME", businesses[1].DisplayName())
		assert.Equal(t, " -118.2100", businesses[1].Longitude)
	})

	t.Run("round trips the writer output", func(t *testing.T) {
		var buf bytes.Buffer
		writer := repository.NewTSVWriter(&buf)
		require.NoError(t, writer.Write(sampleBusinesses()[0]))
		require.NoError(t, writer.Flush())

		businesses, err := repository.ReadBusinesses(&buf)

		require.NoError(t, err)
		require.Len(t, businesses, 1)
		assert.Equal(t, "Joe's", businesses[0].InformalName)
		coords, err := businesses[0].Coordinates()
		require.NoError(t, err)
		assert.Equal(t, -118.211904, coords.Longitude)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := repository.ReadBusinesses(strings.NewReader(joesLine + "only\ttwo\n"))

		require.ErrorIs(t, err, repository.ErrFieldCount)
		var lineErr *repository.LineError
		require.True(t, errors.As(err, &lineErr))
		assert.Equal(t, 2, lineErr.Line)
	})

	t.Run("very long line", func(t *testing.T) {
		name := strings.Repeat("A", 2*1024*1024)
		input := name + "\t\t1 Elm\tLA\t90042\tBakeries\t2019-05-01\t34.1300\t-118.2100"

		businesses, err := repository.ReadBusinesses(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, businesses, 1)
		assert.Equal(t, name, businesses[0].FormalName)
		assert.Equal(t, "-118.2100", businesses[0].Longitude)
	})

	t.Run("empty input", func(t *testing.T) {
		businesses, err := repository.ReadBusinesses(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, businesses)
	})
}

func TestFileStore_LoadBusinesses(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")

	t.Run("loads dataset", func(t *testing.T) {
		path := filepath.Join(dir, "active-businesses.tsv")
		filet.File(t, path, joesLine)

		businesses, err := repository.NewFileStore(path, slog.Default()).LoadBusinesses(testContext(t))

		require.NoError(t, err)
		require.Len(t, businesses, 1)
		assert.Equal(t, "Joseph's LLC", businesses[0].FormalName)
	})

	t.Run("missing dataset", func(t *testing.T) {
		path := filepath.Join(dir, "missing.tsv")

		_, err := repository.NewFileStore(path, slog.Default()).LoadBusinesses(testContext(t))

		require.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorContains(t, err, "failed to open dataset")
	})

	t.Run("malformed dataset", func(t *testing.T) {
		path := filepath.Join(dir, "broken.tsv")
		filet.File(t, path, "broken\n")

		_, err := repository.NewFileStore(path, slog.Default()).LoadBusinesses(testContext(t))

		require.ErrorIs(t, err, repository.ErrFieldCount)
	})
}
