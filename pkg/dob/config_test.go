package dob_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dateinput/pkg/dob"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("zero config keeps defaults", func(t *testing.T) {
		t.Parallel()

		v, err := dob.NewFromConfig(dob.Config{})
		require.NoError(t, err)
		assert.Equal(t, dob.DefaultMinYear, v.MinYear())
	})

	t.Run("min year and messages file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("too_old: \"Born too early\"\n"), 0o600))

		v, err := dob.NewFromConfig(dob.Config{MinYear: 1950, MessagesFile: path}, dob.WithClock(func() time.Time { return fixedNow }))
		require.NoError(t, err)
		assert.Equal(t, 1950, v.MinYear())

		res := v.Validate("01/01/1949")
		assert.Equal(t, dob.TooOld, res.Reason)
		assert.Equal(t, "Born too early", res.Message())
	})

	t.Run("options win over config", func(t *testing.T) {
		t.Parallel()

		v, err := dob.NewFromConfig(dob.Config{MinYear: 1950}, dob.WithMinYear(1920))
		require.NoError(t, err)
		assert.Equal(t, 1920, v.MinYear())
	})

	t.Run("time zone", func(t *testing.T) {
		t.Parallel()

		v, err := dob.NewFromConfig(dob.Config{Location: "UTC"})
		require.NoError(t, err)
		d, err := v.Parse("02/29/2024")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, d.Location())
	})

	t.Run("bad time zone", func(t *testing.T) {
		t.Parallel()

		_, err := dob.NewFromConfig(dob.Config{Location: "Mars/Olympus_Mons"})
		assert.ErrorIs(t, err, dob.ErrInvalidLocation)
	})

	t.Run("missing messages file", func(t *testing.T) {
		t.Parallel()

		_, err := dob.NewFromConfig(dob.Config{MessagesFile: filepath.Join(t.TempDir(), "nope.yaml")})
		assert.ErrorIs(t, err, dob.ErrInvalidMessages)
	})
}
