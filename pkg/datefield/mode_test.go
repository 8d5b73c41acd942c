package datefield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dateinput/pkg/datefield"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want datefield.Mode
	}{
		{"", datefield.OnChange},
		{"change", datefield.OnChange},
		{"onChange", datefield.OnChange},
		{"submit", datefield.OnSubmit},
		{" OnSubmit ", datefield.OnSubmit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := datefield.ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := datefield.ParseMode("blur")
	assert.ErrorIs(t, err, datefield.ErrUnknownMode)
}

func TestMode_Text(t *testing.T) {
	t.Parallel()

	var m datefield.Mode
	require.NoError(t, m.UnmarshalText([]byte("submit")))
	assert.Equal(t, datefield.OnSubmit, m)
	assert.Equal(t, "submit", m.String())

	b, err := datefield.OnChange.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "change", string(b))

	_, err = datefield.Mode(7).MarshalText()
	assert.ErrorIs(t, err, datefield.ErrUnknownMode)
	assert.ErrorIs(t, m.UnmarshalText([]byte("blur")), datefield.ErrUnknownMode)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	f := datefield.New(datefield.Config{Mode: datefield.OnSubmit}.Options()...)
	f.Change("1")
	assert.False(t, f.Validated())
}
