package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dateinput/pkg/binder"
)

type dobSignals struct {
	DOB     string `json:"dob"`
	DOBPrev string `json:"dobPrev"`
}

func TestSignals_Body(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/dob", strings.NewReader(`{"dob":"011","dobPrev":"01/"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")

	var got dobSignals
	require.NoError(t, binder.Signals()(req, &got))
	assert.Equal(t, dobSignals{DOB: "011", DOBPrev: "01/"}, got)
}

func TestSignals_Query(t *testing.T) {
	t.Parallel()

	q := url.Values{"datastar": {`{"dob":"0","dobPrev":""}`}}
	req := httptest.NewRequest(http.MethodGet, "/dob?"+q.Encode(), nil)
	req.Header.Set("Datastar-Request", "true")

	var got dobSignals
	require.NoError(t, binder.Signals()(req, &got))
	assert.Equal(t, "0", got.DOB)
}

func TestSignals_Errors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/dob", strings.NewReader(`{"dob":`))
	var got dobSignals
	assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrBinderNotApplicable)

	req.Header.Set("Datastar-Request", "true")
	err := binder.Signals()(req, &got)
	assert.ErrorIs(t, err, binder.ErrBadRequest)
	assert.ErrorIs(t, err, binder.ErrInvalidSignals)
}
