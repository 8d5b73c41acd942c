package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dateinput/handler"
	"github.com/dmitrymomot/dateinput/pkg/binder"
	"github.com/dmitrymomot/dateinput/pkg/logger"
	"github.com/dmitrymomot/dateinput/pkg/validator"
)

type valueRequest struct {
	Value string `json:"value" form:"value"`
}

type stringComponent string

func (c stringComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap_BindsWithFirstApplicableBinder(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, req valueRequest) handler.Response {
		return handler.JSON(map[string]string{"value": req.Value})
	}, handler.WithBinders[valueRequest](binder.JSON(), binder.Form()))

	for _, tc := range []struct{ ct, body string }{
		{"application/json", `{"value":"01/"}`},
		{"application/x-www-form-urlencoded", "value=01%2F"},
	} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", tc.ct)
		rec := httptest.NewRecorder()
		h(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, tc.ct)
		assert.JSONEq(t, `{"data":{"value":"01/"}}`, rec.Body.String())
	}
}

func TestWrap_BindErrorIsBadRequest(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Wrap(func(ctx handler.Context, req valueRequest) handler.Response {
		called = true
		return handler.JSON(nil)
	}, handler.WithBinders[valueRequest](binder.JSON()))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decode(t, rec).Error.Code)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		return nil
	}, handler.WithErrorHandler[struct{}](func(ctx handler.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestContext_DelegatesToRequest(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "v"))
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, req)
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.Same(t, req, ctx.Request())
	assert.NoError(t, ctx.Err())
}

func TestJSONError_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "validation errors",
			err:    validator.ValidationErrors{{Field: "dob", Message: "DOB is required"}},
			status: http.StatusUnprocessableEntity,
			code:   "validation_error",
		},
		{
			name:   "wrapped validation errors",
			err:    errors.Join(errors.New("signup"), validator.ValidationErrors{{Field: "dob", Message: "DOB is required"}}),
			status: http.StatusUnprocessableEntity,
			code:   "validation_error",
		},
		{"http error", handler.ErrNotFound, http.StatusNotFound, "not_found"},
		{"bind error", binder.ErrBadRequest, http.StatusBadRequest, "bad_request"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decode(t, rec).Error.Code)
		})
	}
}

func TestJSONError_Details(t *testing.T) {
	t.Parallel()

	err := validator.ValidationErrors{
		{Field: "email", Message: "Invalid email address"},
		{Field: "dob", Message: "No future dates allowed"},
	}
	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSONError(err).Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))

	body := decode(t, rec)
	assert.Equal(t, map[string][]string{
		"email": {"Invalid email address"},
		"dob":   {"No future dates allowed"},
	}, body.Error.Details)
	assert.Nil(t, body.Data)
}

func TestJSON_Options(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	resp := handler.JSON("ok", handler.WithJSONStatus(http.StatusCreated), handler.WithJSONMeta(map[string]any{"v": 1}))
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":"ok","meta":{"v":1}}`, rec.Body.String())
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("plain request gets html", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		resp := handler.TemplWithStatus(http.StatusUnprocessableEntity, stringComponent("<p>bad</p>"))
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<p>bad</p>", rec.Body.String())
	})

	t.Run("datastar request gets sse", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(handler.DataStarRequestHeader, "true")
		rec := httptest.NewRecorder()

		resp := handler.Templ(stringComponent(`<p id="dob-error">bad</p>`), handler.WithTarget("#dob-error"))
		require.NoError(t, resp.Render(rec, req))

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), "#dob-error")
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	signals := map[string]any{"dob": "01/", "dobError": ""}

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/dob", nil)
		req.Header.Set(handler.DataStarRequestHeader, "true")
		rec := httptest.NewRecorder()

		resp := handler.Signals(signals, handler.Patch(stringComponent(`<p id="dob-error"></p>`), handler.WithTarget("#dob-error")))
		require.NoError(t, resp.Render(rec, req))

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"dob":"01/"`)
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Less(t, strings.Index(body, "datastar-patch-signals"), strings.Index(body, "datastar-patch-elements"))
	})

	t.Run("plain falls back to json", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, handler.Signals(signals).Render(rec, httptest.NewRequest(http.MethodPost, "/dob", nil)))
		assert.JSONEq(t, `{"data":{"dob":"01/","dobError":""}}`, rec.Body.String())
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(req))

	req.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(req))
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	onError := handler.NewErrorHandler(log)

	t.Run("json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		onError(handler.NewContext(rec, httptest.NewRequest(http.MethodPost, "/signup", nil)), handler.ErrUnsupportedMediaType)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, "unsupported_media_type", decode(t, rec).Error.Code)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"path":"/signup"`)
	})

	t.Run("datastar", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/dob", nil)
		req.Header.Set(handler.DataStarRequestHeader, "true")
		rec := httptest.NewRecorder()

		onError(handler.NewContext(rec, req), errors.New("boom"))
		assert.Contains(t, rec.Body.String(), "datastar-patch-signals")
		assert.Contains(t, rec.Body.String(), `"error":"Internal Server Error"`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}
