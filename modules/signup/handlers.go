package signup

import (
	"log/slog"

	"github.com/dmitrymomot/dateinput/handler"
	"github.com/dmitrymomot/dateinput/pkg/datemask"
	"github.com/dmitrymomot/dateinput/pkg/dob"
	"github.com/dmitrymomot/dateinput/pkg/logger"
	"github.com/dmitrymomot/dateinput/pkg/signup"
	"github.com/dmitrymomot/dateinput/pkg/validator"
)

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(PageParams{BasePath: s.cfg.BasePath}))
}

// DOBSignals is the datastar signal set of the date field.
type DOBSignals struct {
	DOB      string `json:"dob"`
	DOBPrev  string `json:"dobPrev"`
	DOBError string `json:"dobError"`
}

func (s *Service) dob(ctx handler.Context, req DOBSignals) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSONError(ErrDataStarRequired)
	}

	f := s.newField(req.DOBPrev)
	value := f.Change(req.DOB)
	msg := f.Error()

	s.logger.LogAttrs(ctx, slog.LevelDebug, "dob changed",
		logger.Handler("dob"),
		logger.Reason(f.Result().Reason),
		logger.Length(len(value)),
	)

	return handler.Signals(
		DOBSignals{DOB: value, DOBPrev: value, DOBError: msg},
		handler.Patch(
			s.views.FieldError(FieldErrorParams{Field: signup.FieldDOB, Message: msg}),
			handler.WithTarget("#"+ErrorID(signup.FieldDOB)),
		),
	)
}

// ValidateRequest is the body of POST /dob/validate.
type ValidateRequest struct {
	Value string `json:"value"`
}

// ValidateResponse reports one validation result.
type ValidateResponse struct {
	Valid   bool       `json:"valid"`
	Reason  dob.Reason `json:"reason"`
	Message string     `json:"message,omitempty"`
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	res := s.validator.Validate(req.Value)
	return handler.JSON(ValidateResponse{
		Valid:   res.Valid(),
		Reason:  res.Reason,
		Message: res.Message(),
	})
}

// MaskRequest is the body of POST /dob/mask.
type MaskRequest struct {
	Previous string `json:"previous"`
	Input    string `json:"input"`
}

// MaskResponse carries the new display value.
type MaskResponse struct {
	Value string `json:"value"`
}

func (s *Service) mask(ctx handler.Context, req MaskRequest) handler.Response {
	return handler.JSON(MaskResponse{Value: datemask.Next(req.Previous, req.Input)})
}

// SubmitRequest is the signup form body.
type SubmitRequest = signup.Request

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	req = signup.Normalize(req)

	err := signup.Validate(req, s.validator)
	if err == nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "signup accepted", logger.Handler("signup"))
		return handler.Templ(
			s.views.Success(SuccessParams{Username: req.Username}),
			handler.WithTarget("#signup"),
		)
	}

	errs := validator.ExtractValidationErrors(err)
	s.logger.LogAttrs(ctx, slog.LevelDebug, "signup rejected",
		logger.Handler("signup"),
		slog.Any("fields", errs.Fields()),
	)

	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSONError(err)
	}

	// Datastar clients get every error slot patched, cleared ones included.
	fields := []string{signup.FieldEmail, signup.FieldUsername, signup.FieldDOB, signup.FieldPassword}
	patches := make([]handler.TemplPatch, 0, len(fields))
	for _, field := range fields {
		patches = append(patches, handler.Patch(
			s.views.FieldError(FieldErrorParams{Field: field, Message: firstOrEmpty(errs.Get(field))}),
			handler.WithTarget("#"+ErrorID(field)),
		))
	}
	return handler.Signals(
		map[string]any{"dob": req.DOB, "dobPrev": req.DOB, "dobError": firstOrEmpty(errs.Get(signup.FieldDOB))},
		patches...,
	)
}

func firstOrEmpty(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}
