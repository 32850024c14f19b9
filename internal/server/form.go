package server

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/rpgo/retirement-projector/internal/config"
	"github.com/rpgo/retirement-projector/internal/domain"
	"github.com/rpgo/retirement-projector/internal/output"
)

//go:embed templates/form.html.tmpl
var formTemplateSource string

var formTemplate = template.Must(template.New("form").Parse(formTemplateSource))

type formPage struct {
	Error      string
	Values     map[string]string
	Intervals  []domain.ContributionInterval
	Strategies []domain.InvestmentStrategy
}

func newFormPage(form config.FormInput, errMsg string) formPage {
	return formPage{
		Error:      errMsg,
		Values:     form.Values(),
		Intervals:  []domain.ContributionInterval{domain.IntervalAnnually, domain.IntervalQuarterly, domain.IntervalMonthly},
		Strategies: domain.Strategies,
	}
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	example := config.NewInputParser().CreateExampleConfiguration().Inputs()
	s.renderForm(w, http.StatusOK, newFormPage(config.FormInputFromInputs(example), ""))
}

func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.renderForm(w, http.StatusBadRequest, newFormPage(config.FormInput{}, "Could not read the form: "+err.Error()))
		return
	}

	form := config.FormInputFromValues(r.PostForm.Get)
	inputs, err := form.ToInputs()
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, newFormPage(form, "Please check your input: "+err.Error()))
		return
	}

	result, err := s.engine.RunProjection(r.Context(), inputs)
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, newFormPage(form, "Please check your input: "+err.Error()))
		return
	}
	comparison, err := s.engine.CompareStrategies(r.Context(), inputs)
	if err != nil {
		s.renderForm(w, http.StatusBadRequest, newFormPage(form, "Please check your input: "+err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := output.RenderHTML(&buf, output.NewReport("", inputs, result, comparison)); err != nil {
		s.logger.Errorf("render report: %v", err)
		http.Error(w, "could not render report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) renderForm(w http.ResponseWriter, status int, page formPage) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, page); err != nil {
		s.logger.Errorf("render form: %v", err)
		http.Error(w, "could not render form", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
