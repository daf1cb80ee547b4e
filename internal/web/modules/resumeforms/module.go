// Package resumeforms serves the résumé section CRUD forms.
package resumeforms

import (
	"net/http"

	"github.com/svyatk/vitae/internal/web/module"
)

// Module provides résumé routes.
type Module struct{}

// New returns a résumé forms module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "resume" }

// Mount wires résumé route handlers. Every route requires a session;
// editing routes only ever touch the viewer's own résumé, while
// /user/{username}/resume shows any user's résumé read-only.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{deps: deps}
	routes := []module.Route{
		{Pattern: http.MethodGet + " /user/{username}/resume", Handler: h.handleUserResume},
		{Pattern: http.MethodGet + " /resume", Handler: h.handleOverview},
		{Pattern: http.MethodPost + " /resume", Handler: h.handleSaveProfile},
		{Pattern: http.MethodGet + " /resume/experience/new", Handler: h.handleExperienceNewForm},
		{Pattern: http.MethodPost + " /resume/experience/new", Handler: h.handleExperienceCreate},
		{Pattern: http.MethodGet + " /resume/experience/{id}/edit", Handler: h.handleExperienceEditForm},
		{Pattern: http.MethodPost + " /resume/experience/{id}/edit", Handler: h.handleExperienceUpdate},
		{Pattern: http.MethodGet + " /resume/education/new", Handler: h.handleEducationNewForm},
		{Pattern: http.MethodPost + " /resume/education/new", Handler: h.handleEducationCreate},
		{Pattern: http.MethodGet + " /resume/education/{id}/edit", Handler: h.handleEducationEditForm},
		{Pattern: http.MethodPost + " /resume/education/{id}/edit", Handler: h.handleEducationUpdate},
		{Pattern: http.MethodGet + " /resume/courses/new", Handler: h.handleCourseNewForm},
		{Pattern: http.MethodPost + " /resume/courses/new", Handler: h.handleCourseCreate},
		{Pattern: http.MethodGet + " /resume/courses/{id}/edit", Handler: h.handleCourseEditForm},
		{Pattern: http.MethodPost + " /resume/courses/{id}/edit", Handler: h.handleCourseUpdate},
	}
	for i := range routes {
		routes[i].Protected = true
	}
	return module.Mount{Routes: routes}, nil
}
