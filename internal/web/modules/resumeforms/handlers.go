package resumeforms

import (
	"net/http"
	"strconv"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/storage"
	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/platform/flash"
	"github.com/svyatk/vitae/internal/web/platform/pagerender"
	"github.com/svyatk/vitae/internal/web/platform/weberror"
	"github.com/svyatk/vitae/internal/web/platform/webi18n"
	"github.com/svyatk/vitae/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleOverview(w http.ResponseWriter, r *http.Request) {
	h.renderOverview(w, r, nil, "")
}

func (h handlers) handleUserResume(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Identity.UserByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	view := templates.ResumeShowView{Username: user.Username}

	profile, err := h.deps.Resume.Profile(r.Context(), user.ID)
	switch {
	case err == nil:
		view.HasProfile = true
		view.Profile = profile
	case apperrors.CodeOf(err) == apperrors.CodeNotFound:
		// Nothing filled in yet.
	default:
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	if view.HasProfile {
		view.Experiences, err = h.deps.Resume.WorkExperiences(r.Context(), user.ID)
		if err != nil {
			weberror.WriteError(w, r, h.deps, err)
			return
		}
		view.Educations, err = h.deps.Resume.Educations(r.Context(), user.ID)
		if err != nil {
			weberror.WriteError(w, r, h.deps, err)
			return
		}
		view.Courses, err = h.deps.Resume.AdditionalEducations(r.Context(), user.ID)
		if err != nil {
			weberror.WriteError(w, r, h.deps, err)
			return
		}
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	renderErr := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("resume.title_for", user.Username),
		StatusCode: http.StatusOK,
		Content:    templates.ResumeShowPage(view, loc),
	})
	if renderErr != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render user resume: %v", renderErr)
	}
}

func (h handlers) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return
	}
	profile := storage.ResumeProfile{
		UserID:                 h.deps.ResolveUserID(r),
		FirstName:              r.PostFormValue("first_name"),
		Surname:                r.PostFormValue("surname"),
		Patronymic:             r.PostFormValue("patronymic"),
		DateOfBirth:            r.PostFormValue("date_of_birth"),
		Gender:                 r.PostFormValue("gender"),
		City:                   r.PostFormValue("city"),
		Phone:                  r.PostFormValue("phone"),
		ContactEmail:           r.PostFormValue("contact_email"),
		SocialLink:             r.PostFormValue("social_link"),
		SocialLinkComment:      r.PostFormValue("social_link_comment"),
		ExtraSocialLink:        r.PostFormValue("extra_social_link"),
		ExtraSocialLinkComment: r.PostFormValue("extra_social_link_comment"),
		DesiredPosition:        r.PostFormValue("desired_position"),
		ProfessionalArea:       r.PostFormValue("professional_area"),
		Salary:                 r.PostFormValue("salary"),
		Employment:             r.PostFormValue("employment"),
		WorkSchedule:           r.PostFormValue("work_schedule"),
		AboutMe:                r.PostFormValue("about_me"),
		KeySkills:              r.PostFormValue("key_skills"),
		Languages:              r.PostFormValue("languages"),
		Citizenship:            r.PostFormValue("citizenship"),
	}

	if _, err := h.deps.Resume.SaveProfile(r.Context(), profile); err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderOverview(w, r, &profile, webi18n.ErrorMessage(loc, err))
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	flash.Set(w, r, loc.Sprintf("resume.saved"))
	http.Redirect(w, r, "/resume", http.StatusSeeOther)
}

func (h handlers) renderOverview(w http.ResponseWriter, r *http.Request, submitted *storage.ResumeProfile, formError string) {
	userID := h.deps.ResolveUserID(r)
	view := templates.ResumeView{FormError: formError}

	switch {
	case submitted != nil:
		view.Profile = *submitted
	default:
		profile, err := h.deps.Resume.Profile(r.Context(), userID)
		switch {
		case err == nil:
			view.HasProfile = true
			view.Profile = profile
		case apperrors.CodeOf(err) == apperrors.CodeNotFound:
			// First visit, empty form.
		default:
			weberror.WriteError(w, r, h.deps, err)
			return
		}
	}

	var err error
	view.Experiences, err = h.deps.Resume.WorkExperiences(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	view.Educations, err = h.deps.Resume.Educations(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	view.Courses, err = h.deps.Resume.AdditionalEducations(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	statusCode := http.StatusOK
	if formError != "" {
		statusCode = http.StatusBadRequest
	}
	renderErr := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("resume.title"),
		StatusCode: statusCode,
		Content:    templates.ResumePage(view, loc),
	})
	if renderErr != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render resume: %v", renderErr)
	}
}

func (h handlers) handleExperienceNewForm(w http.ResponseWriter, r *http.Request) {
	h.renderExperienceForm(w, r, templates.ExperienceFormView{}, http.StatusOK)
}

func (h handlers) handleExperienceCreate(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.experienceFromForm(w, r, 0)
	if !ok {
		return
	}
	if _, err := h.deps.Resume.AddWorkExperience(r.Context(), entry); err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderExperienceForm(w, r, templates.ExperienceFormView{
			Entry:     entry,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}
	h.redirectSaved(w, r)
}

func (h handlers) handleExperienceEditForm(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseEntryID(r)
	if !ok {
		weberror.WriteStatus(w, r, h.deps, http.StatusNotFound)
		return
	}
	entry, err := h.deps.Resume.WorkExperience(r.Context(), h.deps.ResolveUserID(r), entryID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	h.renderExperienceForm(w, r, templates.ExperienceFormView{Entry: entry, IsEdit: true}, http.StatusOK)
}

func (h handlers) handleExperienceUpdate(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseEntryID(r)
	if !ok {
		weberror.WriteStatus(w, r, h.deps, http.StatusNotFound)
		return
	}
	entry, ok := h.experienceFromForm(w, r, entryID)
	if !ok {
		return
	}
	if err := h.deps.Resume.UpdateWorkExperience(r.Context(), entry); err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			weberror.WriteError(w, r, h.deps, err)
			return
		}
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderExperienceForm(w, r, templates.ExperienceFormView{
			Entry:     entry,
			IsEdit:    true,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}
	h.redirectSaved(w, r)
}

func (h handlers) experienceFromForm(w http.ResponseWriter, r *http.Request, entryID int64) (storage.WorkExperience, bool) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return storage.WorkExperience{}, false
	}
	return storage.WorkExperience{
		ID:               entryID,
		UserID:           h.deps.ResolveUserID(r),
		StartedAt:        r.PostFormValue("started_at"),
		EndedAt:          r.PostFormValue("ended_at"),
		Organization:     r.PostFormValue("organization"),
		Region:           r.PostFormValue("region"),
		CompanyField:     r.PostFormValue("company_field"),
		Position:         r.PostFormValue("position"),
		Responsibilities: r.PostFormValue("responsibilities"),
	}, true
}

func (h handlers) renderExperienceForm(w http.ResponseWriter, r *http.Request, view templates.ExperienceFormView, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("resume.experience_section"),
		StatusCode: statusCode,
		Content:    templates.ExperienceFormPage(view, loc),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render experience form: %v", err)
	}
}

func (h handlers) handleEducationNewForm(w http.ResponseWriter, r *http.Request) {
	h.renderEducationForm(w, r, templates.EducationFormView{}, http.StatusOK)
}

func (h handlers) handleEducationCreate(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.educationFromForm(w, r, 0)
	if !ok {
		return
	}
	if _, err := h.deps.Resume.AddEducation(r.Context(), entry); err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderEducationForm(w, r, templates.EducationFormView{
			Entry:     entry,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}
	h.redirectSaved(w, r)
}

func (h handlers) handleEducationEditForm(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseEntryID(r)
	if !ok {
		weberror.WriteStatus(w, r, h.deps, http.StatusNotFound)
		return
	}
	entry, err := h.deps.Resume.Education(r.Context(), h.deps.ResolveUserID(r), entryID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	h.renderEducationForm(w, r, templates.EducationFormView{Entry: entry, IsEdit: true}, http.StatusOK)
}

func (h handlers) handleEducationUpdate(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseEntryID(r)
	if !ok {
		weberror.WriteStatus(w, r, h.deps, http.StatusNotFound)
		return
	}
	entry, ok := h.educationFromForm(w, r, entryID)
	if !ok {
		return
	}
	if err := h.deps.Resume.UpdateEducation(r.Context(), entry); err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			weberror.WriteError(w, r, h.deps, err)
			return
		}
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderEducationForm(w, r, templates.EducationFormView{
			Entry:     entry,
			IsEdit:    true,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}
	h.redirectSaved(w, r)
}

func (h handlers) educationFromForm(w http.ResponseWriter, r *http.Request, entryID int64) (storage.Education, bool) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return storage.Education{}, false
	}
	return storage.Education{
		ID:             entryID,
		UserID:         h.deps.ResolveUserID(r),
		Level:          r.PostFormValue("level"),
		Institution:    r.PostFormValue("institution"),
		Faculty:        r.PostFormValue("faculty"),
		Specialization: r.PostFormValue("specialization"),
		CompletionYear: r.PostFormValue("completion_year"),
	}, true
}

func (h handlers) renderEducationForm(w http.ResponseWriter, r *http.Request, view templates.EducationFormView, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("resume.education_section"),
		StatusCode: statusCode,
		Content:    templates.EducationFormPage(view, loc),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render education form: %v", err)
	}
}

func (h handlers) handleCourseNewForm(w http.ResponseWriter, r *http.Request) {
	h.renderCourseForm(w, r, templates.CourseFormView{}, http.StatusOK)
}

func (h handlers) handleCourseCreate(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.courseFromForm(w, r, 0)
	if !ok {
		return
	}
	if _, err := h.deps.Resume.AddAdditionalEducation(r.Context(), entry); err != nil {
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderCourseForm(w, r, templates.CourseFormView{
			Entry:     entry,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}
	h.redirectSaved(w, r)
}

func (h handlers) handleCourseEditForm(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseEntryID(r)
	if !ok {
		weberror.WriteStatus(w, r, h.deps, http.StatusNotFound)
		return
	}
	entry, err := h.deps.Resume.AdditionalEducation(r.Context(), h.deps.ResolveUserID(r), entryID)
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	h.renderCourseForm(w, r, templates.CourseFormView{Entry: entry, IsEdit: true}, http.StatusOK)
}

func (h handlers) handleCourseUpdate(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseEntryID(r)
	if !ok {
		weberror.WriteStatus(w, r, h.deps, http.StatusNotFound)
		return
	}
	entry, ok := h.courseFromForm(w, r, entryID)
	if !ok {
		return
	}
	if err := h.deps.Resume.UpdateAdditionalEducation(r.Context(), entry); err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			weberror.WriteError(w, r, h.deps, err)
			return
		}
		loc, _ := webi18n.ResolveLocalizer(w, r)
		h.renderCourseForm(w, r, templates.CourseFormView{
			Entry:     entry,
			IsEdit:    true,
			FormError: webi18n.ErrorMessage(loc, err),
		}, http.StatusBadRequest)
		return
	}
	h.redirectSaved(w, r)
}

func (h handlers) courseFromForm(w http.ResponseWriter, r *http.Request, entryID int64) (storage.AdditionalEducation, bool) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, r, h.deps, http.StatusBadRequest)
		return storage.AdditionalEducation{}, false
	}
	return storage.AdditionalEducation{
		ID:             entryID,
		UserID:         h.deps.ResolveUserID(r),
		Organization:   r.PostFormValue("organization"),
		Specialization: r.PostFormValue("specialization"),
		CompletionYear: r.PostFormValue("completion_year"),
		Comment:        r.PostFormValue("comment"),
	}, true
}

func (h handlers) renderCourseForm(w http.ResponseWriter, r *http.Request, view templates.CourseFormView, statusCode int) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:      loc.Sprintf("resume.courses_section"),
		StatusCode: statusCode,
		Content:    templates.CourseFormPage(view, loc),
	})
	if err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render course form: %v", err)
	}
}

func (h handlers) redirectSaved(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	flash.Set(w, r, loc.Sprintf("resume.saved"))
	http.Redirect(w, r, "/resume", http.StatusSeeOther)
}

func parseEntryID(r *http.Request) (int64, bool) {
	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || entryID < 1 {
		return 0, false
	}
	return entryID, true
}
