package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func textField(w io.Writer, label, name, value string) error {
	_, err := fmt.Fprintf(w, `<label>%s<input type="text" name="%s" value="%s"></label>`,
		esc(label), esc(name), esc(value))
	return err
}

func textArea(w io.Writer, label, name, value string) error {
	_, err := fmt.Fprintf(w, `<label>%s<textarea name="%s">%s</textarea></label>`,
		esc(label), esc(name), esc(value))
	return err
}

// ResumePage renders the résumé overview: the profile form plus the three
// sub-record sections with their entries.
func ResumePage(view ResumeView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("resume.title"))); err != nil {
			return err
		}
		if err := formError(view.FormError).Render(ctx, w); err != nil {
			return err
		}

		p := view.Profile
		if _, err := fmt.Fprintf(w, `<h2>%s</h2><form method="post" action="/resume">`,
			esc(loc.Sprintf("resume.profile_section"))); err != nil {
			return err
		}
		fields := []struct {
			label string
			name  string
			value string
		}{
			{loc.Sprintf("resume.first_name"), "first_name", p.FirstName},
			{loc.Sprintf("resume.surname"), "surname", p.Surname},
			{loc.Sprintf("resume.patronymic"), "patronymic", p.Patronymic},
			{loc.Sprintf("resume.date_of_birth"), "date_of_birth", p.DateOfBirth},
			{loc.Sprintf("resume.gender"), "gender", p.Gender},
			{loc.Sprintf("resume.city"), "city", p.City},
			{loc.Sprintf("resume.phone"), "phone", p.Phone},
			{loc.Sprintf("resume.contact_email"), "contact_email", p.ContactEmail},
			{loc.Sprintf("resume.social_link"), "social_link", p.SocialLink},
			{loc.Sprintf("resume.comment"), "social_link_comment", p.SocialLinkComment},
			{loc.Sprintf("resume.social_link"), "extra_social_link", p.ExtraSocialLink},
			{loc.Sprintf("resume.comment"), "extra_social_link_comment", p.ExtraSocialLinkComment},
			{loc.Sprintf("resume.desired_position"), "desired_position", p.DesiredPosition},
			{loc.Sprintf("resume.professional_area"), "professional_area", p.ProfessionalArea},
			{loc.Sprintf("resume.salary"), "salary", p.Salary},
			{loc.Sprintf("resume.employment"), "employment", p.Employment},
			{loc.Sprintf("resume.work_schedule"), "work_schedule", p.WorkSchedule},
			{loc.Sprintf("resume.key_skills"), "key_skills", p.KeySkills},
			{loc.Sprintf("resume.languages"), "languages", p.Languages},
			{loc.Sprintf("resume.citizenship"), "citizenship", p.Citizenship},
		}
		for _, field := range fields {
			if err := textField(w, field.label, field.name, field.value); err != nil {
				return err
			}
		}
		if err := textArea(w, loc.Sprintf("resume.about_me"), "about_me", p.AboutMe); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<button type="submit">%s</button></form>`,
			esc(loc.Sprintf("resume.save"))); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2><p><a href="/resume/experience/new">%s</a></p>`,
			esc(loc.Sprintf("resume.experience_section")), esc(loc.Sprintf("resume.add_entry"))); err != nil {
			return err
		}
		if len(view.Experiences) == 0 {
			if _, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(loc.Sprintf("resume.empty_section"))); err != nil {
				return err
			}
		}
		for _, entry := range view.Experiences {
			if _, err := fmt.Fprintf(w,
				`<article><h3>%s, %s</h3><p>%s - %s</p><p>%s</p><a href="/resume/experience/%d/edit">%s</a></article>`,
				esc(entry.Position), esc(entry.Organization),
				esc(entry.StartedAt), esc(entry.EndedAt),
				esc(entry.Responsibilities),
				entry.ID, esc(loc.Sprintf("resume.edit_entry"))); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2><p><a href="/resume/education/new">%s</a></p>`,
			esc(loc.Sprintf("resume.education_section")), esc(loc.Sprintf("resume.add_entry"))); err != nil {
			return err
		}
		if len(view.Educations) == 0 {
			if _, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(loc.Sprintf("resume.empty_section"))); err != nil {
				return err
			}
		}
		for _, entry := range view.Educations {
			if _, err := fmt.Fprintf(w,
				`<article><h3>%s</h3><p>%s, %s (%s)</p><a href="/resume/education/%d/edit">%s</a></article>`,
				esc(entry.Institution),
				esc(entry.Level), esc(entry.Specialization), esc(entry.CompletionYear),
				entry.ID, esc(loc.Sprintf("resume.edit_entry"))); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2><p><a href="/resume/courses/new">%s</a></p>`,
			esc(loc.Sprintf("resume.courses_section")), esc(loc.Sprintf("resume.add_entry"))); err != nil {
			return err
		}
		if len(view.Courses) == 0 {
			if _, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(loc.Sprintf("resume.empty_section"))); err != nil {
				return err
			}
		}
		for _, entry := range view.Courses {
			if _, err := fmt.Fprintf(w,
				`<article><h3>%s</h3><p>%s (%s)</p><a href="/resume/courses/%d/edit">%s</a></article>`,
				esc(entry.Organization),
				esc(entry.Specialization), esc(entry.CompletionYear),
				entry.ID, esc(loc.Sprintf("resume.edit_entry"))); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResumeShowPage renders another user's résumé read-only.
func ResumeShowPage(view ResumeShowView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`,
			esc(loc.Sprintf("resume.title_for", view.Username))); err != nil {
			return err
		}
		if !view.HasProfile {
			_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`, esc(loc.Sprintf("resume.none")))
			return err
		}

		p := view.Profile
		rows := []struct {
			label string
			value string
		}{
			{loc.Sprintf("resume.first_name"), p.FirstName},
			{loc.Sprintf("resume.surname"), p.Surname},
			{loc.Sprintf("resume.patronymic"), p.Patronymic},
			{loc.Sprintf("resume.date_of_birth"), p.DateOfBirth},
			{loc.Sprintf("resume.gender"), p.Gender},
			{loc.Sprintf("resume.city"), p.City},
			{loc.Sprintf("resume.phone"), p.Phone},
			{loc.Sprintf("resume.contact_email"), p.ContactEmail},
			{loc.Sprintf("resume.social_link"), p.SocialLink},
			{loc.Sprintf("resume.desired_position"), p.DesiredPosition},
			{loc.Sprintf("resume.professional_area"), p.ProfessionalArea},
			{loc.Sprintf("resume.salary"), p.Salary},
			{loc.Sprintf("resume.employment"), p.Employment},
			{loc.Sprintf("resume.work_schedule"), p.WorkSchedule},
			{loc.Sprintf("resume.about_me"), p.AboutMe},
			{loc.Sprintf("resume.key_skills"), p.KeySkills},
			{loc.Sprintf("resume.languages"), p.Languages},
			{loc.Sprintf("resume.citizenship"), p.Citizenship},
		}
		if _, err := fmt.Fprintf(w, `<h2>%s</h2><dl>`, esc(loc.Sprintf("resume.profile_section"))); err != nil {
			return err
		}
		for _, row := range rows {
			if row.value == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`, esc(row.label), esc(row.value)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</dl>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2>`, esc(loc.Sprintf("resume.experience_section"))); err != nil {
			return err
		}
		for _, entry := range view.Experiences {
			if _, err := fmt.Fprintf(w,
				`<article><h3>%s, %s</h3><p>%s - %s</p><p>%s</p></article>`,
				esc(entry.Position), esc(entry.Organization),
				esc(entry.StartedAt), esc(entry.EndedAt),
				esc(entry.Responsibilities)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2>`, esc(loc.Sprintf("resume.education_section"))); err != nil {
			return err
		}
		for _, entry := range view.Educations {
			if _, err := fmt.Fprintf(w,
				`<article><h3>%s</h3><p>%s, %s (%s)</p></article>`,
				esc(entry.Institution),
				esc(entry.Level), esc(entry.Specialization), esc(entry.CompletionYear)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<h2>%s</h2>`, esc(loc.Sprintf("resume.courses_section"))); err != nil {
			return err
		}
		for _, entry := range view.Courses {
			if _, err := fmt.Fprintf(w,
				`<article><h3>%s</h3><p>%s (%s)</p><p>%s</p></article>`,
				esc(entry.Organization),
				esc(entry.Specialization), esc(entry.CompletionYear), esc(entry.Comment)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ExperienceFormPage renders the work experience create or edit form.
func ExperienceFormPage(view ExperienceFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/resume/experience/new"
		if view.IsEdit {
			action = fmt.Sprintf("/resume/experience/%d/edit", view.Entry.ID)
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("resume.experience_section"))); err != nil {
			return err
		}
		if err := formError(view.FormError).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, esc(action)); err != nil {
			return err
		}
		entry := view.Entry
		if err := textField(w, loc.Sprintf("resume.started_at"), "started_at", entry.StartedAt); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.ended_at"), "ended_at", entry.EndedAt); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.organization"), "organization", entry.Organization); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.region"), "region", entry.Region); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.company_field"), "company_field", entry.CompanyField); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.position"), "position", entry.Position); err != nil {
			return err
		}
		if err := textArea(w, loc.Sprintf("resume.responsibilities"), "responsibilities", entry.Responsibilities); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<button type="submit">%s</button></form>`, esc(loc.Sprintf("resume.save")))
		return err
	})
}

// EducationFormPage renders the education create or edit form.
func EducationFormPage(view EducationFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/resume/education/new"
		if view.IsEdit {
			action = fmt.Sprintf("/resume/education/%d/edit", view.Entry.ID)
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("resume.education_section"))); err != nil {
			return err
		}
		if err := formError(view.FormError).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, esc(action)); err != nil {
			return err
		}
		entry := view.Entry
		if err := textField(w, loc.Sprintf("resume.level"), "level", entry.Level); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.institution"), "institution", entry.Institution); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.faculty"), "faculty", entry.Faculty); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.specialization"), "specialization", entry.Specialization); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.completion_year"), "completion_year", entry.CompletionYear); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<button type="submit">%s</button></form>`, esc(loc.Sprintf("resume.save")))
		return err
	})
}

// CourseFormPage renders the additional education create or edit form.
func CourseFormPage(view CourseFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/resume/courses/new"
		if view.IsEdit {
			action = fmt.Sprintf("/resume/courses/%d/edit", view.Entry.ID)
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, esc(loc.Sprintf("resume.courses_section"))); err != nil {
			return err
		}
		if err := formError(view.FormError).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, esc(action)); err != nil {
			return err
		}
		entry := view.Entry
		if err := textField(w, loc.Sprintf("resume.organization"), "organization", entry.Organization); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.specialization"), "specialization", entry.Specialization); err != nil {
			return err
		}
		if err := textField(w, loc.Sprintf("resume.completion_year"), "completion_year", entry.CompletionYear); err != nil {
			return err
		}
		if err := textArea(w, loc.Sprintf("resume.comment"), "comment", entry.Comment); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<button type="submit">%s</button></form>`, esc(loc.Sprintf("resume.save")))
		return err
	})
}
