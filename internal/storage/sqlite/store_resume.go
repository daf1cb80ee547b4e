package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/svyatk/vitae/internal/storage"
)

// PutResumeProfile upserts the singleton résumé profile for a user.
func (s *Store) PutResumeProfile(ctx context.Context, p storage.ResumeProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	userID := strings.TrimSpace(p.UserID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	now := time.Now().UTC()
	createdAt := p.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := p.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO resume_profiles (
			user_id, first_name, surname, patronymic, date_of_birth, gender, city,
			phone, contact_email, social_link, social_link_comment,
			extra_social_link, extra_social_link_comment,
			desired_position, professional_area, salary, employment, work_schedule,
			about_me, key_skills, languages, citizenship, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			first_name = excluded.first_name,
			surname = excluded.surname,
			patronymic = excluded.patronymic,
			date_of_birth = excluded.date_of_birth,
			gender = excluded.gender,
			city = excluded.city,
			phone = excluded.phone,
			contact_email = excluded.contact_email,
			social_link = excluded.social_link,
			social_link_comment = excluded.social_link_comment,
			extra_social_link = excluded.extra_social_link,
			extra_social_link_comment = excluded.extra_social_link_comment,
			desired_position = excluded.desired_position,
			professional_area = excluded.professional_area,
			salary = excluded.salary,
			employment = excluded.employment,
			work_schedule = excluded.work_schedule,
			about_me = excluded.about_me,
			key_skills = excluded.key_skills,
			languages = excluded.languages,
			citizenship = excluded.citizenship,
			updated_at = excluded.updated_at`,
		userID,
		p.FirstName,
		p.Surname,
		p.Patronymic,
		p.DateOfBirth,
		p.Gender,
		p.City,
		p.Phone,
		p.ContactEmail,
		p.SocialLink,
		p.SocialLinkComment,
		p.ExtraSocialLink,
		p.ExtraSocialLinkComment,
		p.DesiredPosition,
		p.ProfessionalArea,
		p.Salary,
		p.Employment,
		p.WorkSchedule,
		p.AboutMe,
		p.KeySkills,
		p.Languages,
		p.Citizenship,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put resume profile: %w", err)
	}
	return nil
}

// GetResumeProfile returns the résumé profile for a user.
func (s *Store) GetResumeProfile(ctx context.Context, userID string) (storage.ResumeProfile, error) {
	if err := ctx.Err(); err != nil {
		return storage.ResumeProfile{}, err
	}
	if err := s.ready(); err != nil {
		return storage.ResumeProfile{}, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return storage.ResumeProfile{}, storage.ErrNotFound
	}

	var p storage.ResumeProfile
	var createdAt, updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, first_name, surname, patronymic, date_of_birth, gender, city,
			phone, contact_email, social_link, social_link_comment,
			extra_social_link, extra_social_link_comment,
			desired_position, professional_area, salary, employment, work_schedule,
			about_me, key_skills, languages, citizenship, created_at, updated_at
		 FROM resume_profiles WHERE user_id = ?`,
		userID,
	).Scan(
		&p.UserID,
		&p.FirstName,
		&p.Surname,
		&p.Patronymic,
		&p.DateOfBirth,
		&p.Gender,
		&p.City,
		&p.Phone,
		&p.ContactEmail,
		&p.SocialLink,
		&p.SocialLinkComment,
		&p.ExtraSocialLink,
		&p.ExtraSocialLinkComment,
		&p.DesiredPosition,
		&p.ProfessionalArea,
		&p.Salary,
		&p.Employment,
		&p.WorkSchedule,
		&p.AboutMe,
		&p.KeySkills,
		&p.Languages,
		&p.Citizenship,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ResumeProfile{}, storage.ErrNotFound
		}
		return storage.ResumeProfile{}, fmt.Errorf("get resume profile: %w", err)
	}
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}

// CreateWorkExperience appends one work history entry and returns it with
// the assigned id.
func (s *Store) CreateWorkExperience(ctx context.Context, w storage.WorkExperience) (storage.WorkExperience, error) {
	if err := ctx.Err(); err != nil {
		return storage.WorkExperience{}, err
	}
	if err := s.ready(); err != nil {
		return storage.WorkExperience{}, err
	}
	userID := strings.TrimSpace(w.UserID)
	if userID == "" {
		return storage.WorkExperience{}, fmt.Errorf("user id is required")
	}
	now := time.Now().UTC()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = w.CreatedAt
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO work_experiences (
			user_id, started_at, ended_at, organization, region, company_field,
			position, responsibilities, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID,
		w.StartedAt,
		w.EndedAt,
		w.Organization,
		w.Region,
		w.CompanyField,
		w.Position,
		w.Responsibilities,
		toMillis(w.CreatedAt),
		toMillis(w.UpdatedAt),
	)
	if err != nil {
		return storage.WorkExperience{}, fmt.Errorf("create work experience: %w", err)
	}
	w.ID, err = result.LastInsertId()
	if err != nil {
		return storage.WorkExperience{}, fmt.Errorf("create work experience: %w", err)
	}
	w.UserID = userID
	return w, nil
}

// GetWorkExperience returns one work history entry scoped to its owner.
func (s *Store) GetWorkExperience(ctx context.Context, userID string, id int64) (storage.WorkExperience, error) {
	if err := ctx.Err(); err != nil {
		return storage.WorkExperience{}, err
	}
	if err := s.ready(); err != nil {
		return storage.WorkExperience{}, err
	}

	var w storage.WorkExperience
	var createdAt, updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, user_id, started_at, ended_at, organization, region,
			company_field, position, responsibilities, created_at, updated_at
		 FROM work_experiences WHERE user_id = ? AND id = ?`,
		strings.TrimSpace(userID),
		id,
	).Scan(
		&w.ID,
		&w.UserID,
		&w.StartedAt,
		&w.EndedAt,
		&w.Organization,
		&w.Region,
		&w.CompanyField,
		&w.Position,
		&w.Responsibilities,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.WorkExperience{}, storage.ErrNotFound
		}
		return storage.WorkExperience{}, fmt.Errorf("get work experience: %w", err)
	}
	w.CreatedAt = fromMillis(createdAt)
	w.UpdatedAt = fromMillis(updatedAt)
	return w, nil
}

// UpdateWorkExperience updates one work history entry scoped to its owner.
func (s *Store) UpdateWorkExperience(ctx context.Context, w storage.WorkExperience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	updatedAt := w.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE work_experiences SET
			started_at = ?, ended_at = ?, organization = ?, region = ?,
			company_field = ?, position = ?, responsibilities = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		w.StartedAt,
		w.EndedAt,
		w.Organization,
		w.Region,
		w.CompanyField,
		w.Position,
		w.Responsibilities,
		toMillis(updatedAt),
		strings.TrimSpace(w.UserID),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("update work experience: %w", err)
	}
	return rowsAffectedOrNotFound(result, "update work experience")
}

// ListWorkExperiences returns a user's work history entries, newest first.
func (s *Store) ListWorkExperiences(ctx context.Context, userID string) ([]storage.WorkExperience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, user_id, started_at, ended_at, organization, region,
			company_field, position, responsibilities, created_at, updated_at
		 FROM work_experiences WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		strings.TrimSpace(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []storage.WorkExperience
	for rows.Next() {
		var w storage.WorkExperience
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.StartedAt,
			&w.EndedAt,
			&w.Organization,
			&w.Region,
			&w.CompanyField,
			&w.Position,
			&w.Responsibilities,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan work experience: %w", err)
		}
		w.CreatedAt = fromMillis(createdAt)
		w.UpdatedAt = fromMillis(updatedAt)
		entries = append(entries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	return entries, nil
}

// CreateEducation appends one education entry and returns it with the
// assigned id.
func (s *Store) CreateEducation(ctx context.Context, e storage.Education) (storage.Education, error) {
	if err := ctx.Err(); err != nil {
		return storage.Education{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Education{}, err
	}
	userID := strings.TrimSpace(e.UserID)
	if userID == "" {
		return storage.Education{}, fmt.Errorf("user id is required")
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO educations (
			user_id, level, institution, faculty, specialization,
			completion_year, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID,
		e.Level,
		e.Institution,
		e.Faculty,
		e.Specialization,
		e.CompletionYear,
		toMillis(e.CreatedAt),
		toMillis(e.UpdatedAt),
	)
	if err != nil {
		return storage.Education{}, fmt.Errorf("create education: %w", err)
	}
	e.ID, err = result.LastInsertId()
	if err != nil {
		return storage.Education{}, fmt.Errorf("create education: %w", err)
	}
	e.UserID = userID
	return e, nil
}

// GetEducation returns one education entry scoped to its owner.
func (s *Store) GetEducation(ctx context.Context, userID string, id int64) (storage.Education, error) {
	if err := ctx.Err(); err != nil {
		return storage.Education{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Education{}, err
	}

	var e storage.Education
	var createdAt, updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, user_id, level, institution, faculty, specialization,
			completion_year, created_at, updated_at
		 FROM educations WHERE user_id = ? AND id = ?`,
		strings.TrimSpace(userID),
		id,
	).Scan(
		&e.ID,
		&e.UserID,
		&e.Level,
		&e.Institution,
		&e.Faculty,
		&e.Specialization,
		&e.CompletionYear,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Education{}, storage.ErrNotFound
		}
		return storage.Education{}, fmt.Errorf("get education: %w", err)
	}
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return e, nil
}

// UpdateEducation updates one education entry scoped to its owner.
func (s *Store) UpdateEducation(ctx context.Context, e storage.Education) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	updatedAt := e.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE educations SET
			level = ?, institution = ?, faculty = ?, specialization = ?,
			completion_year = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		e.Level,
		e.Institution,
		e.Faculty,
		e.Specialization,
		e.CompletionYear,
		toMillis(updatedAt),
		strings.TrimSpace(e.UserID),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("update education: %w", err)
	}
	return rowsAffectedOrNotFound(result, "update education")
}

// ListEducations returns a user's education entries, newest first.
func (s *Store) ListEducations(ctx context.Context, userID string) ([]storage.Education, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, user_id, level, institution, faculty, specialization,
			completion_year, created_at, updated_at
		 FROM educations WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		strings.TrimSpace(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("list educations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []storage.Education
	for rows.Next() {
		var e storage.Education
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Level,
			&e.Institution,
			&e.Faculty,
			&e.Specialization,
			&e.CompletionYear,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan education: %w", err)
		}
		e.CreatedAt = fromMillis(createdAt)
		e.UpdatedAt = fromMillis(updatedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list educations: %w", err)
	}
	return entries, nil
}

// CreateAdditionalEducation appends one course entry and returns it with
// the assigned id.
func (s *Store) CreateAdditionalEducation(ctx context.Context, e storage.AdditionalEducation) (storage.AdditionalEducation, error) {
	if err := ctx.Err(); err != nil {
		return storage.AdditionalEducation{}, err
	}
	if err := s.ready(); err != nil {
		return storage.AdditionalEducation{}, err
	}
	userID := strings.TrimSpace(e.UserID)
	if userID == "" {
		return storage.AdditionalEducation{}, fmt.Errorf("user id is required")
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO additional_educations (
			user_id, organization, specialization, completion_year, comment,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID,
		e.Organization,
		e.Specialization,
		e.CompletionYear,
		e.Comment,
		toMillis(e.CreatedAt),
		toMillis(e.UpdatedAt),
	)
	if err != nil {
		return storage.AdditionalEducation{}, fmt.Errorf("create additional education: %w", err)
	}
	e.ID, err = result.LastInsertId()
	if err != nil {
		return storage.AdditionalEducation{}, fmt.Errorf("create additional education: %w", err)
	}
	e.UserID = userID
	return e, nil
}

// GetAdditionalEducation returns one course entry scoped to its owner.
func (s *Store) GetAdditionalEducation(ctx context.Context, userID string, id int64) (storage.AdditionalEducation, error) {
	if err := ctx.Err(); err != nil {
		return storage.AdditionalEducation{}, err
	}
	if err := s.ready(); err != nil {
		return storage.AdditionalEducation{}, err
	}

	var e storage.AdditionalEducation
	var createdAt, updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, user_id, organization, specialization, completion_year,
			comment, created_at, updated_at
		 FROM additional_educations WHERE user_id = ? AND id = ?`,
		strings.TrimSpace(userID),
		id,
	).Scan(
		&e.ID,
		&e.UserID,
		&e.Organization,
		&e.Specialization,
		&e.CompletionYear,
		&e.Comment,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.AdditionalEducation{}, storage.ErrNotFound
		}
		return storage.AdditionalEducation{}, fmt.Errorf("get additional education: %w", err)
	}
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return e, nil
}

// UpdateAdditionalEducation updates one course entry scoped to its owner.
func (s *Store) UpdateAdditionalEducation(ctx context.Context, e storage.AdditionalEducation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	updatedAt := e.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE additional_educations SET
			organization = ?, specialization = ?, completion_year = ?,
			comment = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		e.Organization,
		e.Specialization,
		e.CompletionYear,
		e.Comment,
		toMillis(updatedAt),
		strings.TrimSpace(e.UserID),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("update additional education: %w", err)
	}
	return rowsAffectedOrNotFound(result, "update additional education")
}

// ListAdditionalEducations returns a user's course entries, newest first.
func (s *Store) ListAdditionalEducations(ctx context.Context, userID string) ([]storage.AdditionalEducation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, user_id, organization, specialization, completion_year,
			comment, created_at, updated_at
		 FROM additional_educations WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		strings.TrimSpace(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("list additional educations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []storage.AdditionalEducation
	for rows.Next() {
		var e storage.AdditionalEducation
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Organization,
			&e.Specialization,
			&e.CompletionYear,
			&e.Comment,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan additional education: %w", err)
		}
		e.CreatedAt = fromMillis(createdAt)
		e.UpdatedAt = fromMillis(updatedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list additional educations: %w", err)
	}
	return entries, nil
}

func rowsAffectedOrNotFound(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

var _ storage.ResumeStore = (*Store)(nil)
