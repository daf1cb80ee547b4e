// Package resume manages structured résumé sections for a user.
package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/svyatk/vitae/internal/platform/errors"
	"github.com/svyatk/vitae/internal/storage"
)

const (
	maxAboutLength            = 1000
	maxLanguagesLength        = 500
	maxResponsibilitiesLength = 1000
	maxCommentLength          = 1000
)

// Service manages résumé sections. Every sub-record operation is scoped to
// the owning user so one user cannot address another user's records by id.
type Service struct {
	store storage.ResumeStore
	now   func() time.Time
}

// NewService constructs a résumé service.
func NewService(store storage.ResumeStore) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// SaveProfile validates and upserts the singleton résumé profile.
func (s *Service) SaveProfile(ctx context.Context, p storage.ResumeProfile) (storage.ResumeProfile, error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.Surname = strings.TrimSpace(p.Surname)
	p.DesiredPosition = strings.TrimSpace(p.DesiredPosition)
	if p.FirstName == "" {
		return storage.ResumeProfile{}, apperrors.New(apperrors.CodeResumeFieldRequired, "first name is required")
	}
	if p.Surname == "" {
		return storage.ResumeProfile{}, apperrors.New(apperrors.CodeResumeFieldRequired, "surname is required")
	}
	if err := checkLength("about me", p.AboutMe, maxAboutLength); err != nil {
		return storage.ResumeProfile{}, err
	}
	if err := checkLength("languages", p.Languages, maxLanguagesLength); err != nil {
		return storage.ResumeProfile{}, err
	}

	existing, err := s.store.GetResumeProfile(ctx, p.UserID)
	switch {
	case err == nil:
		p.CreatedAt = existing.CreatedAt
	case errors.Is(err, storage.ErrNotFound):
		p.CreatedAt = s.now()
	default:
		return storage.ResumeProfile{}, fmt.Errorf("get resume profile: %w", err)
	}
	p.UpdatedAt = s.now()
	if err := s.store.PutResumeProfile(ctx, p); err != nil {
		return storage.ResumeProfile{}, fmt.Errorf("save resume profile: %w", err)
	}
	return p, nil
}

// Profile returns the résumé profile for a user.
func (s *Service) Profile(ctx context.Context, userID string) (storage.ResumeProfile, error) {
	p, err := s.store.GetResumeProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ResumeProfile{}, apperrors.Wrap(apperrors.CodeNotFound, "resume profile not found", err)
		}
		return storage.ResumeProfile{}, fmt.Errorf("get resume profile: %w", err)
	}
	return p, nil
}

// AddWorkExperience validates and appends one work history entry.
func (s *Service) AddWorkExperience(ctx context.Context, w storage.WorkExperience) (storage.WorkExperience, error) {
	if err := validateWorkExperience(&w); err != nil {
		return storage.WorkExperience{}, err
	}
	w.CreatedAt = s.now()
	w.UpdatedAt = w.CreatedAt
	created, err := s.store.CreateWorkExperience(ctx, w)
	if err != nil {
		return storage.WorkExperience{}, fmt.Errorf("add work experience: %w", err)
	}
	return created, nil
}

// UpdateWorkExperience validates and updates one owned work history entry.
func (s *Service) UpdateWorkExperience(ctx context.Context, w storage.WorkExperience) error {
	if err := validateWorkExperience(&w); err != nil {
		return err
	}
	w.UpdatedAt = s.now()
	if err := s.store.UpdateWorkExperience(ctx, w); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.Wrap(apperrors.CodeNotFound, "work experience not found", err)
		}
		return fmt.Errorf("update work experience: %w", err)
	}
	return nil
}

// WorkExperience returns one owned work history entry.
func (s *Service) WorkExperience(ctx context.Context, userID string, entryID int64) (storage.WorkExperience, error) {
	w, err := s.store.GetWorkExperience(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.WorkExperience{}, apperrors.Wrap(apperrors.CodeNotFound, "work experience not found", err)
		}
		return storage.WorkExperience{}, fmt.Errorf("get work experience: %w", err)
	}
	return w, nil
}

// WorkExperiences lists a user's work history, newest first.
func (s *Service) WorkExperiences(ctx context.Context, userID string) ([]storage.WorkExperience, error) {
	entries, err := s.store.ListWorkExperiences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	return entries, nil
}

// AddEducation validates and appends one education entry.
func (s *Service) AddEducation(ctx context.Context, e storage.Education) (storage.Education, error) {
	if err := validateEducation(&e); err != nil {
		return storage.Education{}, err
	}
	e.CreatedAt = s.now()
	e.UpdatedAt = e.CreatedAt
	created, err := s.store.CreateEducation(ctx, e)
	if err != nil {
		return storage.Education{}, fmt.Errorf("add education: %w", err)
	}
	return created, nil
}

// UpdateEducation validates and updates one owned education entry.
func (s *Service) UpdateEducation(ctx context.Context, e storage.Education) error {
	if err := validateEducation(&e); err != nil {
		return err
	}
	e.UpdatedAt = s.now()
	if err := s.store.UpdateEducation(ctx, e); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.Wrap(apperrors.CodeNotFound, "education not found", err)
		}
		return fmt.Errorf("update education: %w", err)
	}
	return nil
}

// Education returns one owned education entry.
func (s *Service) Education(ctx context.Context, userID string, entryID int64) (storage.Education, error) {
	e, err := s.store.GetEducation(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Education{}, apperrors.Wrap(apperrors.CodeNotFound, "education not found", err)
		}
		return storage.Education{}, fmt.Errorf("get education: %w", err)
	}
	return e, nil
}

// Educations lists a user's education entries, newest first.
func (s *Service) Educations(ctx context.Context, userID string) ([]storage.Education, error) {
	entries, err := s.store.ListEducations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list educations: %w", err)
	}
	return entries, nil
}

// AddAdditionalEducation validates and appends one course entry.
func (s *Service) AddAdditionalEducation(ctx context.Context, e storage.AdditionalEducation) (storage.AdditionalEducation, error) {
	if err := validateAdditionalEducation(&e); err != nil {
		return storage.AdditionalEducation{}, err
	}
	e.CreatedAt = s.now()
	e.UpdatedAt = e.CreatedAt
	created, err := s.store.CreateAdditionalEducation(ctx, e)
	if err != nil {
		return storage.AdditionalEducation{}, fmt.Errorf("add additional education: %w", err)
	}
	return created, nil
}

// UpdateAdditionalEducation validates and updates one owned course entry.
func (s *Service) UpdateAdditionalEducation(ctx context.Context, e storage.AdditionalEducation) error {
	if err := validateAdditionalEducation(&e); err != nil {
		return err
	}
	e.UpdatedAt = s.now()
	if err := s.store.UpdateAdditionalEducation(ctx, e); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.Wrap(apperrors.CodeNotFound, "additional education not found", err)
		}
		return fmt.Errorf("update additional education: %w", err)
	}
	return nil
}

// AdditionalEducation returns one owned course entry.
func (s *Service) AdditionalEducation(ctx context.Context, userID string, entryID int64) (storage.AdditionalEducation, error) {
	e, err := s.store.GetAdditionalEducation(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.AdditionalEducation{}, apperrors.Wrap(apperrors.CodeNotFound, "additional education not found", err)
		}
		return storage.AdditionalEducation{}, fmt.Errorf("get additional education: %w", err)
	}
	return e, nil
}

// AdditionalEducations lists a user's course entries, newest first.
func (s *Service) AdditionalEducations(ctx context.Context, userID string) ([]storage.AdditionalEducation, error) {
	entries, err := s.store.ListAdditionalEducations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list additional educations: %w", err)
	}
	return entries, nil
}

func validateWorkExperience(w *storage.WorkExperience) error {
	w.Organization = strings.TrimSpace(w.Organization)
	w.Position = strings.TrimSpace(w.Position)
	if w.Organization == "" {
		return apperrors.New(apperrors.CodeResumeFieldRequired, "organization is required")
	}
	if w.Position == "" {
		return apperrors.New(apperrors.CodeResumeFieldRequired, "position is required")
	}
	return checkLength("responsibilities", w.Responsibilities, maxResponsibilitiesLength)
}

func validateEducation(e *storage.Education) error {
	e.Institution = strings.TrimSpace(e.Institution)
	if e.Institution == "" {
		return apperrors.New(apperrors.CodeResumeFieldRequired, "institution is required")
	}
	return nil
}

func validateAdditionalEducation(e *storage.AdditionalEducation) error {
	e.Organization = strings.TrimSpace(e.Organization)
	if e.Organization == "" {
		return apperrors.New(apperrors.CodeResumeFieldRequired, "organization is required")
	}
	return checkLength("comment", e.Comment, maxCommentLength)
}

func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return apperrors.New(apperrors.CodeResumeFieldTooLong,
			fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}
