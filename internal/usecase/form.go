package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"
)

// Form steps, in editing order.
const (
	StepPersonalInfo = 1 + iota
	StepPortfolioLinks
	StepWorkExperience
	StepProjects
	StepEducation
	StepSkills
	StepCertifications

	stepFirst = StepPersonalInfo
	stepLast  = StepCertifications
)

// Action is what the primary button does at the final step.
type Action string

const (
	ActionSave     Action = "save"
	ActionGenerate Action = "generate"
)

// ErrNotSaved blocks generation until the document has been explicitly
// saved after the last edit.
var ErrNotSaved = errors.New("form: document has unsaved edits")

const maxProfileImageBytes = 5 * 1024 * 1024

// Store is the consumed persistence interface, upsert keyed by email.
type Store interface {
	Save(ctx context.Context, doc domain.PortfolioDocument) (domain.PortfolioDocument, error)
	Fetch(ctx context.Context, email string) (domain.PortfolioDocument, error)
}

// FormState drives the multi-step portfolio editor. It is a plain
// serializable value with explicit transition methods, independent of any
// UI binding. Every mutation clears Saved; generation is gated on an
// explicit re-save.
type FormState struct {
	Step  int                      `json:"step"`
	Doc   domain.PortfolioDocument `json:"doc"`
	Saved bool                     `json:"saved"`
}

// NewFormState starts the editor at step 1 over an already-normalized
// document.
func NewFormState(doc domain.PortfolioDocument) *FormState {
	return &FormState{Step: stepFirst, Doc: model.NormalizeDocument(doc)}
}

// Next advances one step, clamped at the final step.
func (f *FormState) Next() {
	if f.Step < stepLast {
		f.Step++
	}
}

// Previous goes back one step, clamped at the first step.
func (f *FormState) Previous() {
	if f.Step > stepFirst {
		f.Step--
	}
}

func (f *FormState) touch() {
	f.Saved = false
}

// Personal info (step 1).

func (f *FormState) SetName(v string)  { f.Doc.Name = v; f.touch() }
func (f *FormState) SetEmail(v string) { f.Doc.Email = v; f.touch() }
func (f *FormState) SetPhone(v string) { f.Doc.Phone = v; f.touch() }

// AttachProfileImage validates and stores an avatar as a base64 data URL.
// Only JPEG and PNG up to 5MB are accepted.
func (f *FormState) AttachProfileImage(contentType string, data []byte) error {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png":
	default:
		return fmt.Errorf("form: unsupported image type %q", contentType)
	}
	if len(data) > maxProfileImageBytes {
		return errors.New("form: image larger than 5MB")
	}
	f.Doc.ProfileImage = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	f.touch()
	return nil
}

// Portfolio links (step 2). Unknown keys are ignored.
func (f *FormState) SetLink(key, value string) {
	switch key {
	case "portfolioWebsite":
		f.Doc.PortfolioLinks.PortfolioWebsite = value
	case "linkedin":
		f.Doc.PortfolioLinks.LinkedIn = value
	case "github":
		f.Doc.PortfolioLinks.GitHub = value
	case "leetcode":
		f.Doc.PortfolioLinks.LeetCode = value
	case "hackerrank":
		f.Doc.PortfolioLinks.HackerRank = value
	default:
		return
	}
	f.touch()
}

// Work experience (step 3). Out-of-range indexes are no-ops.

func (f *FormState) UpdateExperience(i int, field, value string) {
	if i < 0 || i >= len(f.Doc.WorkExperience) {
		return
	}
	exp := &f.Doc.WorkExperience[i]
	switch field {
	case "company":
		exp.Company = value
	case "position":
		exp.Position = value
	case "duration":
		exp.Duration = value
	case "description":
		exp.Description = value
	default:
		return
	}
	f.touch()
}

func (f *FormState) AddExperience() {
	f.Doc.WorkExperience = append(f.Doc.WorkExperience, domain.NewExperience())
	f.touch()
}

func (f *FormState) RemoveExperience(i int) {
	if i < 0 || i >= len(f.Doc.WorkExperience) {
		return
	}
	f.Doc.WorkExperience = append(f.Doc.WorkExperience[:i], f.Doc.WorkExperience[i+1:]...)
	f.touch()
}

// Projects (step 4). The techStack field takes a comma-separated display
// string and is stored as a trimmed slice.

func (f *FormState) UpdateProject(i int, field, value string) {
	if i < 0 || i >= len(f.Doc.Projects) {
		return
	}
	proj := &f.Doc.Projects[i]
	switch field {
	case "title":
		proj.Title = value
	case "techStack":
		proj.TechStack = model.SplitList(value)
	case "description":
		proj.Description = value
	case "github":
		proj.GitHub = value
	case "liveDemo":
		proj.LiveDemo = value
	default:
		return
	}
	f.touch()
}

func (f *FormState) AddProject() {
	f.Doc.Projects = append(f.Doc.Projects, domain.NewProject())
	f.touch()
}

func (f *FormState) RemoveProject(i int) {
	if i < 0 || i >= len(f.Doc.Projects) {
		return
	}
	f.Doc.Projects = append(f.Doc.Projects[:i], f.Doc.Projects[i+1:]...)
	f.touch()
}

// Education (step 5).

func (f *FormState) UpdateEducation(i int, field, value string) {
	if i < 0 || i >= len(f.Doc.Education) {
		return
	}
	edu := &f.Doc.Education[i]
	switch field {
	case "degree":
		edu.Degree = value
	case "institution":
		edu.Institution = value
	case "duration":
		edu.Duration = value
	case "score":
		edu.Score = value
	default:
		return
	}
	f.touch()
}

func (f *FormState) AddEducation() {
	f.Doc.Education = append(f.Doc.Education, domain.NewEducation())
	f.touch()
}

func (f *FormState) RemoveEducation(i int) {
	if i < 0 || i >= len(f.Doc.Education) {
		return
	}
	f.Doc.Education = append(f.Doc.Education[:i], f.Doc.Education[i+1:]...)
	f.touch()
}

// Skills (step 6). Category is "languages" or "tools"; the value is the
// comma-separated display string.
func (f *FormState) SetSkills(category, value string) {
	switch category {
	case "languages":
		f.Doc.Skills.Languages = model.SplitList(value)
	case "tools":
		f.Doc.Skills.Tools = model.SplitList(value)
	default:
		return
	}
	f.touch()
}

// Certifications (step 7).

func (f *FormState) UpdateCertification(i int, field, value string) {
	if i < 0 || i >= len(f.Doc.Certifications) {
		return
	}
	cert := &f.Doc.Certifications[i]
	switch field {
	case "title":
		cert.Title = value
	case "year":
		cert.Year = value
	case "provider":
		cert.Provider = value
	case "certificateLink":
		cert.CertificateLink = value
	default:
		return
	}
	f.touch()
}

func (f *FormState) AddCertification() {
	f.Doc.Certifications = append(f.Doc.Certifications, domain.NewCertification())
	f.touch()
}

func (f *FormState) RemoveCertification(i int) {
	if i < 0 || i >= len(f.Doc.Certifications) {
		return
	}
	f.Doc.Certifications = append(f.Doc.Certifications[:i], f.Doc.Certifications[i+1:]...)
	f.touch()
}

// PrimaryAction reports what the terminal-step button should do: save while
// there are unsaved edits, generate once saved.
func (f *FormState) PrimaryAction() Action {
	if f.Saved {
		return ActionGenerate
	}
	return ActionSave
}

// Save persists the current document through the store. On success the
// saved flag is set and the stored copy (with server-assigned timestamps)
// replaces the in-memory one. On failure the flag stays clear and the
// in-memory document is untouched.
func (f *FormState) Save(ctx context.Context, store Store) error {
	stored, err := store.Save(ctx, f.Doc)
	if err != nil {
		return err
	}
	f.Doc = model.NormalizeDocument(stored)
	f.Saved = true
	return nil
}

// Finalize returns the document for site generation. Generation is blocked
// until the form has been saved.
func (f *FormState) Finalize() (domain.PortfolioDocument, error) {
	if !f.Saved {
		return domain.PortfolioDocument{}, ErrNotSaved
	}
	return f.Doc, nil
}
