package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-builder/internal/domain"
)

func TestFormStepNavigation(t *testing.T) {
	f := NewFormState(domain.NewPortfolioDocument())
	assert.Equal(t, StepPersonalInfo, f.Step)

	for i := 0; i < 6; i++ {
		f.Next()
	}
	assert.Equal(t, StepCertifications, f.Step)

	// clamped at the final step
	f.Next()
	assert.Equal(t, StepCertifications, f.Step)

	for i := 0; i < 10; i++ {
		f.Previous()
	}
	assert.Equal(t, StepPersonalInfo, f.Step)
}

func TestFormEditsClearSavedFlag(t *testing.T) {
	store := newMockStore()
	f := NewFormState(domain.NewPortfolioDocument())
	f.SetEmail("a@b.com")
	require.NoError(t, f.Save(context.Background(), store))
	require.True(t, f.Saved)

	edits := []func(){
		func() { f.SetName("A") },
		func() { f.SetPhone("123") },
		func() { f.SetLink("github", "https://github.com/a") },
		func() { f.AddExperience() },
		func() { f.UpdateExperience(0, "company", "Acme") },
		func() { f.RemoveExperience(0) },
		func() { f.AddProject() },
		func() { f.UpdateProject(0, "techStack", "Go, Postgres") },
		func() { f.AddEducation() },
		func() { f.SetSkills("languages", "Go") },
		func() { f.AddCertification() },
		func() { f.UpdateCertification(0, "title", "Cert") },
	}

	for _, edit := range edits {
		require.NoError(t, f.Save(context.Background(), store))
		require.True(t, f.Saved)
		edit()
		assert.False(t, f.Saved, "edit must clear the saved flag")
	}
}

func TestFormPrimaryActionGating(t *testing.T) {
	store := newMockStore()
	f := NewFormState(domain.NewPortfolioDocument())
	f.SetEmail("a@b.com")

	assert.Equal(t, ActionSave, f.PrimaryAction())
	_, err := f.Finalize()
	assert.ErrorIs(t, err, ErrNotSaved)

	require.NoError(t, f.Save(context.Background(), store))
	assert.Equal(t, ActionGenerate, f.PrimaryAction())

	doc, err := f.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", doc.Email)
}

func TestFormSaveFailureLeavesStateIntact(t *testing.T) {
	store := newMockStore()
	store.saveErr = errors.New("db down")

	f := NewFormState(domain.NewPortfolioDocument())
	f.SetEmail("a@b.com")
	f.SetName("Before")

	err := f.Save(context.Background(), store)
	require.Error(t, err)
	assert.False(t, f.Saved)
	assert.Equal(t, "Before", f.Doc.Name)
	assert.Equal(t, "a@b.com", f.Doc.Email)
}

func TestFormSkillsCommaSplitting(t *testing.T) {
	f := NewFormState(domain.NewPortfolioDocument())

	f.SetSkills("languages", "Python,  Go ,JavaScript")
	f.SetSkills("tools", "AWS")

	assert.Equal(t, []string{"Python", "Go", "JavaScript"}, f.Doc.Skills.Languages)
	assert.Equal(t, []string{"AWS"}, f.Doc.Skills.Tools)
}

func TestFormAddAppendsBlankShapedElements(t *testing.T) {
	f := NewFormState(domain.NewPortfolioDocument())

	f.AddExperience()
	f.AddProject()
	f.AddEducation()
	f.AddCertification()

	require.Len(t, f.Doc.WorkExperience, 1)
	assert.Equal(t, domain.Experience{}, f.Doc.WorkExperience[0])
	require.Len(t, f.Doc.Projects, 1)
	assert.NotNil(t, f.Doc.Projects[0].TechStack)
	assert.Empty(t, f.Doc.Projects[0].TechStack)
	require.Len(t, f.Doc.Education, 1)
	require.Len(t, f.Doc.Certifications, 1)
}

func TestFormRemoveByIndex(t *testing.T) {
	f := NewFormState(domain.NewPortfolioDocument())
	f.AddExperience()
	f.UpdateExperience(0, "company", "First")
	f.AddExperience()
	f.UpdateExperience(1, "company", "Second")

	f.RemoveExperience(0)
	require.Len(t, f.Doc.WorkExperience, 1)
	assert.Equal(t, "Second", f.Doc.WorkExperience[0].Company)

	// out-of-range removal is a no-op
	f.RemoveExperience(5)
	f.RemoveExperience(-1)
	assert.Len(t, f.Doc.WorkExperience, 1)
}

func TestFormUpdateOutOfRangeIsNoop(t *testing.T) {
	f := NewFormState(domain.NewPortfolioDocument())
	f.UpdateProject(0, "title", "ghost")
	assert.Empty(t, f.Doc.Projects)
}

func TestFormUnknownLinkKeyIgnored(t *testing.T) {
	store := newMockStore()
	f := NewFormState(domain.NewPortfolioDocument())
	f.SetEmail("a@b.com")
	require.NoError(t, f.Save(context.Background(), store))

	f.SetLink("myspace", "https://myspace.com/a")
	assert.True(t, f.Saved, "unknown key must not count as an edit")
	assert.Equal(t, domain.PortfolioLinks{}, f.Doc.PortfolioLinks)
}

func TestFormAttachProfileImage(t *testing.T) {
	f := NewFormState(domain.NewPortfolioDocument())

	err := f.AttachProfileImage("image/gif", []byte{1, 2, 3})
	assert.Error(t, err)
	assert.Empty(t, f.Doc.ProfileImage)

	err = f.AttachProfileImage("image/png", make([]byte, 6*1024*1024))
	assert.Error(t, err)

	require.NoError(t, f.AttachProfileImage("image/png", []byte{1, 2, 3}))
	assert.Contains(t, f.Doc.ProfileImage, "data:image/png;base64,")
	assert.False(t, f.Saved)
}

func TestFormRoundTripThroughStore(t *testing.T) {
	store := newMockStore()
	f := NewFormState(domain.NewPortfolioDocument())
	f.SetEmail("a@b.com")
	f.SetName("A")
	f.AddProject()
	f.UpdateProject(0, "title", "Widget")
	require.NoError(t, f.Save(context.Background(), store))

	fetched, err := store.Fetch(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, f.Doc, fetched)
}
