package service

import (
	"context"
	"testing"

	"github.com/lshigami/Tally/internal/apperr"
	"github.com/lshigami/Tally/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jeeTemplate(name string) dto.TemplateRequestDTO {
	return dto.TemplateRequestDTO{
		Name:       name,
		MarkingDTO: dto.MarkingDTO{CorrectPoints: 4, WrongPoints: 1, IsNegative: true},
		Subjects: []dto.TemplateSubjectDTO{
			{Name: "Physics", DefaultTotal: 25},
			{Name: "Chemistry", DefaultTotal: 25},
			{Name: "Math", DefaultTotal: 25},
		},
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	_, templates, _ := newTestServices(t)
	ctx := context.Background()

	id, err := templates.CreateTemplate(ctx, jeeTemplate("JEE Mains"))
	require.NoError(t, err)

	list, err := templates.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "JEE Mains", got.Name)
	assert.Equal(t, dto.MarkingDTO{CorrectPoints: 4, WrongPoints: 1, IsNegative: true}, got.MarkingDTO)
	assert.Equal(t, jeeTemplate("").Subjects, got.Subjects)
}

func TestTemplatesOrderedByName(t *testing.T) {
	_, templates, _ := newTestServices(t)
	ctx := context.Background()
	for _, name := range []string{"NEET", "CAT", "JEE Advanced"} {
		_, err := templates.CreateTemplate(ctx, jeeTemplate(name))
		require.NoError(t, err)
	}

	list, err := templates.ListTemplates(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, tmpl := range list {
		names = append(names, tmpl.Name)
	}
	assert.Equal(t, []string{"CAT", "JEE Advanced", "NEET"}, names)
}

func TestCreateTemplateDuplicateName(t *testing.T) {
	_, templates, _ := newTestServices(t)
	ctx := context.Background()
	_, err := templates.CreateTemplate(ctx, jeeTemplate("JEE Mains"))
	require.NoError(t, err)

	dup := jeeTemplate("JEE Mains")
	dup.CorrectPoints = 1
	dup.Subjects = nil
	_, err = templates.CreateTemplate(ctx, dup)
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)

	list, err := templates.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4.0, list[0].CorrectPoints)
	assert.Len(t, list[0].Subjects, 3)
}

func TestUpdateTemplate(t *testing.T) {
	_, templates, _ := newTestServices(t)
	ctx := context.Background()
	id, err := templates.CreateTemplate(ctx, jeeTemplate("JEE Mains"))
	require.NoError(t, err)
	otherID, err := templates.CreateTemplate(ctx, jeeTemplate("NEET"))
	require.NoError(t, err)

	renamed := jeeTemplate("JEE Mains 2025")
	renamed.IsNegative = false
	renamed.Subjects = []dto.TemplateSubjectDTO{{Name: "Aptitude", DefaultTotal: 50}}
	require.NoError(t, templates.UpdateTemplate(ctx, id, renamed))

	// keeping its own name is not a collision
	require.NoError(t, templates.UpdateTemplate(ctx, otherID, jeeTemplate("NEET")))

	err = templates.UpdateTemplate(ctx, otherID, jeeTemplate("JEE Mains 2025"))
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)

	err = templates.UpdateTemplate(ctx, 404, jeeTemplate("Missing"))
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := templates.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "JEE Mains 2025", list[0].Name)
	assert.False(t, list[0].IsNegative)
	assert.Equal(t, []dto.TemplateSubjectDTO{{Name: "Aptitude", DefaultTotal: 50}}, list[0].Subjects)
	assert.Equal(t, "NEET", list[1].Name)
}

func TestDeleteTemplate(t *testing.T) {
	_, templates, _ := newTestServices(t)
	ctx := context.Background()
	id, err := templates.CreateTemplate(ctx, jeeTemplate("JEE Mains"))
	require.NoError(t, err)

	require.NoError(t, templates.DeleteTemplate(ctx, id))
	require.NoError(t, templates.DeleteTemplate(ctx, id))

	list, err := templates.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateTemplateRequiresName(t *testing.T) {
	_, templates, _ := newTestServices(t)
	_, err := templates.CreateTemplate(context.Background(), jeeTemplate("   "))
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
