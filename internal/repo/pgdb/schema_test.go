package pgdb

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaRepo_GetActiveAssignments(t *testing.T) {
	pg := newTestDB(t)
	f := newFixtures(t, pg)
	repo := NewSchemaRepo(pg)
	ctx := context.Background()

	f.organization(42, "Client 42", "Client")
	active := f.template("Primary", nil, true)
	hidden := f.template("Hidden", nil, true)
	inactive := f.template("Inactive", nil, true)
	deleted := f.template("Deleted", nil, true)

	f.assign(42, active, assignmentOpts{visible: true, active: true})
	f.assign(42, hidden, assignmentOpts{visible: false, active: true})
	f.assign(42, inactive, assignmentOpts{visible: true, active: false})
	f.assign(42, deleted, assignmentOpts{visible: true, active: true, deleted: true})

	assignments, err := repo.GetActiveAssignments(ctx, 42)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, active, assignments[0].TemplateId)
	assert.EqualValues(t, 42, assignments[0].ClientId)
	assert.True(t, assignments[0].Visible)
	assert.True(t, assignments[0].Active)
	assert.Nil(t, assignments[0].DeletedOn)

	t.Run("unknown client", func(t *testing.T) {
		assignments, err := repo.GetActiveAssignments(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, assignments)
	})
}

func TestSchemaRepo_GetActiveQuestionsByTemplateIds(t *testing.T) {
	pg := newTestDB(t)
	f := newFixtures(t, pg)
	repo := NewSchemaRepo(pg)
	ctx := context.Background()

	tmpl := f.template("Safety template", ptr("Safety"), true)
	f.section(1, tmpl, "General", true)
	f.subSection(10, 1, "Details", true)
	f.question(100, 10, "Do you have a safety program?", ptr(int64(7)), ptr("Low Risk"), true)
	f.question(101, 10, "Inactive question", nil, nil, false)
	f.question(102, 10, "No bank", nil, nil, true)

	f.section(2, tmpl, "Inactive section", false)
	f.subSection(20, 2, "Under inactive section", true)
	f.question(200, 20, "Hidden by section", nil, nil, true)

	f.subSection(11, 1, "Inactive sub-section", false)
	f.question(110, 11, "Hidden by sub-section", nil, nil, true)

	other := f.template("Other", nil, true)
	f.section(3, other, "Other section", true)
	f.subSection(30, 3, "Other sub-section", true)
	f.question(300, 30, "Belongs to another template", nil, nil, true)

	off := f.template("Off", nil, false)
	f.section(4, off, "Off section", true)
	f.subSection(40, 4, "Off sub-section", true)
	f.question(400, 40, "Hidden by template", nil, nil, true)

	questions, err := repo.GetActiveQuestionsByTemplateIds(ctx, []uuid.UUID{tmpl, off})
	require.NoError(t, err)

	sort.Slice(questions, func(i, j int) bool { return questions[i].Id < questions[j].Id })
	require.Len(t, questions, 2)

	q := questions[0]
	assert.EqualValues(t, 100, q.Id)
	assert.Equal(t, "Do you have a safety program?", q.Text)
	require.NotNil(t, q.QuestionBankId)
	assert.EqualValues(t, 7, *q.QuestionBankId)
	require.NotNil(t, q.RiskLevel)
	assert.Equal(t, "Low Risk", *q.RiskLevel)
	assert.EqualValues(t, 10, q.SubSectionId)
	assert.Equal(t, "Details", q.SubSectionName)
	assert.EqualValues(t, 1, q.SectionId)
	assert.Equal(t, "General", q.SectionName)
	assert.Equal(t, tmpl, q.TemplateId)
	assert.Equal(t, "Safety template", q.TemplateName)
	require.NotNil(t, q.TemplateRisk)
	assert.Equal(t, "Safety", *q.TemplateRisk)

	assert.EqualValues(t, 102, questions[1].Id)
	assert.Nil(t, questions[1].QuestionBankId)
	assert.Nil(t, questions[1].RiskLevel)

	t.Run("no templates", func(t *testing.T) {
		questions, err := repo.GetActiveQuestionsByTemplateIds(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, questions)
	})
}
