package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaoleads/leadstore-go/internal/model"
)

func TestFormCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	const uid = "u1"

	t.Run("list before any write is empty, no provisioning", func(t *testing.T) {
		forms, err := env.formSvc.List(ctx, uid)
		require.NoError(t, err)
		assert.Empty(t, forms)
	})

	t.Run("create appends with fresh id and template defaults", func(t *testing.T) {
		form, err := env.formSvc.Create(ctx, uid, "Promo")
		require.NoError(t, err)
		assert.NotEmpty(t, form.ID)
		assert.Equal(t, "Promo", form.Title)
		assert.NotEmpty(t, form.Headline)
		assert.NotEmpty(t, form.CTAText)
		assert.False(t, form.CreatedAt.IsZero())

		second, err := env.formSvc.Create(ctx, uid, "Webinar")
		require.NoError(t, err)

		forms, err := env.formSvc.List(ctx, uid)
		require.NoError(t, err)
		require.Len(t, forms, 2)
		assert.Equal(t, form.ID, forms[0].ID)
		assert.Equal(t, second.ID, forms[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		forms, err := env.formSvc.List(ctx, uid)
		require.NoError(t, err)

		form, err := env.formSvc.Get(ctx, uid, forms[0].ID)
		require.NoError(t, err)
		require.NotNil(t, form)
		assert.Equal(t, "Promo", form.Title)

		form, err = env.formSvc.Get(ctx, uid, "missing")
		require.NoError(t, err)
		assert.Nil(t, form)
	})

	t.Run("update replaces the whole record", func(t *testing.T) {
		forms, err := env.formSvc.List(ctx, uid)
		require.NoError(t, err)

		edited := forms[0]
		edited.Headline = "Nova oferta"
		edited.PrimaryColor = "#FF0000"

		updated, err := env.formSvc.Update(ctx, uid, edited)
		require.NoError(t, err)
		assert.True(t, updated)

		stored, err := env.formSvc.Get(ctx, uid, edited.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nova oferta", stored.Headline)
		assert.Equal(t, "#FF0000", stored.PrimaryColor)
	})

	t.Run("update with unknown id is a tolerated no-op", func(t *testing.T) {
		ghost := model.NewForm("Ghost")
		updated, err := env.formSvc.Update(ctx, uid, ghost)
		require.NoError(t, err)
		assert.False(t, updated)

		forms, err := env.formSvc.List(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, forms, 2)
	})
}

func TestFormDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	const uid = "u1"

	promo, err := env.formSvc.Create(ctx, uid, "Promo")
	require.NoError(t, err)
	keep, err := env.formSvc.Create(ctx, uid, "Keep")
	require.NoError(t, err)

	_, err = env.leadSvc.Save(ctx, uid, promo.ID, model.LeadInput{Name: "L1", Email: "l1@x.com"})
	require.NoError(t, err)
	_, err = env.leadSvc.Save(ctx, uid, keep.ID, model.LeadInput{Name: "L2", Email: "l2@x.com"})
	require.NoError(t, err)
	_, err = env.leadSvc.Save(ctx, uid, promo.ID, model.LeadInput{Name: "L3", Email: "l3@x.com"})
	require.NoError(t, err)

	t.Run("deleting a form consolidates exactly its leads", func(t *testing.T) {
		deleted, err := env.formSvc.Delete(ctx, uid, promo.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		forms, err := env.formSvc.List(ctx, uid)
		require.NoError(t, err)
		require.Len(t, forms, 1)
		assert.Equal(t, keep.ID, forms[0].ID)

		leads, err := env.leadSvc.List(ctx, uid)
		require.NoError(t, err)
		require.Len(t, leads, 3)
		for _, l := range leads {
			switch l.Name {
			case "L1", "L3":
				assert.Equal(t, model.ConsolidatedFormID, l.FormID)
			case "L2":
				assert.Equal(t, keep.ID, l.FormID)
			}
		}
	})

	t.Run("deleting an unknown id is a no-op", func(t *testing.T) {
		deleted, err := env.formSvc.Delete(ctx, uid, "missing")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("deleting the last form re-provisions a default one", func(t *testing.T) {
		deleted, err := env.formSvc.Delete(ctx, uid, keep.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		forms, err := env.formSvc.List(ctx, uid)
		require.NoError(t, err)
		require.Len(t, forms, 1)
		assert.Equal(t, model.DefaultFormTitle, forms[0].Title)
		assert.NotEqual(t, keep.ID, forms[0].ID)
	})
}

// Scenario from the admin workflow: register, add a second form, delete it.
func TestFormScenarioAna(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana, err := env.auth.Register(ctx, "Ana", "ana@x.com", "pw1")
	require.NoError(t, err)
	_, err = env.auth.Login(ctx, "ana@x.com", "pw1")
	require.NoError(t, err)

	promo, err := env.formSvc.Create(ctx, ana.ID, "Promo")
	require.NoError(t, err)

	forms, err := env.formSvc.List(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, forms, 2)

	_, err = env.leadSvc.Save(ctx, ana.ID, promo.ID, model.LeadInput{Name: "Visitante", Email: "v@x.com"})
	require.NoError(t, err)

	deleted, err := env.formSvc.Delete(ctx, ana.ID, promo.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	forms, err = env.formSvc.List(ctx, ana.ID)
	require.NoError(t, err)
	assert.Len(t, forms, 1)

	leads, err := env.leadSvc.List(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, model.ConsolidatedFormID, leads[0].FormID)
}
