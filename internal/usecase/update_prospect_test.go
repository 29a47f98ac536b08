package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daware/warmtrack/internal/entity"
)

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	p := warmingProspect("p1")
	p.Name = "Old Name"
	p.Company = "Old Co"
	p.WarmthScore = 3
	uc := NewUpdateProspectUseCase(newFakeStore(p))

	out, err := uc.Execute(context.Background(), "p1", UpdateProspectInput{
		Name:      strPtr("New Name"),
		Connected: boolPtr(true),
		ICPScore:  floatPtr(7.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", out.Name)
	assert.Equal(t, "Old Co", out.Company)
	assert.True(t, out.Connected)
	assert.Equal(t, 7.5, out.ICPScore)
	assert.Equal(t, 3, out.WarmthScore)
}

func TestUpdateRecomputesUsernameFromURL(t *testing.T) {
	uc := NewUpdateProspectUseCase(newFakeStore(warmingProspect("p1")))

	out, err := uc.Execute(context.Background(), "p1", UpdateProspectInput{
		LinkedInURL: strPtr("https://www.linkedin.com/in/ada/"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ada", out.LinkedInUsername)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	uc := NewUpdateProspectUseCase(newFakeStore(warmingProspect("p1")))

	_, err := uc.Execute(context.Background(), "p1", UpdateProspectInput{
		Status: strPtr("ghosted"),
	})
	require.Error(t, err)
	de, ok := err.(*DomainError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, de.Code)
}

func TestUpdateRejectsBadValues(t *testing.T) {
	uc := NewUpdateProspectUseCase(newFakeStore(warmingProspect("p1")))

	cases := []UpdateProspectInput{
		{Tier: intPtr(0)},
		{CheckInDays: intPtr(0)},
		{WarmthScore: intPtr(-1)},
		{ICPScore: floatPtr(-0.5)},
		{NextCheckIn: strPtr("not-a-date")},
	}
	for _, input := range cases {
		_, err := uc.Execute(context.Background(), "p1", input)
		assert.Error(t, err)
	}
}

func TestUpdateAllowsWarmthDecrease(t *testing.T) {
	// The correction backdoor: an edit may lower warmth the engine earned.
	p := warmingProspect("p1")
	p.WarmthScore = 6
	uc := NewUpdateProspectUseCase(newFakeStore(p))

	out, err := uc.Execute(context.Background(), "p1", UpdateProspectInput{
		WarmthScore: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.WarmthScore)
}

func TestUpdateNotFound(t *testing.T) {
	uc := NewUpdateProspectUseCase(newFakeStore())

	_, err := uc.Execute(context.Background(), "missing", UpdateProspectInput{Name: strPtr("x")})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteRemovesProspect(t *testing.T) {
	store := newFakeStore(warmingProspect("p1"), warmingProspect("p2"))
	uc := NewUpdateProspectUseCase(store)

	require.NoError(t, uc.Delete(context.Background(), "p1"))
	require.Len(t, store.doc.Prospects, 1)
	assert.Equal(t, "p2", store.doc.Prospects[0].ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newFakeStore(warmingProspect("p1"))
	uc := NewUpdateProspectUseCase(store)

	require.NoError(t, uc.Delete(context.Background(), "p1"))
	require.NoError(t, uc.Delete(context.Background(), "p1"))
	require.NoError(t, uc.Delete(context.Background(), "never-existed"))
	assert.Empty(t, store.doc.Prospects)
}

func TestStatusUnchangedAcrossEngageThenUpdate(t *testing.T) {
	// Engine transitions and edits compose: a dm forces outreach_sent, a
	// later edit can still move it anywhere in the closed set.
	store := newFakeStore(warmingProspect("p1"))
	engage := NewEngageProspectUseCase(store, nil)
	update := NewUpdateProspectUseCase(store)

	_, err := engage.Execute(context.Background(), EngageProspectInput{ProspectID: "p1", Type: "dm"})
	require.NoError(t, err)

	out, err := update.Execute(context.Background(), "p1", UpdateProspectInput{
		Status: strPtr(entity.StatusWarming),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWarming, out.Status)
}
