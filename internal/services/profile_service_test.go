package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	appErrors "jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture() (ProfileService, models.UserID) {
	clk := newClock()
	svc := NewProfileService(newFakeProfileRepo(clk))
	return svc, models.UserID("user-1")
}

func TestGetMineMissingProfile(t *testing.T) {
	svc, userID := newProfileFixture()

	_, err := svc.GetMine(userID)
	assert.ErrorIs(t, err, appErrors.ErrProfileNotFound)
}

func TestSaveCreatesProfile(t *testing.T) {
	svc, userID := newProfileFixture()

	created, err := svc.Save(userID, dto.SaveProfileRequest{
		Bio:        "Backend developer",
		Skills:     dto.StringList{"Go", "SQL"},
		Experience: "5 years",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, []string{"Go", "SQL"}, created.Skills)

	got, err := svc.GetMine(userID)
	require.NoError(t, err)
	assert.Equal(t, "Backend developer", got.Bio)
}

// Saving again replaces the profile wholesale; omitted fields are cleared.
func TestSaveOverwritesWholesale(t *testing.T) {
	svc, userID := newProfileFixture()

	_, err := svc.Save(userID, dto.SaveProfileRequest{
		Bio:        "Backend developer",
		Skills:     dto.StringList{"Go", "SQL"},
		Experience: "5 years",
	})
	require.NoError(t, err)

	updated, err := svc.Save(userID, dto.SaveProfileRequest{
		Bio: "Changed my mind",
	})
	require.NoError(t, err)

	assert.Equal(t, "Changed my mind", updated.Bio)
	assert.Empty(t, updated.Skills)
	assert.Empty(t, updated.Experience)
}

func TestProfilesAreScopedPerUser(t *testing.T) {
	clk := newClock()
	svc := NewProfileService(newFakeProfileRepo(clk))

	_, err := svc.Save("user-a", dto.SaveProfileRequest{Bio: "A"})
	require.NoError(t, err)
	_, err = svc.Save("user-b", dto.SaveProfileRequest{Bio: "B"})
	require.NoError(t, err)

	a, err := svc.GetMine("user-a")
	require.NoError(t, err)
	b, err := svc.GetMine("user-b")
	require.NoError(t, err)

	assert.Equal(t, "A", a.Bio)
	assert.Equal(t, "B", b.Bio)
	assert.NotEqual(t, a.ID, b.ID)
}
