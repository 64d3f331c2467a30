package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	appErrors "jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobFixture struct {
	svc   JobService
	users *fakeUserRepo
	jobs  *fakeJobRepo
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	clk := newClock()
	users := newFakeUserRepo(clk)
	jobs := newFakeJobRepo(clk, users)
	return &jobFixture{svc: NewJobService(jobs), users: users, jobs: jobs}
}

func (f *jobFixture) addEmployer(t *testing.T, name, email string) models.UserID {
	t.Helper()
	u := &models.User{Name: name, Email: email, Role: models.UserRoleEmployer}
	require.NoError(t, f.users.Create(u))
	return u.ID
}

func TestCreateJobSetsOwnerAndDefaults(t *testing.T) {
	f := newJobFixture(t)
	employer := f.addEmployer(t, "Acme HR", "hr@acme.test")

	job, err := f.svc.Create(employer, dto.CreateJobRequest{
		Title:   "Backend Engineer",
		Company: "Acme",
		Skills:  []string{"Go", "Postgres"},
	})
	require.NoError(t, err)

	assert.Equal(t, employer, job.Employer.ID)
	assert.Equal(t, "Acme HR", job.Employer.Name)
	assert.Equal(t, []string{"Go", "Postgres"}, job.Skills)
	assert.NotEmpty(t, job.ID)
}

func TestCreateJobRejectsBadEnums(t *testing.T) {
	f := newJobFixture(t)
	employer := f.addEmployer(t, "Acme HR", "hr@acme.test")

	_, err := f.svc.Create(employer, dto.CreateJobRequest{
		Title:          "Backend Engineer",
		Company:        "Acme",
		EmploymentType: "Gig",
	})
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestListAllNewestFirst(t *testing.T) {
	f := newJobFixture(t)
	employer := f.addEmployer(t, "Acme HR", "hr@acme.test")

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := f.svc.Create(employer, dto.CreateJobRequest{Title: title, Company: "Acme"})
		require.NoError(t, err)
	}

	jobs, err := f.svc.ListAll()
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Third", jobs[0].Title)
	assert.Equal(t, "Second", jobs[1].Title)
	assert.Equal(t, "First", jobs[2].Title)
}

// Listings expose the employer's name only; detail adds the email.
func TestEmployerProjectionDiffersByView(t *testing.T) {
	f := newJobFixture(t)
	employer := f.addEmployer(t, "Acme HR", "hr@acme.test")

	created, err := f.svc.Create(employer, dto.CreateJobRequest{Title: "Role", Company: "Acme"})
	require.NoError(t, err)

	list, err := f.svc.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme HR", list[0].Employer.Name)
	assert.Empty(t, list[0].Employer.Email)

	detail, err := f.svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hr@acme.test", detail.Employer.Email)
}

func TestUpdateJobRequiresOwnership(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addEmployer(t, "Owner", "owner@acme.test")
	other := f.addEmployer(t, "Other", "other@rival.test")

	created, err := f.svc.Create(owner, dto.CreateJobRequest{Title: "Role", Company: "Acme"})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = f.svc.Update(created.ID, other, dto.UpdateJobRequest{Title: &newTitle})
	assert.ErrorIs(t, err, appErrors.ErrNotJobOwner)

	// The job is unchanged after the rejected update.
	detail, err := f.svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Role", detail.Title)
}

func TestUpdateJobPartialFields(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addEmployer(t, "Owner", "owner@acme.test")

	created, err := f.svc.Create(owner, dto.CreateJobRequest{
		Title:    "Role",
		Company:  "Acme",
		Location: "Berlin",
	})
	require.NoError(t, err)

	newTitle := "Senior Role"
	updated, err := f.svc.Update(created.ID, owner, dto.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Senior Role", updated.Title)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, owner, updated.Employer.ID)
}

func TestDeleteJobRequiresOwnership(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addEmployer(t, "Owner", "owner@acme.test")
	other := f.addEmployer(t, "Other", "other@rival.test")

	created, err := f.svc.Create(owner, dto.CreateJobRequest{Title: "Role", Company: "Acme"})
	require.NoError(t, err)

	err = f.svc.Delete(created.ID, other)
	assert.ErrorIs(t, err, appErrors.ErrNotJobOwner)

	// Still readable after the rejected delete.
	_, err = f.svc.GetByID(created.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(created.ID, owner))
	_, err = f.svc.GetByID(created.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}

func TestListByEmployerScopesToOwner(t *testing.T) {
	f := newJobFixture(t)
	owner := f.addEmployer(t, "Owner", "owner@acme.test")
	other := f.addEmployer(t, "Other", "other@rival.test")

	_, err := f.svc.Create(owner, dto.CreateJobRequest{Title: "Mine", Company: "Acme"})
	require.NoError(t, err)
	_, err = f.svc.Create(other, dto.CreateJobRequest{Title: "Theirs", Company: "Rival"})
	require.NoError(t, err)

	mine, err := f.svc.ListByEmployer(owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Title)
}
