package services

import (
	"bytes"
	"io"
	"sort"
	"sync"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"

	"github.com/google/uuid"
)

func init() {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

// clock hands out strictly increasing timestamps so ordering assertions are
// deterministic.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[models.UserID]*models.User
	clk   *clock
}

func newFakeUserRepo(clk *clock) *fakeUserRepo {
	return &fakeUserRepo{users: make(map[models.UserID]*models.User), clk: clk}
}

func (r *fakeUserRepo) FindByID(id models.UserID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = models.UserID(uuid.NewString())
	}
	user.CreatedAt = r.clk.next()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type fakeJobRepo struct {
	mu    sync.Mutex
	jobs  map[models.JobID]*models.Job
	users *fakeUserRepo
	clk   *clock
}

func newFakeJobRepo(clk *clock, users *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[models.JobID]*models.Job), users: users, clk: clk}
}

func (r *fakeJobRepo) withEmployer(j *models.Job) *models.Job {
	cp := *j
	if r.users != nil {
		if u, err := r.users.FindByID(j.EmployerID); err == nil {
			cp.Employer = u
		}
	}
	return &cp
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = models.JobID(uuid.NewString())
	}
	now := r.clk.next()
	job.CreatedAt = now
	job.PostedAt = now
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(id models.JobID) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		return r.withEmployer(j), nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *r.withEmployer(j))
	}
	sortJobsDesc(out)
	return out, nil
}

func (r *fakeJobRepo) FindByEmployer(employerID models.UserID) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, *r.withEmployer(j))
		}
	}
	sortJobsDesc(out)
	return out, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	cp.Employer = nil
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id models.JobID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func sortJobsDesc(jobs []models.Job) {
	sort.Slice(jobs, func(i, k int) bool {
		return jobs[i].CreatedAt.After(jobs[k].CreatedAt)
	})
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	apps  map[models.ApplicationID]*models.Application
	jobs  *fakeJobRepo
	users *fakeUserRepo
	clk   *clock
}

func newFakeApplicationRepo(clk *clock, jobs *fakeJobRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  make(map[models.ApplicationID]*models.Application),
		jobs:  jobs,
		users: users,
		clk:   clk,
	}
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if app.ID == "" {
		app.ID = models.ApplicationID(uuid.NewString())
	}
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	app.CreatedAt = r.clk.next()
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(id models.ApplicationID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.apps[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByApplicant(applicantID models.UserID) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if a.ApplicantID != applicantID {
			continue
		}
		cp := *a
		if r.jobs != nil {
			if j, err := r.jobs.FindByID(a.JobID); err == nil {
				cp.Job = j
			}
		}
		out = append(out, cp)
	}
	sortAppsDesc(out)
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(jobID models.JobID) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if a.JobID != jobID {
			continue
		}
		cp := *a
		if r.users != nil {
			if u, err := r.users.FindByID(a.ApplicantID); err == nil {
				cp.Applicant = u
			}
		}
		out = append(out, cp)
	}
	sortAppsDesc(out)
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id models.ApplicationID, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func sortAppsDesc(apps []models.Application) {
	sort.Slice(apps, func(i, k int) bool {
		return apps[i].CreatedAt.After(apps[k].CreatedAt)
	})
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[models.UserID]*models.Profile
	clk      *clock
}

func newFakeProfileRepo(clk *clock) *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[models.UserID]*models.Profile), clk: clk}
}

func (r *fakeProfileRepo) FindByUserID(userID models.UserID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = models.ProfileID(uuid.NewString())
	}
	now := r.clk.next()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	profile.UpdatedAt = r.clk.next()
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

// memStorage keeps saved files in memory. failSave makes every Save fail.
type memStorage struct {
	mu       sync.Mutex
	files    map[string][]byte
	failSave bool
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (s *memStorage) Save(originalName string, r io.Reader) (*storage.SavedFile, error) {
	if s.failSave {
		return nil, io.ErrClosedPipe
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := uuid.NewString()
	s.files[name] = data
	return &storage.SavedFile{Filename: name, Path: name, URL: "/uploads/" + name}, nil
}

func (s *memStorage) Open(filename string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[filename]
	if !ok {
		return nil, storage.ErrInvalidFilename
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Delete(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, filename)
	return nil
}

func (s *memStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
