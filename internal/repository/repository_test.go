package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/search"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Institute{},
		&models.Client{},
		&models.Worker{},
		&models.Task{},
		&models.User{},
	))
	return db
}

func page(t *testing.T, page, limit int) pagination.Params {
	t.Helper()
	p, err := pagination.New(page, limit)
	require.NoError(t, err)
	return p
}

func mustCreateInstitute(t *testing.T, r *InstituteRepository, name, country string) *models.Institute {
	t.Helper()
	inst := models.Institute{Name: name, Country: country}
	require.NoError(t, r.Create(&inst))
	return &inst
}

func TestInstituteCreateAssignsID(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstituteRepository(db, search.NameSearch{})

	inst := mustCreateInstitute(t, repo, "Harvard University", "US")
	assert.NotEqual(t, uuid.Nil, inst.ID)

	found, err := repo.FindByID(inst.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harvard University", found.Name)
}

func TestInstituteDuplicateNameConflicts(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstituteRepository(db, search.NameSearch{})

	mustCreateInstitute(t, repo, "Harvard University", "US")
	err := repo.Create(&models.Institute{Name: "Harvard University"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestInstituteFindByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstituteRepository(db, search.NameSearch{})

	_, err := repo.FindByID(uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestInstituteDeleteMissingNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstituteRepository(db, search.NameSearch{})

	err := repo.Delete(uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestInstituteListFiltersCompose(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstituteRepository(db, search.NameSearch{})

	mustCreateInstitute(t, repo, "Harvard University", "US")
	mustCreateInstitute(t, repo, "Oxford University", "UK")
	mustCreateInstitute(t, repo, "Cambridge University", "UK")

	// name + country together narrow to the intersection
	got, total, err := repo.List(InstituteFilter{Name: "university", Country: "uk"}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	assert.Equal(t, "Cambridge University", got[0].Name)
	assert.Equal(t, "Oxford University", got[1].Name)

	// country alone
	got, total, err = repo.List(InstituteFilter{Country: "us"}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Harvard University", got[0].Name)
}

func TestInstituteListOrdersByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstituteRepository(db, search.NameSearch{})

	mustCreateInstitute(t, repo, "Zeta Institute", "")
	mustCreateInstitute(t, repo, "Alpha Institute", "")
	mustCreateInstitute(t, repo, "Mid Institute", "")

	got, _, err := repo.List(InstituteFilter{}, page(t, 1, 10))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Alpha Institute", got[0].Name)
	assert.Equal(t, "Mid Institute", got[1].Name)
	assert.Equal(t, "Zeta Institute", got[2].Name)
}

func TestInstituteListPaginates(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstituteRepository(db, search.NameSearch{})

	for i := 1; i <= 12; i++ {
		mustCreateInstitute(t, repo, fmt.Sprintf("Institute %02d", i), "")
	}

	got, total, err := repo.List(InstituteFilter{}, page(t, 2, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, got, 5)
	assert.Equal(t, "Institute 06", got[0].Name)
	assert.Equal(t, "Institute 10", got[4].Name)
}

func TestClientListByInstituteName(t *testing.T) {
	db := openTestDB(t)
	instRepo := NewInstituteRepository(db, search.NameSearch{})
	repo := NewClientRepository(db)

	harvard := mustCreateInstitute(t, instRepo, "Harvard University", "US")
	oxford := mustCreateInstitute(t, instRepo, "Oxford University", "UK")

	require.NoError(t, repo.Create(&models.Client{Name: "Alice", InstituteID: &harvard.ID}))
	require.NoError(t, repo.Create(&models.Client{Name: "Bob", InstituteID: &oxford.ID}))
	require.NoError(t, repo.Create(&models.Client{Name: "Carol"}))

	got, total, err := repo.List(ClientFilter{InstituteName: "harvard"}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)

	// clients without an institute never match an institute filter
	got, total, err = repo.List(ClientFilter{InstituteName: "university"}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}

func TestWorkerListSpecialtyMatchesAnyTag(t *testing.T) {
	db := openTestDB(t)
	repo := NewWorkerRepository(db)

	require.NoError(t, repo.Create(&models.Worker{
		Name:        "Dana",
		Country:     "DE",
		Specialties: models.StringList{"golang", "sql"},
	}))
	require.NoError(t, repo.Create(&models.Worker{
		Name:        "Erin",
		Country:     "DE",
		Specialties: models.StringList{"python"},
	}))
	require.NoError(t, repo.Create(&models.Worker{
		Name:    "Frank",
		Country: "FR",
	}))

	got, total, err := repo.List(WorkerFilter{Specialties: []string{"golang", "python"}}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	assert.Equal(t, "Dana", got[0].Name)
	assert.Equal(t, "Erin", got[1].Name)

	// specialty OR group composes conjunctively with the other filters
	got, total, err = repo.List(WorkerFilter{
		Country:     "de",
		Specialties: []string{"golang"},
	}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Dana", got[0].Name)
}

func TestTaskListFiltersAndOrder(t *testing.T) {
	db := openTestDB(t)
	clientRepo := NewClientRepository(db)
	repo := NewTaskRepository(db)

	client := models.Client{Name: "Acme"}
	require.NoError(t, clientRepo.Create(&client))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	deadlines := []time.Time{
		base.AddDate(0, 0, 10),
		base.AddDate(0, 0, 20),
		base.AddDate(0, 0, 30),
	}
	for i, dl := range deadlines {
		dl := dl
		require.NoError(t, repo.Create(&models.Task{
			Name:      fmt.Sprintf("Task %d", i+1),
			Type:      models.TaskTypeProject,
			Status:    models.TaskStatusUnassigned,
			Deadline:  &dl,
			ClientID:  client.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	// newest first
	got, total, err := repo.List(TaskFilter{}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 3)
	assert.Equal(t, "Task 3", got[0].Name)
	assert.Equal(t, "Task 1", got[2].Name)

	// closed deadline window
	from := base.AddDate(0, 0, 15)
	to := base.AddDate(0, 0, 25)
	got, total, err = repo.List(TaskFilter{DeadlineFrom: &from, DeadlineTo: &to}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Task 2", got[0].Name)

	// status + client id
	got, total, err = repo.List(TaskFilter{
		Status:   string(models.TaskStatusUnassigned),
		ClientID: client.ID,
	}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, got, 3)

	// no match on a different status
	_, total, err = repo.List(TaskFilter{Status: string(models.TaskStatusCompleted)}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestUserFindByUsernameAndEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	email := "grace@example.com"
	require.NoError(t, repo.Create(&models.User{
		Name:         "Grace",
		Username:     "grace",
		Email:        &email,
		PasswordHash: "x",
		Role:         models.RoleViewer,
	}))

	byName, err := repo.FindByUsername("grace")
	require.NoError(t, err)
	assert.Equal(t, "Grace", byName.Name)

	byEmail, err := repo.FindByEmail(email)
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmail.ID)

	_, err = repo.FindByUsername("nobody")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserListFilterByRole(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Name: "A", Username: "a", PasswordHash: "x", Role: models.RoleAdmin}))
	require.NoError(t, repo.Create(&models.User{Name: "B", Username: "b", PasswordHash: "x", Role: models.RoleViewer}))

	got, total, err := repo.List(UserFilter{Role: string(models.RoleAdmin)}, page(t, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "a", got[0].Username)
}
