package access

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crewboard/config"
	"crewboard/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.MigrateDB(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTeam(t *testing.T, g *Guard, owner *models.User, name string) *models.Team {
	t.Helper()

	team, err := g.CreateTeam(owner.ID, name, "")
	require.NoError(t, err)
	return team
}

func createProject(t *testing.T, db *gorm.DB, team *models.Team, name string) *models.Project {
	t.Helper()

	project := models.Project{Name: name, TeamID: team.ID}
	require.NoError(t, db.Create(&project).Error)
	return &project
}

func createTask(t *testing.T, db *gorm.DB, project *models.Project, creator *models.User, title, status string) *models.Task {
	t.Helper()

	task := models.Task{
		Title:       title,
		Status:      status,
		Priority:    models.PriorityMedium,
		ProjectID:   project.ID,
		CreatedByID: creator.ID,
	}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

func timePtr(t time.Time) *time.Time {
	return &t
}
