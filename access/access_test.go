package access

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadTeamHidesUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "user1")
	outsider := createUser(t, db, "user2")
	team := createTeam(t, g, owner, "Team A")

	loaded, err := g.LoadTeam(owner.ID, team.ID)
	require.NoError(t, err)
	require.Equal(t, team.ID, loaded.ID)

	// Unauthorized and nonexistent must be the same error
	_, err = g.LoadTeam(outsider.ID, team.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, missingErr := g.LoadTeam(outsider.ID, 99999)
	require.ErrorIs(t, missingErr, ErrNotFound)
	require.Equal(t, missingErr.Error(), err.Error())
}

func TestLoadProjectHidesUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "user1")
	outsider := createUser(t, db, "user2")
	team := createTeam(t, g, owner, "Team A")
	project := createProject(t, db, team, "Project 1")

	loaded, err := g.LoadProject(owner.ID, project.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, loaded.ID)

	_, err = g.LoadProject(outsider.ID, project.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = g.LoadProject(owner.ID, 99999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadTaskHidesUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "user1")
	outsider := createUser(t, db, "user2")
	team := createTeam(t, g, owner, "Team A")
	project := createProject(t, db, team, "Project 1")
	task := createTask(t, db, project, owner, "Task 1", "todo")

	loaded, err := g.LoadTask(owner.ID, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, loaded.ID)

	_, err = g.LoadTask(outsider.ID, task.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = g.LoadTask(owner.ID, 99999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorizationIsMonotonicDownward(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "owner")
	member := createUser(t, db, "member")
	outsider := createUser(t, db, "outsider")

	team := createTeam(t, g, owner, "Team A")
	_, err := g.AddMember(owner.ID, team.ID, member.Username)
	require.NoError(t, err)

	project := createProject(t, db, team, "Project 1")
	task := createTask(t, db, project, owner, "Task 1", "todo")

	for _, user := range []struct {
		id   uint
		want bool
	}{
		{owner.ID, true},
		{member.ID, true},
		{outsider.ID, false},
	} {
		atTeam, err := g.IsTeamMember(user.id, team.ID)
		require.NoError(t, err)

		atProject, err := g.AuthorizedForProject(user.id, project)
		require.NoError(t, err)

		atTask, err := g.AuthorizedForTask(user.id, task)
		require.NoError(t, err)

		require.Equal(t, user.want, atTeam)
		require.Equal(t, atTeam, atProject)
		require.Equal(t, atProject, atTask)
	}
}

func TestOwnerIsMemberAfterCreate(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "owner")
	team := createTeam(t, g, owner, "Team A")

	ok, err := g.IsTeamMember(owner.ID, team.ID)
	require.NoError(t, err)
	require.True(t, ok)

	loaded, err := g.LoadTeam(owner.ID, team.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Members, 1)
	require.Equal(t, owner.ID, loaded.Members[0].ID)
}

func TestParentLoadsForChildCreation(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "owner")
	outsider := createUser(t, db, "outsider")
	team := createTeam(t, g, owner, "Team A")
	project := createProject(t, db, team, "Project 1")

	parentTeam, err := g.LoadTeamForProjectCreate(owner.ID, team.ID)
	require.NoError(t, err)
	require.Equal(t, team.ID, parentTeam.ID)

	_, err = g.LoadTeamForProjectCreate(outsider.ID, team.ID)
	require.ErrorIs(t, err, ErrNotFound)

	parentProject, err := g.LoadProjectForTaskCreate(owner.ID, project.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, parentProject.ID)

	_, err = g.LoadProjectForTaskCreate(outsider.ID, project.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPredicateMissingTargetIsFalseNotError(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	user := createUser(t, db, "user1")

	ok, err := g.IsTeamMember(user.ID, 424242)
	require.NoError(t, err)
	require.False(t, ok)
}
