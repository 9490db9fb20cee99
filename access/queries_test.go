package access

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewboard/models"
)

func TestTeamsForOnlyListsMemberships(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	user1 := createUser(t, db, "user1")
	user2 := createUser(t, db, "user2")

	teamA := createTeam(t, g, user1, "Team A")
	createTeam(t, g, user2, "Team B")

	teams, err := g.TeamsFor(user1.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, teamA.ID, teams[0].ID)

	// No memberships is an empty list, not an error
	user3 := createUser(t, db, "user3")
	teams, err = g.TeamsFor(user3.ID)
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestProjectsForSpansAllTeams(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	user1 := createUser(t, db, "user1")
	user2 := createUser(t, db, "user2")

	teamA := createTeam(t, g, user1, "Team A")
	teamB := createTeam(t, g, user2, "Team B")
	_, err := g.AddMember(user2.ID, teamB.ID, "user1")
	require.NoError(t, err)

	createProject(t, db, teamA, "Project 1")
	createProject(t, db, teamB, "Project 2")

	teamC := createTeam(t, g, user2, "Team C")
	createProject(t, db, teamC, "Hidden project")

	projects, err := g.ProjectsFor(user1.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	for _, project := range projects {
		ok, err := g.AuthorizedForProject(user1.ID, &project)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestTasksForProjectStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "user1")
	outsider := createUser(t, db, "user2")
	team := createTeam(t, g, owner, "Team A")
	project := createProject(t, db, team, "Project 1")

	createTask(t, db, project, owner, "a", models.StatusTodo)
	createTask(t, db, project, owner, "b", models.StatusInProgress)
	createTask(t, db, project, owner, "c", models.StatusDone)

	cases := []struct {
		filter string
		want   int
	}{
		{"", 3},
		{models.StatusTodo, 1},
		{models.StatusDone, 1},
		// Unknown values pass through and simply match nothing
		{"bogus", 0},
	}
	for _, tc := range cases {
		tasks, err := g.TasksForProject(owner.ID, project.ID, tc.filter)
		require.NoError(t, err, "filter %q", tc.filter)
		require.Len(t, tasks, tc.want, "filter %q", tc.filter)
	}

	// The project resolves through the guard first
	_, err := g.TasksForProject(outsider.ID, project.ID, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUrgentTasksOrderingAndScope(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "user1")
	member := createUser(t, db, "user2")
	team := createTeam(t, g, owner, "Team A")
	_, err := g.AddMember(owner.ID, team.ID, "user2")
	require.NoError(t, err)
	project := createProject(t, db, team, "Project 1")

	now := time.Now()
	later := now.Add(48 * time.Hour)
	soon := now.Add(2 * time.Hour)

	noDue := createTask(t, db, project, owner, "no due date", models.StatusTodo)
	dueLater := createTask(t, db, project, owner, "due later", models.StatusInProgress)
	dueSoon := createTask(t, db, project, owner, "due soon", models.StatusTodo)
	finished := createTask(t, db, project, owner, "finished", models.StatusDone)
	unassigned := createTask(t, db, project, owner, "unassigned", models.StatusTodo)
	_ = unassigned

	require.NoError(t, db.Model(dueLater).Updates(map[string]interface{}{
		"assigned_to_id": member.ID, "due_date": later,
	}).Error)
	require.NoError(t, db.Model(dueSoon).Updates(map[string]interface{}{
		"assigned_to_id": member.ID, "due_date": soon,
	}).Error)
	require.NoError(t, db.Model(noDue).Update("assigned_to_id", member.ID).Error)
	require.NoError(t, db.Model(finished).Update("assigned_to_id", member.ID).Error)

	// A task assigned to the user inside a team they do not belong to must
	// never surface
	otherOwner := createUser(t, db, "user3")
	otherTeam := createTeam(t, g, otherOwner, "Team B")
	otherProject := createProject(t, db, otherTeam, "Project 2")
	hidden := createTask(t, db, otherProject, otherOwner, "hidden", models.StatusTodo)
	require.NoError(t, db.Model(hidden).Update("assigned_to_id", member.ID).Error)

	tasks, err := g.UrgentTasksFor(member.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, dueSoon.ID, tasks[0].ID)
	require.Equal(t, dueLater.ID, tasks[1].ID)
	require.Equal(t, noDue.ID, tasks[2].ID)

	for _, task := range tasks {
		ok, err := g.AuthorizedForTask(member.ID, &task)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestUrgentTasksCapped(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "user1")
	team := createTeam(t, g, owner, "Team A")
	project := createProject(t, db, team, "Project 1")

	for i := 0; i < urgentTaskLimit+3; i++ {
		task := createTask(t, db, project, owner, fmt.Sprintf("task %d", i), models.StatusTodo)
		require.NoError(t, db.Model(task).Updates(map[string]interface{}{
			"assigned_to_id": owner.ID,
			"due_date":       timePtr(time.Now().Add(time.Duration(i) * time.Hour)),
		}).Error)
	}

	tasks, err := g.UrgentTasksFor(owner.ID)
	require.NoError(t, err)
	require.Len(t, tasks, urgentTaskLimit)
}

func TestMyTasksPassthroughFilter(t *testing.T) {
	db := setupTestDB(t)
	g := NewGuard(db)

	owner := createUser(t, db, "user1")
	team := createTeam(t, g, owner, "Team A")
	project := createProject(t, db, team, "Project 1")

	todo := createTask(t, db, project, owner, "mine todo", models.StatusTodo)
	done := createTask(t, db, project, owner, "mine done", models.StatusDone)
	require.NoError(t, db.Model(todo).Update("assigned_to_id", owner.ID).Error)
	require.NoError(t, db.Model(done).Update("assigned_to_id", owner.ID).Error)
	createTask(t, db, project, owner, "not mine", models.StatusTodo)

	tasks, err := g.MyTasks(owner.ID, "")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	tasks, err = g.MyTasks(owner.ID, models.StatusDone)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, done.ID, tasks[0].ID)

	// Invalid filter values yield zero rows, not an error
	tasks, err = g.MyTasks(owner.ID, "not-a-status")
	require.NoError(t, err)
	require.Empty(t, tasks)
}
