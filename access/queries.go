package access

import "crewboard/models"

// urgentTaskLimit caps the dashboard's urgent task list.
const urgentTaskLimit = 10

// TeamsFor lists every team the principal is a member of. An empty result
// is a normal outcome, never an error.
func (g *Guard) TeamsFor(principalID uint) ([]models.Team, error) {
	var teams []models.Team
	err := g.DB.
		Joins("JOIN team_members tm ON tm.team_id = teams.id").
		Where("tm.user_id = ?", principalID).
		Preload("Members").
		Order("teams.created_at").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ProjectsFor lists projects across all of the principal's teams, for the
// read-only API listing.
func (g *Guard) ProjectsFor(principalID uint) ([]models.Project, error) {
	var projects []models.Project
	err := g.DB.
		Joins("JOIN team_members tm ON tm.team_id = projects.team_id").
		Where("tm.user_id = ?", principalID).
		Preload("Team").
		Order("projects.created_at").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// TasksForProject resolves the project through the guard first, then lists
// its tasks. The status filter is passed through verbatim: an unrecognized
// value matches nothing rather than failing the request.
func (g *Guard) TasksForProject(principalID, projectID uint, statusFilter string) ([]models.Task, error) {
	if _, err := g.LoadProject(principalID, projectID); err != nil {
		return nil, err
	}

	query := g.DB.Where("project_id = ?", projectID).
		Preload("AssignedTo").
		Order("tasks.created_at")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UrgentTasksFor returns open tasks assigned to the principal across all
// teams they currently belong to, soonest due date first; tasks without a
// due date sort last.
func (g *Guard) UrgentTasksFor(principalID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := g.DB.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN team_members tm ON tm.team_id = projects.team_id AND tm.user_id = ?", principalID).
		Where("tasks.assigned_to_id = ?", principalID).
		Where("tasks.status IN ?", []string{models.StatusTodo, models.StatusInProgress}).
		Preload("Project").
		Order("tasks.due_date IS NULL, tasks.due_date ASC").
		Limit(urgentTaskLimit).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// MyTasks returns every task assigned to the principal within their teams,
// with the same verbatim status filter passthrough as TasksForProject.
func (g *Guard) MyTasks(principalID uint, statusFilter string) ([]models.Task, error) {
	query := g.DB.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN team_members tm ON tm.team_id = projects.team_id AND tm.user_id = ?", principalID).
		Where("tasks.assigned_to_id = ?", principalID).
		Preload("Project").
		Order("tasks.created_at")
	if statusFilter != "" {
		query = query.Where("tasks.status = ?", statusFilter)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
