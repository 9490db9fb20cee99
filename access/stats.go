package access

import "crewboard/models"

// ProjectStats summarizes task completion for one project.
type ProjectStats struct {
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// Stats computes completion metrics over the project's task set. The
// project is resolved through the guard first, so an unauthorized caller
// gets ErrNotFound before any counting happens. A project with zero tasks
// reports a completion rate of exactly 0.
func (g *Guard) Stats(principalID, projectID uint) (*ProjectStats, error) {
	if _, err := g.LoadProject(principalID, projectID); err != nil {
		return nil, err
	}

	var stats ProjectStats
	err := g.DB.Model(&models.Task{}).
		Where("project_id = ?", projectID).
		Count(&stats.TotalTasks).Error
	if err != nil {
		return nil, err
	}

	err = g.DB.Model(&models.Task{}).
		Where("project_id = ? AND status = ?", projectID, models.StatusDone).
		Count(&stats.CompletedTasks).Error
	if err != nil {
		return nil, err
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return &stats, nil
}
