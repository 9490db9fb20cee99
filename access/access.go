// Package access implements the membership-scoped authorization layer for
// the team → project → task hierarchy. Membership in the owning team is the
// sole basis for access at every level; an unauthorized lookup is reported
// as ErrNotFound, indistinguishable from a missing record.
package access

import (
	"errors"

	"gorm.io/gorm"

	"crewboard/models"
)

// ErrNotFound covers both a nonexistent id and an existing record the
// principal is not a member of. Callers must not be able to tell the two
// apart, so both paths share this one sentinel.
var ErrNotFound = errors.New("resource not found")

// ValidationError reports a rejected input on an otherwise authorized
// operation (adding a member that does not exist, assigning a task to a
// non-member). It is distinct from ErrNotFound and maps to a 400, not 404.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Guard resolves hierarchy entities by id and enforces the membership
// predicate on every load. All methods are read-only and idempotent.
type Guard struct {
	DB *gorm.DB
}

func NewGuard(db *gorm.DB) *Guard {
	return &Guard{DB: db}
}

// IsTeamMember is the membership predicate every other check reduces to.
// A missing team yields false, not an error; the guard methods are the
// ones that turn absence into ErrNotFound.
func (g *Guard) IsTeamMember(userID, teamID uint) (bool, error) {
	var count int64
	err := g.DB.Table("team_members").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AuthorizedForProject delegates to the team predicate on the project's team.
func (g *Guard) AuthorizedForProject(userID uint, project *models.Project) (bool, error) {
	return g.IsTeamMember(userID, project.TeamID)
}

// AuthorizedForTask delegates upward through the task's project.
func (g *Guard) AuthorizedForTask(userID uint, task *models.Task) (bool, error) {
	var project models.Project
	if err := g.DB.Select("team_id").First(&project, task.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return g.IsTeamMember(userID, project.TeamID)
}

// LoadTeam returns the team iff the principal is one of its members.
func (g *Guard) LoadTeam(principalID, teamID uint) (*models.Team, error) {
	var team models.Team
	err := g.DB.Preload("Members").Preload("Owner").First(&team, teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := g.IsTeamMember(principalID, team.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &team, nil
}

// LoadProject returns the project iff the principal is a member of its team.
func (g *Guard) LoadProject(principalID, projectID uint) (*models.Project, error) {
	var project models.Project
	err := g.DB.Preload("Team").First(&project, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := g.IsTeamMember(principalID, project.TeamID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &project, nil
}

// LoadTask returns the task iff the principal is a member of the team that
// owns the task's project.
func (g *Guard) LoadTask(principalID, taskID uint) (*models.Task, error) {
	var task models.Task
	err := g.DB.Preload("Project").Preload("AssignedTo").
		Preload("Comments").Preload("Attachments").
		First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := g.IsTeamMember(principalID, task.Project.TeamID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &task, nil
}

// LoadTeamForProjectCreate authorizes against the parent team before a
// project exists under it. Same hiding policy as LoadTeam.
func (g *Guard) LoadTeamForProjectCreate(principalID, teamID uint) (*models.Team, error) {
	return g.LoadTeam(principalID, teamID)
}

// LoadProjectForTaskCreate authorizes against the parent project before a
// task exists under it.
func (g *Guard) LoadProjectForTaskCreate(principalID, projectID uint) (*models.Project, error) {
	return g.LoadProject(principalID, projectID)
}
