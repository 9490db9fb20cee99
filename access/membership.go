package access

import (
	"errors"

	"github.com/badoux/checkmail"
	"gorm.io/gorm"

	"crewboard/models"
)

// CreateTeam creates a team owned by the principal and inserts the owner
// into the member set in the same transaction, so a team is never visible
// without its owner being a member.
func (g *Guard) CreateTeam(ownerID uint, name, description string) (*models.Team, error) {
	team := models.Team{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}

	err := g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return tx.Model(&team).Association("Members").Append(&models.User{Model: gorm.Model{ID: ownerID}})
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// AddMember adds one user to a team. Only the team owner may add members.
// The candidate is looked up by username first, then by email if the
// identifier has the shape of an email address. A candidate that does not
// exist or is already a member is a validation failure, not a NotFound.
func (g *Guard) AddMember(principalID, teamID uint, identifier string) (*models.User, error) {
	team, err := g.LoadTeam(principalID, teamID)
	if err != nil {
		return nil, err
	}

	if team.OwnerID != principalID {
		return nil, &ValidationError{Field: "member", Message: "only the team owner can add members"}
	}

	user, err := g.lookupUser(identifier)
	if err != nil {
		return nil, err
	}

	ok, err := g.IsTeamMember(user.ID, team.ID)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, &ValidationError{Field: "member", Message: "user is already in the team"}
	}

	// Association Append inserts the join row with ON CONFLICT DO NOTHING,
	// so a racing duplicate add degrades to a no-op at the storage level.
	if err := g.DB.Model(team).Association("Members").Append(user); err != nil {
		return nil, err
	}
	return user, nil
}

// lookupUser resolves a member candidate: username first, email fallback.
func (g *Guard) lookupUser(identifier string) (*models.User, error) {
	var user models.User
	err := g.DB.Where("username = ?", identifier).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if checkmail.ValidateFormat(identifier) == nil {
		err = g.DB.Where("email = ?", identifier).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, &ValidationError{Field: "member", Message: "user does not exist"}
}

// ValidateAssignee enforces that a task assignee is a current member of the
// team owning the task's project, checked at assignment time only; later
// membership changes do not retroactively clear assignments.
func (g *Guard) ValidateAssignee(teamID uint, assigneeID *uint) error {
	if assigneeID == nil {
		return nil
	}
	ok, err := g.IsTeamMember(*assigneeID, teamID)
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Field: "assigned_to", Message: "assignee must be a member of the team"}
	}
	return nil
}
