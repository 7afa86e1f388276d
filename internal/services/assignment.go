package services

import "github.com/yukikurage/field-service-api/internal/models"

// AssignmentEntry is one person to assign to a task.
type AssignmentEntry struct {
	UserID  string
	Name    *string
	Surname *string
	Email   string
	Type    models.AssignmentType
	Team    *Team
}

// DeduplicateAssignments merges team users and individual users into one list
// with at most one entry per user. Team users come first, so a person picked
// both ways stays a team assignment. Order follows the input.
func DeduplicateAssignments(teams []Team, teamUsers, individualUsers []Assignee) []AssignmentEntry {
	entries := make([]AssignmentEntry, 0, len(teamUsers)+len(individualUsers))
	seen := make(map[string]struct{}, len(teamUsers)+len(individualUsers))

	add := func(u Assignee, kind models.AssignmentType, team *Team) {
		if _, ok := seen[u.ID]; ok {
			return
		}
		seen[u.ID] = struct{}{}
		entries = append(entries, AssignmentEntry{
			UserID:  u.ID,
			Name:    cloneString(u.Name),
			Surname: cloneString(u.Surname),
			Email:   u.Email,
			Type:    kind,
			Team:    team,
		})
	}

	for _, u := range teamUsers {
		add(u, models.AssignmentTypeTeam, owningTeam(teams, u))
	}
	for _, u := range individualUsers {
		add(u, models.AssignmentTypeIndividual, nil)
	}

	return entries
}

// owningTeam picks the team a team user is attributed to: the selected team
// matching the user's TeamID, or the first selected team when TeamID is empty.
func owningTeam(teams []Team, u Assignee) *Team {
	for _, t := range teams {
		if u.TeamID == "" || t.ID == u.TeamID {
			team := t
			team.Color = cloneString(t.Color)
			return &team
		}
	}
	return nil
}

// toAssignments converts entries to rows for the given task.
func toAssignments(taskID string, entries []AssignmentEntry) []models.TaskAssignment {
	assignments := make([]models.TaskAssignment, 0, len(entries))
	for _, e := range entries {
		a := models.TaskAssignment{
			TaskID:         taskID,
			UserID:         e.UserID,
			UserName:       e.Name,
			UserSurname:    e.Surname,
			UserEmail:      e.Email,
			AssignmentType: e.Type,
		}
		if e.Team != nil {
			teamID, name, code := e.Team.ID, e.Team.Name, e.Team.Code
			a.TeamID = &teamID
			a.TeamName = &name
			a.TeamCode = &code
			a.TeamColor = e.Team.Color
		}
		assignments = append(assignments, a)
	}
	return assignments
}
