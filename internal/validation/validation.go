// Package validation checks habits for problems before they are saved.
package validation

import (
	"fmt"

	"github.com/haebit/haebit/internal/models"
	"github.com/haebit/haebit/internal/recurrence"
	"github.com/haebit/haebit/internal/utils"
)

// IssueType represents the type of validation issue
type IssueType string

const (
	IssueEmptyName     IssueType = "empty_name"
	IssueDuplicateName IssueType = "duplicate_name"
	IssueInvalidDate   IssueType = "invalid_date"
	IssueDateOrder     IssueType = "date_order"
	IssueInvalidAlarm  IssueType = "invalid_alarm"
	IssueInvalidRepeat IssueType = "invalid_repeat"
)

// Issue represents a single problem found in a habit
type Issue struct {
	Type        IssueType
	Description string
	HabitIDs    []string
}

// Result contains all detected issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if any issues were found
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	report := "Issues detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// Validator validates habits
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateHabit checks a single habit for problems.
func (v *Validator) ValidateHabit(habit models.Habit) Result {
	result := Result{Issues: []Issue{}}

	if habit.Name == "" {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueEmptyName,
			Description: "Habit name must not be empty",
			HabitIDs:    []string{habit.ID},
		})
	}

	startOK := utils.ValidateDateFormat(habit.StartDate)
	if !startOK {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidDate,
			Description: fmt.Sprintf("Invalid start date %q: expected YYYY-MM-DD", habit.StartDate),
			HabitIDs:    []string{habit.ID},
		})
	}

	endOK := true
	if habit.EndDate != "" && !utils.ValidateDateFormat(habit.EndDate) {
		endOK = false
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidDate,
			Description: fmt.Sprintf("Invalid end date %q: expected YYYY-MM-DD", habit.EndDate),
			HabitIDs:    []string{habit.ID},
		})
	}

	if startOK && endOK && habit.EndDate != "" && habit.EndDate < habit.StartDate {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueDateOrder,
			Description: fmt.Sprintf("End date %s is before start date %s", habit.EndDate, habit.StartDate),
			HabitIDs:    []string{habit.ID},
		})
	}

	if habit.Alarm != "" {
		if err := utils.ValidateAlarm(habit.Alarm); err != nil {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidAlarm,
				Description: fmt.Sprintf("Invalid alarm %q: expected form like \"AM 9:30\"", habit.Alarm),
				HabitIDs:    []string{habit.ID},
			})
		}
	}

	if err := recurrence.ValidateRule(habit.Repeat); err != nil {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidRepeat,
			Description: fmt.Sprintf("Invalid repeat rule: %v", err),
			HabitIDs:    []string{habit.ID},
		})
	}

	return result
}

// ValidateHabits checks a collection of habits, including cross-habit
// problems like duplicate names. Deleted habits are skipped.
func (v *Validator) ValidateHabits(habits []models.Habit) Result {
	result := Result{Issues: []Issue{}}

	nameIDs := make(map[string][]string)
	for _, habit := range habits {
		if habit.DeletedAt != nil {
			continue
		}

		single := v.ValidateHabit(habit)
		result.Issues = append(result.Issues, single.Issues...)

		if habit.Name != "" {
			nameIDs[habit.Name] = append(nameIDs[habit.Name], habit.ID)
		}
	}

	for name, ids := range nameIDs {
		if len(ids) > 1 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueDuplicateName,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
				HabitIDs:    ids,
			})
		}
	}

	return result
}
