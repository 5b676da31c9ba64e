package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/haebit/haebit/internal/cli"
	"github.com/haebit/haebit/internal/models"
	"github.com/haebit/haebit/internal/recurrence"
	"github.com/haebit/haebit/internal/utils"
	"github.com/haebit/haebit/internal/validation"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Today   HabitTodayCmd   `cmd:"" help:"Show which habits are due today."`
	Done    HabitDoneCmd    `cmd:"" help:"Toggle a habit's completed flag."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name      string `arg:"" optional:"" help:"Habit name. Omit to fill in a form interactively."`
	Start     string `short:"s" help:"Start date (YYYY-MM-DD, default: today)."`
	End       string `short:"e" help:"End date (YYYY-MM-DD). Empty means no end."`
	Repeat    string `short:"r" help:"Repeat kind (daily|weekly|monthly)." default:"daily"`
	Weekdays  string `short:"w" help:"Comma-separated weekdays for weekly repeat (e.g. mon,wed,fri or 1,3,5)."`
	MonthDays string `short:"m" help:"Comma-separated days of month for monthly repeat (e.g. 1,15)."`
	Alarm     string `short:"a" help:"Alarm display time (e.g. \"AM 9:30\")."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	if c.Start == "" {
		c.Start = utils.Today()
	}

	rule, err := buildRule(c.Repeat, c.Weekdays, c.MonthDays)
	if err != nil {
		return err
	}

	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	// Habit names double as command-line handles, so keep them unique.
	if _, err := ctx.Store.GetHabitByName(user.ID, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		Name:      c.Name,
		StartDate: c.Start,
		EndDate:   c.End,
		Repeat:    rule,
		Alarm:     c.Alarm,
	}

	result := validation.New().ValidateHabit(habit)
	if result.HasIssues() {
		return fmt.Errorf("invalid habit:\n%s", result.FormatReport())
	}

	id, err := ctx.Store.AddHabit(user.ID, habit)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	fmt.Printf("Added habit: %s (ID: %s)\n", c.Name, id)
	return nil
}

// promptForm fills in the command fields interactively.
func (c *HabitAddCmd) promptForm() error {
	kind := models.RepeatDaily
	var weekdayPicks []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Placeholder(utils.Today()).
				Value(&c.Start).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("End Date (optional)").
				Value(&c.End).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewSelect[models.RepeatKind]().
				Title("Repeat").
				Options(
					huh.NewOption("Daily", models.RepeatDaily),
					huh.NewOption("Weekly", models.RepeatWeekly),
					huh.NewOption("Monthly", models.RepeatMonthly),
				).
				Value(&kind),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Weekdays").
				Options(
					huh.NewOption("Sunday", "sun"),
					huh.NewOption("Monday", "mon"),
					huh.NewOption("Tuesday", "tue"),
					huh.NewOption("Wednesday", "wed"),
					huh.NewOption("Thursday", "thu"),
					huh.NewOption("Friday", "fri"),
					huh.NewOption("Saturday", "sat"),
				).
				Value(&weekdayPicks),
		).WithHideFunc(func() bool { return kind != models.RepeatWeekly }),
		huh.NewGroup(
			huh.NewInput().
				Title("Days of Month (comma-separated, 1-31)").
				Value(&c.MonthDays),
		).WithHideFunc(func() bool { return kind != models.RepeatMonthly }),
		huh.NewGroup(
			huh.NewInput().
				Title("Alarm (optional, e.g. \"AM 9:30\")").
				Value(&c.Alarm).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return utils.ValidateAlarm(s)
				}),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	c.Repeat = string(kind)
	if kind == models.RepeatWeekly {
		c.Weekdays = strings.Join(weekdayPicks, ",")
	}
	return nil
}

// buildRule turns command-line repeat flags into a validated rule.
func buildRule(kind, weekdays, monthDays string) (models.Repeat, error) {
	switch models.RepeatKind(kind) {
	case models.RepeatDaily:
		return recurrence.NewRule(models.RepeatDaily, nil, nil)
	case models.RepeatWeekly:
		wds, err := recurrence.NormalizeWeekdays(recurrence.SplitSelector(weekdays))
		if err != nil {
			return models.Repeat{}, err
		}
		return recurrence.NewRule(models.RepeatWeekly, wds, nil)
	case models.RepeatMonthly:
		days, err := recurrence.NormalizeMonthDays(recurrence.SplitSelector(monthDays))
		if err != nil {
			return models.Repeat{}, err
		}
		return recurrence.NewRule(models.RepeatMonthly, nil, days)
	default:
		return models.Repeat{}, fmt.Errorf("invalid repeat kind: %s", kind)
	}
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}

		span := habit.StartDate
		if habit.EndDate != "" {
			span += " to " + habit.EndDate
		} else {
			span += " onward"
		}

		line := fmt.Sprintf("%s %s  (%s, %s)", cli.CompletionGlyph(habit.Completed), habit.Name, cli.FormatRepeat(habit.Repeat), span)
		if habit.Alarm != "" {
			line += fmt.Sprintf("  alarm %s", habit.Alarm)
		}
		fmt.Printf("%s%s\n", line, status)
	}

	return nil
}

type HabitTodayCmd struct {
	Date string `help:"Evaluate for a specific date (YYYY-MM-DD) instead of today."`
	All  bool   `help:"Also show habits not due."`
}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today()
	}
	ref, err := utils.ParseDate(day)
	if err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, false, false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var due, rest []models.Habit
	for _, habit := range habits {
		isDue, err := recurrence.DueOn(habit, ref)
		if err != nil {
			return fmt.Errorf("cannot evaluate habit %q: %w", habit.Name, err)
		}
		if isDue {
			due = append(due, habit)
		} else {
			rest = append(rest, habit)
		}
	}

	fmt.Printf("Habits for %s:\n\n", day)
	if len(due) == 0 {
		fmt.Println("Nothing due.")
	}

	completed := 0
	for _, habit := range due {
		if habit.Completed {
			completed++
		}
		fmt.Printf("%s %s  (%s)\n", cli.CompletionGlyph(habit.Completed), habit.Name, cli.FormatRepeat(habit.Repeat))
	}
	if len(due) > 0 {
		fmt.Printf("\nCompleted: %d/%d\n", completed, len(due))
	}

	if c.All && len(rest) > 0 {
		fmt.Println("\nNot due:")
		for _, habit := range rest {
			fmt.Printf("  %s  (%s)\n", habit.Name, cli.FormatRepeat(habit.Repeat))
		}
	}

	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name to toggle."`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(user.ID, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	toggled := recurrence.ToggleCompletion(habit)
	if err := ctx.Store.SetHabitCompleted(user.ID, habit.ID, toggled.Completed); err != nil {
		return err
	}

	if toggled.Completed {
		fmt.Printf("Marked habit %q as done\n", c.Name)
	} else {
		fmt.Printf("Marked habit %q as not done\n", c.Name)
	}
	return nil
}

type HabitEditCmd struct {
	Name      string `arg:"" help:"Habit name to edit."`
	Rename    string `help:"New habit name."`
	Start     string `short:"s" help:"New start date (YYYY-MM-DD)."`
	End       string `short:"e" help:"New end date (YYYY-MM-DD). Pass \"none\" to clear."`
	Repeat    string `short:"r" help:"New repeat kind (daily|weekly|monthly)."`
	Weekdays  string `short:"w" help:"Comma-separated weekdays for weekly repeat."`
	MonthDays string `short:"m" help:"Comma-separated days of month for monthly repeat."`
	Alarm     string `short:"a" help:"New alarm display time. Pass \"none\" to clear."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(user.ID, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Rename != "" && c.Rename != habit.Name {
		if _, err := ctx.Store.GetHabitByName(user.ID, c.Rename); err == nil {
			return fmt.Errorf("habit with name %q already exists", c.Rename)
		}
		habit.Name = c.Rename
	}
	if c.Start != "" {
		habit.StartDate = c.Start
	}
	switch c.End {
	case "":
	case "none":
		habit.EndDate = ""
	default:
		habit.EndDate = c.End
	}
	switch c.Alarm {
	case "":
	case "none":
		habit.Alarm = ""
	default:
		habit.Alarm = c.Alarm
	}

	if c.Repeat != "" || c.Weekdays != "" || c.MonthDays != "" {
		kind := c.Repeat
		if kind == "" {
			kind = string(habit.Repeat.Kind)
		}
		rule, err := buildRule(kind, c.Weekdays, c.MonthDays)
		if err != nil {
			return err
		}
		habit.Repeat = rule
	}

	result := validation.New().ValidateHabit(habit)
	if result.HasIssues() {
		return fmt.Errorf("invalid habit:\n%s", result.FormatReport())
	}

	if err := ctx.Store.UpdateHabit(user.ID, habit); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitArchiveCmd struct {
	Name      string `arg:"" help:"Habit name to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(user.ID, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Unarchive {
		if err := ctx.Store.UnarchiveHabit(user.ID, habit.ID); err != nil {
			return err
		}
		fmt.Printf("Unarchived habit: %s\n", c.Name)
	} else {
		if err := ctx.Store.ArchiveHabit(user.ID, habit.ID); err != nil {
			return err
		}
		fmt.Printf("Archived habit: %s\n", c.Name)
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(user.ID, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.DeleteHabit(user.ID, habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(This is a soft delete. Use 'haebit habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, true, true)
	if err != nil {
		return err
	}

	var target *models.Habit
	for i := range habits {
		if habits[i].Name == c.Name && habits[i].DeletedAt != nil {
			target = &habits[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("deleted habit %q not found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(user.ID, target.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}
