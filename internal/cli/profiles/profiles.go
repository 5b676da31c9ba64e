package profiles

import (
	"fmt"

	"github.com/haebit/haebit/internal/cli"
	"github.com/haebit/haebit/internal/utils"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the current profile." default:"1"`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	fmt.Printf("Nickname:  %s\n", user.Nickname)
	if user.Email != "" {
		fmt.Printf("Email:     %s\n", user.Email)
	}
	if user.Birthdate != "" {
		fmt.Printf("Birthdate: %s\n", user.Birthdate)
	}
	fmt.Printf("ID:        %s\n", user.ID)
	return nil
}

type ProfileSetCmd struct {
	Nickname  string `help:"New nickname."`
	Birthdate string `help:"Birthdate (YYYY-MM-DD). Pass \"none\" to clear."`
	Email     string `help:"Email address. Can only be set once."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	changed := false
	if c.Nickname != "" {
		user.Nickname = c.Nickname
		changed = true
	}
	switch c.Birthdate {
	case "":
	case "none":
		user.Birthdate = ""
		changed = true
	default:
		if !utils.ValidateDateFormat(c.Birthdate) {
			return fmt.Errorf("invalid birthdate: %s (expected YYYY-MM-DD)", c.Birthdate)
		}
		user.Birthdate = c.Birthdate
		changed = true
	}
	if c.Email != "" {
		// The email identifies the account once set; edits are not allowed.
		if user.Email != "" {
			return fmt.Errorf("email is already set and cannot be changed")
		}
		user.Email = c.Email
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to update (pass --nickname, --birthdate, or --email)")
	}

	if err := ctx.Store.SaveProfile(user); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
