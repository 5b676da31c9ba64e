package friends

import (
	"fmt"
	"path/filepath"

	"github.com/haebit/haebit/internal/cli"
	"github.com/haebit/haebit/internal/models"
	"github.com/haebit/haebit/internal/qr"
)

type FriendCmd struct {
	Add    FriendAddCmd    `cmd:"" help:"Add a friend."`
	List   FriendListCmd   `cmd:"" help:"List friends."`
	Remove FriendRemoveCmd `cmd:"" help:"Remove a friend."`
	QR     FriendQRCmd     `cmd:"" name:"qr" help:"Show or export your friend-invite QR code."`
}

type FriendAddCmd struct {
	Name     string `arg:"" optional:"" help:"Friend's display name."`
	Invite   string `help:"Friend-invite payload from a scanned QR code."`
	PhotoURL string `help:"Profile photo URL."`
}

func (c *FriendAddCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	friend := models.Friend{
		Name:     c.Name,
		PhotoURL: c.PhotoURL,
	}

	// An invite payload carries the friend's id and nickname; explicit
	// flags win over payload values.
	if c.Invite != "" {
		id, nickname, err := qr.ParseInvite(c.Invite)
		if err != nil {
			return err
		}
		friend.ID = id
		if friend.Name == "" {
			friend.Name = nickname
		}
	}

	if friend.Name == "" {
		return fmt.Errorf("friend name is required (pass a name or an invite payload that carries one)")
	}

	id, err := ctx.Store.AddFriend(user.ID, friend)
	if err != nil {
		return err
	}

	fmt.Printf("Added friend: %s (ID: %s)\n", friend.Name, id)
	return nil
}

type FriendListCmd struct{}

func (c *FriendListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	friends, err := ctx.Store.GetAllFriends(user.ID)
	if err != nil {
		return err
	}

	if len(friends) == 0 {
		fmt.Println("No friends yet.")
		return nil
	}

	for _, friend := range friends {
		line := friend.Name
		if friend.PhotoURL != "" {
			line += "  " + friend.PhotoURL
		}
		fmt.Println(line)
	}
	return nil
}

type FriendRemoveCmd struct {
	Name string `arg:"" help:"Friend's display name."`
}

func (c *FriendRemoveCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	friends, err := ctx.Store.GetAllFriends(user.ID)
	if err != nil {
		return err
	}

	for _, friend := range friends {
		if friend.Name == c.Name {
			if err := ctx.Store.RemoveFriend(user.ID, friend.ID); err != nil {
				return err
			}
			fmt.Printf("Removed friend: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("friend %q not found", c.Name)
}

type FriendQRCmd struct {
	Output string `short:"o" help:"Write the QR code as a PNG to this path instead of printing it."`
}

func (c *FriendQRCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := qr.WriteInvitePNG(user.ID, user.Nickname, c.Output); err != nil {
			return err
		}
		abs, err := filepath.Abs(c.Output)
		if err != nil {
			abs = c.Output
		}
		fmt.Printf("Wrote invite QR code to: %s\n", abs)
		return nil
	}

	block, err := qr.InviteString(user.ID, user.Nickname)
	if err != nil {
		return err
	}
	fmt.Println(block)
	fmt.Printf("Invite payload: %s\n", qr.InvitePayload(user.ID, user.Nickname))
	return nil
}
