package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/notification"
)

// NotifyCmd implements the notify command group, which drives the
// notification store without the console.
type NotifyCmd struct {
	flags *Flags

	// list flags
	listUnread bool
	listPretty bool

	// add flags
	addTitle   string
	addMessage string
	addType    string

	// clear flags
	clearForce bool
}

// NewNotifyCmd creates a new notify command.
func NewNotifyCmd(flags *Flags) *NotifyCmd {
	return &NotifyCmd{flags: flags}
}

func (cmd *NotifyCmd) notifications() *notification.Store {
	return cmd.flags.Notifications
}

// Register adds the notify command to the application.
func (cmd *NotifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "notify",
		Aliases: []string{"n"},
		Usage:   "Manage notifications",
		Description: `Notification commands operate on the same stored collection as the console.

Examples:
  adminui notify list                         # JSON lines, newest first
  adminui notify list --unread --pretty       # human readable
  adminui notify add --title "Deploy" --message "v2 is live" --type success
  adminui notify read <id>
  adminui notify read-all
  adminui notify delete <id>
  adminui notify clear --force`,
		Before: cmd.flags.Before,
		Commands: []*cli.Command{
			cmd.listCmd(),
			cmd.unreadCmd(),
			cmd.addCmd(),
			cmd.readCmd(),
			cmd.readAllCmd(),
			cmd.deleteCmd(),
			cmd.clearCmd(),
		},
	})

	return app
}

func (cmd *NotifyCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List notifications",
		UsageText: "adminui notify list [--unread] [--pretty]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "unread",
				Aliases:     []string{"u"},
				Usage:       "only unread notifications",
				Destination: &cmd.listUnread,
			},
			&cli.BoolFlag{
				Name:        "pretty",
				Aliases:     []string{"p"},
				Usage:       "one line per notification with relative times instead of JSON",
				Destination: &cmd.listPretty,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *NotifyCmd) unreadCmd() *cli.Command {
	return &cli.Command{
		Name:   "unread",
		Usage:  "Print the number of unread notifications",
		Action: cmd.runUnread,
	}
}

func (cmd *NotifyCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a notification",
		UsageText: "adminui notify add --title <title> --message <message> [--type info|success|warning|error]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "short headline",
				Required:    true,
				Destination: &cmd.addTitle,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "body text",
				Required:    true,
				Destination: &cmd.addMessage,
			},
			&cli.StringFlag{
				Name:        "type",
				Usage:       "severity (info, success, warning, error)",
				Value:       string(model.NotificationInfo),
				Destination: &cmd.addType,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *NotifyCmd) readCmd() *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Mark a notification as read",
		UsageText: "adminui notify read <id>",
		Action:    cmd.runRead,
	}
}

func (cmd *NotifyCmd) readAllCmd() *cli.Command {
	return &cli.Command{
		Name:   "read-all",
		Usage:  "Mark every notification as read",
		Action: cmd.runReadAll,
	}
}

func (cmd *NotifyCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a notification",
		UsageText: "adminui notify delete <id>",
		Action:    cmd.runDelete,
	}
}

func (cmd *NotifyCmd) clearCmd() *cli.Command {
	return &cli.Command{
		Name:      "clear",
		Usage:     "Delete every notification",
		UsageText: "adminui notify clear --force",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "confirm removing all notifications",
				Destination: &cmd.clearForce,
			},
		},
		Action: cmd.runClear,
	}
}

func (cmd *NotifyCmd) runList(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer
	now := time.Now()

	for _, n := range cmd.notifications().Notifications() {
		if cmd.listUnread && n.Read {
			continue
		}

		if cmd.listPretty {
			if _, err := fmt.Fprintln(w, prettyLine(n, now)); err != nil {
				return err
			}
			continue
		}

		if err := writeLine(w, n); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *NotifyCmd) runUnread(_ context.Context, c *cli.Command) error {
	_, err := fmt.Fprintln(c.Root().Writer, cmd.notifications().UnreadCount())
	return err
}

func (cmd *NotifyCmd) runAdd(ctx context.Context, c *cli.Command) error {
	in := model.NotificationInput{
		Title:   cmd.addTitle,
		Message: cmd.addMessage,
		Type:    model.NotificationType(strings.ToLower(cmd.addType)),
	}

	n, err := cmd.notifications().Add(ctx, in)
	if err != nil {
		return err
	}
	if err := cmd.notifications().LastPersistError(); err != nil {
		return err
	}

	return writeLine(c.Root().Writer, n)
}

func (cmd *NotifyCmd) runRead(ctx context.Context, c *cli.Command) error {
	id, err := cmd.lookup(c)
	if err != nil {
		return err
	}

	cmd.notifications().MarkAsRead(ctx, id)
	return cmd.notifications().LastPersistError()
}

func (cmd *NotifyCmd) runReadAll(ctx context.Context, _ *cli.Command) error {
	cmd.notifications().MarkAllAsRead(ctx)
	return cmd.notifications().LastPersistError()
}

func (cmd *NotifyCmd) runDelete(ctx context.Context, c *cli.Command) error {
	id, err := cmd.lookup(c)
	if err != nil {
		return err
	}

	cmd.notifications().Delete(ctx, id)
	return cmd.notifications().LastPersistError()
}

func (cmd *NotifyCmd) runClear(ctx context.Context, _ *cli.Command) error {
	if !cmd.clearForce {
		return fmt.Errorf("refusing to clear %d notifications without --force", len(cmd.notifications().Notifications()))
	}

	cmd.notifications().ClearAll(ctx)
	return cmd.notifications().LastPersistError()
}

// lookup returns the id argument after checking it names a notification.
func (cmd *NotifyCmd) lookup(c *cli.Command) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one notification id")
	}

	id := c.Args().First()
	if _, ok := cmd.notifications().Get(id); !ok {
		return "", fmt.Errorf("notification %q not found", id)
	}
	return id, nil
}

func writeLine(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json line: %w", err)
	}
	return nil
}

func prettyLine(n model.Notification, now time.Time) string {
	marker := " "
	if !n.Read {
		marker = "*"
	}
	return fmt.Sprintf("%s %-8s %s  %s  (%s, id %s)",
		marker,
		n.Type,
		n.Title,
		n.Message,
		humanize.RelTime(n.Timestamp, now, "ago", "from now"),
		n.ID,
	)
}
