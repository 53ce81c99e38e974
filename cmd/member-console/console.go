package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gym-membership-go/internal/ui"
)

const helpText = `commands:
  home | new | list         switch screen (new starts a blank draft)
  view <home|form|list>     switch screen keeping the draft
  set <field> <value>       edit a draft field
  show                      print the draft
  save                      validate and send the draft
  clear                     reset the draft
  edit <id>                 load a listed member into the draft
  delete <id>               delete one member
  select <id>               toggle a row's selection
  select-all                toggle selection of every row
  delete-selected           delete the selected rows
  help | quit`

var errQuit = errors.New("quit")

type console struct {
	ctrl *ui.Controller
	in   *bufio.Scanner
	out  io.Writer
}

func newConsole(in *bufio.Scanner, out io.Writer) *console {
	return &console{in: in, out: out}
}

// confirm reads a y/N answer from the same input as the commands.
func (c *console) confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	if !c.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

func (c *console) run(ctx context.Context) error {
	c.render()
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		err := c.exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			var verr *ui.ValidationError
			if !errors.As(err, &verr) {
				fmt.Fprintln(c.out, "error:", err)
			}
		}
		c.render()
	}
}

func (c *console) exec(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(c.out, helpText)
		return nil
	case "home":
		c.ctrl.SetView(ctx, ui.ViewHome)
		return nil
	case "new":
		c.ctrl.ResetForm()
		c.ctrl.SetView(ctx, ui.ViewForm)
		return nil
	case "list":
		c.ctrl.SetView(ctx, ui.ViewList)
		return nil
	case "view":
		v, err := ui.ParseView(rest)
		if err != nil {
			return err
		}
		c.ctrl.SetView(ctx, v)
		return nil
	case "set":
		name, value, _ := strings.Cut(rest, " ")
		if name == "" {
			return errors.New("usage: set <field> <value>")
		}
		return c.ctrl.SetField(name, strings.TrimSpace(value))
	case "show":
		c.printForm()
		return nil
	case "save":
		return c.ctrl.SaveMember(ctx)
	case "clear":
		c.ctrl.ResetForm()
		return nil
	case "edit":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		return c.ctrl.EditMemberByID(id)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		return c.ctrl.DeleteMember(ctx, id)
	case "select":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		c.ctrl.ToggleSelection(id)
		return nil
	case "select-all":
		c.ctrl.ToggleSelectAll()
		return nil
	case "delete-selected":
		return c.ctrl.DeleteSelected(ctx)
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

func (c *console) render() {
	s := c.ctrl.State()
	if s.Message != "" {
		fmt.Fprintln(c.out, "*", s.Message)
	}

	switch s.View {
	case ui.ViewHome:
		fmt.Fprintln(c.out, "Gym membership: type new to add a member, list to browse, help for commands.")
	case ui.ViewForm:
		if s.Editing() {
			fmt.Fprintf(c.out, "[form] editing member #%d\n", s.EditingID)
		} else {
			fmt.Fprintln(c.out, "[form] new member")
		}
	case ui.ViewList:
		c.printList(s)
	}
}

func (c *console) printList(s ui.State) {
	if len(s.Members) == 0 {
		fmt.Fprintln(c.out, "No members yet.")
		return
	}

	allMark := " "
	if s.AllSelected() {
		allMark = "x"
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "[%s]\tID\tNAME\tEMAIL\tMEMBERSHIP\tCOUNTRY\n", allMark)
	for _, m := range s.Members {
		mark := " "
		if s.IsSelected(m.ID) {
			mark = "x"
		}
		fmt.Fprintf(tw, "[%s]\t%d\t%s\t%s\t%s\t%s\n", mark, m.ID, m.Name, m.Email, m.MembershipType, m.Country)
	}
	_ = tw.Flush()
}

func (c *console) printForm() {
	form := c.ctrl.State().Form
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, name := range ui.FormFields {
		value, _ := ui.Field(form, name)
		fmt.Fprintf(tw, "%s\t%s\n", name, value)
	}
	_ = tw.Flush()
}
