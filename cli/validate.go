package cli

import (
	stderrors "errors"
	"fmt"
	"kiosk-lab/errors"
	"kiosk-lab/schema"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type parseFunc func(data []byte) (any, error)

var parsers = map[string]parseFunc{
	"kiosk":        func(data []byte) (any, error) { return schema.ParseKiosk(data) },
	"announcement": func(data []byte) (any, error) { return schema.ParseAnnouncement(data) },
	"media":        func(data []byte) (any, error) { return schema.ParseMedia(data) },
	"conversation": func(data []byte) (any, error) { return schema.ParseConversation(data) },
	"message":      func(data []byte) (any, error) { return schema.ParseMessage(data) },
}

func (a *App) validate(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: validate needs a payload kind and a file", errors.ErrMissingArgument)
	}
	kind, path := args[0], args[1]
	parse, ok := parsers[kind]
	if !ok {
		kinds := lo.Keys(parsers)
		slices.Sort(kinds)
		return fmt.Errorf("%w: payload kind %q, expected one of %s", errors.ErrUnknownCommand, kind, strings.Join(kinds, ", "))
	}

	data, err := a.readPayload(path)
	if err != nil {
		return err
	}

	if _, err = parse(data); err != nil {
		var verr *schema.ValidationError
		if stderrors.As(err, &verr) {
			a.log.Warn("Payload rejected", "kind", kind, "path", path, "issues", len(verr.Issues))
			fmt.Fprintln(a.stdout, a.paint(color.New(color.FgRed, color.OpBold), fmt.Sprintf("✘ %s: %d issue(s) in %s", kind, len(verr.Issues), path)))
			a.renderIssues(verr.Issues)
		}
		return err
	}

	a.log.Debug("Payload validated", "kind", kind, "path", path)
	fmt.Fprintln(a.stdout, a.paint(color.New(color.FgGreen), fmt.Sprintf("✔ %s: %s is valid", kind, path)))
	return nil
}

func (a *App) renderIssues(issues []schema.Issue) {
	table := tablewriter.NewWriter(a.stdout)
	table.SetHeader([]string{"Path", "Code", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(lo.Map(issues, func(i schema.Issue, _ int) []string {
		path := i.Path
		if path == "" {
			path = "(root)"
		}
		return []string{path, string(i.Code), i.Message}
	}))
	table.Render()
}
