package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"kiosk-lab/errors"
	"kiosk-lab/highlight"
)

func (a *App) probe(args []string) error {
	flags := flag.NewFlagSet("probe", flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	id := flags.Int("id", 1, "playlist id of the asset")
	asHTML := flags.Bool("html", false, "print the descriptor as highlighted HTML")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: probe needs a media file", errors.ErrMissingArgument)
	}

	media, err := a.prober.Probe(flags.Arg(0), *id)
	if err != nil {
		return err
	}

	if *asHTML {
		out, err := highlight.Highlight(media)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, out)
		return nil
	}
	b, err := json.MarshalIndent(media, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(b))
	return nil
}
