package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"kiosk-lab/errors"
	"kiosk-lab/highlight"
)

// stylesheet gives a standalone page the classes the highlighter emits.
const stylesheet = `pre { outline: 1px solid #ccc; padding: 5px; margin: 5px; }
.string { color: green; }
.number { color: darkorange; }
.boolean { color: blue; }
.null { color: magenta; }
.key { color: red; }`

func (a *App) highlight(args []string) error {
	flags := flag.NewFlagSet("highlight", flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	page := flags.Bool("page", false, "wrap the output in a standalone HTML page")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: highlight needs a JSON file", errors.ErrMissingArgument)
	}

	data, err := a.readPayload(flags.Arg(0))
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: %s", errors.ErrMalformedPayload, flags.Arg(0))
	}

	// RawMessage keeps the key order of the file.
	out, err := highlight.Highlight(json.RawMessage(data))
	if err != nil {
		return err
	}
	if *page {
		fmt.Fprintf(a.stdout, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n%s\n</style>\n</head>\n<body>\n<pre>%s</pre>\n</body>\n</html>\n", stylesheet, out)
		return nil
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}
