package cli

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/yameogo/gestock/internal/api"
)

var errUsage = errors.New("usage")

// outWriter is where prompts and listings go. Tests can swap it.
var outWriter io.Writer = os.Stdout

// subcommand splits a collection command line into its verb and the
// remaining arguments. An empty line defaults to "list".
func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "list", nil
	}
	return args[0], args[1:]
}

// argID parses the single numeric argument of "show" and "del".
func argID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errUsage
	}
	return id, nil
}

// listParams builds pagination parameters from an optional page number
// argument, applying the configured default page size.
func (a *App) listParams(args []string) api.ListParams {
	p := api.ListParams{PageSize: a.config.PageSize}
	if len(args) > 0 {
		if page, err := strconv.Atoi(args[0]); err == nil && page > 0 {
			p.Page = page
		}
	}
	return p
}

// promptInt64 reads an integer field.
func (a *App) promptInt64(prompt string) (int64, error) {
	s, err := GetSimpleText(a.reader, prompt, outWriter)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
