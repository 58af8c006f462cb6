package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/selector"
	"cssel/state"
)

// Check implements the check subcommand: every argument (or every line of
// --file) is parsed as one complex selector and validated against the
// ordering and uniqueness rules. All inputs are checked even when some fail.
func Check(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	inputs := cmd.Args().Slice()
	if fname := cmd.String("file"); len(fname) > 0 {
		data, err := os.ReadFile(fname)
		if err != nil {
			return fmt.Errorf("unable to read selectors from '%s': %w", fname, err)
		}
		env.Rpt.StoreData("input/selectors.txt", data)
		for line := range strings.Lines(string(data)) {
			line = strings.TrimSpace(line)
			// '#' cannot mark comments here, it starts id selectors
			if len(line) == 0 || strings.HasPrefix(line, "//") {
				continue
			}
			inputs = append(inputs, line)
		}
	}
	if len(inputs) == 0 {
		return errors.New("no selectors to check")
	}

	p := selector.NewParser(env.Log)

	var (
		errs error
		bad  int
	)
	for _, in := range inputs {
		sel, err := p.Parse(in)
		if err != nil {
			bad++
			env.Log.Error("Invalid selector", zap.String("selector", in), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		if cmd.Bool("rendered") {
			fmt.Fprintln(os.Stdout, sel.String())
		}
		env.Log.Debug("Selector is valid", zap.String("selector", in), zap.String("rendered", sel.String()))
	}

	env.Log.Info("Checked selectors", zap.Int("total", len(inputs)), zap.Int("invalid", bad))
	return errs
}
