package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/common"
	"cssel/state"
)

// Run implements the render subcommand: reads selector definition files and
// writes rendered selectors to stdout or the requested destination. Files
// are independent - a failing file does not stop the others.
func Run(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return errors.New("no definition files to process")
	}

	env.Overwrite = cmd.Bool("overwrite")
	// the flag carries a default value, so only an explicitly set flag may
	// override the configured format
	env.Format = env.Cfg.Compose.Format
	if cmd.IsSet("to") {
		to := cmd.String("to")
		format, err := common.ParseOutputFmt(to)
		if err != nil {
			return fmt.Errorf("unsupported output format '%s': %w", to, err)
		}
		env.Format = format
	}

	out := os.Stdout
	if dest := cmd.String("output"); len(dest) > 0 {
		if !env.Overwrite {
			if _, err := os.Stat(dest); err == nil {
				return fmt.Errorf("destination '%s' already exists, use --overwrite", dest)
			}
		}
		f, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dest, err)
		}
		defer f.Close()
		out = f
	}

	var errs error
	for _, fname := range cmd.Args().Slice() {
		if err := renderFile(env, fname, out); err != nil {
			env.Log.Error("Unable to render definitions", zap.String("file", fname), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fname, err))
		}
	}
	return errs
}

func renderFile(env *state.LocalEnv, fname string, out *os.File) error {

	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read definitions: %w", err)
	}
	env.Rpt.StoreData(filepath.ToSlash(filepath.Join("input", filepath.Base(fname))), data)

	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}

	sels, errs := doc.BuildAll()

	var buf bytes.Buffer
	if err := Write(&buf, env.Format, sels); err != nil {
		return multierr.Append(errs, err)
	}
	env.Rpt.StoreData(filepath.ToSlash(filepath.Join("output", filepath.Base(fname))), buf.Bytes())

	if _, err := out.Write(buf.Bytes()); err != nil {
		return multierr.Append(errs, fmt.Errorf("unable to write rendered selectors: %w", err))
	}

	env.Log.Info("Rendered selectors",
		zap.String("file", fname),
		zap.Int("count", len(sels)),
		zap.Int("failed", len(doc.Selectors)-len(sels)),
		zap.Stringer("format", env.Format))
	return errs
}
