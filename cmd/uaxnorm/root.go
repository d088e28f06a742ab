package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/npillmayer/uax15"
	"github.com/npillmayer/uax15/internal/ucdparse"
	"github.com/spf13/cobra"
)

var errNotNormalized = errors.New("input not normalized")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "uaxnorm [flags] [file ...]",
		Short:         "Normalize text to a Unicode normalization form",
		Version:       uax15.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	addFlags(cmd.Flags())
	cmd.MarkFlagFilename("config")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := setupConfig(cmd.Flags())
	if err != nil {
		return err
	}
	form, err := uax15.ParseForm(conf.GetString(keyForm))
	if err != nil {
		return err
	}
	if conf.GetBool(keyStreamSafe) {
		form = form.StreamSafe()
	}
	tracer().Infof("normalizing to %s", form.Name())
	codepoints := conf.GetBool(keyCodepoints)
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := cmd.OutOrStdout()
	allNormal := true
	for _, name := range args {
		in, closer, err := openInput(cmd, name)
		if err != nil {
			return err
		}
		if conf.GetBool(keyCheck) {
			var ok bool
			if ok, err = check(form, in, codepoints); err == nil {
				fmt.Fprintf(out, "%s: %s %s\n", name, form.Name(), yesNo(ok))
				allNormal = allNormal && ok
			}
		} else {
			err = normalize(form, in, out, codepoints)
		}
		closer()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if !allNormal {
		return errNotNormalized
	}
	return nil
}

func openInput(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// normalize copies in to out, normalizing to form.
func normalize(form uax15.Form, in io.Reader, out io.Writer, codepoints bool) error {
	if !codepoints {
		return stream(form, in, out)
	}
	var werr error
	err := ucdparse.Parse(in, func(token *ucdparse.Token) {
		if werr != nil {
			return
		}
		fields := make([]string, len(token.Fields))
		for i, field := range token.Fields {
			rs, err := normalizeRunes(form, field)
			if err != nil {
				werr = fmt.Errorf("line %d: %w", token.LineNo, err)
				return
			}
			fields[i] = ucdparse.CodePoints(rs)
		}
		_, werr = fmt.Fprintln(out, strings.Join(fields, ";"))
	})
	if err != nil {
		return err
	}
	return werr
}

// stream normalizes text rune by rune. Runs of non-starters of any length
// are fine, as the iterator buffers them itself.
func stream(form uax15.Form, in io.Reader, out io.Writer) error {
	it := form.Iterate(bufio.NewReader(in))
	w := bufio.NewWriter(out)
	for it.Next() {
		if _, err := w.WriteRune(it.Rune()); err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		w.Flush()
		return err
	}
	return w.Flush()
}

// check reports whether the text read from in is already in form.
func check(form uax15.Form, in io.Reader, codepoints bool) (bool, error) {
	if !codepoints {
		text, err := io.ReadAll(in)
		if err != nil {
			return false, err
		}
		return form.IsNormalString(string(text)), nil
	}
	ok := true
	var nerr error
	err := ucdparse.Parse(in, func(token *ucdparse.Token) {
		for _, field := range token.Fields {
			rs, err := normalizeRunes(form, field)
			if err != nil {
				if nerr == nil {
					nerr = fmt.Errorf("line %d: %w", token.LineNo, err)
				}
				return
			}
			if !slices.Equal(field, rs) {
				tracer().Debugf("line %d not in %s: %s", token.LineNo, form.Name(), ucdparse.CodePoints(field))
				ok = false
			}
		}
	})
	if err == nil {
		err = nerr
	}
	return ok, err
}

func normalizeRunes(form uax15.Form, rs []rune) ([]rune, error) {
	it := form.Iterate(uax15.FromRunes(rs))
	out := make([]rune, 0, len(rs))
	for it.Next() {
		out = append(out, it.Rune())
	}
	return out, it.Err()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
