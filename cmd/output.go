package cmd

import (
	"fmt"
	"io"

	cfgpkg "github.com/KaramelBytes/dataquery-cli/internal/config"
	"github.com/KaramelBytes/dataquery-cli/internal/utils"
)

type outputOptions struct {
	Writer     io.Writer
	OutputPath string
	Quiet      bool
}

// writeOutput prints text, or v as JSON when the json format is selected,
// and saves the same bytes to OutputPath when one is given.
func writeOutput(text string, v any, opts outputOptions) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	content := []byte(text)
	if format == cfgpkg.FormatJSON {
		b, err := utils.PrettyJSON(v)
		if err != nil {
			return err
		}
		content = append(b, '\n')
	}
	if opts.OutputPath == "" {
		_, err := opts.Writer.Write(content)
		return err
	}
	if err := utils.SafeWriteFile(opts.OutputPath, content); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if !opts.Quiet {
		fmt.Fprintf(opts.Writer, "✓ Wrote %s\n", opts.OutputPath)
	}
	return nil
}
