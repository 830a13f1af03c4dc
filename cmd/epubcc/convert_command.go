package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/maruwtc/epubcc"
	"github.com/maruwtc/epubcc/internal/config"
)

func newConvertCommand(configFlag *string) *cobra.Command {
	var (
		output  string
		workers int
		profile string
	)

	cmd := &cobra.Command{
		Use:   "convert [archives...]",
		Short: "Convert local EPUB archives and write the bundled result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Logging.Level)

			transcoder, err := newTranscoder(cfg, logger, workers, profile)
			if err != nil {
				return err
			}

			inputs, err := readArchives(args)
			if err != nil {
				return err
			}

			bundle, err := transcoder.ProcessBatch(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := os.WriteFile(output, bundle, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d archives, %d bytes)\n", output, len(inputs), len(bundle))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "converted-epubs.zip", "Output bundle path")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers per archive (0 uses config, then one per CPU)")
	cmd.Flags().StringVar(&profile, "profile", "", "OpenCC conversion profile (overrides config)")

	return cmd
}

// readArchives loads the named files into memory with a byte progress bar,
// since EPUB collections routinely run to hundreds of megabytes.
func readArchives(paths []string) ([]epubcc.Input, error) {
	var total int64
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		total += info.Size()
	}

	bar := progressbar.DefaultBytes(total, "reading")
	defer bar.Close()

	inputs := make([]epubcc.Input, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		_, err = io.Copy(io.MultiWriter(&buf, bar), f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		inputs = append(inputs, epubcc.Input{Name: filepath.Base(p), Data: buf.Bytes()})
	}
	return inputs, nil
}
