// Command qrkit is a small demonstration of the qrkit packages: it generates QR
// codes (optionally with a logo), converts images to and from base64, resizes
// images and scans codes back to text.
package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/qrkit/core/config"
	"github.com/dmitrymomot/qrkit/core/logger"
	"github.com/dmitrymomot/qrkit/pkg/imgutil"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

var version = "v0.1.0"

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)
	log.Debug("qrkit starting", logger.Version(version), logger.Key("env", cfg.Env))

	// cobra output is silenced; failures are reported once through the logger.
	if cmd, err := newRootCmd(cfg, log).ExecuteC(); err != nil {
		log.Error("command failed",
			logger.Action(cmd.Name()),
			logger.Error(err),
		)
		os.Exit(1)
	}
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(os.Stderr),
		logger.WithAttr(slog.String("service", cfg.AppName)),
	}
	if cfg.Env == "production" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	return logger.New(opts...)
}

func newRootCmd(cfg Config, log *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "qrkit",
		Short:         "QR code generation demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(cfg, log),
		newLogoCmd(cfg, log),
		newEncodeCmd(log),
		newDecodeCmd(log),
		newResizeCmd(log),
		newScanCmd(log),
		&cobra.Command{
			Use:   "version",
			Short: "Print version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "qrkit %s\n", version)
			},
		},
	)

	return root
}

// qrFlags are the generation flags shared by generate and logo.
type qrFlags struct {
	output    string
	charset   string
	width     int
	height    int
	logoRatio int
	base64    bool
}

func (f *qrFlags) register(cmd *cobra.Command, cfg Config) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default $QR_OUTPUT_DIR/qrcode-<uuid>.png)")
	cmd.Flags().StringVar(&f.charset, "charset", cfg.Charset, "Payload charset")
	cmd.Flags().IntVar(&f.width, "width", cfg.Width, "Image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", cfg.Height, "Image height in pixels")
	cmd.Flags().BoolVar(&f.base64, "base64", false, "Print base64 PNG to stdout instead of writing a file")
}

func (f *qrFlags) options(cfg Config, log *slog.Logger) ([]qrcode.Option, error) {
	enc, err := cfg.encoder()
	if err != nil {
		return nil, err
	}
	return []qrcode.Option{
		qrcode.WithCharset(f.charset),
		qrcode.WithSize(f.width, f.height),
		qrcode.WithLogoRatio(f.logoRatio),
		qrcode.WithEncoder(enc),
		qrcode.WithLogger(log),
	}, nil
}

func newGenerateCmd(cfg Config, log *slog.Logger) *cobra.Command {
	var f qrFlags
	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Generate a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cfg, log)
			if err != nil {
				return err
			}
			img, err := qrcode.Create(args[0], opts...)
			if err != nil {
				return err
			}
			if f.base64 {
				return printBase64(cmd.OutOrStdout(), img)
			}
			return save(cmd.OutOrStdout(), log, img, cfg.outputPath(f.output))
		},
	}
	f.register(cmd, cfg)
	return cmd
}

func newLogoCmd(cfg Config, log *slog.Logger) *cobra.Command {
	var f qrFlags
	cmd := &cobra.Command{
		Use:   "logo [text] [logo-file]",
		Short: "Generate a QR code with a centred logo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cfg, log)
			if err != nil {
				return err
			}
			img, err := qrcode.CreateWithLogo(args[0], args[1], opts...)
			if err != nil {
				return err
			}
			if f.base64 {
				return printBase64(cmd.OutOrStdout(), img)
			}
			return save(cmd.OutOrStdout(), log, img, cfg.outputPath(f.output))
		},
	}
	f.register(cmd, cfg)
	cmd.Flags().IntVar(&f.logoRatio, "ratio", cfg.LogoRatio, "Logo size as 1/ratio of each dimension")
	return cmd
}

func newEncodeCmd(log *slog.Logger) *cobra.Command {
	var dataURI bool
	cmd := &cobra.Command{
		Use:   "encode [image-file]",
		Short: "Print an image as base64 PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imgutil.Open(args[0])
			if err != nil {
				return err
			}
			if dataURI {
				s, err := imgutil.ToDataURI(img)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
				return err
			}
			log.Debug("encoding image", logger.Path(args[0]))
			return printBase64(cmd.OutOrStdout(), img)
		},
	}
	cmd.Flags().BoolVar(&dataURI, "data-uri", false, "Print a data:image/png;base64 URI")
	return cmd
}

func newDecodeCmd(log *slog.Logger) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "decode [output-file] [base64]",
		Short: "Write base64 text to a file (reads stdin when no text is given)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := input
			if len(args) == 2 {
				text = args[1]
			}
			if text == "" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = strings.TrimSpace(string(b))
			}
			if err := imgutil.Base64ToFile(text, args[0]); err != nil {
				return err
			}
			log.Info("file written", logger.Path(args[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Base64 text")
	return cmd
}

func newResizeCmd(log *slog.Logger) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "resize [src] [dest]",
		Short: "Resize an image; output format follows the destination extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := imgutil.ResizeFile(args[0], args[1], width, height); err != nil {
				return err
			}
			log.Info("image resized",
				logger.Path(args[1]),
				logger.Dimensions(width, height),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 150, "Target width in pixels")
	cmd.Flags().IntVar(&height, "height", 150, "Target height in pixels")
	return cmd
}

func newScanCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [image-file]",
		Short: "Decode a QR code image to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := qrcode.ScanFile(args[0])
			if err != nil {
				return err
			}
			log.Debug("code scanned", logger.Path(args[0]))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func printBase64(w io.Writer, img image.Image) error {
	s, err := imgutil.ToBase64(img)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func save(w io.Writer, log *slog.Logger, img image.Image, path string) error {
	if err := imgutil.Save(img, path); err != nil {
		return err
	}
	log.Info("qr code written", logger.Path(path), logger.Dimensions(img.Bounds().Dx(), img.Bounds().Dy()))
	_, err := fmt.Fprintln(w, path)
	return err
}
