package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bjaus/profilecard"
	"github.com/joho/godotenv"
)

const fetchTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("profilecard: %v", err)
	}
}

type options struct {
	config string
	data   string
	demo   bool
	fonts  string
	style  string
	out    string
	readme string
	user   string
	debug  bool
	list   bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fontsDir := os.Getenv("PROFILECARD_FONTS_DIR")
	if fontsDir == "" {
		fontsDir = "assets/fonts"
	}

	var o options
	fset := flag.NewFlagSet("profilecard", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&o.config, "config", "", "profile config file (YAML or JSON)")
	fset.StringVar(&o.data, "data", "", "profile data file (YAML or JSON)")
	fset.BoolVar(&o.demo, "demo", false, "render canned demo data instead of -data")
	fset.StringVar(&o.fonts, "fonts", fontsDir, "directory of custom .flf fonts")
	fset.StringVar(&o.style, "style", "", "layout style: classic, compact or terminal (overrides config)")
	fset.StringVar(&o.out, "out", "", "output file path (default stdout, or -readme itself)")
	fset.StringVar(&o.readme, "readme", "", "splice generated sections into this document")
	fset.StringVar(&o.user, "user", "", "username (overrides config)")
	fset.BoolVar(&o.debug, "v", false, "log debug output to stderr")
	fset.BoolVar(&o.list, "fonts-list", false, "print the available font names and exit")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if !o.list && !o.demo && o.data == "" {
		return options{}, errors.New("missing required flag: -data or -demo")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.list {
		return listFonts(stdout, profilecard.NewFontRepository(o.fonts, nil))
	}

	cfg := profilecard.DefaultConfig()
	if o.config != "" {
		if cfg, err = profilecard.LoadConfigFile(o.config); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if o.style != "" {
		if cfg.Style, err = profilecard.ParseStyle(o.style); err != nil {
			return err
		}
	}
	if o.user != "" {
		cfg.Username = o.user
	}

	var fetcher profilecard.Fetcher = demoFetcher{}
	if !o.demo {
		fetcher = fileFetcher(o.data)
	}

	opts := []profilecard.Option{
		profilecard.WithFontsDir(o.fonts),
		profilecard.WithOverlay(catOverlay),
	}
	if o.debug {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, profilecard.WithLogger(slog.New(h)))
	}
	r := profilecard.New(opts...)

	generated, err := r.Generate(ctx, fetcher, cfg)
	if err != nil {
		return err
	}

	if o.readme != "" {
		doc, err := os.ReadFile(o.readme)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read readme: %w", err)
		}
		dest := o.out
		if dest == "" {
			dest = o.readme
		}
		return writeFile(dest, profilecard.Splice(string(doc), generated))
	}

	if o.out != "" {
		return writeFile(o.out, generated+"\n")
	}
	_, err = fmt.Fprintln(stdout, generated)
	return err
}

func listFonts(w io.Writer, fonts *profilecard.FontRepository) error {
	names, err := fonts.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// fileFetcher reads profile data from a local file regardless of username.
func fileFetcher(path string) profilecard.FetcherFunc {
	return func(ctx context.Context, _ string) (profilecard.ProfileData, error) {
		if err := ctx.Err(); err != nil {
			return profilecard.ProfileData{}, err
		}
		return profilecard.LoadProfileFile(path)
	}
}
