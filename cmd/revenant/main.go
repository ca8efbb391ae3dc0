package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/revenant"
	"github.com/bodgit/revenant/registry"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) *revenant.Converter {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return revenant.New(c.String("registry"), logger)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// warnSkipped tells the user when a tag only covers part of a file. Lookup
// failures are left for the operation itself to report.
func warnSkipped(r *revenant.Converter, file, tag string) {
	skipped, err := r.Skipped(file, tag)
	if err != nil || len(skipped) == 0 {
		return
	}

	tags := make([]string, 0, len(skipped))
	for _, d := range skipped {
		tags = append(tags, d.Tag)
	}
	fmt.Fprintf(os.Stderr, "Only processing \"%s\", skipping %s; use --tag %s for the whole file\n", tag, strings.Join(tags, ", "), registry.Primary)
}

func main() {
	app := cli.NewApp()

	app.Name = "revenant"
	app.Usage = "Revenant .dat image conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	tagFlag := &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Value:   registry.Primary,
		Usage:   "segment `TAG` to process, \"" + registry.Primary + "\" processes every segment",
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "registry",
			Aliases: []string{"r"},
			EnvVars: []string{"REVENANT_REGISTRY"},
			Value:   filepath.Join(cwd, registry.Filename),
			Usage:   "path to list of known files",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "extract",
			Usage:       "Extract images from a .dat file",
			Description: "Given a directory, every known .dat file within it is extracted.",
			ArgsUsage:   "FILE|DIRECTORY",
			Flags:       []cli.Flag{tagFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				r := newConverter(c)

				if target := c.Args().First(); isDir(target) {
					n, err := r.ExtractAll(target)
					fmt.Printf("%d files extracted\n", n)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				}

				warnSkipped(r, c.Args().First(), c.String("tag"))

				paths, err := r.Extract(c.Args().First(), c.String("tag"))
				for _, path := range paths {
					fmt.Println(path)
				}
				if err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "insert",
			Usage:       "Insert previously extracted images into a .dat file",
			Description: "The .dat file is overwritten.",
			ArgsUsage:   "FILE",
			Flags:       []cli.Flag{tagFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				r := newConverter(c)

				warnSkipped(r, c.Args().First(), c.String("tag"))

				if err := r.Insert(c.Args().First(), c.String("tag")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "trim",
			Usage:     "Copy a .dat file from an offset onwards",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.Uint64Flag{
					Name:     "offset",
					Aliases:  []string{"o"},
					Usage:    "first byte to copy",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				path, err := newConverter(c).Trim(c.Args().First(), c.Uint64("offset"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Println(path)

				return nil
			},
		},
		{
			Name:      "list",
			Usage:     "List known segments",
			ArgsUsage: "[FILE]",
			Action: func(c *cli.Context) error {
				reg, err := registry.Open(c.String("registry"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				files := reg.Files()
				if c.NArg() > 0 {
					files = []string{filepath.Base(c.Args().First())}
				}

				for _, file := range files {
					for _, d := range reg.Group(file) {
						fmt.Println(d)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
