// Command imgpack converts PNG, GIF or JPEG images into the packed 4-bit
// asset format consumed by the st7789p3 render packages.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/csboard/st7789p3/imagepal"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func decodeImage(path string) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	m, _, err := image.Decode(in)
	return m, err
}

func writeAsset(path string, img *imagepal.Image, goSource bool, name string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if goSource {
		return writeGoSource(out, name, img)
	}
	return encodeAsset(out, img)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "imgpack"
	app.Usage = "ST7789P3 packed sprite asset converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "pack",
			Usage:     "Convert an image into a packed 4-bit asset",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "go",
					Usage: "emit Go source instead of a binary asset",
				},
				&cli.StringFlag{
					Name:  "name",
					Value: "sprite",
					Usage: "identifier for generated Go source",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := decodeImage(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				img, err := convert(m, newLogger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := writeAsset(c.Args().Get(1), img, c.Bool("go"), c.String("name")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "cut",
			Usage:     "Cut a sprite sheet into separate packed assets",
			ArgsUsage: "INPUT CUT [CUT...]",
			Description: "Cuts the input into horizontal strips and packs each strip.\n" +
				"By default every CUT is a strip height, consumed top to bottom;\n" +
				"with --position the values are absolute Y coordinates.",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "position",
					Aliases: []string{"p"},
					Usage:   "treat the values as absolute Y coordinates, not heights",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cuts := make([]int, 0, c.NArg()-1)
				for _, arg := range c.Args().Slice()[1:] {
					v, err := strconv.Atoi(arg)
					if err != nil {
						return cli.NewExitError(fmt.Errorf("bad cut value %q", arg), 1)
					}
					cuts = append(cuts, v)
				}

				input := c.Args().First()
				m, err := decodeImage(input)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				logger := newLogger(c)
				for i, rg := range cutRanges(m.Bounds().Dy(), cuts, c.Bool("position")) {
					img, err := convert(cropRows(m, rg[0], rg[1]), logger)
					if err != nil {
						return cli.NewExitError(fmt.Errorf("strip %d-%d: %w", rg[0], rg[1], err), 1)
					}

					path := cutName(input, i, rg[0], rg[1])
					if err := writeAsset(path, img, false, ""); err != nil {
						return cli.NewExitError(err, 1)
					}
					fmt.Printf("saved %s (rows %d-%d)\n", path, rg[0], rg[1])
				}

				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Print dimensions, palette and footprint of a packed asset",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				in, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer in.Close()

				img, err := decodeAsset(in)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("size:      %dx%d\n", img.Width(), img.Height())
				fmt.Printf("footprint: %d bytes\n", img.MemoryFootprint())
				pal := img.Palette()
				for i, col := range pal {
					tag := ""
					if i == imagepal.TransparentIndex {
						tag = " (transparent)"
					}
					fmt.Printf("palette %2d: 0x%04X%s\n", i, uint16(col), tag)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
