package main

import (
	"image"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/dotmatrix/v2"
	"github.com/pkg/errors"
)

func main() {
	log.SetHandler(clihandler.Default)
	if err := execute(os.Args, os.Stdin, os.Stdout); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// execute runs the command line in args. Errors from running it come back to
// the caller instead of going through cli.HandleExitCoder, which prints them
// and exits the process on its own.
func execute(args []string, stdin io.Reader, stdout io.Writer) error {
	var runErr error
	app := newApp(stdout)
	app.Action = func(c *cli.Context) error {
		runErr = run(c, stdin, stdout)
		return nil
	}
	if err := app.Run(args); err != nil {
		return err
	}
	return runErr
}

// newApp declares the command line. The caller supplies the Action.
func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = "2.0.0"
	app.Name = "dotmatrix"
	app.Usage = "A command-line tool for encoding images as unicode braille symbols."
	app.UsageText = "1) dotmatrix [options] [file|url]\n" +
		/*      */ "   2) dotmatrix [options] < [file]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rule,r",
			Usage: "`RULE` deciding which pixels are drawn: Threshold(N), InvertedThreshold(N) or Border(THRESHOLD,DISTANCE).",
			Value: dotmatrix.DefaultRule.String(),
		},
		cli.StringFlag{
			Name:  "size,s",
			Usage: "`SIZE` = WIDTHxHEIGHT resizes the image to exactly that many pixels. _ keeps the original size.",
			Value: "_",
		},
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 80,25 scales down the image to fit 80 columns and 25 lines. auto uses the terminal size.",
		},
		cli.IntFlag{
			Name:  "workers,w",
			Usage: "`WORKERS` evaluating each row of pixels. 1 evaluates sequentially.",
			Value: defaultConfig().Workers,
		},
		cli.BoolFlag{
			Name:  "trailing",
			Usage: "Draws cell columns 0 through width/2 and rows 0 through height/4 inclusive, as earlier dotmatrix releases did. An even width or a height divisible by 4 ends in a blank column or row.",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML `FILE` with default options. Flags take precedence.",
		},
		cli.BoolFlag{
			Name:  "verbose,V",
			Usage: "Enable verbose logging",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
			Value: 0.0,
		},
	}
	return app
}

func run(c *cli.Context, stdin io.Reader, stdout io.Writer) error {
	cfg := defaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return err
		}
	}
	cfg.applyFlags(c)

	// Bad options fail before any input is read.
	opts, err := cfg.resolve()
	if err != nil {
		return err
	}
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	img, format, err := decodeInput(c.Args().First(), stdin)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"format": format,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("decoded image")

	img = preprocess(img, opts)

	encOpts := []dotmatrix.Option{
		dotmatrix.WithRule(opts.rule),
		dotmatrix.WithWorkers(opts.workers),
	}
	if opts.trailing {
		encOpts = append(encOpts, dotmatrix.WithTrailingCells())
	}
	enc := dotmatrix.NewEncoder(stdout, encOpts...)

	start := time.Now()
	if err := enc.Encode(img); err != nil {
		return errors.Wrap(err, "write output")
	}
	log.WithFields(log.Fields{
		"rule":    opts.rule,
		"workers": opts.workers,
		"took":    time.Since(start),
	}).Debug("encoded image")
	return nil
}

// preprocess resizes, fits and adjusts img ahead of encoding.
func preprocess(img image.Image, opts options) image.Image {
	if !opts.size.IsDefault() {
		log.WithField("size", opts.size).Debug("resizing")
		img = opts.size.Apply(img)
	}
	if !opts.fit.isZero() {
		img = dotmatrix.Fit(img, opts.fit.cols, opts.fit.lines)
		log.WithFields(log.Fields{
			"cols":   opts.fit.cols,
			"lines":  opts.fit.lines,
			"width":  img.Bounds().Dx(),
			"height": img.Bounds().Dy(),
		}).Debug("fitted")
	}
	if !opts.adjust.IsZero() {
		img = opts.adjust.Apply(img)
	}
	return img
}
