package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/snowscene"
	"github.com/rmcsoft/snowscene/sdlimage"
	"github.com/sirupsen/logrus"
)

type options struct {
	Config   string  `short:"c" long:"config"   description:"Scene config file (YAML); defaults are used for missing keys"`
	Output   string  `short:"o" long:"output"   description:"Output video file or directory" default:"result.mp4"`
	Format   string  `short:"f" long:"format"   description:"Output format, guessed from the output name if empty" choice:"ffmpeg" choice:"png" choice:"gif" choice:"apng" choice:"null"`
	Assets   string  `short:"a" long:"assets"   description:"Directory with the sprite files"`
	Width    int     `long:"width"              description:"Canvas width"`
	Height   int     `long:"height"             description:"Canvas height"`
	FPS      int     `long:"fps"                description:"Frames per second"`
	Duration float64 `long:"duration"           description:"Video length in seconds"`
	Seed     uint64  `long:"seed"               description:"Random seed"`
	FFmpeg   string  `long:"ffmpeg"             description:"ffmpeg executable" default:"ffmpeg"`
	Codec    string  `long:"codec"              description:"ffmpeg video codec" default:"libx264"`
	Verbose  bool    `short:"v" long:"verbose"  description:"Log debug messages"`
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	return opts
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func loadConfig(opts *options) (*snowscene.Config, error) {
	config := snowscene.DefaultConfig()
	if opts.Config != "" {
		var err error
		if config, err = snowscene.LoadConfig(opts.Config); err != nil {
			return nil, err
		}
	}

	if opts.Assets != "" {
		config.Assets.Dir = opts.Assets
	}
	if opts.Width > 0 {
		config.Width = opts.Width
	}
	if opts.Height > 0 {
		config.Height = opts.Height
	}
	if opts.FPS > 0 {
		config.FPS = opts.FPS
	}
	if opts.Duration > 0 {
		config.Duration = opts.Duration
	}
	if opts.Seed != 0 {
		config.Seed = opts.Seed
	}
	return config, config.Validate()
}

func run(opts *options, log *logrus.Logger) error {
	config, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":    config.Width,
		"height":   config.Height,
		"fps":      config.FPS,
		"frames":   config.TotalFrames(),
		"seed":     config.Seed,
		"snowfall": len(config.Snowfall.Schedule),
	}).Debug("Config loaded")

	sprites, err := sdlimage.LoadSprites(config.Assets)
	if err != nil {
		return err
	}

	scene, err := snowscene.BuildScene(config, sprites)
	if err != nil {
		return err
	}

	sink, err := snowscene.OpenFrameSink(snowscene.SinkOptions{
		Format:     opts.Format,
		Path:       opts.Output,
		Width:      config.Width,
		Height:     config.Height,
		FPS:        config.FPS,
		FFmpegPath: opts.FFmpeg,
		Codec:      opts.Codec,
	})
	if err != nil {
		return err
	}

	driver, err := snowscene.NewDriver(scene, sink, config.Width, config.Height,
		config.FPS, config.TotalFrames(), log.WithField("output", opts.Output))
	if err != nil {
		sink.Close()
		return err
	}
	return driver.Run()
}

func main() {
	opts := parseCmd()
	log := newLogger(opts.Verbose)

	if err := run(&opts, log); err != nil {
		log.WithError(err).Fatal("Render failed")
	}
}
