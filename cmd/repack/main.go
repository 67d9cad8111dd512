package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/snowscene"
	"github.com/rmcsoft/snowscene/sdlimage"
	"github.com/sirupsen/logrus"
)

type options struct {
	InputDir  string `short:"i" long:"input-dir"  description:"The input directory" required:"true"`
	OutputDir string `short:"o" long:"output-dir" description:"The output directory" required:"true"`
	Height    int    `short:"H" long:"height"     description:"Scale sprites to this height; 0 keeps the size"`
}

func images(inputDir string) ([]string, error) {
	var files []string
	walkFn := func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			if isImage, _ := filepath.Match("*.png", strings.ToLower(info.Name())); isImage {
				files = append(files, path)
			}
		}
		return err
	}
	err := filepath.Walk(inputDir, walkFn)
	return files, err
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)
	var err error

	if _, err = cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if opts.InputDir, err = filepath.Abs(opts.InputDir); err != nil {
		logrus.Fatal(err)
	}
	if opts.OutputDir, err = filepath.Abs(opts.OutputDir); err != nil {
		logrus.Fatal(err)
	}
	return opts
}

func outputPath(opts *options, inputImageFile string) (string, error) {
	relInputPath, err := filepath.Rel(opts.InputDir, inputImageFile)
	if err != nil {
		return "", err
	}

	outputImageDir := filepath.Join(opts.OutputDir, filepath.Dir(relInputPath))
	if err = os.MkdirAll(outputImageDir, 0755); err != nil {
		return "", err
	}

	relOutputPath := strings.TrimSuffix(relInputPath, filepath.Ext(relInputPath)) + sdlimage.PackedExt
	return filepath.Join(opts.OutputDir, relOutputPath), nil
}

func repack(opts *options, imageFile string) (unpacked int, packed int, err error) {
	pixmap, err := sdlimage.LoadPixmap(imageFile)
	if err != nil {
		return 0, 0, err
	}

	sprite, err := snowscene.PrepareSprite(pixmap, opts.Height)
	if err != nil {
		return 0, 0, err
	}

	packedPixmap := snowscene.PackPixmap(sprite)
	outputFile, err := outputPath(opts, imageFile)
	if err != nil {
		return 0, 0, err
	}
	if err = packedPixmap.Save(outputFile); err != nil {
		return 0, 0, err
	}
	return len(sprite.Data), len(packedPixmap.Data), nil
}

func main() {
	opts := parseCmd()
	log := logrus.New()

	imageFiles, err := images(opts.InputDir)
	if err != nil {
		log.WithError(err).Fatal("Could not list input images")
	}

	var packedSize int64
	var unpackedSize int64
	for _, imageFile := range imageFiles {
		unpacked, packed, err := repack(&opts, imageFile)
		if err != nil {
			log.WithError(err).WithField("file", imageFile).Fatal("Could not repack sprite")
		}
		log.WithFields(logrus.Fields{"file": imageFile, "unpacked": unpacked, "packed": packed}).Info("Sprite packed")
		unpackedSize += int64(unpacked)
		packedSize += int64(packed)
	}

	fields := logrus.Fields{
		"sprites":      len(imageFiles),
		"unpackedSize": float32(unpackedSize) / float32(1024*1024),
		"packedSize":   float32(packedSize) / float32(1024*1024),
	}
	if packedSize > 0 {
		fields["ratio"] = float32(unpackedSize) / float32(packedSize)
	}
	log.WithFields(fields).Info("Done")
}
