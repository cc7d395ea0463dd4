package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"github.com/LdDl/fusion-go/cop"
	"github.com/LdDl/fusion-go/fusion"
	"github.com/LdDl/fusion-go/scenario"
)

func main() {
	parser := argparse.NewParser("fusionsim", "Two-camera sensor fusion simulator")
	configPath := parser.String("c", "config", &argparse.Options{Help: "Path to scenario YAML file (built-in scenario when omitted)", Required: false, Default: ""})
	outputDir := parser.String("o", "output", &argparse.Options{Help: "Directory for operational picture PNG files", Required: false, Default: "."})
	ticks := parser.Int("t", "ticks", &argparse.Options{Help: "Number of simulation ticks to execute", Required: false, Default: 1})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	scn := scenario.Default()
	if *configPath != "" {
		scn, err = scenario.Load(*configPath)
		if err != nil {
			logger.Fatal("can't load scenario", zap.String("path", *configPath), zap.Error(err))
		}
	}
	if len(scn.Cameras) != 2 {
		logger.Fatal("scenario must describe exactly two cameras", zap.Int("cameras", len(scn.Cameras)))
	}

	sensors := scn.Sensors()
	recognition := fusion.NewMockObjectRecognition(scn.GroundTruth(), fusion.NewPriorDistanceEstimator(scn.SizePriors()))
	fuse := fusion.NewPairwiseFuser(scn.Cameras[0].ID, scn.Cameras[1].ID, logger)
	station := fusion.NewFusionStation(sensors, recognition, fuse, cop.NewPlotter(*outputDir), logger)

	for tick := 1; tick <= *ticks; tick++ {
		objectsBySensor, err := station.ExecuteWithoutFusion()
		if err != nil {
			logger.Fatal("tick failed", zap.Int("tick", tick), zap.Error(err))
		}
		for _, camera := range scn.Cameras {
			for _, object := range objectsBySensor[camera.ID] {
				logger.Info("detection",
					zap.Int("tick", tick),
					zap.Int("sensor", camera.ID),
					zap.String("class", object.Class),
					zap.Float64("north", object.Location.North),
					zap.Float64("east", object.Location.East))
			}
		}
		fused, err := station.ExecuteWithFusion()
		if err != nil {
			logger.Fatal("fusion tick failed", zap.Int("tick", tick), zap.Error(err))
		}
		for _, object := range fused {
			logger.Info("fused object",
				zap.Int("tick", tick),
				zap.String("class", object.Class),
				zap.Float64("north", object.Location.North),
				zap.Float64("east", object.Location.East))
		}
	}
}
