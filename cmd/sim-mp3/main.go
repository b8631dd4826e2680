package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/robotalks/mp3.go/pkg/framework"
	"github.com/robotalks/mp3.go/pkg/l1"
	env "github.com/robotalks/mp3.go/pkg/l1/env/controller"
	"github.com/robotalks/mp3.go/pkg/player"
	"github.com/robotalks/mp3.go/pkg/sim/yx5300"
)

var (
	totalFiles    = uint(yx5300.DefaultTotalFiles)
	totalFolders  = uint(yx5300.DefaultTotalFolders)
	trackDuration = yx5300.DefaultTrackDuration
)

func init() {
	env.SetControllerType("sim-mp3", l1.ControllerMeta{Description: "Simulation: MP3 player"})
	env.SetupFlags()
	flag.UintVar(&totalFiles, "files", totalFiles, "Number of tracks in the simulated file store.")
	flag.UintVar(&totalFolders, "folders", totalFolders, "Number of folders in the simulated file store.")
	flag.DurationVar(&trackDuration, "track-duration", trackDuration, "Play time of every simulated track.")
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	dev := yx5300.New()
	dev.TotalFiles = uint16(totalFiles)
	dev.TotalFolders = uint16(totalFolders)
	dev.TrackDuration = trackDuration
	ctl := player.NewController(env, dev)
	framework.NewLoop().Add(env, ctl).RunOrFail()
}
