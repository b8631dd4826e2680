package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	"github.com/robotalks/mp3.go/pkg/framework"
	"github.com/robotalks/mp3.go/pkg/l1"
	env "github.com/robotalks/mp3.go/pkg/l1/env/controller"
	"github.com/robotalks/mp3.go/pkg/player"
)

func init() {
	env.SetControllerType("mp3", l1.ControllerMeta{Description: "MP3 Player"})
	env.SetupFlags()
	player.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	conf, err := player.NewConfig()
	if err != nil {
		log.Fatalln(err)
	}
	ctl, err := conf.NewController(env)
	if err != nil {
		log.Fatalln(err)
	}
	defer ctl.Close()
	framework.NewLoop().Add(env, ctl).RunOrFail()
}
