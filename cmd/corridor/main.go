package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/leterax/go-corridor/internal/logging"
	"github.com/leterax/go-corridor/pkg/corridor"
	"github.com/leterax/go-corridor/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	log := logging.NewDefaultLogger("corridor", os.Getenv("CORRIDOR_DEBUG") != "")

	cfg, err := corridor.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Print(corridor.Usage)
		fmt.Println(err)
		os.Exit(2)
	}
	log.Debugf("walk %dms, turn %dms, %d steps of height %g, textures %v",
		cfg.WalkPeriodMs, cfg.TurnPeriodMs, cfg.StepCount, cfg.StepHeight, cfg.Textures)

	renderer, err := render.NewRenderer(cfg, log)
	if err != nil {
		if errors.Is(err, render.ErrTextureLoad) {
			fmt.Println(render.TextureLoadMessage)
		}
		log.Errorf("failed to initialize renderer: %v", err)
		os.Exit(1)
	}

	renderer.Run()
}
