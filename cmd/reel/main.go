// Command reel plays frame animations in the terminal, exports them as PNG
// sequences and streams them to MQTT-connected LED strips
//
// Usage examples:
//
//	reel play a.png b.png c.png --fps 8
//	reel play --config reel.yaml --debug
//	reel export --out frames/ --max-frames 120 clip.gif
//	reel stream --config tree.yaml
package main

import (
	"github.com/alecthomas/kong"

	"github.com/lixenwraith/reel/core"
)

// Globals are flags shared by every command
type Globals struct {
	Config string  `help:"Player configuration file, missing file means defaults." default:"reel.yaml" type:"path"`
	Debug  bool    `help:"Write logs to logs/reel.log."`
	FPS    float64 `name:"fps" help:"Animation tick rate, overrides the configuration."`
	Sound  bool    `help:"Click when the animation loops."`
}

type CLI struct {
	Globals

	Play   PlayCmd   `cmd:"" default:"withargs" help:"Play frames in the terminal."`
	Export ExportCmd `cmd:"" help:"Render frames to a PNG sequence."`
	Stream StreamCmd `cmd:"" help:"Stream frames to an LED strip over MQTT."`
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("reel"),
		kong.Description("Frame animation player."),
		kong.UsageOnError(),
	)

	if logFile := setupLogging(cli.Debug); logFile != nil {
		defer logFile.Close()
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
