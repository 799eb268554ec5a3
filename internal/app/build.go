package app

import (
	"fmt"
	"log"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/engine"
	"github.com/ytget/yt-clipper/internal/transcript"
	"github.com/ytget/yt-clipper/internal/trim"
)

// NewFromTools wires the engine, transcoder and services described by tools.
func NewFromTools(tools *config.Tools) (*Executor, error) {
	if tools == nil {
		tools = config.DefaultTools()
	}
	eng, err := engine.New(tools.EngineOptions())
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	log.Printf("Using engine %s (ffmpeg: %s)", eng.Name(), tools.FFmpegPath)

	transcoder := trim.NewService(tools.FFmpegPath)
	return NewExecutor(
		download.NewService(eng, transcoder),
		transcript.NewService(eng, tools.SubtitleLangs),
		tools.OutputPrefix,
	), nil
}
