package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

type fonts struct {
	score *text.GoTextFace
	title *text.GoTextFace
	final *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &fonts{
		score: &text.GoTextFace{Source: src, Size: 20},
		title: &text.GoTextFace{Source: src, Size: 50},
		final: &text.GoTextFace{Source: src, Size: 25},
	}, nil
}
