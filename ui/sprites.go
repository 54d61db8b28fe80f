package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/*.svg
var assets embed.FS

// Sprites holds the rasterised body images. A nil image means "draw the fallback shape".
type Sprites struct {
	Puck    *ebiten.Image
	Paddles [2]*ebiten.Image
}

// LoadSprites rasterises the embedded SVGs at the given body radii.
// Failures are logged and leave the matching sprite nil.
func LoadSprites(puckRadius, paddleRadius float64) *Sprites {
	s := &Sprites{}
	s.Puck = loadSprite("assets/puck.svg", int(puckRadius*2))
	s.Paddles[0] = loadSprite("assets/paddle_red.svg", int(paddleRadius*2))
	s.Paddles[1] = loadSprite("assets/paddle_blue.svg", int(paddleRadius*2))
	return s
}

func loadSprite(name string, size int) *ebiten.Image {
	data, err := assets.ReadFile(name)
	if err != nil {
		log.Printf("sprites: %s missing, using fallback shape: %v", name, err)
		return nil
	}
	img, err := svgToImage(data, size, size)
	if err != nil {
		log.Printf("sprites: %s unusable, using fallback shape: %v", name, err)
		return nil
	}
	if os.Getenv("AIRHOCKEY_DEBUG_SPRITES") == "1" {
		saveDebugPNG(img, "debug_"+name[len("assets/"):]+".png")
	}
	return ebiten.NewImageFromImage(img)
}

// svgToImage rasterises SVG data into a width x height image
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid sprite size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("sprites: failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("sprites: failed to encode debug PNG: %v", err)
	}
}
