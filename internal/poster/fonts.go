package poster

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontMu      sync.Mutex
	regularFont *truetype.Font
	boldFont    *truetype.Font
	faceCache   map[faceKey]font.Face
)

type faceKey struct {
	bold bool
	size float64
}

func init() {
	var err error
	regularFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Errorf("parse regular font: %w", err))
	}
	boldFont, err = truetype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Errorf("parse bold font: %w", err))
	}
	faceCache = map[faceKey]font.Face{}
}

// UseFontDir replaces the built-in Go fonts with regular.ttf and bold.ttf
// from dir. Deployments that render Thai readings point this at a font
// family with Thai coverage.
func UseFontDir(dir string) error {
	reg, err := loadTTF(filepath.Join(dir, "regular.ttf"))
	if err != nil {
		return err
	}
	bold, err := loadTTF(filepath.Join(dir, "bold.ttf"))
	if err != nil {
		return err
	}
	fontMu.Lock()
	defer fontMu.Unlock()
	regularFont = reg
	boldFont = bold
	faceCache = map[faceKey]font.Face{}
	return nil
}

func loadTTF(path string) (*truetype.Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

func fontFace(bold bool, size float64) font.Face {
	fontMu.Lock()
	defer fontMu.Unlock()
	key := faceKey{bold: bold, size: size}
	if face, ok := faceCache[key]; ok {
		return face
	}
	f := regularFont
	if bold {
		f = boldFont
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	faceCache[key] = face
	return face
}
