// Package render computes how a folder is presented: colour swatch and icon.
package render

import (
	"github.com/creativeprojects/folders/folder"
	"github.com/pterm/pterm"
)

const swatchBlock = "■"

// Swatch is the colour block displayed next to a folder name
type Swatch struct {
	Visible bool
	// ARGB colour, only meaningful when Visible
	Color int32
}

// BlockColor returns the swatch of a folder. System folders (inbox section) and folders
// using the default background colour show no swatch.
func BlockColor(f *folder.Folder, defaultColor int32) (Swatch, error) {
	if f.BgColor == "" || f.IsType(folder.TypeInboxSection) {
		return Swatch{}, nil
	}
	color, err := folder.NonEmptyColor(f.BgColor, defaultColor)
	if err != nil {
		return Swatch{}, err
	}
	if color == defaultColor {
		return Swatch{}, nil
	}
	return Swatch{Visible: true, Color: color}, nil
}

// RGB returns the red, green and blue components of the swatch colour
func (s Swatch) RGB() (uint8, uint8, uint8) {
	return uint8(s.Color >> 16), uint8(s.Color >> 8), uint8(s.Color)
}

// Sprint returns a coloured block for the terminal, or a blank for an invisible swatch
func (s Swatch) Sprint() string {
	if !s.Visible {
		return " "
	}
	r, g, b := s.RGB()
	return pterm.NewRGB(r, g, b).Sprint(swatchBlock)
}

// Icon returns the icon resource of the folder and whether it should be displayed
func Icon(f *folder.Folder) (int32, bool) {
	if f.IconResID > 0 {
		return f.IconResID, true
	}
	return 0, false
}
