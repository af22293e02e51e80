package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIconName = "libby.svg"
)

//go:embed assets/icon.svg
var appIconSVG []byte

// AppIcon is the embedded application icon
var AppIcon = fyne.NewStaticResource(AppIconName, appIconSVG)
