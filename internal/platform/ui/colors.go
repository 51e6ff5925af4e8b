// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta base
var (
	// HashAmber - elementos principales, cabeceras
	HashAmber = pterm.NewRGB(255, 176, 0)

	// CrackGreen - contraseña recuperada
	CrackGreen = pterm.NewRGB(46, 204, 113)

	// FailRed - fallos del motor
	FailRed = pterm.NewRGB(215, 38, 56)

	// MissGray - ataques sin resultado, texto secundario
	MissGray = pterm.NewRGB(120, 120, 120)

	// SteelCyan - acentos y valores
	SteelCyan = pterm.NewRGB(0, 206, 209)
)

// Estilos preconfigurados para diferentes contextos
var (
	StylePrimary   = HashAmber.ToRGBStyle()
	StyleSuccess   = CrackGreen.ToRGBStyle()
	StyleError     = FailRed.ToRGBStyle()
	StyleSecondary = MissGray.ToRGBStyle()
	StyleAccent    = SteelCyan.ToRGBStyle()
)
