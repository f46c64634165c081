package game

import (
	"image/color"
	"time"
)

// Playfield and timing.
const (
	Width  = 800
	Height = 600
	TPS    = 60

	// tickSeconds is the fixed simulated frame delta.
	tickSeconds = 1.0 / TPS
)

// TickDuration is the wall-clock length of one fixed simulation tick.
const TickDuration = time.Second / TPS

// Invader grid.
const (
	InvaderRows    = 5
	InvaderCols    = 11
	InvaderCount   = InvaderRows * InvaderCols
	invaderSize    = 20
	invaderSpacing = 10
	invaderPitch   = invaderSize + invaderSpacing
	gridOriginX    = 240
	gridOriginY    = 100
)

// Player and projectiles.
const (
	playerStartLives = 3
	playerY          = Height - 50
	playerMargin     = 20
	playerEase       = 0.1 // fraction of the pointer distance covered per tick
	projectileSpeed  = 7
	muzzleOffset     = 10

	// ShotCooldown is the minimum interval between accepted player shots.
	ShotCooldown = 300 * time.Millisecond
)

// cooldownTicks is ShotCooldown expressed in whole simulation ticks (18).
const cooldownTicks = int(ShotCooldown / TickDuration)

// Shields.
const (
	ShieldCount  = 4
	ShieldWidth  = 60
	ShieldHeight = 20
	ShieldHealth = 5
	shieldY      = Height - 100
)

// Formation behaviour.
const (
	formationMargin  = 50
	formationDescent = 10
	advanceChance    = 0.02
	fireChance       = 0.05
	speedPerKill     = 0.05
	invasionLine     = playerY - 20
)

// Proximity test half-extents.
const (
	hitHalfX = 10
	hitHalfY = 10
)

// MusicFade is how long the background loop takes to fade on a terminal transition.
const MusicFade = time.Second

// Vignette falloff.
const (
	vignetteRadius  = 300
	vignetteFalloff = 100 // distance over which alpha grows by vignetteStep
	vignetteStep    = 50
)

// rowPoints is the score for a kill, indexed by invader row (top row first).
var rowPoints = [InvaderRows]int{50, 40, 30, 20, 10}

var (
	colorBlack   = color.RGBA{A: 255}
	colorWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGreen   = color.RGBA{G: 255, A: 255}
	colorCyan    = color.RGBA{G: 255, B: 255, A: 255}
	colorMagenta = color.RGBA{R: 255, B: 255, A: 255}
	colorRed     = color.RGBA{R: 255, A: 255}
)
