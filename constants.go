package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeSizeInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpSaveVisualTXT
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewMap
	ConfirmOpenMap
	ConfirmFillMap
	ConfirmClearMap
	ConfirmOverwriteFile
)

const (
	mapExtension = ".gmap"

	// Every map cell is drawn as a block of blockSize x blockSize
	// terminal characters.
	blockSize = 2

	// Rows below the map: toolbar and status line
	chromeHeight = 2

	defaultMapWidth  = 32
	defaultMapHeight = 24

	cellSizeStep = 2
)
