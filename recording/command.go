// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/turtle/surface"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdTranslate CommandType = iota // Translate the coordinate system
	CmdClearRect                    // Clear a rectangle
	CmdStroke                       // Stroke a path
	CmdFill                         // Fill a path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdTranslate: "Translate",
	CmdClearRect: "ClearRect",
	CmdStroke:    "Stroke",
	CmdFill:      "Fill",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// TranslateCommand moves the coordinate system.
type TranslateCommand struct {
	DX, DY float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ClearRectCommand clears a rectangle in the current coordinate system.
type ClearRectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// StrokeCommand strokes a path. Path is owned by the recording.
type StrokeCommand struct {
	Path  *surface.Path
	Style surface.StrokeStyle
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillCommand fills a path. Path is owned by the recording.
type FillCommand struct {
	Path  *surface.Path
	Style surface.FillStyle
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }
