// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws clipping scenes with gg.
//
// A [Scene] holds the clip boundary, the input primitives and the clipped
// results. [Draw] paints it onto a *gg.Context, [Render] returns the image
// and [SavePNG] writes it to disk.
//
// # Coordinate System
//
// Scenes are in world coordinates with Y growing upwards. A [Viewport] puts
// the world origin at the image center and maps one world unit to
// Grid*Scale pixels:
//
//	sx = cx + x*Grid*Scale
//	sy = cy - y*Grid*Scale
//
// # Colors
//
// The clip window is red, the clip polygon purple, input lines blue and
// input polygons green. Clipped lines are orange and drawn wider; clipped
// polygons are dark green over a light green fill. Line endpoints get dots.
//
// # Usage
//
//	scene := render.Scene{
//	    Window:       &win,
//	    Lines:        segs,
//	    ClippedLines: batch.Visible(),
//	}
//	if err := render.SavePNG("preview.png", scene, render.DefaultOptions()); err != nil {
//	    log.Fatal(err)
//	}
package render
