// Package render owns the pixel pipeline: a fixed-size canvas with themed
// drawing primitives (anchored text, panels, bars, ring and arc gauges,
// icon glyphs), adaptive font sizing driven by slot size categories, and
// PNG/JPEG encoders with an upload size guard.
//
// Widgets never touch the canvas directly; they describe themselves as
// component trees (see render/component) which draw through a Renderer.
package render
