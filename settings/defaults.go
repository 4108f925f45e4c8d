// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"image/color"
)

// Keys of the standard editor settings.
const (
	ForceConvex               = "pbForceConvex"
	ManifoldEdgeExtrusion     = "pbManifoldEdgeExtrusion"
	CloseShapeWindow          = "pbCloseShapeWindow"
	NormalizeUVsOnProjection  = "pbNormalizeUVsOnPlanarProjection"
	ShowSceneInfo             = "pbShowSceneInfo"
	EnableBackfaceSelection   = "pbEnableBackfaceSelection"
	MeshesAreAssets           = "pbMeshesAreAssets"
	SelectedFaceDither        = "pbSelectedFaceDither"
	ShowPreselectionHighlight = "pbShowPreselectionHighlight"

	GrowSelectionAngle = "pbGrowSelectionAngle"
	ExtrudeDistance    = "pbExtrudeDistance"
	WeldDistance       = "pbWeldDistance"
	UVGridSnapValue    = "pbUVGridSnapValue"
	UVWeldDistance     = "pbUVWeldDistance"
	BevelAmount        = "pbBevelAmount"
	VertexHandleSize   = "pbVertexHandleSize"
	LineHandleSize     = "pbLineHandleSize"
	WireframeSize      = "pbWireframeSize"

	DefaultEditLevel     = "pbDefaultEditLevel"
	DefaultSelectionMode = "pbDefaultSelectionMode"
	HandleAlignment      = "pbHandleAlignment"

	SelectedFaceColor     = "pbSelectedFaceColor"
	WireframeColor        = "pbWireframeColor"
	UnselectedEdgeColor   = "pbUnselectedEdgeColor"
	SelectedEdgeColor     = "pbSelectedEdgeColor"
	UnselectedVertexColor = "pbUnselectedVertexColor"
	SelectedVertexColor   = "pbSelectedVertexColor"
	PreselectionColor     = "pbPreselectionColor"
)

var (
	wireframe    = color.RGBA{125, 155, 185, 255}
	selected     = color.RGBA{0, 210, 239, 255}
	unselected   = color.RGBA{44, 44, 44, 255}
	preselection = color.RGBA{179, 246, 255, 255}
)

// StandardDefaults returns a new map with the default values of the
// standard editor settings.
func StandardDefaults() map[string]any {
	return map[string]any{
		ForceConvex:               false,
		ManifoldEdgeExtrusion:     false,
		CloseShapeWindow:          false,
		NormalizeUVsOnProjection:  false,
		ShowSceneInfo:             false,
		EnableBackfaceSelection:   false,
		MeshesAreAssets:           false,
		SelectedFaceDither:        true,
		ShowPreselectionHighlight: true,

		GrowSelectionAngle: float32(42),
		ExtrudeDistance:    float32(0.5),
		WeldDistance:       float32(0.001),
		UVGridSnapValue:    float32(0.125),
		UVWeldDistance:     float32(0.01),
		BevelAmount:        float32(0.05),
		VertexHandleSize:   float32(3),
		LineHandleSize:     float32(1),
		WireframeSize:      float32(0.5),

		DefaultEditLevel:     0,
		DefaultSelectionMode: 0,
		HandleAlignment:      0,

		SelectedFaceColor:     selected,
		WireframeColor:        wireframe,
		UnselectedEdgeColor:   unselected,
		SelectedEdgeColor:     selected,
		UnselectedVertexColor: unselected,
		SelectedVertexColor:   selected,
		PreselectionColor:     preselection,
	}
}
