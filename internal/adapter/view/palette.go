package view

import (
	"image/color"

	"evacplanner/internal/app/session"
	"evacplanner/internal/domain/grid"
)

var (
	ColorBackground = color.RGBA{33, 37, 41, 255}
	ColorGridLine   = color.RGBA{200, 200, 200, 255}
	ColorButton     = color.RGBA{73, 80, 87, 255}
	ColorButtonBusy = color.RGBA{134, 142, 150, 255}
	ColorSelected   = color.RGBA{255, 193, 7, 255}
)

var categoryColors = map[grid.Category]color.RGBA{
	grid.CategoryEmpty: {255, 255, 255, 255},
	grid.CategoryStart: {40, 167, 69, 255},
	grid.CategoryEnd:   {0, 123, 255, 255},
	grid.CategoryPath:  {253, 152, 0, 255},
}

var hazardColors = map[grid.HazardType]color.RGBA{
	grid.HazardFire:     {220, 53, 69, 255},
	grid.HazardSmoke:    {108, 117, 125, 255},
	grid.HazardWater:    {23, 162, 184, 255},
	grid.HazardChemical: {111, 66, 193, 255},
	grid.HazardBlocked:  {52, 58, 64, 255},
}

// hazardUnknown covers backend types the client has no color for.
var hazardUnknown = color.RGBA{253, 126, 20, 255}

func CellColor(c grid.CellView) color.RGBA {
	if c.Category == grid.CategoryHazard {
		return HazardColor(c.Hazard)
	}
	if col, ok := categoryColors[c.Category]; ok {
		return col
	}
	return categoryColors[grid.CategoryEmpty]
}

func HazardColor(t grid.HazardType) color.RGBA {
	if col, ok := hazardColors[t]; ok {
		return col
	}
	return hazardUnknown
}

var severityColors = map[session.Severity]color.RGBA{
	session.SeverityInfo:    {23, 162, 184, 255},
	session.SeveritySuccess: {40, 167, 69, 255},
	session.SeverityWarning: {214, 158, 0, 255},
	session.SeverityDanger:  {220, 53, 69, 255},
}

func SeverityColor(s session.Severity) color.RGBA {
	if col, ok := severityColors[s]; ok {
		return col
	}
	return severityColors[session.SeverityInfo]
}
