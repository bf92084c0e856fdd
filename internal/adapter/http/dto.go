package httpadapter

type addHazardRequest struct {
	BuildingID int    `json:"building_id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Type       string `json:"type"`
	Intensity  int    `json:"intensity"`
}

type removeHazardRequest struct {
	BuildingID int `json:"building_id"`
	X          int `json:"x"`
	Y          int `json:"y"`
}

type clearHazardsRequest struct {
	BuildingID int `json:"building_id"`
}

type pathRequest struct {
	BuildingID int    `json:"building_id"`
	StartX     int    `json:"start_x"`
	StartY     int    `json:"start_y"`
	EndX       int    `json:"end_x"`
	EndY       int    `json:"end_y"`
	Name       string `json:"name"`
}

// pathResponse uses pointers so absent fields can be told from zero values.
type pathResponse struct {
	Success *bool    `json:"success"`
	Path    [][]int  `json:"path"`
	Steps   *int     `json:"steps"`
	Cost    *float64 `json:"cost"`
	PathID  int      `json:"path_id"`
	Error   string   `json:"error"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
