package api

import "time"

// =============================================================================
// Request Types
// =============================================================================

// DimensionsRequest is the request body for setting pond dimensions.
type DimensionsRequest struct {
	Length float64 `json:"length_meters"`
	Width  float64 `json:"width_meters"`
	Depth  float64 `json:"avg_depth_meters"`
	Shape  string  `json:"shape"`
}

// FishRequest is the request body for adding or removing fish.
type FishRequest struct {
	Species  string `json:"species"`
	Quantity int    `json:"quantity"`
}

// FishBatchRequest is the request body for adding several species at once.
type FishBatchRequest struct {
	Fish map[string]int `json:"fish"`
}

// SavePondRequest is the request body for saving the current pond.
type SavePondRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// =============================================================================
// Response Types
// =============================================================================

// DimensionsResponse mirrors the pond dimensions in responses.
type DimensionsResponse struct {
	Length float64 `json:"length_meters"`
	Width  float64 `json:"width_meters"`
	Depth  float64 `json:"avg_depth_meters"`
	Shape  string  `json:"shape"`
}

// PondResponse is the current planning session state.
type PondResponse struct {
	Dimensions *DimensionsResponse `json:"dimensions,omitempty"`
	FishStock  map[string]int      `json:"fish_stock"`
}

// VolumeResponse is the response for the volume endpoint.
type VolumeResponse struct {
	VolumeLiters float64 `json:"volume_liters"`
}

// StockingResponse is the response for the stocking analysis endpoint.
type StockingResponse struct {
	VolumeLiters    float64        `json:"volume_liters"`
	RequiredLiters  float64        `json:"required_liters"`
	Bioload         float64        `json:"bioload"`
	Adequate        bool           `json:"adequate"`
	Recommendations map[string]int `json:"recommendations"`
}

// PumpResponse is the pump part of the equipment response.
type PumpResponse struct {
	FlowLPH  int    `json:"flow_lph"`
	Category string `json:"category"`
}

// EquipmentResponse is the response for the equipment endpoint.
type EquipmentResponse struct {
	Pump              PumpResponse `json:"pump"`
	FilterMediaLiters float64      `json:"filter_media_liters"`
	UVWatts           int          `json:"uv_watts"`
	MechanicalFilter  string       `json:"mechanical_filter"`
}

// ReportResponse carries the rendered text report.
type ReportResponse struct {
	Report string `json:"report"`
}

// ShapeResponse is one shape catalog entry.
type ShapeResponse struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	DimensionLabel string `json:"dimension_label"`
}

// ShapesResponse is the response for the shape catalog endpoint.
type ShapesResponse struct {
	Shapes     []ShapeResponse     `json:"shapes"`
	Categories map[string][]string `json:"categories"`
}

// SpeciesResponse is one fish catalog entry.
type SpeciesResponse struct {
	Key              string  `json:"key"`
	Name             string  `json:"name"`
	AdultLengthCM    float64 `json:"adult_length_cm"`
	BioloadFactor    float64 `json:"bioload_factor"`
	MinLitersPerFish float64 `json:"min_liters_per_fish"`
}

// FishTypesResponse is the response for the fish catalog endpoint.
type FishTypesResponse struct {
	Species []SpeciesResponse `json:"species"`
}

// SavedPondResponse is the response for saved pond operations.
type SavedPondResponse struct {
	ReferenceID string             `json:"reference_id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Dimensions  DimensionsResponse `json:"dimensions"`
	FishStock   map[string]int     `json:"fish_stock"`
	TotalFish   int                `json:"total_fish"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ListPondsResponse is the response for listing saved ponds.
type ListPondsResponse struct {
	Ponds []SavedPondResponse `json:"ponds"`
	Total int                 `json:"total"`
}

// FieldErrorResponse is one field failure inside a validation error.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error response format.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Code   string               `json:"code"`
	Fields []FieldErrorResponse `json:"fields,omitempty"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}
