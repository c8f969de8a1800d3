package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/diffsim/internal/sim"
)

type ExportData struct {
	ID            string             `json:"id"`
	Diffusivity   float64            `json:"diffusivity"`
	DomainSize    float64            `json:"domain_size"`
	Spacing       float64            `json:"spacing"`
	BoundaryLeft  float64            `json:"boundary_left"`
	BoundaryRight float64            `json:"boundary_right"`
	Dt            float64            `json:"dt"`
	Steps         int                `json:"steps"`
	Coords        []float64          `json:"coords"`
	Times         []float64          `json:"times"`
	Profiles      [][]float64        `json:"profiles"`
	Metrics       map[string]float64 `json:"metrics"`
}

func exportData(id string, params sim.Params, coords, times []float64, profiles [][]float64, metrics map[string]float64, dt float64) ExportData {
	return ExportData{
		ID:            id,
		Diffusivity:   params.Diffusivity,
		DomainSize:    params.DomainSize,
		Spacing:       params.Spacing,
		BoundaryLeft:  params.BoundaryLeft,
		BoundaryRight: params.BoundaryRight,
		Dt:            dt,
		Steps:         len(times),
		Coords:        coords,
		Times:         times,
		Profiles:      profiles,
		Metrics:       metrics,
	}
}

func ExportJSON(w io.Writer, id string, params sim.Params, coords, times []float64, profiles [][]float64, metrics map[string]float64, dt float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(id, params, coords, times, profiles, metrics, dt))
}

func ExportJSONStdout(id string, params sim.Params, coords, times []float64, profiles [][]float64, metrics map[string]float64, dt float64) error {
	return ExportJSON(os.Stdout, id, params, coords, times, profiles, metrics, dt)
}
