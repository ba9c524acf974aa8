package cli

import (
	"encoding/json"
	"fmt"
	"io"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"
	"gopkg.in/yaml.v3"

	"utms/internal/models"
	"utms/internal/store"
)

type vehicleView struct {
	ID             string  `yaml:"id"`
	Type           string  `yaml:"type"`
	Registration   string  `yaml:"registration"`
	Model          string  `yaml:"model"`
	Capacity       int     `yaml:"capacity"`
	TotalCapacity  int     `yaml:"total_capacity"`
	Status         string  `yaml:"status"`
	Location       string  `yaml:"location"`
	LastService    string  `yaml:"last_service,omitempty"`
	ServiceDue     bool    `yaml:"service_due"`
	FuelEfficiency float64 `yaml:"fuel_efficiency_km_per_l"`
	Route          string  `yaml:"route,omitempty"`
	CargoCapacity  float64 `yaml:"cargo_capacity_m3,omitempty"`
	Purpose        string  `yaml:"purpose,omitempty"`
}

func newVehiclesCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List registered vehicles",
		Long: "List registered vehicles. The vehicles file is read directly, so the " +
			"report reflects what is on disk right now.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format, formatText, formatYAML, formatGeoJSON); err != nil {
				return err
			}
			vehicles := store.LoadVehicles(a.cfg.DataDir, a.log)
			out := cmd.OutOrStdout()
			switch format {
			case formatYAML:
				return writeVehiclesYAML(out, vehicles)
			case formatGeoJSON:
				return writeVehiclesGeoJSON(out, vehicles, a.log)
			}
			writeVehiclesText(out, vehicles)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text, yaml or geojson")
	return cmd
}

func writeVehiclesText(w io.Writer, vehicles []models.Vehicle) {
	fmt.Fprintln(w, "Registered Vehicles:")
	for _, v := range vehicles {
		fmt.Fprintf(w, "\n%s\n", v.VehicleInfo())
		switch v := v.(type) {
		case *models.Bus:
			fmt.Fprintln(w, v.RouteInfo())
		case *models.Van:
			fmt.Fprintln(w, v.CargoInformation())
		}
	}
}

func writeVehiclesYAML(w io.Writer, vehicles []models.Vehicle) error {
	views := make([]vehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		views = append(views, toVehicleView(v))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return err
	}
	return enc.Close()
}

// writeVehiclesGeoJSON emits one point feature per vehicle with a coordinate
// location. Vehicles at a named place are skipped.
func writeVehiclesGeoJSON(w io.Writer, vehicles []models.Vehicle, log logrus.FieldLogger) error {
	fc := geojson.FeatureCollection{Features: []*geojson.Feature{}}
	skipped := 0
	for _, v := range vehicles {
		b := v.Base()
		p, ok := b.LocationPoint()
		if !ok {
			skipped++
			continue
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       b.VehicleID,
			Geometry: p,
			Properties: map[string]interface{}{
				"type":         v.VehicleType(),
				"registration": b.RegistrationNumber,
				"model":        b.Model,
				"status":       string(b.Status),
			},
		})
	}
	if skipped > 0 {
		log.WithField("skipped", skipped).Info("Vehicles without coordinates left out of GeoJSON")
	}

	data, err := json.MarshalIndent(&fc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func toVehicleView(v models.Vehicle) vehicleView {
	b := v.Base()
	view := vehicleView{
		ID:             b.VehicleID,
		Type:           v.VehicleType(),
		Registration:   b.RegistrationNumber,
		Model:          b.Model,
		Capacity:       b.Capacity,
		TotalCapacity:  b.Capacity,
		Status:         string(b.Status),
		Location:       b.Location,
		ServiceDue:     v.IsServiceDue(),
		FuelEfficiency: v.FuelEfficiency(),
	}
	if date, ok := v.LastServiceDate(); ok {
		view.LastService = date
	}
	switch v := v.(type) {
	case *models.Bus:
		view.Route = v.RouteNumber
		view.TotalCapacity = v.TotalCapacity()
	case *models.Van:
		view.CargoCapacity = v.CargoCapacity
		view.Purpose = v.PurposeType
	}
	return view
}
