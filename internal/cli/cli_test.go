package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"gopkg.in/yaml.v3"

	"utms/internal/config"
	"utms/internal/models"
	"utms/internal/store"
)

func seed(t *testing.T) config.Config {
	t.Helper()
	tmp := t.TempDir()
	cfg := config.Config{
		DataDir: filepath.Join(tmp, "data"),
		Log:     config.LogConfig{File: filepath.Join(tmp, "logs", "utms.log"), Level: "info"},
	}

	log, _ := test.NewNullLogger()
	s := store.Open(cfg.DataDir, log)

	st := models.NewStudent("S1", "Alice", "a@x.com", "000", "pw", "S1", "CS", 2)
	st.RequestTransport("Library", "2024-01-01 10:00")
	s.AddStudent(st)
	s.AddLecturer(models.NewLecturer("L1", "Bob", "b@x.com", "111", "pw", "ST-9", "Physics", "Professor", true))
	s.AddOfficer(models.NewTransportOfficer("O1", "Carol", "c@x.com", "222", "pw", "OF-3", "Dispatcher", "Logistics", 7))

	bus := models.NewBus("B1", "REG1", "ModelX", 40, "R12", false, true, 10)
	bus.UpdateLocation(0.347596, 32.58252)
	s.AddVehicle(bus)
	van := models.NewVan("V1", "REG2", "Transit", 12, true, 5, "Cargo", true)
	van.RecordService("Oil change", "2024-02-02")
	s.AddVehicle(van)
	return cfg
}

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUsersText(t *testing.T) {
	out, err := run(t, seed(t), "users")
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	for _, want := range []string{
		"ID: S1, Name: Alice, Course: CS",
		"ID: ST-9, Name: Bob, Department: Physics",
		"ID: OF-3, Name: Carol, Division: Logistics",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestUsersYAML(t *testing.T) {
	out, err := run(t, seed(t), "users", "-o", "yaml")
	if err != nil {
		t.Fatalf("users yaml: %v", err)
	}
	var views []userView
	if err := yaml.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if len(views) != 3 {
		t.Fatalf("views=%d want=3", len(views))
	}
	if views[0].Kind != "Student" || views[0].Requests != 1 {
		t.Fatalf("first view=%+v", views[0])
	}
	if views[2].Kind != "TransportOfficer" || views[2].ID != "OF-3" {
		t.Fatalf("last view=%+v", views[2])
	}
}

func TestVehiclesText(t *testing.T) {
	out, err := run(t, seed(t), "vehicles")
	if err != nil {
		t.Fatalf("vehicles: %v", err)
	}
	for _, want := range []string{
		"Vehicle ID: B1",
		"Total Capacity: 50 (Seated: 40, Standing: 10)",
		"Vehicle ID: V1",
		"Status: Serviced",
		"Cargo Capacity: 5 cubic metres",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestVehiclesYAML(t *testing.T) {
	out, err := run(t, seed(t), "vehicles", "--format", "yaml")
	if err != nil {
		t.Fatalf("vehicles yaml: %v", err)
	}
	var views []vehicleView
	if err := yaml.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if len(views) != 2 {
		t.Fatalf("views=%d want=2", len(views))
	}
	if views[0].TotalCapacity != 50 || views[0].Route != "R12" || !views[0].ServiceDue {
		t.Fatalf("bus view=%+v", views[0])
	}
	if views[1].LastService != "2024-02-02" || views[1].ServiceDue || views[1].FuelEfficiency != 10.5 {
		t.Fatalf("van view=%+v", views[1])
	}
}

func TestVehiclesGeoJSON(t *testing.T) {
	out, err := run(t, seed(t), "vehicles", "--format", "geojson")
	if err != nil {
		t.Fatalf("vehicles geojson: %v", err)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal([]byte(out), &fc); err != nil {
		t.Fatalf("invalid geojson: %v\n%s", err, out)
	}
	if fc.Type != "FeatureCollection" {
		t.Fatalf("type=%q", fc.Type)
	}
	// the van is still at the depot, so only the bus has coordinates
	if len(fc.Features) != 1 {
		t.Fatalf("features=%d want=1\n%s", len(fc.Features), out)
	}
	f := fc.Features[0]
	if f.ID != "B1" || f.Geometry.Type != "Point" {
		t.Fatalf("feature=%+v", f)
	}
	if c := f.Geometry.Coordinates; len(c) != 2 || c[0] != 32.58252 || c[1] != 0.347596 {
		t.Fatalf("coordinates=%v want [lon lat]", c)
	}
	if f.Properties["type"] != "Bus" {
		t.Fatalf("properties=%v", f.Properties)
	}
}

func TestVehiclesUnknownFormat(t *testing.T) {
	if _, err := run(t, seed(t), "vehicles", "-o", "xml"); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func TestRequests(t *testing.T) {
	out, err := run(t, seed(t), "requests")
	if err != nil {
		t.Fatalf("requests: %v", err)
	}
	for _, want := range []string{
		"Student: Alice (S1)",
		"History: Transport request to Library at 2024-01-01 10:00",
		"Lecturer: Bob (ST-9)",
		" Transport History: No transport history available for Lecturer Bob (ST-9)",
		"Officer: Carol (OF-3)",
		"No transport management history available",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestDataDirFlagOverridesConfig(t *testing.T) {
	cfg := seed(t)
	other := config.Config{DataDir: filepath.Join(t.TempDir(), "empty"), Log: cfg.Log}

	out, err := run(t, other, "users", "--data-dir", cfg.DataDir)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if !strings.Contains(out, "Alice") {
		t.Fatalf("--data-dir was not honoured:\n%s", out)
	}
}

func TestUsersDoesNotCreateDataDir(t *testing.T) {
	cfg := seed(t)
	cfg.DataDir = filepath.Join(t.TempDir(), "absent")

	out, err := run(t, cfg, "users")
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if !strings.Contains(out, "Registered Users:") || strings.Contains(out, "Alice") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(cfg.DataDir); !os.IsNotExist(err) {
		t.Fatalf("users report created %s (stat err=%v)", cfg.DataDir, err)
	}
}
