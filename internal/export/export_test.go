package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/optmat/optmat/internal/engine"
)

func sampleCurve() *engine.Curve {
	return &engine.Curve{
		Wavelengths:   []float64{1.0e-6, 1.2e-6, 1.4e-6},
		Index:         []float64{1.4504, 1.4482, 1.4462},
		GroupIndex:    []float64{1.4626, 1.4629, 1.4646},
		GroupVelocity: []float64{2.0497e8, 2.0493e8, 2.0470e8},
		GVD:           []float64{1.67e-26, -3.1e-27, -2.19e-26},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, "sio2", sampleCurve()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var data SweepData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if data.Material != "sio2" {
		t.Errorf("expected material sio2, got %s", data.Material)
	}
	if data.Points != 3 {
		t.Errorf("expected 3 points, got %d", data.Points)
	}
	if len(data.Wavelengths) != 3 || len(data.GVD) != 3 {
		t.Errorf("expected 3 values per column")
	}
	if data.Index[0] != 1.4504 {
		t.Errorf("expected n[0]=1.4504, got %v", data.Index[0])
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.json")
	if err := ExportJSON(path, "sio2", sampleCurve()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if !strings.Contains(string(raw), `"material": "sio2"`) {
		t.Errorf("expected indented JSON with material field")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleCurve()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(records))
	}
	if records[0][0] != "wavelength_m" {
		t.Errorf("expected wavelength_m header, got %s", records[0][0])
	}
	if len(records[1]) != 5 {
		t.Errorf("expected 5 columns, got %d", len(records[1]))
	}
}

func TestCurveToSVG(t *testing.T) {
	c := sampleCurve()
	svg := CurveToSVG(c, c.Index, 640, 480, "#00ff00")
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Errorf("expected XML header")
	}
	if !strings.Contains(svg, "<path") {
		t.Errorf("expected path element")
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Errorf("expected stroke color in output")
	}

	if got := CurveToSVG(c, c.Index[:2], 640, 480, "#fff"); got != "" {
		t.Errorf("expected empty string for mismatched lengths")
	}
	short := &engine.Curve{Wavelengths: []float64{1e-6}, Index: []float64{1.5}}
	if got := CurveToSVG(short, short.Index, 640, 480, "#fff"); got != "" {
		t.Errorf("expected empty string for single point")
	}
}
