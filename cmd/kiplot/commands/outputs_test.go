package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/kiplot/internal/options"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
	"github.com/thoreinstein/kiplot/internal/reader"
)

func starterConfigLoaded(t *testing.T) *plotconfig.Config {
	t.Helper()
	cfg, err := reader.New(testTable(t)).Read(strings.NewReader(starterDoc(t)))
	if err != nil {
		t.Fatalf("starter config does not load: %v", err)
	}
	return cfg
}

func TestOutputsList(t *testing.T) {
	cfg := starterConfigLoaded(t)

	var buf bytes.Buffer
	if err := runOutputsListWithWriter(&buf, cfg, false); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "gerbers", "gerber", "drill", "excellon", "position", "F.Cu,GND.Cu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOutputsList_JSON(t *testing.T) {
	cfg := starterConfigLoaded(t)

	var buf bytes.Buffer
	if err := runOutputsListWithWriter(&buf, cfg, true); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var rows []outputSummary
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d outputs, want 3", len(rows))
	}
	if rows[0].Name != "gerbers" || rows[0].Type != "gerber" || rows[0].Dir != "gerberdir" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	wantLayers := []string{"F.Cu", "GND.Cu", "B.Cu", "F.SilkS", "B.SilkS", "F.Mask", "B.Mask", "Edge.Cuts"}
	if strings.Join(rows[0].Layers, " ") != strings.Join(wantLayers, " ") {
		t.Errorf("layers = %v, want %v", rows[0].Layers, wantLayers)
	}
	if rows[2].Layers == nil {
		t.Error("layers should encode as [] when empty")
	}
}

func TestOutputsList_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := runOutputsListWithWriter(&buf, plotconfig.New(), false); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No outputs configured") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestOutputsShow(t *testing.T) {
	cfg := starterConfigLoaded(t)
	out, ok := cfg.Output("gerbers")
	if !ok {
		t.Fatal("gerbers missing")
	}

	var buf bytes.Buffer
	if err := runOutputsShowWithWriter(&buf, out, false); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	text := buf.String()
	for _, want := range []string{
		"Name:    gerbers",
		"Type:    gerber (",
		"Comment: Gerbers for the board house",
		"GND.Cu",
		"id=1 inner suffix=GND_Cu",
		"gerber_precision: 4.6",
		"tent_vias: true",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("show output missing %q:\n%s", want, text)
		}
	}
}

func TestOutputsShow_Dump(t *testing.T) {
	cfg := starterConfigLoaded(t)
	out, _ := cfg.Output("drill")

	var buf bytes.Buffer
	if err := runOutputsShowWithWriter(&buf, out, true); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	text := buf.String()
	for _, want := range []string{"plotconfig.Output", "ExcellonOptions", "drill_report.rpt"} {
		if !strings.Contains(text, want) {
			t.Errorf("dump missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "0xc0") {
		t.Error("dump should not print pointer addresses")
	}
}

func TestOutputsTypes(t *testing.T) {
	var buf bytes.Buffer
	if err := runOutputsTypesWithWriter(&buf, []options.Kind{options.KindExcellon, options.KindIBoM}); err != nil {
		t.Fatalf("types failed: %v", err)
	}

	text := buf.String()
	for _, want := range []string{"excellon", "metric_units", "ibom", "(options section optional)"} {
		if !strings.Contains(text, want) {
			t.Errorf("types output missing %q:\n%s", want, text)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "metric_units":
			if fields[len(fields)-1] != "required" {
				t.Errorf("metric_units should be required: %q", line)
			}
		case "map", "blacklist":
			if fields[len(fields)-1] != "optional" {
				t.Errorf("%s should be optional: %q", fields[0], line)
			}
		}
	}
	if strings.Contains(text, "gerber_precision") {
		t.Error("gerber keys listed for other kinds")
	}
}

func TestOutputsShow_WriteError(t *testing.T) {
	out, _ := starterConfigLoaded(t).Output("gerbers")
	if err := runOutputsShowWithWriter(failingWriter{}, out, false); err == nil {
		t.Error("expected the write failure to be returned")
	}
}
