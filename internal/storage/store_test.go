package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/san-kum/diffsim/internal/sim"
)

func testRun(t *testing.T) (sim.Params, *sim.Result) {
	t.Helper()
	p := sim.Params{
		Diffusivity:   100,
		DomainSize:    5,
		Spacing:       0.5,
		Steps:         5,
		BoundaryLeft:  500,
		BoundaryRight: 0,
	}
	result, err := sim.New(p).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return p, result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	params, result := testRun(t)

	runID, err := st.Save(params, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Diffusivity != 100 || meta.DomainSize != 5 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.GridPoints != 10 {
		t.Errorf("expected 10 grid points, got %d", meta.GridPoints)
	}
	if meta.Dt != result.Dt {
		t.Errorf("dt mismatch: %g vs %g", meta.Dt, result.Dt)
	}

	profiles, times, err := st.LoadProfiles(runID)
	if err != nil {
		t.Fatalf("load profiles failed: %v", err)
	}
	if len(profiles) != len(result.Profiles) {
		t.Fatalf("expected %d profiles, got %d", len(result.Profiles), len(profiles))
	}
	if len(times) != len(result.Times) {
		t.Fatalf("expected %d times, got %d", len(result.Times), len(times))
	}
	for i, p := range profiles {
		if p[0] != 500 || p[len(p)-1] != 0 {
			t.Errorf("profile %d boundaries: %g/%g", i, p[0], p[len(p)-1])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	params, result := testRun(t)
	if _, err := st.Save(params, result); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New("/nonexistent/data/dir")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list of missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	params, result := testRun(t)

	var buf bytes.Buffer
	profiles := make([][]float64, len(result.Profiles))
	for i, p := range result.Profiles {
		profiles[i] = p
	}

	err := ExportJSON(&buf, "run_1", params, result.Grid.Coords(), result.Times, profiles, result.Metrics, result.Dt)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.ID != "run_1" || len(data.Profiles) != 6 || len(data.Coords) != 10 {
		t.Errorf("export content wrong: id %s, %d profiles, %d coords",
			data.ID, len(data.Profiles), len(data.Coords))
	}
}
