package profile

import (
	"testing"
	"testing/fstest"
)

const yamlProfile = `
name: nightly-normal
dist: Normal
samples: 200000
streams: 16
workers: 4
show_pb: true
output: json
seed: 42
`

const jsonProfile = `{
  "name": "exp-smoke",
  "dist": "Exponential",
  "samples": 5000
}`

func TestGetSimProfileByYAML(t *testing.T) {
	p, err := GetSimProfileByYAML([]byte(yamlProfile))
	if err != nil {
		t.Fatalf("yaml profile: %v", err)
	}
	if p.Dist != "normal" {
		t.Fatalf("dist got %q want normal", p.Dist)
	}
	if p.Samples != 200000 || p.Streams != 16 || p.Workers != 4 {
		t.Fatalf("unexpected sizing: %+v", p)
	}
	if p.Output != "json" || !p.ShowPB {
		t.Fatalf("unexpected output setup: %+v", p)
	}
	if !p.Seeded() || *p.Seed != 42 {
		t.Fatalf("seed not loaded: %+v", p.Seed)
	}
}

func TestGetSimProfileByJSONDefaults(t *testing.T) {
	p, err := GetSimProfileByJSON([]byte(jsonProfile))
	if err != nil {
		t.Fatalf("json profile: %v", err)
	}
	if p.Dist != "exp" {
		t.Fatalf("dist got %q want exp", p.Dist)
	}
	if p.Workers != 1 || p.Streams != 1 || p.Output != "table" {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.Seeded() {
		t.Fatalf("seed should be absent")
	}
}

func TestProfileValidation(t *testing.T) {
	bad := []string{
		"name: a\ndist: cauchy\nsamples: 10\n",
		"name: b\ndist: normal\nsamples: 0\n",
		"name: c\ndist: normal\nsamples: 10\noutput: xml\n",
		"name: d\ndist: normal\nsamples: 10\nworkers: -1\n",
	}
	for i, src := range bad {
		if _, err := GetSimProfileByYAML([]byte(src)); err == nil {
			t.Fatalf("case %d should fail validation", i)
		}
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"profiles/run.yaml": {Data: []byte(yamlProfile)},
		"profiles/run.json": {Data: []byte(jsonProfile)},
	}

	py, err := Load(fsys, "profiles/run.yaml")
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if py.Name != "nightly-normal" || py.Dist != "normal" {
		t.Fatalf("yaml load mismatch: %+v", py)
	}

	pj, err := Load(fsys, "profiles/run.json")
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if pj.Name != "exp-smoke" || pj.Dist != "exp" {
		t.Fatalf("json load mismatch: %+v", pj)
	}

	if _, err := Load(fsys, "profiles/missing.yaml"); err == nil {
		t.Fatalf("missing file should fail")
	}
}
