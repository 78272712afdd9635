package engineconfig

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine config file, relative to the
// process working directory.
const EngineConfigPath = "config/engine.yaml"

// Prefs holds engine preferences (window, overlays, simulation tuning).
// Persisted across runs.
type Prefs struct {
	WindowWidth  int32 `yaml:"window_width"`
	WindowHeight int32 `yaml:"window_height"`
	TargetFPS    int32 `yaml:"target_fps"`

	GridVisible  bool `yaml:"grid_visible"`
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`

	ModelPath string `yaml:"model_path"`
	ModelURL  string `yaml:"model_url,omitempty"`

	SphereRadius float32 `yaml:"sphere_radius"`
	SphereSpeed  float32 `yaml:"sphere_speed"`
	BoundMin     float32 `yaml:"bound_min"`
	BoundMax     float32 `yaml:"bound_max"`
}

// Default returns default engine preferences: 1280x720 at 60 FPS, grid on,
// overlays off, and the demo simulation tuning (radius 10, speed 0.5, bounds
// ±150).
func Default() Prefs {
	return Prefs{
		WindowWidth:  1280,
		WindowHeight: 720,
		TargetFPS:    60,
		GridVisible:  true,
		ModelPath:    "assets/models/demo.glb",
		SphereRadius: 10,
		SphereSpeed:  0.5,
		BoundMin:     -150,
		BoundMax:     150,
	}
}

// Load reads preferences from config/engine.yaml. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom reads preferences from path with the same missing/invalid handling
// as Load.
func LoadFrom(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/engine.yaml, creating the config
// directory if needed.
func Save(p Prefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo writes preferences to path, creating its directory if needed.
func SaveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Watch reloads the config file whenever it is written and calls onChange with
// the result. The watch runs on its own goroutine; onChange must synchronize
// with the frame loop itself. Returns a stop function that ends the watch.
func Watch(onChange func(Prefs)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.Close()
		return nil, err
	}
	// Watch the directory, not the file: editors replace the file on save.
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(EngineConfigPath) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if p, err := Load(); err == nil {
					onChange(p)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return func() { _ = w.Close() }, nil
}
