package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"collision-lab/internal/archive"
	"collision-lab/internal/collision"
	"collision-lab/internal/download"
	"collision-lab/internal/engineconfig"
)

// spinStepAngle is the per-tick incremental rotation, in radians, applied to
// the box about its local Z axis.
const spinStepAngle = 0.001

// State holds everything the per-tick update mutates. It is built once by
// Initialize and passed explicitly to Tick; nothing else owns simulation state.
type State struct {
	Model          rl.Model
	ModelTransform rl.Matrix

	// BaseBox is the model-space box derived from the mesh bounds; its
	// rotation accumulates the per-tick spin. Box is BaseBox placed by
	// ModelTransform, refreshed every tick.
	BaseBox collision.OrientedBox
	Box     collision.OrientedBox

	Body      MovingBody
	Sphere    collision.Sphere
	SpinStep  rl.Matrix
	Colliding bool
}

// Initialize loads the model asset and builds the initial simulation state.
// It runs once, after the window exists (raylib uploads meshes to the GPU) and
// before the frame loop. A load failure is logged and returned; there is no
// retry and no fallback asset. Tick never performs I/O.
func Initialize(cfg engineconfig.Prefs, log *zap.Logger) (*State, error) {
	path, err := ensureModel(cfg, log)
	if err != nil {
		log.Error("model asset unavailable", zap.Error(err))
		return nil, err
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		err := fmt.Errorf("sim: load model %s: no meshes", path)
		log.Error("model load failed", zap.String("path", path))
		return nil, err
	}

	bounds := rl.GetModelBoundingBox(model)
	base := collision.NewOrientedBoxFromBoundingBox(bounds)

	// Lift the model so its lowest point rests on the ground plane.
	transform := rl.MatrixTranslate(0, -bounds.Min.Y, 0)
	model.Transform = transform

	body := NewMovingBody(cfg.SphereSpeed)
	body.BoundMin = cfg.BoundMin
	body.BoundMax = cfg.BoundMax

	box := base.Transformed(transform)
	s := &State{
		Model:          model,
		ModelTransform: transform,
		BaseBox:        base,
		Box:            box,
		Body:           body,
		Sphere:         collision.NewSphere(rl.NewVector3(body.Position, box.Center.Y, box.Center.Z), cfg.SphereRadius),
		SpinStep:       rl.MatrixRotateZ(spinStepAngle),
	}

	log.Info("simulation initialized",
		zap.String("model", path),
		zap.Float32("sphere_radius", cfg.SphereRadius),
		zap.Float32("sphere_speed", cfg.SphereSpeed),
	)
	return s, nil
}

// Tick advances the simulation by one frame: move the body, spin the box,
// re-derive both volumes' world placement, and classify the overlap. The
// verdict only drives drawing color; it feeds nothing back into the motion.
func Tick(s *State) {
	s.Body.Advance()
	s.BaseBox = s.BaseBox.Spin(s.SpinStep)
	s.Box = s.BaseBox.Transformed(s.ModelTransform)
	s.Sphere = s.Sphere.Moved(rl.NewVector3(s.Body.Position, s.Box.Center.Y, s.Box.Center.Z))
	s.Colliding = collision.Intersects(s.Box, s.Sphere)
}

// ensureModel returns the on-disk model path, fetching the asset when it is
// missing and a URL is configured (MODEL_URL overrides the config entry).
// A zip download is extracted next to the model path and searched for a model
// file.
func ensureModel(cfg engineconfig.Prefs, log *zap.Logger) (string, error) {
	if _, err := os.Stat(cfg.ModelPath); err == nil {
		return cfg.ModelPath, nil
	}
	url := cfg.ModelURL
	if v := os.Getenv("MODEL_URL"); v != "" {
		url = v
	}
	if url == "" {
		return "", fmt.Errorf("sim: model %s not found and no model_url configured", cfg.ModelPath)
	}

	log.Info("downloading model", zap.String("url", url))
	saved, err := download.Download(url, filepath.Dir(cfg.ModelPath))
	if err != nil {
		return "", fmt.Errorf("sim: %w", err)
	}
	if strings.EqualFold(filepath.Ext(saved), ".zip") {
		files, err := archive.Unzip(saved, filepath.Dir(cfg.ModelPath))
		if err != nil {
			return "", fmt.Errorf("sim: %w", err)
		}
		for _, f := range files {
			if isModelFile(f) {
				return f, nil
			}
		}
		return "", fmt.Errorf("sim: archive %s contains no model file", saved)
	}
	return saved, nil
}

// isModelFile reports whether path has a model extension raylib can load.
func isModelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf", ".obj", ".iqm", ".m3d", ".vox":
		return true
	}
	return false
}
