package preset

import (
	"time"

	"github.com/darkframe/lutforge/internal/engine"
)

// builtInPresets are seeded on first open. IDs are fixed so reseeding after
// a partial delete is idempotent.
func builtInPresets() []*Preset {
	seeded := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(id, name, description string, tags []string, adj engine.Adjustments) *Preset {
		return &Preset{
			ID:          id,
			Name:        name,
			Description: description,
			Tags:        tags,
			Adjustments: adj,
			BuiltIn:     true,
			CreatedAt:   seeded,
			UpdatedAt:   seeded,
		}
	}

	return []*Preset{
		mk("builtin-punchy", "Punchy", "Extra contrast and saturation for flat light",
			[]string{"color", "contrast"},
			engine.Adjustments{Contrast: 0.25, Saturation: 0.2, Vibrance: 0.15, Clarity: 0.2}),
		mk("builtin-faded-film", "Faded Film", "Lifted blacks with muted color",
			[]string{"film", "matte"},
			engine.Adjustments{
				Blacks:     0.15,
				Contrast:   -0.1,
				Saturation: -0.25,
				ColorGrading: engine.ColorGrading{
					Shadows: engine.RGBOffset{Red: 4, Green: 3, Blue: 2},
				},
			}),
		mk("builtin-teal-orange", "Teal & Orange", "Cool shadows against warm highlights",
			[]string{"color", "cinematic"},
			engine.Adjustments{
				ColorGrading: engine.ColorGrading{
					Shadows:    engine.RGBOffset{Red: -6, Green: 2, Blue: 10},
					Highlights: engine.RGBOffset{Red: 8, Green: 3, Blue: -6},
				},
			}),
		mk("builtin-high-key-bw", "High-Key Mono", "Bright monochrome with open shadows",
			[]string{"mono"},
			engine.Adjustments{Exposure: 0.4, Shadows: 0.3, Saturation: -1}),
	}
}

// seedBuiltIns inserts any built-in preset that is not already present.
func (s *Store) seedBuiltIns() error {
	for _, p := range builtInPresets() {
		var count int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM presets WHERE id = ?`, p.ID).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.insert(p); err != nil {
			return err
		}
	}
	return nil
}
