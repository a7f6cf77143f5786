package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

//go:embed team.yaml
var defaultTeamYAML []byte

// Team is the fixed roster and the tracking presets offered by the timer
type Team struct {
	Members []models.TeamMember    `yaml:"members"`
	Presets []models.TrackingPreset `yaml:"presets"`
}

// LoadTeam reads team.yaml from the data directory, falling back to the
// embedded default roster when no override exists
func LoadTeam(dataDir string) (Team, error) {
	raw := defaultTeamYAML
	if data, err := os.ReadFile(filepath.Join(dataDir, "team.yaml")); err == nil {
		raw = data
	}

	var team Team
	if err := yaml.Unmarshal(raw, &team); err != nil {
		return Team{}, fmt.Errorf("parsing team.yaml: %w", err)
	}
	if len(team.Members) == 0 {
		return Team{}, fmt.Errorf("team.yaml defines no members")
	}
	return team, nil
}

// Member looks up a roster entry by name
func (t Team) Member(name string) (models.TeamMember, bool) {
	for _, m := range t.Members {
		if m.Name == name {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// Preset looks up a tracking preset by id
func (t Team) Preset(id string) (models.TrackingPreset, bool) {
	for _, p := range t.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return models.TrackingPreset{}, false
}
