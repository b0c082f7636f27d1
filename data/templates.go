package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path"
	"sort"

	"crypthack/generation"
	"crypthack/geometry"
)

//go:embed templates/*.json
var builtin embed.FS

// ActorTemplate describes something that can be placed in a finished map
type ActorTemplate struct {
	ID          string   `json:"id"`          // Unique identifier
	Name        string   `json:"name"`        // Display name
	Description string   `json:"description"` // Description text
	Color       string   `json:"color"`       // Marker color in hex format (e.g. "#00FF00")
	Tags        []string `json:"tags"`        // Extra entity tags
}

// ThemeTemplate picks the tiles a run is dressed in
type ThemeTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Mesh    string `json:"mesh"`
	Ceiling string `json:"ceiling"` // material keys
	Walls   string `json:"walls"`
	Floor   string `json:"floor"`

	// Palette maps material keys to the hex color the viewer draws them with
	Palette map[string]string `json:"palette"`
}

// Tiles returns the theme as a generator tile set
func (t *ThemeTemplate) Tiles() generation.TileSet {
	return generation.TileSet{
		Ceiling: geometry.Tile{Mesh: t.Mesh, Material: t.Ceiling},
		Walls:   geometry.Tile{Mesh: t.Mesh, Material: t.Walls},
		Floor:   geometry.Tile{Mesh: t.Mesh, Material: t.Floor},
	}
}

// templateFile is the layout of one template document
type templateFile struct {
	Actors []*ActorTemplate `json:"actors"`
	Themes []*ThemeTemplate `json:"themes"`
}

// TemplateManager manages all actor and theme templates
type TemplateManager struct {
	Actors map[string]*ActorTemplate
	Themes map[string]*ThemeTemplate
}

// NewTemplateManager creates an empty template manager
func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		Actors: make(map[string]*ActorTemplate),
		Themes: make(map[string]*ThemeTemplate),
	}
}

// LoadDefaultTemplates returns a manager holding the templates built into the binary
func LoadDefaultTemplates() (*TemplateManager, error) {
	m := NewTemplateManager()
	if err := m.LoadTemplatesFromFS(builtin, "templates"); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadTemplatesFromDirectory loads every JSON document in dirPath. Later
// templates replace earlier ones with the same ID.
func (m *TemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	return m.LoadTemplatesFromFS(os.DirFS(dirPath), ".")
}

// LoadTemplatesFromFS loads every JSON document in dir of fsys
func (m *TemplateManager) LoadTemplatesFromFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := m.LoadTemplates(raw); err != nil {
			return fmt.Errorf("failed to load templates from %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// LoadTemplates parses one template document
func (m *TemplateManager) LoadTemplates(raw []byte) error {
	var file templateFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return err
	}

	for _, actor := range file.Actors {
		if err := ValidateActorTemplate(actor); err != nil {
			return err
		}
	}
	for _, theme := range file.Themes {
		if err := ValidateThemeTemplate(theme); err != nil {
			return err
		}
	}

	// Only commit once the whole document is valid
	for _, actor := range file.Actors {
		m.Actors[actor.ID] = actor
	}
	for _, theme := range file.Themes {
		m.Themes[theme.ID] = theme
	}
	return nil
}

// GetActor returns an actor template by ID
func (m *TemplateManager) GetActor(id string) (*ActorTemplate, bool) {
	template, ok := m.Actors[id]
	return template, ok
}

// GetTheme returns a theme template by ID
func (m *TemplateManager) GetTheme(id string) (*ThemeTemplate, bool) {
	theme, ok := m.Themes[id]
	return theme, ok
}

// ThemeIDs lists the loaded themes in name order
func (m *TemplateManager) ThemeIDs() []string {
	ids := make([]string, 0, len(m.Themes))
	for id := range m.Themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Palette merges the palettes of every theme. Themes are applied in ID order
// so a shared material key resolves the same way on every call.
func (m *TemplateManager) Palette() map[string]color.RGBA {
	palette := make(map[string]color.RGBA)
	for _, id := range m.ThemeIDs() {
		for material, hex := range m.Themes[id].Palette {
			palette[material] = ParseHexColor(hex)
		}
	}
	return palette
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}

// ValidateActorTemplate ensures that the actor template has all required fields
func ValidateActorTemplate(template *ActorTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("actor template missing id")
	}
	if template.Name == "" {
		return fmt.Errorf("actor template '%s' missing name", template.ID)
	}
	return nil
}

// ValidateThemeTemplate ensures that the theme names a mesh and all three materials
func ValidateThemeTemplate(theme *ThemeTemplate) error {
	if theme.ID == "" {
		return fmt.Errorf("theme template missing id")
	}
	if theme.Mesh == "" {
		return fmt.Errorf("theme '%s' missing mesh", theme.ID)
	}
	if theme.Ceiling == "" || theme.Walls == "" || theme.Floor == "" {
		return fmt.Errorf("theme '%s' must name ceiling, walls and floor materials", theme.ID)
	}
	return nil
}
