// Package store persists user preferences as JSON files under the
// user config directory. Reads are best-effort: corrupt or missing
// data degrades to defaults and is never fatal.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"event-seating-tui/seatmap"
)

const (
	appDirName    = "event-seating-tui"
	selectionFile = "selected-seats.json"
	themeFile     = "theme.json"

	// Theme values stored on disk.
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type selectionState struct {
	SeatIDs []string `json:"seatIds"`
}

type themeState struct {
	Theme string `json:"theme"`
}

// LoadSelection restores the persisted selected seat ids. Missing or
// corrupt state reads as no prior selection.
func LoadSelection() ([]string, error) {
	path, err := configPath(selectionFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state selectionState
	if err := json.Unmarshal(data, &state); err == nil && state.SeatIDs != nil {
		return capIDs(state.SeatIDs), nil
	}

	// Older builds stored a bare id array.
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		return capIDs(legacy), nil
	}
	return nil, nil
}

// SaveSelection persists the selected seat ids.
func SaveSelection(ids []string) error {
	path, err := configPath(selectionFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	payload, err := json.MarshalIndent(selectionState{SeatIDs: ids}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// LoadTheme returns the persisted theme preference, or ok=false when
// none is stored or the stored value is unusable.
func LoadTheme() (string, bool) {
	path, err := configPath(themeFile)
	if err != nil {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var state themeState
	if err := json.Unmarshal(data, &state); err != nil {
		return "", false
	}
	switch state.Theme {
	case ThemeDark, ThemeLight:
		return state.Theme, true
	}
	return "", false
}

// SaveTheme persists the theme preference.
func SaveTheme(theme string) error {
	path, err := configPath(themeFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(themeState{Theme: theme}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// capIDs drops anything past the selection cap so a tampered file
// cannot oversize the restored selection.
func capIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		out = append(out, id)
		if len(out) == seatmap.SelectionCap {
			break
		}
	}
	return out
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}
