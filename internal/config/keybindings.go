package config

import "strings"

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves pressed keys to board actions using the user's
// configured bindings.
type KeybindRegistry struct {
	actions map[string][]string
}

// NewKeybindRegistry builds a registry from the board keybinding map.
func NewKeybindRegistry(board map[string][]string) *KeybindRegistry {
	actions := make(map[string][]string, len(board))
	for action, keys := range board {
		actions[action] = keys
	}
	return &KeybindRegistry{actions: actions}
}

// Lookup returns the action bound to key, or "" when the key is unbound.
func (r *KeybindRegistry) Lookup(key string) string {
	for action, keys := range r.actions {
		for _, k := range keys {
			if k == key {
				return action
			}
		}
	}
	return ""
}

// Matches reports whether key triggers the given action.
func (r *KeybindRegistry) Matches(action, key string) bool {
	for _, k := range r.actions[action] {
		if k == key {
			return true
		}
	}
	return false
}

// GetKeysForDisplay returns the keys for an action as a comma-joined string
// for the help overlay. Empty when the action has no bindings.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actions[action], ", ")
}

// GetKeybindings returns all keybinding sections for the help menu.
// If registry is provided, the keyboard section reflects the user config;
// otherwise the hard-coded defaults are shown.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig().Keybindings.Board)
	}

	board := KeybindingSection{
		Title:    "BOARD",
		Bindings: []Keybinding{},
	}
	addBinding(&board, registry, "add_card", "Add a card")
	addBinding(&board, registry, "shuffle", "Shuffle cards")
	addBinding(&board, registry, "reset_board", "Reset the board")
	addBinding(&board, registry, "cycle_mode", "Cycle hit-test mode")
	addBinding(&board, registry, "cycle_theme", "Cycle color theme")
	addBinding(&board, registry, "toggle_ascii", "Toggle ASCII icons")
	addBinding(&board, registry, "toggle_logs", "Toggle event log")
	addBinding(&board, registry, "toggle_help", "Toggle help")
	addBinding(&board, registry, "cancel_drag", "Cancel the active drag")
	addBinding(&board, registry, "quit", "Quit")

	sections := []KeybindingSection{board}
	sections = append(sections, getStaticHelpSections()...)
	return sections
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}

// getStaticHelpSections returns help sections that don't need dynamic binding
// info (mouse actions and hit-test modes).
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE:",
			Bindings: []Keybinding{
				{"Click + hold", "Grab a card (title row)"},
				{"Drag", "Move the card; matching slots highlight"},
				{"Release over slot", "Drop the card into the slot"},
				{"Release elsewhere", "Card snaps back home"},
				{"Click", "Flip the card (no drag)"},
			},
		},
		{
			Title: "HIT-TEST MODES:",
			Bindings: []Keybinding{
				{"point", "Pointer cell must be inside the slot"},
				{"intersect", "Largest card/slot overlap wins"},
				{"strict", "Whole card must fit inside the slot"},
			},
		},
	}
}
