package accounts

import "github.com/disgoorg/disgo/discord"

// The stock account and reason lists, used when the config leaves them out.
var (
	DefaultNames   = []string{"Seforius", "Gloopie1", "Syrup", "Ethan"}
	DefaultReasons = []string{"PVP", "Questing", "Raiding", "Farming"}
)

// Registry is the fixed set of shared accounts the tracker coordinates.
// It never changes for the lifetime of the process.
type Registry struct {
	names   []string
	known   map[string]struct{}
	reasons []string
}

func NewRegistry(names []string, reasons []string) *Registry {
	if len(names) == 0 {
		names = DefaultNames
	}
	if len(reasons) == 0 {
		reasons = DefaultReasons
	}

	r := &Registry{
		names:   make([]string, 0, len(names)),
		known:   make(map[string]struct{}, len(names)),
		reasons: reasons,
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := r.known[name]; ok {
			continue
		}
		r.known[name] = struct{}{}
		r.names = append(r.names, name)
	}
	return r
}

// Names returns the account names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

func (r *Registry) IsKnown(name string) bool {
	_, ok := r.known[name]
	return ok
}

// Reasons returns the stock reasons offered by autocomplete. Free-text
// reasons are still accepted; these are only suggestions.
func (r *Registry) Reasons() []string {
	reasons := make([]string, len(r.reasons))
	copy(reasons, r.reasons)
	return reasons
}

// Choices renders the registry as slash command option choices. Discord caps
// choices at 25 per option.
func (r *Registry) Choices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(r.names))
	for _, name := range r.names {
		if len(choices) == 25 {
			break
		}
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  name,
			Value: name,
		})
	}
	return choices
}
