package game

type Preset struct {
	Name     string
	Label    string
	Settings Settings
}

var Presets = []Preset{
	{Name: "default", Label: "Default", Settings: Settings{Direction: Forward, Speed: 0.4}},
	{Name: "reverse", Label: "Reverse", Settings: Settings{Direction: Backward, Speed: 0.4}},
	{Name: "sudden", Label: "Sudden+", Settings: Settings{Direction: Forward, Speed: 0.6, Sudden: 30}},
	{Name: "hidden", Label: "Hidden+", Settings: Settings{Direction: Forward, Speed: 0.6, Hidden: 25}},
	{Name: "sudden-hidden", Label: "Sudden+ Hidden+", Settings: Settings{Direction: Forward, Speed: 0.8, Sudden: 25, Hidden: 20}},
}

func FindPreset(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}
