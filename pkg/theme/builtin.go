package theme

// thBuiltinPresets returns every built-in preset across variants.
func thBuiltinPresets() []Preset {
	return []Preset{
		thMidnightPreset(),
		thDaylightPreset(),
		thForestPreset(),
		thSunsetPreset(),
		thGruvboxPreset(),
		thNordPreset(),
		thMonoPreset(),

		thSlatePreset(),
		thPaperPreset(),
		thNeonPreset(),
		thRosePreset(),
		thCatppuccinPreset(),
		thDraculaPreset(),
	}
}

// --- classic variant: background, clock, date, accent ---

// thMidnightPreset returns the default dark classic preset.
func thMidnightPreset() Preset {
	return Preset{
		Name:        "midnight",
		Description: "Deep navy with a cool blue accent",
		Variant:     VariantClassic,
		Colors: map[string]string{
			"background": "#0b1020",
			"clock":      "#e6edf3",
			"date":       "#8b949e",
			"accent":     "#58a6ff",
		},
	}
}

// thDaylightPreset returns the light classic preset.
func thDaylightPreset() Preset {
	return Preset{
		Name:        "daylight",
		Description: "Bright paper white for light terminals",
		Variant:     VariantClassic,
		Colors: map[string]string{
			"background": "#f6f8fa",
			"clock":      "#1f2328",
			"date":       "#57606a",
			"accent":     "#0969da",
		},
	}
}

func thForestPreset() Preset {
	return Preset{
		Name:        "forest",
		Description: "Moss greens on a dark canopy",
		Variant:     VariantClassic,
		Colors: map[string]string{
			"background": "#0f1a14",
			"clock":      "#d8f3dc",
			"date":       "#95d5b2",
			"accent":     "#52b788",
		},
	}
}

func thSunsetPreset() Preset {
	return Preset{
		Name:        "sunset",
		Description: "Warm peach and coral on dusk purple",
		Variant:     VariantClassic,
		Colors: map[string]string{
			"background": "#1a0f1f",
			"clock":      "#ffd6a5",
			"date":       "#ffadad",
			"accent":     "#ff7b54",
		},
	}
}

// thGruvboxPreset returns the warm retro Gruvbox palette.
func thGruvboxPreset() Preset {
	return Preset{
		Name:        "gruvbox",
		Description: "Warm retro Gruvbox",
		Variant:     VariantClassic,
		Colors: map[string]string{
			"background": "#282828",
			"clock":      "#ebdbb2",
			"date":       "#928374",
			"accent":     "#fe8019",
		},
	}
}

// thNordPreset returns the arctic blue Nord palette.
func thNordPreset() Preset {
	return Preset{
		Name:        "nord",
		Description: "Arctic blue Nord",
		Variant:     VariantClassic,
		Colors: map[string]string{
			"background": "#2e3440",
			"clock":      "#eceff4",
			"date":       "#d8dee9",
			"accent":     "#88c0d0",
		},
	}
}

func thMonoPreset() Preset {
	return Preset{
		Name:        "mono",
		Description: "Black and white",
		Variant:     VariantClassic,
		Colors: map[string]string{
			"background": "#000000",
			"clock":      "#ffffff",
			"date":       "#a0a0a0",
			"accent":     "#ffffff",
		},
	}
}

// --- card variant: background, card, text ---

// thSlatePreset returns the default dark card preset.
func thSlatePreset() Preset {
	return Preset{
		Name:        "slate",
		Description: "Slate card on a midnight background",
		Variant:     VariantCard,
		Colors: map[string]string{
			"background": "#0f172a",
			"card":       "#1e293b",
			"text":       "#f8fafc",
		},
	}
}

// thPaperPreset returns the light card preset.
func thPaperPreset() Preset {
	return Preset{
		Name:        "paper",
		Description: "Off-white card on warm stone",
		Variant:     VariantCard,
		Colors: map[string]string{
			"background": "#e7e5e4",
			"card":       "#fafaf9",
			"text":       "#1c1917",
		},
	}
}

func thNeonPreset() Preset {
	return Preset{
		Name:        "neon",
		Description: "Lime digits on a zinc card",
		Variant:     VariantCard,
		Colors: map[string]string{
			"background": "#09090b",
			"card":       "#18181b",
			"text":       "#a3e635",
		},
	}
}

func thRosePreset() Preset {
	return Preset{
		Name:        "rose",
		Description: "Soft rose on wine",
		Variant:     VariantCard,
		Colors: map[string]string{
			"background": "#1f1216",
			"card":       "#2d1a20",
			"text":       "#fecdd3",
		},
	}
}

// thCatppuccinPreset returns the pastel Catppuccin Mocha palette.
func thCatppuccinPreset() Preset {
	return Preset{
		Name:        "catppuccin",
		Description: "Pastel Catppuccin Mocha",
		Variant:     VariantCard,
		Colors: map[string]string{
			"background": "#11111b",
			"card":       "#1e1e2e",
			"text":       "#cdd6f4",
		},
	}
}

// thDraculaPreset returns the Dracula palette.
func thDraculaPreset() Preset {
	return Preset{
		Name:        "dracula",
		Description: "Dracula",
		Variant:     VariantCard,
		Colors: map[string]string{
			"background": "#191a21",
			"card":       "#282a36",
			"text":       "#f8f8f2",
		},
	}
}
