package config

func GetDefault() Config {
	return Config{
		Format: "text",
		ReleaseTypes: map[string]string{
			"feat":     "MINOR",
			"fix":      "PATCH",
			"revert":   "PATCH",
			"perf":     "PATCH",
			"refactor": "PATCH",
			"style":    "PATCH",
			"build":    "PATCH",
			"test":     "SKIP",
			"ci":       "SKIP",
			"chore":    "SKIP",
			"docs":     "SKIP",
		},
		BreakingChangeTags: []string{"BREAKING CHANGE"},
	}
}
