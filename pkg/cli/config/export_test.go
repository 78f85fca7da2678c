package config

// NewAppWithPath builds an App pointing at a configuration file, bypassing
// CLI flag parsing in tests
func NewAppWithPath(path string) *App {
	return &App{path: path}
}

// NewKnowledgeWithPath builds a Knowledge configuration pointing at a file,
// bypassing CLI flag parsing in tests
func NewKnowledgeWithPath(path string) *Knowledge {
	return &Knowledge{path: path}
}
