package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrGeminiProjectUnset = goerr.New("gemini project ID is required")
	ErrKnowledgePathUnset = goerr.New("knowledge file path is required")
)
