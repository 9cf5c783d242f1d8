package config

import "time"

// Timeout constants
const (
	AIRequestTimeout = 3 * time.Minute
	ShutdownTimeout  = 30 * time.Second
)

// Server defaults
const (
	DefaultServerPort = "8080"
)

// Store defaults
const (
	DefaultStoreFilePath = "fractions_and_geometry_quiz.json"
)

// Selection bounds for the questions endpoint
const (
	DefaultNumQuestions = 10
	MinNumQuestions     = 1
	MaxNumQuestions     = 50
)

// Generation defaults
const (
	DefaultAIProvider      = "gemini"
	DefaultAIModel         = "gemini-2.0-flash"
	DefaultGenerationCount = 15
	MaxGenerationCount     = 50
	DefaultGenerationTopic = "general knowledge"
	DefaultGenerationLevel = "medium"
)

// Security configuration constants
const (
	// Content Security Policy
	DefaultCSP = "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:;"
)
