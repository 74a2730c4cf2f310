package cmd

import "fmt"

// Config carries everything the service reads from the environment.
// LLM settings are optional: with no base URL the service runs fully
// deterministic (no model-assisted extraction, fixed chat fallback).
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// ConversationCapacity bounds how many users keep chat history in memory.
	// Zero falls back to the conversation store's default.
	ConversationCapacity int
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
