package models

import "github.com/dmitrijs2005/bootlang/internal/timex"

// Document is a file uploaded as context for the POC agent.
type Document struct {
	ID        int64      `json:"id"`
	Filename  string     `json:"filename"`
	FileType  string     `json:"file_type"`
	CreatedAt timex.Time `json:"created_at"`
}

// POCSummary is one row of the generated POC list.
type POCSummary struct {
	ID          int64      `json:"id"`
	POCID       string     `json:"poc_id"`
	POCName     string     `json:"poc_name"`
	Description string     `json:"description"`
	CreatedAt   timex.Time `json:"created_at"`
}

// ChatRequest is a single turn sent to the POC agent.
type ChatRequest struct {
	Prompt              string         `json:"prompt"`
	DocumentIDs         []int64        `json:"document_ids,omitempty"`
	ConversationHistory map[string]any `json:"conversation_history,omitempty"`
}

// ChatResponse is the agent's answer for a turn.
type ChatResponse struct {
	Response       string         `json:"response"`
	ConversationID string         `json:"conversation_id"`
	AgentState     map[string]any `json:"agent_state"`
	NextAction     string         `json:"next_action"`
}

// POCResult describes a generated POC directory.
type POCResult struct {
	POCID     string   `json:"poc_id"`
	POCName   string   `json:"poc_name"`
	Directory string   `json:"directory"`
	Files     []string `json:"files"`
}

// POCFiles is the file tree of a generated POC.
type POCFiles struct {
	POCID     string   `json:"poc_id"`
	Directory string   `json:"directory"`
	Files     []string `json:"files"`
}

// DemoPOC is the quick-create result of the scaffold builder.
type DemoPOC struct {
	Success   bool           `json:"success"`
	POCID     string         `json:"poc_id"`
	Structure map[string]any `json:"poc_structure"`
	Error     string         `json:"error"`
}
