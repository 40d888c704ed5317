package manifest

import "encoding/json"

// Manifest is the plugin manifest stored at .claude-plugin/plugin.json.
// Only name is required; everything else is optional metadata or a
// component location override.
type Manifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version,omitempty"`
	Description string   `json:"description,omitempty"`
	Author      *Author  `json:"author,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	Repository  string   `json:"repository,omitempty"`
	License     string   `json:"license,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`

	// Component location overrides. The specification leaves their shape
	// open (string path or richer config), so they are kept raw.
	Commands   json.RawMessage `json:"commands,omitempty"`
	Agents     json.RawMessage `json:"agents,omitempty"`
	Hooks      json.RawMessage `json:"hooks,omitempty"`
	MCPServers json.RawMessage `json:"mcpServers,omitempty"`
	Skills     json.RawMessage `json:"skills,omitempty"`
}

// Author identifies who maintains a plugin.
type Author struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}
