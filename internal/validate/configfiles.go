package validate

import (
	"bytes"
	"encoding/json"
	"errors"
)

// CheckHooksConfig validates a hooks/hooks.json document: a JSON object
// whose values are arrays of strings.
func CheckHooksConfig(component string, data []byte) []Finding {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Finding{jsonError(component, "Hooks config", data, err)}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return []Finding{errorf(component, KindInvalidType,
			"Hooks config must be a JSON object, got %s", typeName(raw))}
	}

	var findings []Finding
	for _, hook := range sortedKeys(obj) {
		items, ok := obj[hook].([]any)
		if !ok {
			findings = append(findings, errorf(component, KindInvalidType,
				"Hook %q value must be an array, got %s", hook, typeName(obj[hook])))
			continue
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				findings = append(findings, errorf(component, KindInvalidType,
					"Hook %q entry at index %d must be a string, got %s", hook, i, typeName(item)))
			}
		}
	}
	return findings
}

// CheckMCPConfig validates a .mcp.json document: an optional mcpServers
// object whose entries are objects carrying a string command.
func CheckMCPConfig(component string, data []byte) []Finding {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Finding{jsonError(component, "MCP config", data, err)}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return []Finding{errorf(component, KindInvalidType,
			"MCP config must be a JSON object, got %s", typeName(raw))}
	}

	serversRaw, present := obj["mcpServers"]
	if !present {
		return nil
	}
	servers, ok := serversRaw.(map[string]any)
	if !ok {
		return []Finding{errorf(component, KindInvalidType,
			"Field \"mcpServers\" must be an object, got %s", typeName(serversRaw))}
	}

	var findings []Finding
	for _, name := range sortedKeys(servers) {
		server, ok := servers[name].(map[string]any)
		if !ok {
			findings = append(findings, errorf(component, KindInvalidType,
				"Server %q configuration must be an object, got %s", name, typeName(servers[name])))
			continue
		}
		command, present := server["command"]
		if !present {
			findings = append(findings, errorf(component, KindMissingField,
				"Server %q missing required \"command\" field", name))
			continue
		}
		if _, ok := command.(string); !ok {
			findings = append(findings, errorf(component, KindInvalidType,
				"Server %q command must be a string, got %s", name, typeName(command)))
		}
	}
	return findings
}

// jsonError turns an encoding/json failure into a structural finding,
// carrying the line and column when the decoder exposes an offset.
func jsonError(component, what string, data []byte, err error) Finding {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := positionAt(data, syn.Offset)
		return errorf(component, KindStructural,
			"%s contains invalid JSON at line %d, column %d: %v", what, line, col, err)
	}
	return errorf(component, KindStructural, "%s contains invalid JSON: %v", what, err)
}

// positionAt converts a byte offset into 1-based line and column numbers.
func positionAt(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte("\n")) + 1
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = int(offset) - i
	} else {
		col = int(offset) + 1
	}
	return line, col
}
