package ollama

// Tool catalogue sent with every chat request. The backend selects at
// most one of these in response to a transcribed instruction.

type tool struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  toolParameters `json:"parameters"`
}

type toolParameters struct {
	Type       string                   `json:"type"`
	Properties map[string]toolParameter `json:"properties"`
	Required   []string                 `json:"required,omitempty"`
}

type toolParameter struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Items       *toolParameter `json:"items,omitempty"`
	Default     interface{}    `json:"default,omitempty"`
}

func stringParam(description string) toolParameter {
	return toolParameter{Type: "string", Description: description}
}

func stringParamDefault(description, def string) toolParameter {
	return toolParameter{Type: "string", Description: description, Default: def}
}

func stringArrayParam(description string) toolParameter {
	return toolParameter{
		Type:        "array",
		Description: description,
		Items:       &toolParameter{Type: "string"},
	}
}

func function(name, description string, properties map[string]toolParameter, required ...string) tool {
	return tool{
		Type: "function",
		Function: toolFunction{
			Name:        name,
			Description: description,
			Parameters: toolParameters{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
	}
}

var toolCatalogue = []tool{
	function("save_note",
		"Save a free-text note. Use for generic notes, thoughts, reminders without a specific time.",
		map[string]toolParameter{
			"title":    stringParam("Short title for the note"),
			"content":  stringParam("Full note content"),
			"category": stringParamDefault("Category: general, work, personal, idea", "general"),
		},
		"content"),

	function("save_list",
		"Save a list (shopping list, todo list, packing list, etc).",
		map[string]toolParameter{
			"title":    stringParam("List title, e.g. 'Shopping', 'Todo'"),
			"items":    stringArrayParam("List items"),
			"category": stringParamDefault("Category: shopping, todo, general", "general"),
		},
		"title", "items"),

	function("add_to_list",
		"Add items to an existing list note, found by title.",
		map[string]toolParameter{
			"list_title": stringParam("Title of the existing list"),
			"items":      stringArrayParam("Items to add"),
		},
		"list_title", "items"),

	function("create_appointment",
		"Create a calendar appointment with date and time.",
		map[string]toolParameter{
			"title":       stringParam("Appointment title"),
			"datetime":    stringParam("ISO datetime, e.g. 2026-02-23T15:00"),
			"description": stringParamDefault("Optional details", ""),
		},
		"title", "datetime"),

	function("set_reminder",
		"Set a reminder that will trigger a notification at the specified time.",
		map[string]toolParameter{
			"message":   stringParam("What to remind about"),
			"remind_at": stringParam("ISO datetime for the reminder, e.g. 2026-02-23T10:00"),
		},
		"message", "remind_at"),

	function("list_notes",
		"Show/search saved notes. Use when user asks to see their notes.",
		map[string]toolParameter{
			"category": stringParam("Filter by category (optional)"),
		}),

	function("list_appointments",
		"Show upcoming appointments/agenda.",
		map[string]toolParameter{}),

	function("list_reminders",
		"Show active (pending) reminders.",
		map[string]toolParameter{}),
}
