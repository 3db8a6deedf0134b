package compdb

// Record is one entry of a JSON compilation database.
//
// Exactly one of Arguments and Command is normally set; when both are,
// Arguments is used. Output is accepted but not used.
type Record struct {
	Directory string   `json:"directory" validate:"required"`
	File      string   `json:"file"      validate:"required"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
	Output    string   `json:"output,omitempty"`
}
