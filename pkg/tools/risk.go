package tools

// RiskLevel classifies how dangerous a tool call is for the user.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "SAFE"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// highRiskTools are destructive operations that always require user
// confirmation before execution.
var highRiskTools = map[string]bool{
	"execute_command":  true,
	"run_script":       true,
	"delete_file":      true,
	"move_file":        true,
	"replace_in_file":  true,
	"write_file":       true,
	"computer_control": true,
}

// moderateRiskTools drive UI interaction and may have side effects.
var moderateRiskTools = map[string]bool{
	"browser_action": true,
	"click":          true,
	"type":           true,
	"scroll":         true,
}

// safeActions are read-only actions within a moderate tool that are
// downgraded to SAFE.
var safeActions = map[string]bool{
	"screenshot":         true,
	"get_content":        true,
	"get_url":            true,
	"get_title":          true,
	"get_mouse_position": true,
	"get_screen_size":    true,
}

// ClassifyRisk determines the risk level for a tool call. Tools outside
// the allowlists default to SAFE.
func ClassifyRisk(toolName string, args map[string]any) RiskLevel {
	if highRiskTools[toolName] {
		return RiskHigh
	}
	if moderateRiskTools[toolName] {
		if action, ok := args["action"].(string); ok && safeActions[action] {
			return RiskSafe
		}
		return RiskModerate
	}
	return RiskSafe
}
