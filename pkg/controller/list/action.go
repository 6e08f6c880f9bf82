package list

// CheckInfo describes a catalog check. It is used for template rendering.
type CheckInfo struct {
	Key       string // Check key (e.g., feol)
	Ref       string // Name used for the report, log and total files
	Surname   string // Display name
	Script    string // Rule script path
	ExtraArgs string // Extra KLayout arguments joined by spaces
}
