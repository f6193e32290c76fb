package domain

import "time"

// LogRecord is one durable, timestamped log entry.
// ID and CreatedAt are assigned by the store at insert time.
type LogRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Property is a key/value fact attached to a LogRecord.
// Each row has its own identity: setting the same key twice keeps both rows.
type Property struct {
	ID    int64  `json:"id"`
	LogID int64  `json:"log_id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FlattenProperties collapses rows into a map. Rows are expected in storage
// order, so the last row for a repeated key wins.
func FlattenProperties(props []Property) map[string]string {
	out := make(map[string]string, len(props))
	for _, p := range props {
		out[p.Key] = p.Value
	}
	return out
}
