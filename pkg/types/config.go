package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Snapshot persistence. "file" keeps the whole state in one JSON file;
	// "postgres" keeps it in a single JSONB row.
	SnapshotBackend string `envconfig:"SNAPSHOT_BACKEND" default:"file"`
	SnapshotPath    string `envconfig:"SNAPSHOT_PATH" default:"solidaria.json"`
	SnapshotKey     string `envconfig:"SNAPSHOT_KEY" default:"solidaria_v1"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`

	// Evidence uploads. When the bucket is unset, the server only accepts
	// pre-resolved evidence references (URLs or data URIs).
	EvidenceBucket  string `envconfig:"EVIDENCE_BUCKET"`
	EvidenceBaseURL string `envconfig:"EVIDENCE_BASE_URL"`
}
