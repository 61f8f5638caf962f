package configs

// Storage configures where the persisted event log lives. The entire
// log is stored as one blob under a single named key; Key selects that
// name so multiple independent logs can share a database.
type Storage struct {
	// Key is the name of the row holding the full event log.
	Key string `env:"KEY" envDefault:"ooh_scan_events"`
}
