package db

import "testing"

func TestSchemaVersion(t *testing.T) {
	if got := SchemaVersion(); got < 1 {
		t.Errorf("SchemaVersion() = %d, want at least 1", got)
	}
}
