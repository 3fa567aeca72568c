package screens

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ward/internal/engine"
)

func TestReportExport(t *testing.T) {
	a := newApp(t)
	a.addPatient("Ada", "Lovelace")
	a.login("alice", "pw123")
	a.open("Export Reports")

	assert.Equal(t, DefaultReportPath, a.fieldValue(fieldReportPath))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	for range DefaultReportPath {
		a.press(engine.KeyBackspace)
	}
	a.typeText(path)
	out := a.press(engine.KeyEnter)

	assert.Equal(t, engine.KindPop, out.Kind)
	assert.Equal(t, "home", a.screen())
	assert.True(t, strings.HasPrefix(a.layout().Notice, "Exported 1 rows to "), a.layout().Notice)
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestReportExport_EmptyPath(t *testing.T) {
	a := newApp(t)
	a.login("alice", "pw123")
	a.open("Export Reports")

	for range DefaultReportPath {
		a.press(engine.KeyBackspace)
	}
	a.press(engine.KeyEnter)
	assert.Equal(t, "is required", a.fieldError(fieldReportPath))
}
