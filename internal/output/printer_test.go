package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrinters_ContainMessage(t *testing.T) {
	assert.Contains(t, PrintSuccess("sealed"), "sealed")
	assert.Contains(t, PrintError("boom"), "boom")
	assert.Contains(t, PrintInfo("note"), "note")
	assert.Contains(t, PrintWarning("careful"), "careful")
}

func TestWhen_IncludesRelativeHint(t *testing.T) {
	s := When(time.Now().Add(48 * time.Hour))
	assert.True(t, strings.Contains(s, "from now"), s)

	s = When(time.Now().Add(-48 * time.Hour))
	assert.True(t, strings.Contains(s, "ago"), s)
}

func TestStatus(t *testing.T) {
	now := time.Now()
	assert.Contains(t, Status(now.Add(time.Hour), now), "sealed")
	assert.Contains(t, Status(now.Add(-time.Hour), now), "openable")
}

func TestField(t *testing.T) {
	assert.Contains(t, Field("id", "abc"), "abc")
}
