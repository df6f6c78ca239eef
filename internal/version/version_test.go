package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestETagIsStableAndQuoted(t *testing.T) {
	a := ETag("catalog", []byte("payload"))
	b := ETag("catalog", []byte("payload"))

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, `"catalog-`))
	assert.True(t, strings.HasSuffix(a, `-cv1.0_pv1.0"`))
}

func TestETagVersionSuffix(t *testing.T) {
	oldCatalog, oldPrompt := ComponentVersions.Catalog, ComponentVersions.PromptLogic
	ComponentVersions.Catalog = "v2.3"
	ComponentVersions.PromptLogic = "v4.5"
	defer func() {
		ComponentVersions.Catalog, ComponentVersions.PromptLogic = oldCatalog, oldPrompt
	}()

	tag := ETag("catalog", []byte("payload"))
	assert.True(t, strings.HasSuffix(tag, `-cv2.3_pv4.5"`), tag)
	assert.NotContains(t, tag, "vv")
}

func TestETagChangesWithPayloadAndVersion(t *testing.T) {
	base := ETag("catalog", []byte("payload"))
	assert.NotEqual(t, base, ETag("catalog", []byte("payload2")))

	old := ComponentVersions.PromptLogic
	ComponentVersions.PromptLogic = "v9.9"
	defer func() { ComponentVersions.PromptLogic = old }()

	assert.NotEqual(t, base, ETag("catalog", []byte("payload")))
}

func TestInfo(t *testing.T) {
	info := Info("toolhub")
	assert.Contains(t, info, "toolhub dev")
	assert.Contains(t, info, "commit: unknown")
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abc", short("abc"))
	assert.Equal(t, "1234567", short("1234567890"))
}
