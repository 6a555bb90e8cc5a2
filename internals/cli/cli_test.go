package cli

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careconnect_backend/internals/features/people/dto"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "KEEPALIVE_URL", "RATE_LIMIT_MAX", "PORT"} {
		t.Setenv(k, "")
	}
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "careconnect_test.db"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_AUTO_MIGRATE", "true")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(&out, BuildInfo{Version: "test", Commit: "test"})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateSeedAndList(t *testing.T) {
	setTestEnv(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migration complete")

	out, err = run(t, "seed", "--file", filepath.Join("..", "seeds", "persons", "data_persons.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "seed complete")

	out, err = run(t, "persons", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Persons (3)")
	assert.Contains(t, out, "Amina Yusuf")
	assert.Contains(t, out, "glaucoma, type 2 diabetes")
}

func TestSeedMissingFile(t *testing.T) {
	setTestEnv(t)

	_, err := run(t, "seed", "--file", "does-not-exist.json")
	assert.Error(t, err)
}

func TestBootstrapRejectsBadConfig(t *testing.T) {
	setTestEnv(t)
	t.Setenv("DB_DRIVER", "oracle")

	_, err := run(t, "migrate")
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestNewAppServesRoutes(t *testing.T) {
	setTestEnv(t)

	rt, err := bootstrap()
	require.NoError(t, err)
	defer rt.close()
	require.NoError(t, rt.migrateIfEnabled())

	app := newApp(rt)
	resp, err := app.Test(httptest.NewRequest("GET", "/persons", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRenderPersons(t *testing.T) {
	var out bytes.Buffer
	renderPersons(&out, nil)
	assert.Contains(t, out.String(), "no persons stored")

	out.Reset()
	renderPersons(&out, []dto.PersonResponse{{
		ID: 7, Name: "Ann", Age: 34, DisabilityType: "mobility", DisabilitySeverity: "moderate",
		MedicalConditions: []string{"asthma"},
		Resources:         []dto.ResourceResponse{{ID: 1, Name: "Wheelchair", PersonID: 7}},
	}})
	s := out.String()
	assert.Contains(t, s, "NAME")
	assert.Contains(t, s, "Ann")
	assert.Contains(t, s, "asthma")
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test (test)")
}
