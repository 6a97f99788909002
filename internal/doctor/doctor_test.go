package doctor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/unlocker/internal/doctor"
	"github.com/hbjs97/unlocker/internal/profile"
	"github.com/hbjs97/unlocker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findResult(t *testing.T, results []doctor.DiagResult, name string) doctor.DiagResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("result %q not found in %v", name, results)
	return doctor.DiagResult{}
}

func TestCheckConfigDir(t *testing.T) {
	dir := testutil.TempConfigDir(t)
	assert.Equal(t, doctor.StatusOK, doctor.CheckConfigDir(dir).Status)

	missing := doctor.CheckConfigDir(filepath.Join(dir, "absent"))
	assert.Equal(t, doctor.StatusWarn, missing.Status)
	assert.Contains(t, missing.Fix, "unlocker init")

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0600))
	assert.Equal(t, doctor.StatusFail, doctor.CheckConfigDir(file).Status)
}

func TestCheckShell(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Paths["/bin/zsh"] = "/bin/zsh"

	assert.Equal(t, doctor.StatusOK, doctor.CheckShell(fake, "/bin/zsh").Status)

	missing := doctor.CheckShell(fake, "/bin/fish")
	assert.Equal(t, doctor.StatusFail, missing.Status)
	assert.Contains(t, missing.Fix, "SHELL")
}

func TestCheckProfile_AllResolvable(t *testing.T) {
	dir := testutil.SetupTestProfiles(t)
	fake := testutil.NewFakeCommander()
	fake.Paths["echo"] = "/bin/echo"

	results := doctor.CheckProfile(fake, &profile.Loader{Dir: dir}, "vpn")
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}
	assert.Equal(t, "훅 없음", findResult(t, results, "vpn.before").Message)
	assert.Equal(t, "/bin/echo", findResult(t, results, "vpn.after").Message)
}

func TestCheckProfile_MissingExecutable(t *testing.T) {
	dir := testutil.TempConfigDir(t)
	testutil.WriteProfile(t, dir, "work", "before = [\"pass\", \"unlock\"]\nafter = []\n")
	fake := testutil.NewFakeCommander()

	results := doctor.CheckProfile(fake, &profile.Loader{Dir: dir}, "work")
	before := findResult(t, results, "work.before")
	assert.Equal(t, doctor.StatusFail, before.Status)
	assert.Contains(t, before.Fix, "pass")
}

func TestCheckProfile_LoadFailure(t *testing.T) {
	dir := testutil.TempConfigDir(t)
	testutil.WriteProfile(t, dir, "bad", "before = []\nafter = []\nextra = 1\n")
	fake := testutil.NewFakeCommander()

	results := doctor.CheckProfile(fake, &profile.Loader{Dir: dir}, "bad")
	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusFail, results[0].Status)
	assert.Contains(t, results[0].Message, "extra")
}

func TestRunAll_ListsProfilesWhenNoneGiven(t *testing.T) {
	dir := testutil.SetupTestProfiles(t)
	fake := testutil.NewFakeCommander()
	fake.Paths["echo"] = "/bin/echo"
	fake.Paths["/bin/bash"] = "/bin/bash"

	results := doctor.RunAll(fake, dir, "/bin/bash", nil)
	for _, name := range []string{"config_dir", "shell", "vpn", "vpn.before", "vpn.after", "work", "work.before", "work.after"} {
		assert.Equal(t, doctor.StatusOK, findResult(t, results, name).Status, name)
	}
}

func TestRunAll_SelectedProfiles(t *testing.T) {
	dir := testutil.SetupTestProfiles(t)
	fake := testutil.NewFakeCommander()

	results := doctor.RunAll(fake, dir, "/bin/bash", []string{"ghost"})
	assert.Equal(t, doctor.StatusFail, findResult(t, results, "shell").Status)
	assert.Equal(t, doctor.StatusFail, findResult(t, results, "ghost").Status)
	for _, r := range results {
		assert.NotEqual(t, "work", r.Name)
	}
}
