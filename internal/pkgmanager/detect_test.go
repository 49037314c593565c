package pkgmanager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		want   Name
		wantOK bool
	}{
		{name: "pnpm lockfile", files: map[string]string{"pnpm-lock.yaml": ""}, want: PNPM, wantOK: true},
		{name: "yarn lockfile", files: map[string]string{"yarn.lock": ""}, want: Yarn, wantOK: true},
		{name: "npm lockfile", files: map[string]string{"package-lock.json": "{}"}, want: NPM, wantOK: true},
		{name: "bun lockfile", files: map[string]string{"bun.lockb": ""}, want: Bun, wantOK: true},
		{
			name:   "packageManager field",
			files:  map[string]string{"package.json": `{"name":"x","packageManager":"yarn@4.1.0"}`},
			want:   Yarn,
			wantOK: true,
		},
		{
			name:   "lockfile wins over packageManager field",
			files:  map[string]string{"pnpm-lock.yaml": "", "package.json": `{"packageManager":"yarn@4.1.0"}`},
			want:   PNPM,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, filepath.Join(root, name), content)
			}

			got, ok := Detect(root)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "yarn.lock"), "")
	nested := filepath.Join(root, "packages", "ext", "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok := Detect(nested)
	require.True(t, ok)
	assert.Equal(t, Yarn, got)
}

func TestFromUserAgent(t *testing.T) {
	tests := []struct {
		ua     string
		want   Name
		wantOK bool
	}{
		{"pnpm/9.1.0 npm/? node/v20.11.0 darwin arm64", PNPM, true},
		{"yarn/1.22.19 npm/? node/v18.17.0 linux x64", Yarn, true},
		{"npm/10.2.4 node/v20.11.0 linux x64 workspaces/false", NPM, true},
		{"bun/1.1.0 npm/? node/v21.6.0 linux x64", Bun, true},
		{"", "", false},
		{"curl/8.0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ua, func(t *testing.T) {
			got, ok := FromUserAgent(tt.ua)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "yarn.lock"), "")

	t.Run("user agent first", func(t *testing.T) {
		t.Setenv(UserAgentEnv, "pnpm/9.1.0 npm/? node/v20.11.0")
		assert.Equal(t, PNPM, Resolve(root))
	})

	t.Run("then detection", func(t *testing.T) {
		t.Setenv(UserAgentEnv, "")
		assert.Equal(t, Yarn, Resolve(root))
	})
}

func TestInstallCommand(t *testing.T) {
	tests := []struct {
		name     Name
		wantBin  string
		wantArgs []string
	}{
		{NPM, "npm", []string{"install"}},
		{Yarn, "yarn", nil},
		{PNPM, "pnpm", []string{"install"}},
		{Bun, "bun", []string{"install"}},
		{"", "npm", []string{"install"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			bin, args := InstallCommand(tt.name)
			assert.Equal(t, tt.wantBin, bin)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFromPackageJSON_UnknownManager(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "package.json")
	writeFile(t, path, `{"packageManager":"deno@2"}`)

	_, ok := fromPackageJSON(path)
	assert.False(t, ok)
}
