package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendString(t *testing.T) {
	assert.Equal(t, "apt", Apt.String())
	assert.Equal(t, "dnf", Dnf.String())
	assert.Equal(t, "pacman", Pacman.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		backend   Backend
		packageID string
		want      []string
	}{
		{"apt", Apt, "git", []string{"sudo", "apt", "install", "-y", "git"}},
		{"dnf", Dnf, "vim", []string{"sudo", "dnf", "install", "-y", "vim"}},
		{"pacman", Pacman, "vim", []string{"sudo", "pacman", "-S", "--noconfirm", "vim"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Command(tt.backend, tt.packageID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandUnknownBackend(t *testing.T) {
	_, err := Command(Unknown, "git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no install command")
}
