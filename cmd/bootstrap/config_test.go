//go:build unit

package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "defaults use sqlite", env: map[string]string{}},
		{name: "postgres with dsn", env: map[string]string{"STORE_DRIVER": "postgres", "STORE_DSN": "postgres://localhost/cart"}},
		{name: "postgres without dsn", env: map[string]string{"STORE_DRIVER": "postgres"}, wantErr: "STORE_DSN is required"},
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "redis"}, wantErr: "unknown STORE_DRIVER"},
		{name: "rate limit without burst", env: map[string]string{"BACKEND_RATE_LIMIT": "2", "BACKEND_RATE_BURST": "0"}, wantErr: "BACKEND_RATE_BURST"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("BACKEND_BASE_URL", "http://127.0.0.1:9000/api")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cartItems", cfg.Store.Key)
		})
	}
}
