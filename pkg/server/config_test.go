// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/stack-advisor/pkg/defaults"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{EnvPort, EnvShutdownTimeoutSeconds, EnvRateLimit, EnvRateLimitBurst} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
		t.Errorf("rate limit = %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.ReadHeaderTimeout != defaults.ServerReadHeaderTimeout {
		t.Errorf("ReadHeaderTimeout = %v", cfg.ReadHeaderTimeout)
	}
	if cfg.Handlers == nil {
		t.Error("Handlers must be initialized")
	}
}

func TestNewConfig_Env(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "port",
			env:  map[string]string{EnvPort: "9090"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 9090 {
					t.Errorf("Port = %d, want 9090", cfg.Port)
				}
			},
		},
		{
			name: "invalid port ignored",
			env:  map[string]string{EnvPort: "http"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 8080 {
					t.Errorf("Port = %d, want 8080", cfg.Port)
				}
			},
		},
		{
			name: "out of range port ignored",
			env:  map[string]string{EnvPort: "70000"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 8080 {
					t.Errorf("Port = %d, want 8080", cfg.Port)
				}
			},
		},
		{
			name: "shutdown timeout",
			env:  map[string]string{EnvShutdownTimeoutSeconds: "45"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ShutdownTimeout != 45*time.Second {
					t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
				}
			},
		},
		{
			name: "negative shutdown timeout ignored",
			env:  map[string]string{EnvShutdownTimeoutSeconds: "-5"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
					t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
				}
			},
		},
		{
			name: "rate limit",
			env:  map[string]string{EnvRateLimit: "5", EnvRateLimitBurst: "10"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.RateLimit != rate.Limit(5) || cfg.RateLimitBurst != 10 {
					t.Errorf("rate limit = %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvPort, EnvShutdownTimeoutSeconds, EnvRateLimit, EnvRateLimitBurst} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, NewConfig())
		})
	}
}
