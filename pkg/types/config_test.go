package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty variant returns ErrVariantEmpty",
			config:  Config{Variant: "", LogLevel: LogLevelInfo},
			wantErr: ErrVariantEmpty,
		},
		{
			name:    "unknown variant returns ErrVariantUnknown",
			config:  Config{Variant: "matrix"},
			wantErr: ErrVariantUnknown,
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			config:  Config{Variant: VariantTuple, LogLevel: "trace"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "valid tuple config",
			config:  Config{Variant: VariantTuple, LogLevel: LogLevelDebug},
			wantErr: nil,
		},
		{
			name:    "empty log level is valid",
			config:  Config{Variant: VariantArray},
			wantErr: nil,
		},
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
