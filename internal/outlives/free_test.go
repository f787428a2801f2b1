package outlives

import (
	"errors"
	"testing"

	"github.com/funvibe/ferro/internal/typesystem"
)

func TestIsFreeRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   typesystem.Region
		wantFree bool
		wantErr  bool
	}{
		{name: "static", region: typesystem.ReStatic{}, wantFree: true},
		{name: "early bound", region: typesystem.ReEarlyBound{Index: 0, Name: "a"}, wantFree: true},
		{name: "late bound", region: typesystem.ReLateBound{Depth: 0, Index: 0, Name: "b"}, wantFree: false},
		{name: "empty", region: typesystem.ReEmpty{}, wantErr: true},
		{name: "erased", region: typesystem.ReErased{}, wantErr: true},
		{name: "closure bound", region: typesystem.ReClosureBound{ID: 1}, wantErr: true},
		{name: "canonical", region: typesystem.ReCanonical{Index: 2}, wantErr: true},
		{name: "scope", region: typesystem.ReScope{ID: 3}, wantErr: true},
		{name: "inference var", region: typesystem.ReInfer{ID: 4}, wantErr: true},
		{name: "skolemized", region: typesystem.ReSkolemized{ID: 5, Name: "s"}, wantErr: true},
		{name: "free at call site", region: typesystem.ReFreeCallSite{ID: 6, Name: "f"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := isFreeRegion(tt.region)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("isFreeRegion(%s) expected an internal error, got none", tt.region)
				}
				var internal *InternalError
				if !errors.As(err, &internal) {
					t.Errorf("isFreeRegion(%s) error type = %T, want *InternalError", tt.region, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("isFreeRegion(%s) unexpected error: %v", tt.region, err)
			}
			if free != tt.wantFree {
				t.Errorf("isFreeRegion(%s) = %v, want %v", tt.region, free, tt.wantFree)
			}
		})
	}
}
