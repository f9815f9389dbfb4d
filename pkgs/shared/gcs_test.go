package shared

import "testing"

func TestParseGCSURI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		object  string
		wantErr bool
	}{
		{uri: "gs://catalogs/params/v1.yaml", bucket: "catalogs", object: "params/v1.yaml"},
		{uri: "gs://catalogs/", wantErr: true},
		{uri: "gs:///object", wantErr: true},
		{uri: "/local/path.yaml", wantErr: true},
	}

	for _, tt := range tests {
		bucket, object, err := ParseGCSURI(tt.uri)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseGCSURI(%q) expected error", tt.uri)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGCSURI(%q) error: %v", tt.uri, err)
			continue
		}
		if bucket != tt.bucket || object != tt.object {
			t.Errorf("ParseGCSURI(%q) = (%q, %q), want (%q, %q)", tt.uri, bucket, object, tt.bucket, tt.object)
		}
	}
}
